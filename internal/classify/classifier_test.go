package classify

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/recast/internal/classify/extract"
	"github.com/pageforge/recast/internal/classify/patterns"
	"github.com/pageforge/recast/internal/component"
	"github.com/pageforge/recast/internal/dom"
)

func classifyPage(t *testing.T, page string, opts ...Option) (*component.Component, *Diagnostics) {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	c := New(patterns.MustBuiltin(), opts...)
	return c.Classify(doc.Root())
}

// collectTypes flattens the output tree into a type multiset.
func collectTypes(c *component.Component) []component.Type {
	if c == nil {
		return nil
	}
	out := []component.Type{c.Type}
	for _, child := range c.Children {
		out = append(out, collectTypes(child)...)
	}
	return out
}

func TestClassify_Heading(t *testing.T) {
	tree, _ := classifyPage(t, `<html><body><h2 class="title">Heading</h2></body></html>`)

	require.NotNil(t, tree)
	assert.Equal(t, component.TypeHeading, tree.Type)
	assert.GreaterOrEqual(t, tree.Confidence, 75)
	assert.NotEmpty(t, tree.SourceRef)
}

func TestClassify_PriceTableContainment(t *testing.T) {
	page := `<html><body>
		<div class="pricing-table">
			<div class="plan">
				<h3>Basic</h3>
				<span class="price">$9/month</span>
				<ul><li class="feature">SSL</li><li class="feature">CDN</li></ul>
			</div>
			<div class="plan featured">
				<h3>Pro</h3>
				<span class="price">$29/month</span>
				<ul><li class="feature">Everything</li></ul>
			</div>
		</div>
	</body></html>`

	tree, _ := classifyPage(t, page)
	require.NotNil(t, tree)
	assert.Equal(t, component.TypePriceTable, tree.Type)
	assert.Equal(t, 95, tree.Confidence)

	// The price/feature subtree lives only in the attribute record, never
	// as child Components.
	assert.Empty(t, tree.Children)
	attrs, ok := tree.Attributes.(extract.PricingAttrs)
	require.True(t, ok)
	assert.Equal(t, 2, attrs.PlanCount)
	assert.True(t, attrs.HasFeatured)
	assert.Equal(t, "monthly", attrs.BillingPeriod)
	assert.Equal(t, "$", attrs.Currency)
}

func TestClassify_AriaAccordionBeatsKeywordAccordion(t *testing.T) {
	page := `<html><body>
		<div role="tablist" class="accordion">
			<div aria-expanded="false"><h3>One</h3><p>a</p></div>
			<div aria-expanded="true"><h3>Two</h3><p>b</p></div>
			<div aria-expanded="false"><h3>Three</h3><p>c</p></div>
		</div>
	</body></html>`

	tree, _ := classifyPage(t, page)
	require.NotNil(t, tree)
	assert.Equal(t, component.TypeAccordion, tree.Type)
	assert.Equal(t, 95, tree.Confidence, "aria pattern (priority 90) outranks the keyword pattern at confidence 90")

	attrs, ok := tree.Attributes.(extract.AccordionAttrs)
	require.True(t, ok)
	assert.Equal(t, 3, attrs.ItemCount)
	assert.Equal(t, 1, attrs.DefaultOpen)
}

func TestClassify_PricingClassUpgradesTable(t *testing.T) {
	// Both table patterns sit in the same priority tier; the pricing-aware
	// one wins on confidence.
	page := `<html><body>
		<table class="pricing"><tr><th>Plan</th><th>Cost</th></tr><tr><td>Basic</td><td>$9</td></tr></table>
	</body></html>`

	tree, _ := classifyPage(t, page)
	require.NotNil(t, tree)
	assert.Equal(t, component.TypePricingTable, tree.Type)
	assert.Equal(t, 95, tree.Confidence)

	attrs, ok := tree.Attributes.(extract.PricingAttrs)
	require.True(t, ok)
	assert.Equal(t, 1, attrs.PlanCount)
	assert.Equal(t, "$", attrs.Currency)
}

func TestClassify_DividerBeatsSpacer(t *testing.T) {
	// Both the tag-based divider pattern and the generic spacer heuristic
	// match a styled <hr>; the divider's higher priority decides.
	tree, _ := classifyPage(t, `<html><body><hr style="height: 20px"></body></html>`)

	require.NotNil(t, tree)
	assert.Equal(t, component.TypeDivider, tree.Type)
	assert.Equal(t, 95, tree.Confidence)
}

func TestClassify_EmptyDivOmitted(t *testing.T) {
	tree, diag := classifyPage(t, `<html><body><div></div></body></html>`)

	assert.Nil(t, tree)
	assert.Empty(t, diag.Entries)
}

func TestClassify_TextFallback(t *testing.T) {
	tree, _ := classifyPage(t, `<html><body><div><span>hello world</span></div></body></html>`)

	require.NotNil(t, tree)
	assert.Equal(t, component.TypeText, tree.Type)
}

func TestClassify_DeepTreeTruncates(t *testing.T) {
	depth := 500
	page := "<html><body>" + strings.Repeat("<div>", depth) + strings.Repeat("</div>", depth) + "</body></html>"

	tree, diag := classifyPage(t, page, WithLimits(50, 0))

	assert.True(t, diag.HasCode(DiagRecursionLimit))
	require.NotNil(t, tree)
	types := collectTypes(tree)
	assert.Contains(t, types, component.TypeTruncated)
}

func TestClassify_TruncationSparesSiblings(t *testing.T) {
	deep := strings.Repeat("<div>", 200) + strings.Repeat("</div>", 200)
	page := "<html><body>" + deep + `<h1>Still here</h1></body></html>`

	tree, diag := classifyPage(t, page, WithLimits(50, 0))

	assert.True(t, diag.HasCode(DiagRecursionLimit))
	require.NotNil(t, tree)
	assert.Contains(t, collectTypes(tree), component.TypeHeading)
}

func TestClassify_NodeBudget(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 100; i++ {
		sb.WriteString("<p>x</p>")
	}
	sb.WriteString("</body></html>")

	_, diag := classifyPage(t, sb.String(), WithLimits(0, 10))
	assert.True(t, diag.HasCode(DiagRecursionLimit))
}

func TestClassify_Containment(t *testing.T) {
	page := `<html><body>
		<div class="accordion">
			<div class="accordion-item"><h3>Title</h3><ul><li>x</li></ul></div>
		</div>
		<h2>After</h2>
	</body></html>`

	tree, _ := classifyPage(t, page)
	require.NotNil(t, tree)

	types := collectTypes(tree)
	assert.Contains(t, types, component.TypeAccordion)
	assert.Contains(t, types, component.TypeHeading)
	assert.NotContains(t, types, component.TypeList, "list inside the accordion must be absorbed")
}

func TestClassify_Idempotent(t *testing.T) {
	page := `<html><body>
		<section class="hero"><h1>Hi</h1><a class="btn" href="/go">Go</a></section>
		<table class="pricing"><tr><th>Plan</th><th>Price</th></tr><tr><td>Basic</td><td>$9</td></tr></table>
	</body></html>`

	first, _ := classifyPage(t, page)
	second, _ := classifyPage(t, page)
	assert.Equal(t, first, second)
}

func TestClassify_DocumentOrderPreserved(t *testing.T) {
	page := `<html><body>
		<h1>A</h1>
		<p>B</p>
		<h2>C</h2>
	</body></html>`

	tree, _ := classifyPage(t, page)
	require.NotNil(t, tree)
	require.Len(t, tree.Children, 3)
	assert.Equal(t, component.TypeHeading, tree.Children[0].Type)
	assert.Equal(t, component.TypeText, tree.Children[1].Type)
	assert.Equal(t, component.TypeHeading, tree.Children[2].Type)
}

func TestClassify_ConcurrentRunsShareRegistry(t *testing.T) {
	page := `<html><body><div class="pricing-table"><span class="price">$9</span><span class="feature">x</span></div></body></html>`
	doc, err := dom.ParseString(page)
	require.NoError(t, err)

	c := New(patterns.MustBuiltin())
	baseline, _ := c.Classify(doc.Root())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, _ := c.Classify(doc.Root())
			assert.Equal(t, baseline, tree)
		}()
	}
	wg.Wait()
}

func TestClassify_NilRoot(t *testing.T) {
	c := New(patterns.MustBuiltin())
	tree, diag := c.Classify(nil)
	assert.Nil(t, tree)
	assert.NotEmpty(t, diag.RunID)
}
