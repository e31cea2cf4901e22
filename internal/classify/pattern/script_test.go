package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/recast/internal/dom"
)

func scriptElement(t *testing.T) *dom.ElementNode {
	t.Helper()
	doc, err := dom.ParseString(`<html><body>
		<div id="target" class="hero banner" data-speed="3">
			<h1>Big title</h1>
		</div>
	</body></html>`)
	require.NoError(t, err)
	els := doc.Root().Find("#target")
	require.Len(t, els, 1)
	return els[0]
}

func TestCompileScript_Invalid(t *testing.T) {
	_, err := CompileScript("broken", "this is not javascript ===")
	require.Error(t, err)
	var malformed *MalformedPatternError
	assert.ErrorAs(t, err, &malformed)
}

func TestScriptPredicate_Evaluates(t *testing.T) {
	el := scriptElement(t)
	style := dom.StyleSnapshot{"min-height": "400px"}

	tests := []struct {
		name   string
		script string
		want   bool
	}{
		{"style lookup", `style["min-height"] !== undefined`, true},
		{"missing style", `style["z-index"] !== undefined`, false},
		{"tag global", `tag === "div"`, true},
		{"classes array", `classes.indexOf("hero") >= 0`, true},
		{"attr helper", `attr("data-speed") === "3"`, true},
		{"count helper", `count("h1") === 1`, true},
		{"text global", `text.indexOf("Big") === 0`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := CompileScript(tt.name, tt.script)
			require.NoError(t, err)

			got, err := script.Predicate()(style, el)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScriptPredicate_FailsClosed(t *testing.T) {
	script, err := CompileScript("thrower", `(function(){ throw new Error("boom"); })()`)
	require.NoError(t, err)

	got, err := script.Predicate()(nil, scriptElement(t))
	assert.False(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thrower")
}

func TestScriptPredicate_NoHostGlobals(t *testing.T) {
	script, err := CompileScript("sandbox", `typeof require === "undefined" && typeof process === "undefined"`)
	require.NoError(t, err)

	got, err := script.Predicate()(nil, scriptElement(t))
	require.NoError(t, err)
	assert.True(t, got)
}
