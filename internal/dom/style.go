package dom

import "strings"

// StyleSnapshot is the resolved CSS property map for one element.
type StyleSnapshot map[string]string

// Get returns the value for a property, or "".
func (s StyleSnapshot) Get(prop string) string {
	return s[strings.ToLower(prop)]
}

// Has reports whether the property is present with a non-empty value.
func (s StyleSnapshot) Has(prop string) bool {
	return s.Get(prop) != ""
}

// Is reports whether the property equals value (case-insensitive).
func (s StyleSnapshot) Is(prop, value string) bool {
	return strings.EqualFold(s.Get(prop), value)
}

// StyleFunc resolves the StyleSnapshot for an element. It is the style
// boundary of the engine: a full implementation is supplied by an external
// style-resolution collaborator.
type StyleFunc func(*ElementNode) StyleSnapshot

// InlineStyles resolves styles from the element's style attribute only. It
// is the default StyleFunc when no external resolver is wired in.
func InlineStyles(e *ElementNode) StyleSnapshot {
	raw, ok := e.Attr("style")
	if !ok || raw == "" {
		return nil
	}
	snap := make(StyleSnapshot)
	for _, decl := range strings.Split(raw, ";") {
		k, v, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			snap[k] = v
		}
	}
	return snap
}
