package pattern

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/pageforge/recast/internal/component"
)

// patternFile is the YAML authoring schema for external pattern sets.
type patternFile struct {
	Patterns []patternSpec `yaml:"patterns"`
}

type patternSpec struct {
	Name             string            `yaml:"name"`
	Type             string            `yaml:"type"`
	Confidence       int               `yaml:"confidence"`
	Priority         int               `yaml:"priority"`
	Tags             []string          `yaml:"tags"`
	ClassKeywords    []string          `yaml:"classKeywords"`
	AriaRole         string            `yaml:"ariaRole"`
	Attributes       map[string]string `yaml:"attributes"`
	DataAttributes   []string          `yaml:"dataAttributes"`
	RequiredChildren []string          `yaml:"requiredChildren"`
	Script           string            `yaml:"script"`
}

// LoadYAML decodes a YAML pattern document into validated Patterns. Script
// predicates are compiled eagerly; any authoring error aborts the whole load
// with a MalformedPatternError.
func LoadYAML(r io.Reader) ([]Pattern, error) {
	var file patternFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode pattern file: %w", err)
	}

	patterns := make([]Pattern, 0, len(file.Patterns))
	for i, spec := range file.Patterns {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", spec.Type, i)
		}

		p := Pattern{
			Name:       name,
			Type:       component.Type(spec.Type),
			Confidence: spec.Confidence,
			Priority:   spec.Priority,
			When: PredicateSet{
				TagNames:       spec.Tags,
				ClassKeywords:  spec.ClassKeywords,
				AriaRole:       spec.AriaRole,
				Attributes:     spec.Attributes,
				DataAttributes: spec.DataAttributes,
			},
		}
		if len(spec.RequiredChildren) > 0 {
			p.When.Structure = &Structure{RequiredChildren: spec.RequiredChildren}
		}
		if spec.Script != "" {
			script, err := CompileScript(name, spec.Script)
			if err != nil {
				return nil, err
			}
			p.When.CSSPredicate = script.Predicate()
		}

		if err := p.Validate(); err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
