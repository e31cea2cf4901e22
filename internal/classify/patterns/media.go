package patterns

import (
	"strings"

	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
	"github.com/pageforge/recast/internal/dom"
)

// srcContains matches embed iframes by vendor host fragment.
func srcContains(fragments ...string) pattern.CSSPredicate {
	return func(_ dom.StyleSnapshot, el *dom.ElementNode) (bool, error) {
		src, ok := el.Attr("src")
		if !ok {
			return false, nil
		}
		src = strings.ToLower(src)
		for _, f := range fragments {
			if strings.Contains(src, f) {
				return true, nil
			}
		}
		return false, nil
	}
}

func mediaPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			Name:       "image/tag",
			Type:       component.TypeImage,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"img", "picture"},
			},
		},
		{
			Name:       "image/figure",
			Type:       component.TypeImage,
			Confidence: 85,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				TagNames: []string{"figure"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"img"},
				},
			},
		},
		{
			Name:       "video/tag",
			Type:       component.TypeVideo,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"video"},
			},
		},
		{
			Name:       "video/embed",
			Type:       component.TypeVideo,
			Confidence: 92,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames:     []string{"iframe"},
				CSSPredicate: srcContains("youtube.com", "youtu.be", "vimeo.com", "wistia"),
			},
		},
		{
			Name:       "audio/tag",
			Type:       component.TypeAudio,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"audio"},
			},
		},
		{
			Name:       "map/embed",
			Type:       component.TypeMap,
			Confidence: 92,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames:     []string{"iframe"},
				CSSPredicate: srcContains("google.com/maps", "openstreetmap.org", "mapbox.com"),
			},
		},
		{
			Name:       "map/class",
			Type:       component.TypeMap,
			Confidence: 65,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				TagNames:      []string{"div"},
				ClassKeywords: []string{"map"},
			},
		},
		{
			Name:       "icon/class",
			Type:       component.TypeIcon,
			Confidence: 80,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				TagNames:      []string{"i", "span", "svg"},
				ClassKeywords: []string{"icon", "fa-", "glyphicon", "material-icons"},
			},
		},
		{
			Name:       "icon/svg",
			Type:       component.TypeIcon,
			Confidence: 70,
			Priority:   pattern.PriorityGeneric,
			When: pattern.PredicateSet{
				TagNames: []string{"svg"},
			},
		},
		{
			Name:       "avatar/class",
			Type:       component.TypeAvatar,
			Confidence: 80,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				TagNames:      []string{"img", "div", "span"},
				ClassKeywords: []string{"avatar", "profile-pic", "user-photo"},
			},
		},
		{
			Name:       "carousel/data",
			Type:       component.TypeCarousel,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				Attributes: map[string]string{"data-ride": "carousel"},
			},
		},
		{
			Name:       "carousel/structure",
			Type:       component.TypeCarousel,
			Confidence: 92,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"carousel", "slider", "swiper", "slick"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"[class*='slide']"},
				},
			},
		},
		{
			Name:       "carousel/class",
			Type:       component.TypeCarousel,
			Confidence: 85,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"carousel", "slider", "swiper"},
			},
		},
		{
			Name:       "gallery/data",
			Type:       component.TypeGallery,
			Confidence: 92,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				DataAttributes: []string{"data-lightbox"},
			},
		},
		{
			Name:       "gallery/structure",
			Type:       component.TypeGallery,
			Confidence: 90,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"gallery", "masonry", "portfolio"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"img"},
				},
			},
		},
		{
			Name:       "social/structure",
			Type:       component.TypeSocial,
			Confidence: 82,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"social", "share"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"a"},
				},
			},
		},
		{
			Name:       "social/class",
			Type:       component.TypeSocial,
			Confidence: 70,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"social-icons", "social-links"},
			},
		},
	}
}
