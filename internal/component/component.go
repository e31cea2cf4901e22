package component

// Type identifies one semantic component kind from the closed taxonomy.
type Type string

const (
	TypeHeading      Type = "heading"
	TypeText         Type = "text"
	TypeButton       Type = "button"
	TypeLink         Type = "link"
	TypeImage        Type = "image"
	TypeVideo        Type = "video"
	TypeAudio        Type = "audio"
	TypeIcon         Type = "icon"
	TypeDivider      Type = "divider"
	TypeSpacer       Type = "spacer"
	TypeList         Type = "list"
	TypeQuote        Type = "quote"
	TypeCode         Type = "code"
	TypeBadge        Type = "badge"
	TypeAvatar       Type = "avatar"
	TypeBreadcrumb   Type = "breadcrumb"
	TypeMenu         Type = "menu"
	TypeCard         Type = "card"
	TypeHero         Type = "hero"
	TypeAlert        Type = "alert"
	TypeForm         Type = "form"
	TypeInput        Type = "input"
	TypeProgress     Type = "progress"
	TypeCounter      Type = "counter"
	TypeTestimonial  Type = "testimonial"
	TypeCTA          Type = "cta"
	TypeMap          Type = "map"
	TypeSocial       Type = "social"
	TypeSection      Type = "section"
	TypeColumns      Type = "columns"
	TypeAccordion    Type = "accordion"
	TypeTabs         Type = "tabs"
	TypeModal        Type = "modal"
	TypeCarousel     Type = "carousel"
	TypeGallery      Type = "gallery"
	TypeTable        Type = "table"
	TypePricingTable Type = "pricing-table"
	TypePriceTable   Type = "price-table"
)

// TypeTruncated marks a branch whose classification was aborted by the
// recursion/node guard. It is a diagnostic marker, not a recognizable type:
// no pattern may map to it.
const TypeTruncated Type = "truncated"

// All lists every recognizable type in a stable order.
var All = []Type{
	TypeHeading, TypeText, TypeButton, TypeLink, TypeImage, TypeVideo,
	TypeAudio, TypeIcon, TypeDivider, TypeSpacer, TypeList, TypeQuote,
	TypeCode, TypeBadge, TypeAvatar, TypeBreadcrumb, TypeMenu, TypeCard,
	TypeHero, TypeAlert, TypeForm, TypeInput, TypeProgress, TypeCounter,
	TypeTestimonial, TypeCTA, TypeMap, TypeSocial, TypeSection, TypeColumns,
	TypeAccordion, TypeTabs, TypeModal, TypeCarousel, TypeGallery, TypeTable,
	TypePricingTable, TypePriceTable,
}

var known = func() map[Type]bool {
	m := make(map[Type]bool, len(All))
	for _, t := range All {
		m[t] = true
	}
	return m
}()

// Known reports whether t is part of the recognizable taxonomy.
func Known(t Type) bool {
	return known[t]
}

// Container types absorb their subtree into their own attribute record.
// The classifier never descends into them.
var containers = map[Type]bool{
	TypeAccordion:    true,
	TypeTabs:         true,
	TypeModal:        true,
	TypeCarousel:     true,
	TypeGallery:      true,
	TypePricingTable: true,
	TypeTable:        true,
	TypePriceTable:   true,
}

// IsContainer reports whether t stops classification recursion.
func IsContainer(t Type) bool {
	return containers[t]
}

// Component is one node of the classified output tree.
//
// Attributes holds the type-specific record produced by the attribute
// extractor for container types; it is nil for simple leaf types. SourceRef
// is a stable CSS path back to the originating element, used by downstream
// code generators.
type Component struct {
	Type       Type         `json:"type"`
	Confidence int          `json:"confidence"`
	Attributes any          `json:"attributes,omitempty"`
	Children   []*Component `json:"children,omitempty"`
	SourceRef  string       `json:"source_ref"`
}
