package content

// Type identifies which payload schema a section's content must satisfy.
type Type string

const (
	TypeHero          Type = "HERO"
	TypeFeatures      Type = "FEATURES"
	TypeCTA           Type = "CTA"
	TypeText          Type = "TEXT"
	TypeTextWithImage Type = "TEXT_WITH_IMAGE"
	TypeGrid          Type = "GRID"
	TypePricing       Type = "PRICING"
	TypeFAQ           Type = "FAQ"
	TypeContactForm   Type = "CONTACT_FORM"
)

// Types lists every known section type in a stable order.
var Types = []Type{
	TypeHero,
	TypeFeatures,
	TypeCTA,
	TypeText,
	TypeTextWithImage,
	TypeGrid,
	TypePricing,
	TypeFAQ,
	TypeContactForm,
}

// Known reports whether t names a registered section type.
func (t Type) Known() bool {
	_, ok := validators[t]
	return ok
}
