package config

// Variant is a named preset bundling the palette size and policy of one of
// the two simulator flavors.
type Variant string

const (
	// VariantBaseline is the classic four-color board with the plain greedy
	// policy.
	VariantBaseline Variant = "baseline"
	// VariantEnhanced is the six-color board with the smart policy
	// (repeat penalty + cascade bonus).
	VariantEnhanced Variant = "enhanced"
)

// ApplyVariant overwrites the palette and policy fields of cfg according to
// the preset. Unknown variants leave cfg untouched.
func ApplyVariant(cfg *Config, v Variant) {
	switch v {
	case VariantBaseline:
		cfg.Board.Colors = 4
		cfg.Policy.Name = "greedy"
	case VariantEnhanced:
		cfg.Board.Colors = 6
		cfg.Policy.Name = "smart"
	}
}
