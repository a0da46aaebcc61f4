package reconcile

// Tier identifies which precedence tier supplied a field's value.
type Tier string

// Tiers in consultation order.
const (
	// TierStructured is the nested structured scan result.
	TierStructured Tier = "structured"
	// TierSideTable is the flat side-table row, matched via aliases.
	TierSideTable Tier = "side_table"
	// TierNarrative is a fact mined from the narrative text.
	TierNarrative Tier = "narrative"
	// TierDerived is a value computed from other resolved fields.
	TierDerived Tier = "derived"
	// TierUnknown means no tier produced a value.
	TierUnknown Tier = "unknown"
)

// String returns the tier name.
func (t Tier) String() string {
	return string(t)
}

// Provenance records the supplying tier per canonical field for one row.
type Provenance map[Field]Tier
