package models

// ProductTypes lists the contract types a product may be created with.
var ProductTypes = []string{
	"Murabaha and Murabaha to the Purchase Orderer",
	"Salam and Parallel Salam",
	"Istisna'a and Parallel Istisna'a",
	"Murabaha and Other Deferred Payment Sales",
	"Ijarah and Ijarah Muntahia Bittamleek",
}

// UnitKind groups term units for aggregation.
type UnitKind string

const (
	UnitKindTime       UnitKind = "time"
	UnitKindCurrency   UnitKind = "currency"
	UnitKindPercentage UnitKind = "percentage"
	UnitKindCount      UnitKind = "count"
)

// TermUnit describes one selectable unit of a product term.
type TermUnit struct {
	Value string   `json:"value"`
	Label string   `json:"label"`
	Kind  UnitKind `json:"kind"`
}

// TermUnits is the fixed unit enumeration, in display order.
var TermUnits = []TermUnit{
	{Value: "d", Label: "Days (d)", Kind: UnitKindTime},
	{Value: "wk", Label: "Weeks (wk)", Kind: UnitKindTime},
	{Value: "mo", Label: "Months (mo)", Kind: UnitKindTime},
	{Value: "yr", Label: "Years (yr)", Kind: UnitKindTime},
	{Value: "DZD", Label: "DZD", Kind: UnitKindCurrency},
	{Value: "USD", Label: "USD", Kind: UnitKindCurrency},
	{Value: "EUR", Label: "EUR", Kind: UnitKindCurrency},
	{Value: "%", Label: "%", Kind: UnitKindPercentage},
	{Value: "#", Label: "Amount (Number of Unit)", Kind: UnitKindCount},
}

// DefaultTermUnit is preselected for new terms.
const DefaultTermUnit = "mo"

// IsProductType reports whether t is listed in ProductTypes.
func IsProductType(t string) bool {
	for _, pt := range ProductTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// LookupTermUnit returns the unit definition for value.
func LookupTermUnit(value string) (TermUnit, bool) {
	for _, u := range TermUnits {
		if u.Value == value {
			return u, true
		}
	}
	return TermUnit{}, false
}
