package models

// ScenarioStatus is the review state of a scenario.
type ScenarioStatus string

const (
	ScenarioStatusInReview  ScenarioStatus = "in-review"
	ScenarioStatusCompleted ScenarioStatus = "completed"
)

// ScenarioType selects between a free narrative and a product-bound scenario.
type ScenarioType string

const (
	ScenarioTypeFull    ScenarioType = "full"
	ScenarioTypeProduct ScenarioType = "product"
)

// IsValid reports whether t is a declared scenario type.
func (t ScenarioType) IsValid() bool {
	return t == ScenarioTypeFull || t == ScenarioTypeProduct
}

// ScenarioSubType refines a full scenario. It has no meaning for product scenarios.
type ScenarioSubType string

const (
	SubTypeAccounting  ScenarioSubType = "accounting"
	SubTypeFAS         ScenarioSubType = "fas"
	SubTypeEnhancement ScenarioSubType = "enhancement"
)

// IsValid reports whether t is a declared sub-type.
func (t ScenarioSubType) IsValid() bool {
	switch t {
	case SubTypeAccounting, SubTypeFAS, SubTypeEnhancement:
		return true
	}
	return false
}

// Scenario is an illustrative transaction narrative with a derived analysis.
// SelectedProduct is a non-enforced reference to Product.ID.
type Scenario struct {
	ID              string          `json:"id" validate:"required"`
	Reference       string          `json:"reference"`
	Title           string          `json:"title"`
	Status          ScenarioStatus  `json:"status"`
	Description     string          `json:"description"`
	ScenarioType    ScenarioType    `json:"scenarioType" validate:"scenario_type"`
	SubType         ScenarioSubType `json:"subType,omitempty" validate:"omitempty,scenario_subtype"`
	SelectedProduct string          `json:"selectedProduct,omitempty"`
	Result          string          `json:"result,omitempty"`
	Date            string          `json:"date,omitempty"`
	FAS             string          `json:"fas,omitempty"`
}

// RecordID returns the collection key of the scenario.
func (s Scenario) RecordID() string { return s.ID }

// Validate checks the stored shape of the scenario.
func (s Scenario) Validate() error { return validate.Struct(s) }

// SearchText returns the fields matched by free-text search.
func (s Scenario) SearchText() []string { return []string{s.Title, s.Reference} }

// ScenarioDraft is the input of result generation and scenario creation.
type ScenarioDraft struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	ScenarioType    ScenarioType    `json:"scenarioType"`
	SubType         ScenarioSubType `json:"subType"`
	SelectedProduct string          `json:"selectedProduct"`
	Result          string          `json:"result"`
}

// FilterStatus is the value matched by the status criterion.
func (s Scenario) FilterStatus() string { return string(s.Status) }

// FilterCategory is the value matched by the type criterion.
func (s Scenario) FilterCategory() string { return string(s.ScenarioType) }
