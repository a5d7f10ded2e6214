package models

// ProductStatus enumerates the lifecycle states of a product.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	// ProductStatusDraft is carried by seed data; it is a first-class status.
	ProductStatusDraft ProductStatus = "draft"
)

// IsValid reports whether s is one of the declared product statuses.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDraft:
		return true
	}
	return false
}

// Term is a single parameter of a product, e.g. "12 mo: Financing period".
type Term struct {
	Value       string `json:"value"`
	Unit        string `json:"unit" validate:"term_unit"`
	Description string `json:"description"`
}

// Product is a reusable Islamic-finance contract template.
// Reference mirrors ID for records minted by this service.
type Product struct {
	ID        string        `json:"id" validate:"required"`
	Reference string        `json:"reference"`
	Name      string        `json:"name"`
	Type      string        `json:"type"`
	Terms     []Term        `json:"terms" validate:"dive"`
	Status    ProductStatus `json:"status" validate:"product_status"`
}

// RecordID returns the collection key of the product.
func (p Product) RecordID() string { return p.ID }

// Validate checks the stored shape of the product.
func (p Product) Validate() error { return validate.Struct(p) }

// SearchText returns the fields matched by free-text search.
func (p Product) SearchText() []string { return []string{p.Name, p.Reference} }

// FilterStatus is the value matched by the status criterion.
func (p Product) FilterStatus() string { return string(p.Status) }

// FilterCategory is the value matched by the type criterion.
func (p Product) FilterCategory() string { return p.Type }
