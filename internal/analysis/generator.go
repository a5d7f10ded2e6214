// Package analysis renders the textual result of a scenario draft. Output
// depends only on the draft and the product table; nothing is persisted.
package analysis

import (
	"fmt"
	"strings"

	"github.com/GTDGit/fas_dashboard/internal/models"
)

// Fallback text used when a selected product cannot be resolved, and the
// fixed texts of the full-scenario sub-types.
const (
	FallbackProductName = "selected product"
	FallbackProductType = "product type"
	NoTermsText         = "No terms specified"
	PendingText         = "Results will appear here based on scenario type"

	FASDetectionText = "**FAS Detection:** Parallel Salam  \n" +
		"**Accounting Entry:**  \n" +
		"- Liability (Deferred Revenue): $75,000  \n" +
		"- Revenue Recognized Upon Delivery  \n" +
		"**Suggested Enhancement:** Monitor hedging for price fluctuation risk."

	EnhancementText = "Suggested Enhancements:\n" +
		"1. Add detailed payment schedule\n" +
		"2. Include tax implications\n" +
		"3. Add disclosure requirements"
)

// ProductLookup resolves a product id against the current product table.
type ProductLookup func(id string) (models.Product, bool)

// LookupIn builds a ProductLookup over a loaded product slice.
func LookupIn(products []models.Product) ProductLookup {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(id string) (models.Product, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

// Generate derives the result text of a scenario draft.
//
// A product scenario with a selected product renders the product's terms,
// using placeholder text when the product no longer exists. Every other
// draft dispatches on its sub-type.
func Generate(draft models.ScenarioDraft, lookup ProductLookup) string {
	if draft.ScenarioType == models.ScenarioTypeProduct && draft.SelectedProduct != "" {
		var (
			product models.Product
			found   bool
		)
		if lookup != nil {
			product, found = lookup(draft.SelectedProduct)
		}
		return renderProduct(product, found)
	}

	switch draft.SubType {
	case models.SubTypeAccounting:
		return "Accounting Entry Details:\n" + draft.Description
	case models.SubTypeFAS:
		return FASDetectionText
	case models.SubTypeEnhancement:
		return EnhancementText
	default:
		return PendingText
	}
}

func renderProduct(p models.Product, found bool) string {
	name, typ := FallbackProductName, FallbackProductType
	if found {
		if p.Name != "" {
			name = p.Name
		}
		if p.Type != "" {
			typ = p.Type
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Product Scenario for %s (%s)\n\n", name, typ)
	b.WriteString("Product Terms:\n")
	if !found || len(p.Terms) == 0 {
		b.WriteString(NoTermsText)
		return b.String()
	}
	for i, term := range p.Terms {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s %s: %s", term.Value, term.Unit, term.Description)
	}
	return b.String()
}
