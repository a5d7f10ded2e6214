// Package seed holds the default records written to a collection the first
// time it is accessed.
package seed

import "github.com/GTDGit/fas_dashboard/internal/models"

// Products returns a fresh copy of the product seed set.
func Products() []models.Product {
	return []models.Product{
		{
			ID:        "PROD-001",
			Reference: "PROD-001",
			Name:      "Murabaha Finance",
			Type:      "Murabaha and Murabaha to the Purchase Orderer",
			Status:    models.ProductStatusActive,
			Terms: []models.Term{
				{Value: "12", Unit: "mo", Description: "Financing period"},
				{Value: "5.5", Unit: "%", Description: "Profit rate"},
			},
		},
		{
			ID:        "PROD-002",
			Reference: "PROD-002",
			Name:      "Ijarah Vehicle",
			Type:      "Ijarah and Ijarah Muntahia Bittamleek",
			Status:    models.ProductStatusActive,
			Terms: []models.Term{
				{Value: "36", Unit: "mo", Description: "Lease term"},
				{Value: "1000", Unit: "USD", Description: "Monthly payment"},
			},
		},
		{
			ID:        "PROD-003",
			Reference: "PROD-003",
			Name:      "Salam Cotton Prepayment",
			Type:      "Salam and Parallel Salam",
			Status:    models.ProductStatusDraft,
			Terms: []models.Term{
				{Value: "6", Unit: "mo", Description: "Delivery period"},
				{Value: "50000", Unit: "USD", Description: "Advance payment"},
				{Value: "100", Unit: "#", Description: "Quantity of cotton bales"},
			},
		},
		{
			ID:        "PROD-004",
			Reference: "PROD-004",
			Name:      "Istisna School Project",
			Type:      "Istisna'a and Parallel Istisna'a",
			Status:    models.ProductStatusActive,
			Terms: []models.Term{
				{Value: "12", Unit: "mo", Description: "Construction duration"},
				{Value: "150000", Unit: "USD", Description: "Total project cost"},
				{Value: "3", Unit: "#", Description: "Payment milestones"},
			},
		},
		{
			ID:        "PROD-005",
			Reference: "PROD-005",
			Name:      "Murabaha Short-Term Trade",
			Type:      "Murabaha and Other Deferred Payment Sales",
			Status:    models.ProductStatusActive,
			Terms: []models.Term{
				{Value: "4", Unit: "mo", Description: "Tenure"},
				{Value: "7", Unit: "%", Description: "Markup rate"},
				{Value: "20000", Unit: "USD", Description: "Principal amount"},
			},
		},
		{
			ID:        "PROD-006",
			Reference: "PROD-006",
			Name:      "Parallel Salam - Rice Export",
			Type:      "Salam and Parallel Salam",
			Status:    models.ProductStatusActive,
			Terms: []models.Term{
				{Value: "180", Unit: "d", Description: "Delivery time"},
				{Value: "70000", Unit: "USD", Description: "Upfront payment received"},
				{Value: "150", Unit: "#", Description: "Tons of rice to deliver"},
			},
		},
	}
}

// Scenarios returns a fresh copy of the scenario seed set.
func Scenarios() []models.Scenario {
	return []models.Scenario{
		{
			ID:           "REF-001",
			Reference:    "REF-001",
			Title:        "Ijarah MBT Contract with Super Generators",
			Status:       models.ScenarioStatusInReview,
			Description:  "On 1 January 2019, Alpha Islamic Bank entered into an Ijarah Muntahia Bittamleek (IMBT) agreement with Super Generators for the lease of a heavy-duty generator. The purchase cost was USD 450,000, with additional import tax and freight charges. The lease is for 2 years, with annual rent of USD 300,000 and a likely transfer of ownership at the end.",
			ScenarioType: models.ScenarioTypeFull,
			Result: "**FAS Detection:** Ijarah Muntahia Bittamleek  \n" +
				"**Accounting Entry:**  \n" +
				"- Right of Use Asset: USD 492,000  \n" +
				"- Lease Liability: USD 600,000  \n" +
				"- Depreciation: USD 246,000/year  \n" +
				"**Suggested Enhancement:** Include tax impact of ownership transfer.",
			Date: "2024-05-01",
			FAS:  "FAS Ijarah MBT",
		},
		{
			ID:           "REF-002",
			Reference:    "REF-002",
			Title:        "Murabaha Investment by ABC Company",
			Status:       models.ScenarioStatusCompleted,
			Description:  "ABC Company wants to invest $10,000 using /**product Murabaha Investment-Short Term*/. The investment is structured as a deferred payment sale with a markup of 8%.",
			ScenarioType: models.ScenarioTypeProduct,
			Result: "**FAS Detection:** Murabaha  \n" +
				"**Accounting Entry:**  \n" +
				"- Investment Asset (Murabaha Receivable): $10,800  \n" +
				"- Revenue Recognition over tenure  \n" +
				"**Suggested Enhancement:** Add risk disclosure and payment terms.",
			Date: "2024-04-18",
			FAS:  "FAS Murabaha",
		},
		{
			ID:           "REF-003",
			Reference:    "REF-003",
			Title:        "Salam Financing Scenario - Wheat Purchase",
			Status:       models.ScenarioStatusCompleted,
			Description:  "On March 1, 2024, DEF Bank entered into a Salam contract with a local farmer to purchase 100 tons of wheat, paying $50,000 upfront. Delivery is expected in 6 months.",
			ScenarioType: models.ScenarioTypeFull,
			Result: "**FAS Detection:** Salam  \n" +
				"**Accounting Entry:**  \n" +
				"- Salam Asset: $50,000  \n" +
				"- Upon Delivery: Inventory Recognition or Cost of Goods Sold  \n" +
				"**Suggested Enhancement:** Add delivery risk mitigation.",
			Date: "2024-03-01",
			FAS:  "FAS Salam",
		},
		{
			ID:           "REF-004",
			Reference:    "REF-004",
			Title:        "Istisna for Construction Project",
			Status:       models.ScenarioStatusCompleted,
			Description:  "GHI Bank agreed to finance the construction of a school under Istisna'a. Total cost agreed is $150,000. Payments are made in 3 milestones over 12 months.",
			ScenarioType: models.ScenarioTypeFull,
			Result: "**FAS Detection:** Istisna'a  \n" +
				"**Accounting Entry:**  \n" +
				"- Istisna Asset: As per project milestones  \n" +
				"- Revenue and Expense Recognition: Percentage of Completion  \n" +
				"**Suggested Enhancement:** Include penalty clause for delay.",
			Date: "2024-02-15",
			FAS:  "FAS Istisna’a",
		},
	}
}
