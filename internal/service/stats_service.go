package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/repository"
)

// UnspecifiedBucket groups records with an empty distribution key.
const UnspecifiedBucket = "unspecified"

// Bucket is one entry of a distribution. Buckets keep first-appearance order.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// CurrencyTotal is the sum of term values expressed in one currency unit.
type CurrencyTotal struct {
	Unit  string `json:"unit"`
	Total string `json:"total"`
}

// DashboardStats summarizes both collections for the dashboard cards.
type DashboardStats struct {
	ProductCount     int             `json:"productCount"`
	ScenarioCount    int             `json:"scenarioCount"`
	AverageTerms     string          `json:"averageTerms"`
	DistinctUnits    int             `json:"distinctUnits"`
	ProductTypes     []Bucket        `json:"productTypes"`
	ProductStatuses  []Bucket        `json:"productStatuses"`
	ScenarioTypes    []Bucket        `json:"scenarioTypes"`
	ScenarioStatuses []Bucket        `json:"scenarioStatuses"`
	UnitUsage        []Bucket        `json:"unitUsage"`
	CurrencyTotals   []CurrencyTotal `json:"currencyTotals"`
}

// StatsService computes dashboard aggregates.
type StatsService struct {
	productRepo  *repository.ProductRepository
	scenarioRepo *repository.ScenarioRepository
}

// NewStatsService constructs a StatsService.
func NewStatsService(productRepo *repository.ProductRepository, scenarioRepo *repository.ScenarioRepository) *StatsService {
	return &StatsService{productRepo: productRepo, scenarioRepo: scenarioRepo}
}

// Dashboard loads both collections and aggregates them.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	scenarios, err := s.scenarioRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(products, scenarios), nil
}

// Aggregate computes the statistics of the given records.
func Aggregate(products []models.Product, scenarios []models.Scenario) *DashboardStats {
	var (
		productTypes    counter
		productStatuses counter
		units           counter
		totalTerms      int64
		totals          = map[string]decimal.Decimal{}
	)

	for _, p := range products {
		productTypes.add(p.Type)
		productStatuses.add(string(p.Status))
		for _, t := range p.Terms {
			totalTerms++
			units.add(t.Unit)
			if u, ok := models.LookupTermUnit(t.Unit); ok && u.Kind == models.UnitKindCurrency {
				if v, ok := parseAmount(t.Value); ok {
					totals[t.Unit] = totals[t.Unit].Add(v)
				}
			}
		}
	}

	var scenarioTypes, scenarioStatuses counter
	for _, sc := range scenarios {
		scenarioTypes.add(string(sc.ScenarioType))
		scenarioStatuses.add(string(sc.Status))
	}

	average := decimal.Zero
	if len(products) > 0 {
		average = decimal.NewFromInt(totalTerms).Div(decimal.NewFromInt(int64(len(products))))
	}

	currencyTotals := []CurrencyTotal{}
	for _, u := range models.TermUnits {
		if sum, ok := totals[u.Value]; ok {
			currencyTotals = append(currencyTotals, CurrencyTotal{Unit: u.Value, Total: sum.String()})
		}
	}

	return &DashboardStats{
		ProductCount:     len(products),
		ScenarioCount:    len(scenarios),
		AverageTerms:     average.Round(2).String(),
		DistinctUnits:    len(units.buckets),
		ProductTypes:     productTypes.result(),
		ProductStatuses:  productStatuses.result(),
		ScenarioTypes:    scenarioTypes.result(),
		ScenarioStatuses: scenarioStatuses.result(),
		UnitUsage:        units.result(),
		CurrencyTotals:   currencyTotals,
	}
}

// parseAmount accepts plain and thousands-separated numbers such as "50,000".
func parseAmount(value string) (decimal.Decimal, bool) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(value)
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

type counter struct {
	index   map[string]int
	buckets []Bucket
}

func (c *counter) add(key string) {
	if key == "" {
		key = UnspecifiedBucket
	}
	if c.index == nil {
		c.index = map[string]int{}
	}
	if i, ok := c.index[key]; ok {
		c.buckets[i].Count++
		return
	}
	c.index[key] = len(c.buckets)
	c.buckets = append(c.buckets, Bucket{Key: key, Count: 1})
}

func (c *counter) result() []Bucket {
	if c.buckets == nil {
		return []Bucket{}
	}
	return c.buckets
}
