package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/fas_dashboard/internal/analysis"
	"github.com/GTDGit/fas_dashboard/internal/listing"
	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/repository"
	"github.com/GTDGit/fas_dashboard/internal/sse"
	"github.com/GTDGit/fas_dashboard/internal/store"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// DefaultScenarioTitle is used when a scenario is created without a title.
const DefaultScenarioTitle = "New Scenario"

// ScenarioService provides scenario-related business logic.
type ScenarioService struct {
	scenarioRepo *repository.ScenarioRepository
	productRepo  *repository.ProductRepository
	notifier     sse.RecordNotifier
}

// NewScenarioService constructs a ScenarioService. A nil notifier disables events.
func NewScenarioService(scenarioRepo *repository.ScenarioRepository, productRepo *repository.ProductRepository, notifier sse.RecordNotifier) *ScenarioService {
	if notifier == nil {
		notifier = sse.NopNotifier{}
	}
	return &ScenarioService{
		scenarioRepo: scenarioRepo,
		productRepo:  productRepo,
		notifier:     notifier,
	}
}

// List filters and pages the scenario collection.
func (s *ScenarioService) List(ctx context.Context, criteria listing.Criteria, page, pageSize int) (*ListResult[models.Scenario], error) {
	scenarios, err := s.scenarioRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return paged(listing.Filter(scenarios, criteria), page, pageSize), nil
}

// Get returns a scenario by id.
func (s *ScenarioService) Get(ctx context.Context, id string) (*models.Scenario, error) {
	return s.scenarioRepo.GetByID(ctx, id)
}

// Quarantined returns the scenario payloads rejected while loading.
func (s *ScenarioService) Quarantined(ctx context.Context) ([]store.QuarantineEntry, error) {
	if _, err := s.scenarioRepo.GetAll(ctx); err != nil {
		return nil, err
	}
	entries, err := s.scenarioRepo.Quarantined(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []store.QuarantineEntry{}
	}
	return entries, nil
}

// Preview renders the result of draft as is, without defaults and without
// persisting anything. Unknown types are rejected; empty ones are not.
func (s *ScenarioService) Preview(ctx context.Context, draft models.ScenarioDraft) (string, error) {
	if draft.ScenarioType != "" && !draft.ScenarioType.IsValid() {
		return "", fmt.Errorf("%w: %q", utils.ErrInvalidScenarioType, draft.ScenarioType)
	}
	if draft.SubType != "" && !draft.SubType.IsValid() {
		return "", fmt.Errorf("%w: %q", utils.ErrInvalidSubType, draft.SubType)
	}
	return s.generate(ctx, draft)
}

// Create normalizes draft, derives its result when none was supplied and
// appends a new in-review scenario.
func (s *ScenarioService) Create(ctx context.Context, draft models.ScenarioDraft) (*models.Scenario, error) {
	draft, err := normalizeDraft(draft)
	if err != nil {
		return nil, err
	}

	result := draft.Result
	if strings.TrimSpace(result) == "" {
		if result, err = s.generate(ctx, draft); err != nil {
			return nil, err
		}
	}

	scenario, err := s.scenarioRepo.Create(ctx, models.Scenario{
		Title:           draft.Title,
		Status:          models.ScenarioStatusInReview,
		Description:     draft.Description,
		ScenarioType:    draft.ScenarioType,
		SubType:         draft.SubType,
		SelectedProduct: draft.SelectedProduct,
		Result:          result,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("scenario_id", scenario.ID).
		Str("scenario_type", string(scenario.ScenarioType)).
		Str("selected_product", scenario.SelectedProduct).
		Msg("Scenario created")
	s.notifier.NotifyScenarioCreated(scenario)
	return scenario, nil
}

// Delete removes a scenario by id.
func (s *ScenarioService) Delete(ctx context.Context, id string) (*models.Scenario, error) {
	removed, err := s.scenarioRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Info().Str("scenario_id", id).Msg("Scenario deleted")
	s.notifier.NotifyScenarioDeleted(removed)
	return removed, nil
}

// Report renders a scenario as a plain-text document.
func (s *ScenarioService) Report(ctx context.Context, id string) (string, error) {
	sc, err := s.scenarioRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", sc.Title)
	fmt.Fprintf(&b, "Reference: %s\n", sc.Reference)
	fmt.Fprintf(&b, "Status: %s\n", sc.Status)
	fmt.Fprintf(&b, "Type: %s", sc.ScenarioType)
	if sc.SubType != "" {
		fmt.Fprintf(&b, " / %s", sc.SubType)
	}
	b.WriteByte('\n')
	if sc.SelectedProduct != "" {
		fmt.Fprintf(&b, "Product: %s\n", sc.SelectedProduct)
	}
	if sc.Date != "" {
		fmt.Fprintf(&b, "Date: %s\n", sc.Date)
	}
	if sc.FAS != "" {
		fmt.Fprintf(&b, "FAS: %s\n", sc.FAS)
	}
	b.WriteString("\nDescription:\n")
	b.WriteString(sc.Description)
	b.WriteString("\n\nResult:\n")
	b.WriteString(sc.Result)
	b.WriteByte('\n')
	return b.String(), nil
}

func (s *ScenarioService) generate(ctx context.Context, draft models.ScenarioDraft) (string, error) {
	var lookup analysis.ProductLookup
	if draft.ScenarioType == models.ScenarioTypeProduct && draft.SelectedProduct != "" {
		products, err := s.productRepo.GetAll(ctx)
		if err != nil {
			return "", err
		}
		lookup = analysis.LookupIn(products)
	}
	return analysis.Generate(draft, lookup), nil
}

// normalizeDraft applies the creation defaults. Sub-types only apply to
// full scenarios and a selected product only to product scenarios.
func normalizeDraft(d models.ScenarioDraft) (models.ScenarioDraft, error) {
	if d.ScenarioType == "" {
		d.ScenarioType = models.ScenarioTypeFull
	}
	if !d.ScenarioType.IsValid() {
		return d, fmt.Errorf("%w: %q", utils.ErrInvalidScenarioType, d.ScenarioType)
	}

	switch d.ScenarioType {
	case models.ScenarioTypeFull:
		if d.SubType == "" {
			d.SubType = models.SubTypeAccounting
		}
		if !d.SubType.IsValid() {
			return d, fmt.Errorf("%w: %q", utils.ErrInvalidSubType, d.SubType)
		}
		d.SelectedProduct = ""
	case models.ScenarioTypeProduct:
		d.SubType = ""
	}

	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		d.Title = DefaultScenarioTitle
	}
	return d, nil
}
