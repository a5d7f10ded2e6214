package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/fas_dashboard/internal/listing"
	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/repository"
	"github.com/GTDGit/fas_dashboard/internal/sse"
	"github.com/GTDGit/fas_dashboard/internal/store"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// DefaultProductName is used when a product is created without a name.
const DefaultProductName = "New Product"

// ProductService provides product-related business logic.
type ProductService struct {
	productRepo  *repository.ProductRepository
	scenarioRepo *repository.ScenarioRepository
	notifier     sse.RecordNotifier
}

// NewProductService constructs a ProductService. A nil notifier disables events.
func NewProductService(productRepo *repository.ProductRepository, scenarioRepo *repository.ScenarioRepository, notifier sse.RecordNotifier) *ProductService {
	if notifier == nil {
		notifier = sse.NopNotifier{}
	}
	return &ProductService{productRepo: productRepo, scenarioRepo: scenarioRepo, notifier: notifier}
}

// ListResult is one page of a filtered collection.
type ListResult[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// CreateProductRequest is the payload of a new product.
type CreateProductRequest struct {
	Name  string        `json:"name"`
	Type  string        `json:"type"`
	Terms []models.Term `json:"terms"`
}

// ProductInUseError reports the scenarios that still select a product.
type ProductInUseError struct {
	ProductID   string
	ScenarioIDs []string
}

func (e *ProductInUseError) Error() string {
	return fmt.Sprintf("product %s is selected by scenarios %s", e.ProductID, strings.Join(e.ScenarioIDs, ", "))
}

func (e *ProductInUseError) Unwrap() error { return utils.ErrProductInUse }

// DeleteProductResult describes a completed delete. DanglingScenarios is
// set when a forced delete left scenarios pointing at the removed product.
type DeleteProductResult struct {
	Product           *models.Product `json:"product"`
	DanglingScenarios []string        `json:"danglingScenarios,omitempty"`
}

// Catalog is the fixed vocabulary of the product form.
type Catalog struct {
	ProductTypes    []string          `json:"productTypes"`
	TermUnits       []models.TermUnit `json:"termUnits"`
	DefaultTermUnit string            `json:"defaultTermUnit"`
	Statuses        []string          `json:"statuses"`
}

// List filters and pages the product collection.
func (s *ProductService) List(ctx context.Context, criteria listing.Criteria, page, pageSize int) (*ListResult[models.Product], error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return paged(listing.Filter(products, criteria), page, pageSize), nil
}

// Get returns a product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// Create validates req against the catalog and appends a new active product.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	if req.Type != "" && !models.IsProductType(req.Type) {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidProductType, req.Type)
	}

	terms := make([]models.Term, 0, len(req.Terms))
	for _, t := range req.Terms {
		if t.Unit == "" {
			t.Unit = models.DefaultTermUnit
		}
		if _, ok := models.LookupTermUnit(t.Unit); !ok {
			return nil, fmt.Errorf("%w: %q", utils.ErrInvalidTermUnit, t.Unit)
		}
		terms = append(terms, t)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = DefaultProductName
	}

	product, err := s.productRepo.Create(ctx, models.Product{
		Name:   name,
		Type:   req.Type,
		Terms:  terms,
		Status: models.ProductStatusActive,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("product_id", product.ID).Str("type", product.Type).Int("terms", len(product.Terms)).Msg("Product created")
	s.notifier.NotifyProductCreated(product)
	return product, nil
}

// Delete removes a product. Products selected by scenarios are kept unless
// force is set. The scenario collection stays locked from the reference
// check through the removal, so no scenario can select the product in
// between. Lock order is scenarios then products.
func (s *ProductService) Delete(ctx context.Context, id string, force bool) (*DeleteProductResult, error) {
	var (
		removed *models.Product
		ids     []string
	)
	err := s.scenarioRepo.WithLocked(ctx, func(scenarios []models.Scenario) error {
		if _, err := s.productRepo.GetByID(ctx, id); err != nil {
			return err
		}
		for _, sc := range scenarios {
			if sc.SelectedProduct == id {
				ids = append(ids, sc.ID)
			}
		}
		if len(ids) > 0 && !force {
			return &ProductInUseError{ProductID: id, ScenarioIDs: ids}
		}
		var err error
		removed, err = s.productRepo.Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &DeleteProductResult{Product: removed}
	if len(ids) > 0 {
		result.DanglingScenarios = ids
		log.Warn().Str("product_id", id).Strs("scenarios", ids).Msg("Product force-deleted while selected by scenarios")
	} else {
		log.Info().Str("product_id", id).Msg("Product deleted")
	}
	s.notifier.NotifyProductDeleted(removed)
	return result, nil
}

// Quarantined returns the product payloads rejected while loading. The
// collection is loaded first so a fresh corruption is reported.
func (s *ProductService) Quarantined(ctx context.Context) ([]store.QuarantineEntry, error) {
	if _, err := s.productRepo.GetAll(ctx); err != nil {
		return nil, err
	}
	entries, err := s.productRepo.Quarantined(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []store.QuarantineEntry{}
	}
	return entries, nil
}

// Catalog returns the product types, term units and statuses.
func (s *ProductService) Catalog() Catalog {
	return Catalog{
		ProductTypes:    append([]string{}, models.ProductTypes...),
		TermUnits:       append([]models.TermUnit{}, models.TermUnits...),
		DefaultTermUnit: models.DefaultTermUnit,
		Statuses: []string{
			string(models.ProductStatusActive),
			string(models.ProductStatusInactive),
			string(models.ProductStatusDraft),
		},
	}
}

func paged[T any](filtered []T, page, pageSize int) *ListResult[T] {
	if page < 0 {
		page = 0
	}
	return &ListResult[T]{
		Items:    listing.Paginate(filtered, page, pageSize),
		Total:    len(filtered),
		Page:     page,
		PageSize: pageSize,
	}
}
