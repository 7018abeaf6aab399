package categories

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/tienda-backend/pkg/config"
	"github.com/angelmondragon/tienda-backend/pkg/db"
	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
)

const (
	categoryNotFoundMessage = "categoría no encontrada"
	categoryConflictMessage = "la categoría ya existe"

	sagaName           = "category_delete"
	stepClearProducts  = "clear_products"
	stepDeleteCategory = "delete_category"
)

// Service exposes category management operations.
type Service interface {
	List(ctx context.Context) ([]CategoryDTO, error)
	ListNames(ctx context.Context) ([]string, error)
	Create(ctx context.Context, nombre string) (*CategoryDTO, error)
	SeedDefaults(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id int64, nombre string) (*CategoryDTO, error)
	Delete(ctx context.Context, id int64) (*DeleteResult, error)
}

type categoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	ListNames(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, nombre string) (*models.Category, error)
	InsertIgnore(ctx context.Context, names []string) (int64, error)
	Rename(ctx context.Context, id int64, nombre string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// productCleaner detaches products from a category name.
type productCleaner interface {
	ClearCategory(ctx context.Context, categoria string) (int64, error)
}

type sagaMetrics interface {
	IncStepFailure(saga, step, policy string)
}

// ServiceParams bundles the dependencies of the categories service.
type ServiceParams struct {
	Repo     categoryRepository
	Products productCleaner
	Config   config.CategoriesConfig
	Metrics  sagaMetrics
	Logger   *logger.Logger
}

type service struct {
	repo     categoryRepository
	products productCleaner
	defaults []string
	policy   string
	metrics  sagaMetrics
	logg     *logger.Logger
}

// NewService constructs a categories service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product cleaner required")
	}
	policy := strings.ToLower(strings.TrimSpace(params.Config.CascadePolicy))
	switch policy {
	case "":
		policy = config.CascadePolicyProceed
	case config.CascadePolicyProceed, config.CascadePolicyAbort:
	default:
		return nil, fmt.Errorf("unknown cascade policy %q", params.Config.CascadePolicy)
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		repo:     params.Repo,
		products: params.Products,
		defaults: normalizeNames(params.Config.Defaults),
		policy:   policy,
		metrics:  params.Metrics,
		logg:     logg,
	}, nil
}

func (s *service) List(ctx context.Context) ([]CategoryDTO, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "list categories")
	}
	return fromModels(list), nil
}

func (s *service) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.ListNames(ctx)
	if err != nil {
		return nil, translate(err, "list category names")
	}
	return names, nil
}

func (s *service) Create(ctx context.Context, nombre string) (*CategoryDTO, error) {
	name, err := requireName(nombre)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, translate(err, "create category")
	}
	dto := fromModel(created)
	return &dto, nil
}

func (s *service) SeedDefaults(ctx context.Context) ([]string, error) {
	inserted, err := s.repo.InsertIgnore(ctx, s.defaults)
	if err != nil {
		return nil, translate(err, "seed categories")
	}
	if inserted > 0 {
		s.logg.Info(s.logg.WithField(ctx, "inserted", inserted), "default categories seeded")
	}
	return s.ListNames(ctx)
}

func (s *service) Update(ctx context.Context, id int64, nombre string) (*CategoryDTO, error) {
	name, err := requireName(nombre)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Rename(ctx, id, name)
	if err != nil {
		return nil, translate(err, "rename category")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, categoryNotFoundMessage)
	}
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get category")
	}
	dto := fromModel(updated)
	return &dto, nil
}

// Delete runs the saga: look up the name, detach products, delete the row.
// The products step is not atomic with the delete; its failure is handled by the policy.
func (s *service) Delete(ctx context.Context, id int64) (*DeleteResult, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get category")
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"category_id": category.ID, "category": category.Nombre})
	result := &DeleteResult{Deleted: fromModel(category)}

	cleared, err := s.products.ClearCategory(ctx, category.Nombre)
	if err != nil {
		s.recordFailure(stepClearProducts)
		if s.policy == config.CascadePolicyAbort {
			s.logg.Error(ctx, "category delete aborted: clearing products failed", err)
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "no se pudieron actualizar los productos de la categoría").
				WithDetails(map[string]any{"step": stepClearProducts, "policy": s.policy})
		}
		s.logg.WarnErr(ctx, "clearing products failed; deleting category anyway", err)
		msg := err.Error()
		result.CleanupError = &msg
	}
	result.ProductsCleared = cleared

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.recordFailure(stepDeleteCategory)
		return nil, translate(err, "delete category")
	}
	if deleted == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, categoryNotFoundMessage)
	}
	return result, nil
}

func (s *service) recordFailure(step string) {
	if s.metrics != nil {
		s.metrics.IncStepFailure(sagaName, step, s.policy)
	}
}

func requireName(nombre string) (string, error) {
	name := strings.TrimSpace(nombre)
	if name == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "nombre is required").
			WithDetails(map[string]any{"nombre": "required"})
	}
	return name, nil
}

func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func translate(err error, op string) error {
	return db.Translate(err, categoryNotFoundMessage, categoryConflictMessage, op)
}
