package products

import (
	"context"

	"github.com/angelmondragon/tienda-backend/internal/repo"
	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists catalog products.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// List returns every product ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var list []models.Product
	if err := r.DB(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListByCategory returns the products whose categoria matches exactly.
func (r *Repository) ListByCategory(ctx context.Context, categoria string) ([]models.Product, error) {
	var list []models.Product
	if err := r.DB(ctx).Where("categoria = ?", categoria).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID loads one product.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts a product.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.DB(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies the column changes and reports how many rows matched.
func (r *Repository) Update(ctx context.Context, id int64, changes map[string]any) (int64, error) {
	return repo.Affected(r.DB(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(changes))
}

// Delete removes a product and reports how many rows were deleted.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	return repo.Affected(r.DB(ctx).Where("id = ?", id).Delete(&models.Product{}))
}

// ClearCategory nulls categoria on every product in the named category.
func (r *Repository) ClearCategory(ctx context.Context, categoria string) (int64, error) {
	return repo.Affected(r.DB(ctx).Model(&models.Product{}).
		Where("categoria = ?", categoria).
		Update("categoria", nil))
}
