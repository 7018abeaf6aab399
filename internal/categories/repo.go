package categories

import (
	"context"

	"github.com/angelmondragon/tienda-backend/internal/repo"
	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists categories.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// List returns every category sorted by name.
func (r *Repository) List(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.DB(ctx).Order("nombre ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListNames returns only the names, sorted.
func (r *Repository) ListNames(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := r.DB(ctx).Model(&models.Category{}).Order("nombre ASC").Pluck("nombre", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// FindByID loads one category.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.DB(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create inserts a category.
func (r *Repository) Create(ctx context.Context, nombre string) (*models.Category, error) {
	category := &models.Category{Nombre: nombre}
	if err := r.DB(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// InsertIgnore inserts the names that do not exist yet and reports how many were added.
func (r *Repository) InsertIgnore(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	rows := make([]models.Category, 0, len(names))
	for _, name := range names {
		rows = append(rows, models.Category{Nombre: name})
	}
	return repo.Affected(r.DB(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "nombre"}}, DoNothing: true}).
		Create(&rows))
}

// Rename changes the name and reports how many rows matched.
func (r *Repository) Rename(ctx context.Context, id int64, nombre string) (int64, error) {
	return repo.Affected(r.DB(ctx).Model(&models.Category{}).Where("id = ?", id).Update("nombre", nombre))
}

// Delete removes a category and reports how many rows were deleted.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	return repo.Affected(r.DB(ctx).Where("id = ?", id).Delete(&models.Category{}))
}
