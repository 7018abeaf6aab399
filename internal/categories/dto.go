package categories

import (
	"time"

	"github.com/angelmondragon/tienda-backend/pkg/db/models"
)

// CategoryDTO is the category payload returned to clients.
type CategoryDTO struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryRequest is the body of create and rename requests.
type CategoryRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// DeleteResult reports the outcome of the delete saga.
type DeleteResult struct {
	Deleted         CategoryDTO `json:"deleted"`
	ProductsCleared int64       `json:"productos_actualizados"`
	CleanupError    *string     `json:"cleanup_error,omitempty"`
}

func fromModel(c *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID,
		Nombre:    c.Nombre,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromModels(list []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(list))
	for i := range list {
		out = append(out, fromModel(&list[i]))
	}
	return out
}
