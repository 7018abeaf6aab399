package products

import (
	"context"
	"fmt"

	"github.com/angelmondragon/tienda-backend/internal/media"
	"github.com/angelmondragon/tienda-backend/pkg/db"
	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
)

const (
	productNotFoundMessage = "producto no encontrado"
	productConflictMessage = "producto duplicado"
)

// Service exposes catalog management operations.
type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
	ListByCategory(ctx context.Context, categoria string) ([]ProductDTO, error)
	Get(ctx context.Context, id int64) (*ProductDTO, error)
	Create(ctx context.Context, input ProductInput, image *media.Upload) (*ProductDTO, error)
	Update(ctx context.Context, id int64, input ProductInput, image *media.Upload) (*ProductDTO, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type productRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, categoria string) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, id int64, changes map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type imageStore interface {
	SaveImage(ctx context.Context, upload media.Upload) (*media.StoredFile, error)
	Remove(name string) error
}

// ServiceParams bundles the dependencies of the products service.
type ServiceParams struct {
	Repo   productRepository
	Images imageStore
	Logger *logger.Logger
}

type service struct {
	repo   productRepository
	images imageStore
	logg   *logger.Logger
}

// NewService constructs a products service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if params.Images == nil {
		return nil, fmt.Errorf("image store required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{repo: params.Repo, images: params.Images, logg: logg}, nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "list products")
	}
	return FromModels(list), nil
}

func (s *service) ListByCategory(ctx context.Context, categoria string) ([]ProductDTO, error) {
	list, err := s.repo.ListByCategory(ctx, categoria)
	if err != nil {
		return nil, translate(err, "list products by category")
	}
	return FromModels(list), nil
}

func (s *service) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get product")
	}
	return FromModel(product), nil
}

func (s *service) Create(ctx context.Context, input ProductInput, image *media.Upload) (*ProductDTO, error) {
	product, err := input.toModel()
	if err != nil {
		return nil, err
	}

	stored, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		product.Imagen = &stored.URL
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.discard(ctx, stored)
		return nil, translate(err, "create product")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id int64, input ProductInput, image *media.Upload) (*ProductDTO, error) {
	changes, err := input.changes()
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 && image == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	stored, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		changes["imagen"] = stored.URL
	}

	affected, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		s.discard(ctx, stored)
		return nil, translate(err, "update product")
	}
	if affected == 0 {
		s.discard(ctx, stored)
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, productNotFoundMessage)
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, translate(err, "delete product")
	}
	return deleted, nil
}

// storeImage persists an uploaded file; the upload always wins over an imagen URL.
func (s *service) storeImage(ctx context.Context, image *media.Upload) (*media.StoredFile, error) {
	if image == nil {
		return nil, nil
	}
	stored, err := s.images.SaveImage(ctx, *image)
	if err != nil {
		return nil, err
	}
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"file": stored.Name, "size": stored.Size}), "product image stored")
	return stored, nil
}

// discard removes an image stored for a write that did not happen.
func (s *service) discard(ctx context.Context, stored *media.StoredFile) {
	if stored == nil {
		return
	}
	if err := s.images.Remove(stored.Name); err != nil {
		s.logg.WarnErr(s.logg.WithField(ctx, "file", stored.Name), "remove orphan image", err)
	}
}

func translate(err error, op string) error {
	return db.Translate(err, productNotFoundMessage, productConflictMessage, op)
}
