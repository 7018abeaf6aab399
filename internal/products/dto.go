package products

import (
	"net/url"
	"strings"
	"time"

	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/angelmondragon/tienda-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// ProductDTO is the product payload returned to clients.
type ProductDTO struct {
	ID           int64            `json:"id"`
	Codigo       *string          `json:"codigo"`
	Nombre       string           `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	Categoria    *string          `json:"categoria"`
	Precio       decimal.Decimal  `json:"precio" swaggertype:"number"`
	PrecioOferta *decimal.Decimal `json:"precio_oferta" swaggertype:"number"`
	EnOferta     bool             `json:"en_oferta"`
	Stock        int              `json:"stock"`
	StockCritico *int             `json:"stock_critico"`
	Imagen       *string          `json:"imagen"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// FromModel maps a persisted product to its transport shape.
func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	dto := &ProductDTO{
		ID:           p.ID,
		Codigo:       p.Codigo,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Categoria:    p.Categoria,
		Precio:       p.Precio,
		EnOferta:     p.EnOferta,
		Stock:        p.Stock,
		StockCritico: p.StockCritico,
		Imagen:       p.Imagen,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.PrecioOferta.Valid {
		offer := p.PrecioOferta.Decimal
		dto.PrecioOferta = &offer
	}
	return dto
}

// FromModels converts a slice of products.
func FromModels(list []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

// DeleteResult echoes the number of rows removed; zero is still a success.
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

// ProductInput is the body of create and update requests, from JSON or multipart.
// Only keys that were sent are applied on update.
type ProductInput struct {
	Codigo       *string           `json:"codigo"`
	Nombre       *string           `json:"nombre"`
	Descripcion  *string           `json:"descripcion"`
	Categoria    *string           `json:"categoria"`
	Precio       types.FlexDecimal `json:"precio" swaggertype:"number"`
	PrecioOferta types.FlexDecimal `json:"precio_oferta" swaggertype:"number"`
	EnOferta     types.FlexBool    `json:"en_oferta" swaggertype:"boolean"`
	Stock        types.FlexInt     `json:"stock" swaggertype:"integer"`
	StockCritico types.FlexInt     `json:"stock_critico" swaggertype:"integer"`
	Imagen       *string           `json:"imagen"`
}

// FormFieldImage is the multipart field carrying the uploaded file or an image URL.
const FormFieldImage = "imagen"

// ParseForm builds a ProductInput from multipart text fields.
func ParseForm(values url.Values) (ProductInput, error) {
	var in ProductInput
	text := func(key string) *string {
		if _, ok := values[key]; !ok {
			return nil
		}
		v := values.Get(key)
		return &v
	}

	in.Codigo = text("codigo")
	in.Nombre = text("nombre")
	in.Descripcion = text("descripcion")
	in.Categoria = text("categoria")
	in.Imagen = text(FormFieldImage)

	var err error
	if raw := text("precio"); raw != nil {
		if in.Precio, err = types.ParseFlexDecimal(*raw); err != nil {
			return in, fieldError("precio", err)
		}
	}
	if raw := text("precio_oferta"); raw != nil {
		if in.PrecioOferta, err = types.ParseFlexDecimal(*raw); err != nil {
			return in, fieldError("precio_oferta", err)
		}
	}
	if raw := text("stock"); raw != nil {
		if in.Stock, err = types.ParseFlexInt(*raw); err != nil {
			return in, fieldError("stock", err)
		}
	}
	if raw := text("stock_critico"); raw != nil {
		if in.StockCritico, err = types.ParseFlexInt(*raw); err != nil {
			return in, fieldError("stock_critico", err)
		}
	}
	if raw := text("en_oferta"); raw != nil {
		in.EnOferta = types.ParseFlexBool(*raw)
	}
	return in, nil
}

// toModel applies create defaults: precio and stock 0, precio_oferta and stock_critico NULL.
func (in ProductInput) toModel() (*models.Product, error) {
	nombre := optional(in.Nombre)
	if nombre == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nombre is required").
			WithDetails(map[string]any{"nombre": "required"})
	}
	return &models.Product{
		Codigo:       optional(in.Codigo),
		Nombre:       *nombre,
		Descripcion:  optional(in.Descripcion),
		Categoria:    optional(in.Categoria),
		Precio:       in.Precio.OrZero(),
		PrecioOferta: in.PrecioOferta.Value,
		EnOferta:     in.EnOferta.Value,
		Stock:        in.Stock.OrZero(),
		StockCritico: in.StockCritico.Value,
		Imagen:       optional(in.Imagen),
	}, nil
}

// changes lists the columns an update touches. Column names are fixed here,
// never taken from the request.
func (in ProductInput) changes() (map[string]any, error) {
	set := map[string]any{}
	if in.Codigo != nil {
		set["codigo"] = optional(in.Codigo)
	}
	if in.Nombre != nil {
		nombre := optional(in.Nombre)
		if nombre == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "nombre cannot be empty").
				WithDetails(map[string]any{"nombre": "required"})
		}
		set["nombre"] = *nombre
	}
	if in.Descripcion != nil {
		set["descripcion"] = optional(in.Descripcion)
	}
	if in.Categoria != nil {
		set["categoria"] = optional(in.Categoria)
	}
	if in.Precio.Set {
		set["precio"] = in.Precio.OrZero()
	}
	if in.PrecioOferta.Set {
		set["precio_oferta"] = in.PrecioOferta.Value
	}
	if in.EnOferta.Set {
		set["en_oferta"] = in.EnOferta.Value
	}
	if in.Stock.Set {
		set["stock"] = in.Stock.OrZero()
	}
	if in.StockCritico.Set {
		set["stock_critico"] = in.StockCritico.Value
	}
	if in.Imagen != nil {
		set["imagen"] = optional(in.Imagen)
	}
	return set, nil
}

func fieldError(field string, err error) error {
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, field+" must be numeric").
		WithDetails(map[string]any{field: err.Error()})
}

func optional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
