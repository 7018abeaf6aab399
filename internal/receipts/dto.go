package receipts

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/angelmondragon/tienda-backend/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// CreateReceiptRequest is the body of POST /boletas. comprador and productos may
// arrive as JSON values or as JSON-encoded strings.
type CreateReceiptRequest struct {
	Comprador types.EmbeddedJSON `json:"comprador" swaggertype:"object"`
	Productos types.EmbeddedJSON `json:"productos" swaggertype:"array,object"`
	Total     types.FlexDecimal  `json:"total" swaggertype:"number"`
	UsuarioID types.FlexInt      `json:"usuario_id" swaggertype:"integer"`
	Fecha     *string            `json:"fecha"`
}

// ReceiptDTO is the receipt payload returned to clients.
type ReceiptDTO struct {
	ID           int64             `json:"id"`
	NumeroCompra int64             `json:"numero_compra"`
	Fecha        time.Time         `json:"fecha"`
	Comprador    models.Buyer      `json:"comprador"`
	Productos    []models.LineItem `json:"productos" swaggertype:"array,object"`
	Total        decimal.Decimal   `json:"total" swaggertype:"number"`
	UsuarioID    *int64            `json:"usuario_id"`
	CreatedAt    time.Time         `json:"created_at"`
}

// DeleteResult reports how many receipts were removed.
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

// FromModel maps a persisted receipt to its transport shape.
func FromModel(r *models.Receipt) *ReceiptDTO {
	if r == nil {
		return nil
	}
	items := []models.LineItem(r.Productos)
	if items == nil {
		items = []models.LineItem{}
	}
	return &ReceiptDTO{
		ID:           r.ID,
		NumeroCompra: r.NumeroCompra,
		Fecha:        r.Fecha,
		Comprador:    r.Comprador.Data(),
		Productos:    items,
		Total:        r.Total,
		UsuarioID:    r.UsuarioID,
		CreatedAt:    r.CreatedAt,
	}
}

// FromModels converts a slice of receipts.
func FromModels(list []models.Receipt) []ReceiptDTO {
	out := make([]ReceiptDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

// toModel validates the request; numero_compra is assigned by the repository.
func (r CreateReceiptRequest) toModel(now time.Time) (*models.Receipt, error) {
	var items []models.LineItem
	if r.Productos.IsZero() {
		return nil, validation("productos", "productos must be a non-empty array")
	}
	if err := r.Productos.Decode(&items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "productos must be a JSON array").
			WithDetails(map[string]any{"productos": err.Error()})
	}
	if len(items) == 0 {
		return nil, validation("productos", "productos must be a non-empty array")
	}
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, validation("productos", fmt.Sprintf("productos[%d] must be a JSON object", i))
		}
		items[i] = item
	}

	var buyer models.Buyer
	if r.Comprador.IsZero() {
		return nil, validation("comprador", "comprador is required")
	}
	if err := r.Comprador.Decode(&buyer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "comprador must be a JSON object").
			WithDetails(map[string]any{"comprador": err.Error()})
	}
	buyer.Nombre = strings.TrimSpace(buyer.Nombre)
	buyer.Email = strings.TrimSpace(buyer.Email)
	buyer.Direccion = strings.TrimSpace(buyer.Direccion)
	if buyer.Nombre == "" || buyer.Email == "" {
		return nil, validation("comprador", "comprador requires nombre and email")
	}

	fecha := now
	if r.Fecha != nil && strings.TrimSpace(*r.Fecha) != "" {
		parsed, err := parseDate(*r.Fecha)
		if err != nil {
			return nil, validation("fecha", "fecha must be an ISO-8601 date")
		}
		fecha = parsed
	}

	var usuarioID *int64
	if r.UsuarioID.Value != nil {
		id := int64(*r.UsuarioID.Value)
		usuarioID = &id
	}

	return &models.Receipt{
		Fecha:     fecha.UTC(),
		Comprador: datatypes.NewJSONType(buyer),
		Productos: datatypes.JSONSlice[models.LineItem](items),
		Total:     r.Total.OrZero(),
		UsuarioID: usuarioID,
	}, nil
}

// CoerceKey turns numeric-looking lookup keys into integers and passes anything
// else through unchanged, leaving the store to accept or reject it.
func CoerceKey(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	return raw
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func validation(field, msg string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, msg).WithDetails(map[string]any{field: msg})
}
