package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Buyer is the purchaser snapshot stored with a receipt.
type Buyer struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Direccion string `json:"direccion,omitempty"`
}

// LineItem is one purchased product stored exactly as the client sent it,
// usually id, nombre, precio and cantidad. Extra keys are kept.
type LineItem = json.RawMessage

// Receipt ("boleta") is an immutable purchase record.
type Receipt struct {
	ID           int64                         `gorm:"column:id;primaryKey;autoIncrement"`
	NumeroCompra int64                         `gorm:"column:numero_compra;not null;uniqueIndex:boletas_numero_compra_key"`
	Fecha        time.Time                     `gorm:"column:fecha;not null"`
	Comprador    datatypes.JSONType[Buyer]     `gorm:"column:comprador;not null"`
	Productos    datatypes.JSONSlice[LineItem] `gorm:"column:productos;not null"`
	Total        decimal.Decimal               `gorm:"column:total;type:numeric(12,2);not null;default:0"`
	UsuarioID    *int64                        `gorm:"column:usuario_id;index"`
	CreatedAt    time.Time                     `gorm:"column:created_at;autoCreateTime"`
}

func (Receipt) TableName() string { return "boletas" }
