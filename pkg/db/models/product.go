package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog listing. Categoria is free text and intentionally not a foreign key.
type Product struct {
	ID           int64               `gorm:"column:id;primaryKey;autoIncrement"`
	Codigo       *string             `gorm:"column:codigo"`
	Nombre       string              `gorm:"column:nombre;not null"`
	Descripcion  *string             `gorm:"column:descripcion"`
	Categoria    *string             `gorm:"column:categoria;index"`
	Precio       decimal.Decimal     `gorm:"column:precio;type:numeric(12,2);not null;default:0"`
	PrecioOferta decimal.NullDecimal `gorm:"column:precio_oferta;type:numeric(12,2)"`
	EnOferta     bool                `gorm:"column:en_oferta;not null;default:false"`
	Stock        int                 `gorm:"column:stock;not null;default:0"`
	StockCritico *int                `gorm:"column:stock_critico"`
	Imagen       *string             `gorm:"column:imagen"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "productos" }
