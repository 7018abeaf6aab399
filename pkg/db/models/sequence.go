package models

// Sequence is a named monotonically increasing counter.
type Sequence struct {
	Nombre string `gorm:"column:nombre;primaryKey"`
	Valor  int64  `gorm:"column:valor;not null;default:0"`
}

func (Sequence) TableName() string { return "secuencias" }

// PurchaseNumberSequence backs boletas.numero_compra for every service writing receipts.
const PurchaseNumberSequence = "numero_compra"

// All lists every persisted model, in dependency order, for schema bootstrap.
func All() []any {
	return []any{&User{}, &Category{}, &Product{}, &Receipt{}, &Sequence{}}
}
