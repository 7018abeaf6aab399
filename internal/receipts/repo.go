package receipts

import (
	"context"
	"fmt"

	"github.com/angelmondragon/tienda-backend/internal/repo"
	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	"gorm.io/gorm"
)

// nextValueSQL bumps a named counter, creating it on first use. Portable across
// Postgres and SQLite (3.35+).
const nextValueSQL = `
INSERT INTO secuencias (nombre, valor) VALUES (?, 1)
ON CONFLICT (nombre) DO UPDATE SET valor = secuencias.valor + 1
RETURNING valor`

// Repository persists receipts.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: r.Base.WithTx(tx)}
}

// NextPurchaseNumber allocates the next numero_compra.
func (r *Repository) NextPurchaseNumber(ctx context.Context) (int64, error) {
	var next int64
	res := r.DB(ctx).Raw(nextValueSQL, models.PurchaseNumberSequence).Scan(&next)
	if res.Error != nil {
		return 0, res.Error
	}
	if next <= 0 {
		return 0, fmt.Errorf("sequence %s returned %d", models.PurchaseNumberSequence, next)
	}
	return next, nil
}

// Create inserts a receipt.
func (r *Repository) Create(ctx context.Context, receipt *models.Receipt) (*models.Receipt, error) {
	if err := r.DB(ctx).Create(receipt).Error; err != nil {
		return nil, err
	}
	return receipt, nil
}

// List returns every receipt, most recent purchase number first.
func (r *Repository) List(ctx context.Context) ([]models.Receipt, error) {
	var list []models.Receipt
	if err := r.DB(ctx).Order("numero_compra DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByPurchaseNumber loads the receipt with the given numero_compra.
func (r *Repository) FindByPurchaseNumber(ctx context.Context, numero any) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := r.DB(ctx).Where("numero_compra = ?", numero).First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListByUser returns the receipts of a user, most recent first.
func (r *Repository) ListByUser(ctx context.Context, userID any) ([]models.Receipt, error) {
	var list []models.Receipt
	if err := r.DB(ctx).Where("usuario_id = ?", userID).Order("fecha DESC, numero_compra DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteByUser removes every receipt of a user.
func (r *Repository) DeleteByUser(ctx context.Context, userID any) (int64, error) {
	return repo.Affected(r.DB(ctx).Where("usuario_id = ?", userID).Delete(&models.Receipt{}))
}
