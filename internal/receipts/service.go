package receipts

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/tienda-backend/pkg/db"
	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
	"gorm.io/gorm"
)

const (
	receiptNotFoundMessage = "boleta no encontrada"
	receiptConflictMessage = "número de compra duplicado"
)

// Service exposes receipt operations shared by the receipts and receipt-detail services.
type Service interface {
	Create(ctx context.Context, req CreateReceiptRequest) (*ReceiptDTO, error)
	List(ctx context.Context) ([]ReceiptDTO, error)
	GetByPurchaseNumber(ctx context.Context, numero string) (*ReceiptDTO, error)
	ListByUser(ctx context.Context, userID string) ([]ReceiptDTO, error)
	DeleteByUser(ctx context.Context, userID string) (*DeleteResult, error)
}

type receiptRepository interface {
	NextPurchaseNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, receipt *models.Receipt) (*models.Receipt, error)
	List(ctx context.Context) ([]models.Receipt, error)
	FindByPurchaseNumber(ctx context.Context, numero any) (*models.Receipt, error)
	ListByUser(ctx context.Context, userID any) ([]models.Receipt, error)
	DeleteByUser(ctx context.Context, userID any) (int64, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ServiceParams bundles the dependencies of the receipts service.
type ServiceParams struct {
	Repo     *Repository
	TxRunner txRunner
	Logger   *logger.Logger
	Now      func() time.Time
}

type service struct {
	repo   receiptRepository
	withTx func(ctx context.Context, fn func(repo receiptRepository) error) error
	logg   *logger.Logger
	now    func() time.Time
}

// NewService constructs a receipts service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("receipt repository required")
	}
	if params.TxRunner == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	base := params.Repo
	runner := params.TxRunner
	return &service{
		repo: base,
		withTx: func(ctx context.Context, fn func(repo receiptRepository) error) error {
			return runner.WithTx(ctx, func(tx *gorm.DB) error {
				return fn(base.WithTx(tx))
			})
		},
		logg: logg,
		now:  now,
	}, nil
}

// Create allocates the purchase number and inserts the receipt in one transaction.
func (s *service) Create(ctx context.Context, req CreateReceiptRequest) (*ReceiptDTO, error) {
	receipt, err := req.toModel(s.now())
	if err != nil {
		return nil, err
	}

	var created *models.Receipt
	err = s.withTx(ctx, func(repo receiptRepository) error {
		numero, err := repo.NextPurchaseNumber(ctx)
		if err != nil {
			return err
		}
		receipt.NumeroCompra = numero
		created, err = repo.Create(ctx, receipt)
		return err
	})
	if err != nil {
		return nil, translate(err, "create receipt")
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"numero_compra": created.NumeroCompra,
		"items":         len(created.Productos),
	}), "receipt created")
	return FromModel(created), nil
}

func (s *service) List(ctx context.Context) ([]ReceiptDTO, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "list receipts")
	}
	return FromModels(list), nil
}

func (s *service) GetByPurchaseNumber(ctx context.Context, numero string) (*ReceiptDTO, error) {
	receipt, err := s.repo.FindByPurchaseNumber(ctx, CoerceKey(numero))
	if err != nil {
		return nil, translate(err, "get receipt")
	}
	return FromModel(receipt), nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]ReceiptDTO, error) {
	list, err := s.repo.ListByUser(ctx, CoerceKey(userID))
	if err != nil {
		return nil, translate(err, "list user receipts")
	}
	return FromModels(list), nil
}

// DeleteByUser removes all receipts of a user; zero matches is still a success.
func (s *service) DeleteByUser(ctx context.Context, userID string) (*DeleteResult, error) {
	deleted, err := s.repo.DeleteByUser(ctx, CoerceKey(userID))
	if err != nil {
		return nil, translate(err, "delete user receipts")
	}
	if deleted > 0 {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{"usuario_id": userID, "deleted": deleted}), "user receipts deleted")
	}
	return &DeleteResult{Deleted: deleted}, nil
}

func translate(err error, op string) error {
	return db.Translate(err, receiptNotFoundMessage, receiptConflictMessage, op)
}
