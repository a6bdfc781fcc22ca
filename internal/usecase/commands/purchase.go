package commands

import (
	"context"
	"time"

	"pos-api/internal/domain/purchase"
	"pos-api/internal/infra/db"
	"pos-api/internal/pkg/clock"
	"pos-api/internal/pkg/config"
	"pos-api/internal/pkg/errs"
	"pos-api/internal/usecase/shared"
)

var ErrPersistenceFailure = errs.New("persistence failure")

// TransactionHeader is the header row as handed to the repository. Amounts
// are written as zero on creation and set once at finalization.
type TransactionHeader struct {
	Datetime   time.Time
	EmployeeCD string
	StoreCD    string
	POSNo      string
}

// DetailRow is one persisted unit of purchased quantity. DetailID restarts at
// 1 for each cart item, so it repeats across items within a transaction; that
// is the recorded line numbering, not a mistake to normalize here.
type DetailRow struct {
	TransactionID int64
	DetailID      int
	ProductID     int64
	ProductCode   string
	ProductName   string
	ProductPrice  int64
	TaxCD         string
}

type PurchaseRepository interface {
	CreateTransaction(ctx context.Context, tx db.DBTX, header TransactionHeader) (int64, error)
	CreateDetail(ctx context.Context, tx db.DBTX, row DetailRow) error
	UpdateTransactionAmounts(ctx context.Context, tx db.DBTX, transactionID, total, subtotal int64) error
}

type PurchaseResult struct {
	TransactionID int64
	Total         int64
	SubtotalExTax int64
	Tax           int64
}

type PurchaseCommands interface {
	Execute(ctx context.Context, items []purchase.CartItem, employeeCD string) (*PurchaseResult, error)
}

type purchaseUseCaseImpl struct {
	repo  PurchaseRepository
	uow   shared.UnitOfWork
	clock clock.Clock
	pos   config.POSConfig
}

func NewPurchaseUseCase(repo PurchaseRepository, uow shared.UnitOfWork, clk clock.Clock, pos config.POSConfig) PurchaseCommands {
	return &purchaseUseCaseImpl{
		repo:  repo,
		uow:   uow,
		clock: clk,
		pos:   pos,
	}
}

// Execute records one purchase: header insert, per-unit detail inserts, then
// the header amount update, all inside a single transaction. A failure at any
// step rolls the whole unit back, so no partial detail set ever persists.
func (p *purchaseUseCaseImpl) Execute(ctx context.Context, items []purchase.CartItem, employeeCD string) (*PurchaseResult, error) {
	amounts, err := purchase.ComputeAmounts(items)
	if err != nil {
		return nil, err
	}

	if employeeCD == "" {
		employeeCD = purchase.DefaultEmployeeCode
	}

	var result *PurchaseResult
	err = p.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		header := TransactionHeader{
			Datetime:   p.clock.Now(),
			EmployeeCD: employeeCD,
			StoreCD:    p.pos.StoreCode,
			POSNo:      p.pos.TerminalNo,
		}

		transactionID, err := p.repo.CreateTransaction(ctx, tx, header)
		if err != nil {
			return errs.Mark(err, ErrPersistenceFailure)
		}

		if err := p.insertDetails(ctx, tx, transactionID, items); err != nil {
			return err
		}

		if err := p.repo.UpdateTransactionAmounts(ctx, tx, transactionID, amounts.Total, amounts.SubtotalExTax); err != nil {
			return errs.Mark(err, ErrPersistenceFailure)
		}

		result = &PurchaseResult{
			TransactionID: transactionID,
			Total:         amounts.Total,
			SubtotalExTax: amounts.SubtotalExTax,
			Tax:           amounts.Tax,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (p *purchaseUseCaseImpl) insertDetails(ctx context.Context, tx db.DBTX, transactionID int64, items []purchase.CartItem) error {
	for _, item := range items {
		for unit := 1; unit <= item.Quantity; unit++ {
			row := DetailRow{
				TransactionID: transactionID,
				DetailID:      unit,
				ProductID:     item.ProductID,
				ProductCode:   item.Code,
				ProductName:   item.Name,
				ProductPrice:  item.Price,
				TaxCD:         purchase.TaxCategoryStandard,
			}
			if err := p.repo.CreateDetail(ctx, tx, row); err != nil {
				return errs.Mark(err, ErrPersistenceFailure)
			}
		}
	}
	return nil
}
