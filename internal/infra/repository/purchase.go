package repository

import (
	"context"
	"log/slog"

	"pos-api/internal/infra"
	"pos-api/internal/infra/db"
	"pos-api/internal/usecase/commands"
)

type PurchaseRepository struct{}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

func (r *PurchaseRepository) CreateTransaction(ctx context.Context, tx db.DBTX, header commands.TransactionHeader) (int64, error) {
	const query = `
		INSERT INTO transaction (datetime, emp_cd, store_cd, pos_no, total_amt, ttl_amt_ex_tax)
		VALUES ($1, $2, $3, $4, 0, 0)
		RETURNING trd_id`

	var transactionID int64
	err := tx.QueryRow(ctx, query,
		header.Datetime, header.EmployeeCD, header.StoreCD, header.POSNo,
	).Scan(&transactionID)
	if err != nil {
		return 0, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to create transaction", err)
	}

	return transactionID, nil
}

func (r *PurchaseRepository) CreateDetail(ctx context.Context, tx db.DBTX, row commands.DetailRow) error {
	const query = `
		INSERT INTO details (trd_id, dtl_id, prd_id, prd_code, prd_name, prd_price, tax_cd)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		row.TransactionID, row.DetailID, row.ProductID,
		row.ProductCode, row.ProductName, row.ProductPrice, row.TaxCD,
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to create transaction detail", err)
	}

	return nil
}

func (r *PurchaseRepository) UpdateTransactionAmounts(ctx context.Context, tx db.DBTX, transactionID, total, subtotal int64) error {
	const query = `
		UPDATE transaction
		SET total_amt = $2, ttl_amt_ex_tax = $3
		WHERE trd_id = $1`

	tag, err := tx.Exec(ctx, query, transactionID, total, subtotal)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update transaction amounts", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "transaction not found for amount update", nil)
	}

	return nil
}
