package readstore

import (
	"context"
	"errors"
	"log/slog"

	"pos-api/internal/infra"
	"pos-api/internal/infra/db"
	"pos-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type TaxReadStore struct {
	db db.DBTX
}

func NewTaxReadStore(dbtx db.DBTX) *TaxReadStore {
	return &TaxReadStore{db: dbtx}
}

func (r *TaxReadStore) FindByID(ctx context.Context, taxID int64) (*queries.TaxView, error) {
	const query = `
		SELECT tax_id, tax_rate
		FROM tax
		WHERE tax_id = $1`

	var view queries.TaxView
	err := r.db.QueryRow(ctx, query, taxID).Scan(&view.TaxID, &view.TaxRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "tax rate not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find tax rate by ID", err)
	}

	return &view, nil
}
