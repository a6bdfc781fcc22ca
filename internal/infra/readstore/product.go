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

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

// FindByCode returns the first product registered under the code.
func (r *ProductReadStore) FindByCode(ctx context.Context, code string) (*queries.ProductView, error) {
	const query = `
		SELECT prd_id, code, name, price
		FROM products
		WHERE code = $1
		ORDER BY prd_id
		LIMIT 1`

	var view queries.ProductView
	err := r.db.QueryRow(ctx, query, code).Scan(&view.ProductID, &view.Code, &view.Name, &view.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "product not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find product by code", err)
	}

	return &view, nil
}
