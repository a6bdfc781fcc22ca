package queries

import (
	"context"

	"pos-api/internal/infra"
	"pos-api/internal/pkg/errs"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrTaxNotFound     = errs.New("tax rate not found")
)

type ProductView struct {
	ProductID int64
	Code      string
	Name      string
	Price     int64
}

type TaxView struct {
	TaxID   int64
	TaxRate float64
}

type ProductReadStore interface {
	FindByCode(ctx context.Context, code string) (*ProductView, error)
}

type TaxReadStore interface {
	FindByID(ctx context.Context, taxID int64) (*TaxView, error)
}

type CatalogQueries interface {
	ProductByCode(ctx context.Context, code string) (*ProductView, error)
	TaxByID(ctx context.Context, taxID int64) (*TaxView, error)
}

type catalogQueriesImpl struct {
	products ProductReadStore
	taxes    TaxReadStore
}

func NewCatalogQueries(products ProductReadStore, taxes TaxReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		products: products,
		taxes:    taxes,
	}
}

func (q *catalogQueriesImpl) ProductByCode(ctx context.Context, code string) (*ProductView, error) {
	product, err := q.products.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (q *catalogQueriesImpl) TaxByID(ctx context.Context, taxID int64) (*TaxView, error) {
	tax, err := q.taxes.FindByID(ctx, taxID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTaxNotFound)
		}
		return nil, err
	}
	return tax, nil
}
