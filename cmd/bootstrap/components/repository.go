package components

import (
	"pos-api/internal/infra/db"
	"pos-api/internal/infra/readstore"
	"pos-api/internal/infra/repository"
	"pos-api/internal/infra/tokenstore"
	"pos-api/internal/infra/uow"
	"pos-api/internal/usecase/commands"
	"pos-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewTaxReadStore,
			fx.As(new(queries.TaxReadStore)),
		),
		fx.Annotate(
			repository.NewPurchaseRepository,
			fx.As(new(commands.PurchaseRepository)),
		),
		fx.Annotate(
			tokenstore.NewMemoryStore,
			fx.As(new(commands.TokenStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
