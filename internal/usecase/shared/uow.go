package shared

import (
	"context"

	"pos-api/internal/infra/db"
)

// UnitOfWork runs a function inside one database transaction. Everything the
// function writes through the supplied DBTX commits or rolls back together.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
