package db

import (
	"context"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Querier
	SaveDataset(ctx context.Context, ds *rules.Dataset) (int64, error)
	LoadDataset(ctx context.Context) (*rules.Dataset, error)
	Shutdown()
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Shutdown closes the connection pool.
func (store *SQLStore) Shutdown() {
	store.connPool.Close()
}
