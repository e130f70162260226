package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Queries bundles one method per SQL statement over the shared pool.
type Queries struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}
