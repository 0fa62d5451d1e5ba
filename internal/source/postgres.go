package source

import (
	"context"
	"fmt"

	"scheduleView/internal/schedule"
)

// RowsQuerier runs a listing query and returns its rows as text, column
// names first.
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RowsQuerier
type RowsQuerier interface {
	ListingRows(ctx context.Context, query string) ([][]string, error)
}

// Postgres reads the listing table from a SQL query. The column names
// stand in for the header row.
type Postgres struct {
	db    RowsQuerier
	query string
}

func NewPostgres(db RowsQuerier, query string) *Postgres {
	return &Postgres{db: db, query: query}
}

func (p *Postgres) Fetch(ctx context.Context) (schedule.Table, error) {
	const op = "source.Postgres.Fetch"

	rows, err := p.db.ListingRows(ctx, p.query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &schedule.TextTable{Cells: rows}, nil
}
