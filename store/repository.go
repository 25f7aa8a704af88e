package store

import (
	"context"

	"github.com/google/uuid"
)

// Decoder rebuilds a typed record from a raw row.
type Decoder[T any] func(row Row) (T, error)

// Repository binds the engine to one table and one record type, so
// callers get typed records back instead of raw rows.
type Repository[T any] struct {
	engine *Engine
	table  TableDef
	decode Decoder[T]
}

func NewRepository[T any](engine *Engine, table TableDef, decode Decoder[T]) *Repository[T] {
	return &Repository[T]{
		engine: engine,
		table:  table,
		decode: decode,
	}
}

func (r *Repository[T]) Insert(ctx context.Context, value Describer) (T, error) {
	var zero T

	row, err := r.engine.Create(ctx, r.table, value)
	if err != nil {
		return zero, err
	}

	return r.decode(row)
}

func (r *Repository[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T

	row, err := r.engine.GetOneByID(ctx, r.table, id)
	if err != nil {
		return zero, err
	}

	return r.decode(row)
}

func (r *Repository[T]) Select(ctx context.Context) ([]T, error) {
	rows, err := r.engine.GetAll(ctx, r.table)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(rows))
	for _, row := range rows {
		rec, err := r.decode(row)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}

	return result, nil
}

func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, value Describer) error {
	return r.engine.UpdateByID(ctx, r.table, value, id)
}

func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.engine.DeleteByID(ctx, r.table, id)
}
