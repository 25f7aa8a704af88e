package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Pool is the part of a connection pool the engine needs. *sqlx.DB
// satisfies it.
type Pool interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
	Rebind(query string) string
}

// Engine runs whole-row CRUD statements built from column descriptions.
// It keeps no state between calls and is safe for concurrent use.
type Engine struct {
	db     Pool
	logger *slog.Logger
}

func NewEngine(db Pool, options ...EngineOption) *Engine {
	opt := &option{}
	for _, op := range options {
		op(opt)
	}

	if opt.logger == nil {
		opt.logger = slog.Default()
	}

	return &Engine{
		db:     db,
		logger: opt.logger.With("component", "store"),
	}
}

// Create inserts rec and returns the row as stored.
func (e *Engine) Create(ctx context.Context, table TableDef, rec Describer) (Row, error) {
	names, values := rec.Describe()
	if err := CheckDescription(names, values); err != nil {
		return nil, err
	}

	args, err := bindArgs(values)
	if err != nil {
		return nil, err
	}

	placeholders := Map(names, func(string) string { return "?" })
	qry := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table.FullTableName(), strings.Join(names, ", "), strings.Join(placeholders, ", "))
	qry = e.db.Rebind(qry)

	e.logger.DebugContext(ctx, "create", "table", table.FullTableName(), "columns", len(names))

	rows, err := e.query(ctx, "create", table, qry, args...)
	if err != nil {
		return nil, err
	}

	if len(rows) != 1 {
		return nil, fmt.Errorf("%w: insert into %s returned %d rows", ErrInvariantViolation, table.FullTableName(), len(rows))
	}

	return rows[0], nil
}

// GetOneByID returns the row whose key equals id.
func (e *Engine) GetOneByID(ctx context.Context, table TableDef, id uuid.UUID) (Row, error) {
	qry := fmt.Sprintf("SELECT * FROM %s WHERE %s = ?", table.FullTableName(), table.keyField())
	qry = e.db.Rebind(qry)

	e.logger.DebugContext(ctx, "get one", "table", table.FullTableName(), "id", id)

	args, err := bindArgs([]Value{Identifier(id)})
	if err != nil {
		return nil, err
	}

	rows, err := e.query(ctx, "get", table, qry, args...)
	if err != nil {
		return nil, err
	}

	switch len(rows) {
	case 0:
		return nil, &EntityNotFoundError{Table: table.FullTableName(), ID: id}
	case 1:
		return rows[0], nil
	default:
		return nil, fmt.Errorf("%w: %d rows in %s share id %s", ErrInvariantViolation, len(rows), table.FullTableName(), id)
	}
}

// GetAll returns every row of table in the order the database yields
// them. An empty table gives an empty, non-nil slice.
func (e *Engine) GetAll(ctx context.Context, table TableDef) ([]Row, error) {
	qry := fmt.Sprintf("SELECT * FROM %s", table.FullTableName())

	e.logger.DebugContext(ctx, "get all", "table", table.FullTableName())

	return e.query(ctx, "get all", table, qry)
}

// UpdateByID sets the described columns on the row whose key equals id.
func (e *Engine) UpdateByID(ctx context.Context, table TableDef, rec Describer, id uuid.UUID) error {
	names, values := rec.Describe()
	if err := CheckDescription(names, values); err != nil {
		return err
	}

	if SliceContains(names, table.keyField()) {
		return fmt.Errorf("%w: key column %q cannot be updated", ErrInvalidDescription, table.keyField())
	}

	args, err := bindArgs(append(values[:len(values):len(values)], Identifier(id)))
	if err != nil {
		return err
	}

	sets := Map(names, func(name string) string { return name + " = ?" })
	qry := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		table.FullTableName(), strings.Join(sets, ", "), table.keyField())
	qry = e.db.Rebind(qry)

	e.logger.DebugContext(ctx, "update", "table", table.FullTableName(), "id", id, "columns", len(names))

	return e.exec(ctx, "update", table, id, qry, args...)
}

// DeleteByID removes the row whose key equals id.
func (e *Engine) DeleteByID(ctx context.Context, table TableDef, id uuid.UUID) error {
	qry := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table.FullTableName(), table.keyField())
	qry = e.db.Rebind(qry)

	e.logger.DebugContext(ctx, "delete", "table", table.FullTableName(), "id", id)

	args, err := bindArgs([]Value{Identifier(id)})
	if err != nil {
		return err
	}

	return e.exec(ctx, "delete", table, id, qry, args...)
}

func (e *Engine) query(ctx context.Context, op string, table TableDef, qry string, args ...any) ([]Row, error) {
	rows, err := e.db.QueryxContext(ctx, qry, args...)
	if err != nil {
		return nil, wrapPostgresError(op, table, err)
	}
	defer rows.Close()

	result := make([]Row, 0)
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, wrapPostgresError(op, table, err)
		}
		result = append(result, Row(row))
	}

	if err := rows.Err(); err != nil {
		return nil, wrapPostgresError(op, table, err)
	}

	return result, nil
}

func (e *Engine) exec(ctx context.Context, op string, table TableDef, id uuid.UUID, qry string, args ...any) error {
	res, err := e.db.ExecContext(ctx, qry, args...)
	if err != nil {
		return wrapPostgresError(op, table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return wrapPostgresError(op, table, err)
	}

	if affected == 0 {
		return &EntityNotFoundError{Table: table.FullTableName(), ID: id}
	}

	return nil
}

func bindArgs(values []Value) ([]any, error) {
	args := make([]any, len(values))
	for i, v := range values {
		arg, err := v.arg()
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	return args, nil
}
