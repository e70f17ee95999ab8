package xpgx

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB — срез операций, одинаковый для пула и транзакции: squirrel-запрос на
// входе, сканирование в db-теговые структуры на выходе.
type DB interface {
	// Getx scans the first row into dest (pointer to struct). Returns
	// pgx.ErrNoRows when the query matches nothing.
	Getx(ctx context.Context, dest any, q squirrel.Sqlizer) error
	// Selectx scans all rows into dest (pointer to slice of struct pointers).
	Selectx(ctx context.Context, dest any, q squirrel.Sqlizer) error
	// Execx runs a statement returning no rows.
	Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error)
	// CopyRows bulk-inserts rows into table.
	CopyRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
}

// Pool — владеющее соединение с базой; одна единица работы на вызов.
type Pool interface {
	DB
	// WithinTx runs fn in a transaction: any error rolls everything back.
	WithinTx(ctx context.Context, fn func(ctx context.Context, db DB) error) error
	Ping(ctx context.Context) error
	Close()
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type db struct {
	q querier
}

type pool struct {
	db
	p *pgxpool.Pool
}

// NewPool dials dsn and wraps the pgx pool.
func NewPool(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	return &pool{db: db{q: p}, p: p}, nil
}

func (d db) Getx(ctx context.Context, dest any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	rows, err := d.q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	return scanOne(rows, dest)
}

func (d db) Selectx(ctx context.Context, dest any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	rows, err := d.q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	return scanAll(rows, dest)
}

func (d db) Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return d.q.Exec(ctx, sql, args...)
}

func (d db) CopyRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	return d.q.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
}

func (p *pool) WithinTx(ctx context.Context, fn func(ctx context.Context, db DB) error) error {
	tx, err := p.p.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(ctx, db{q: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (p *pool) Ping(ctx context.Context) error { return p.p.Ping(ctx) }

func (p *pool) Close() { p.p.Close() }
