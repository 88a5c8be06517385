package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campus-showcase/showcase-api/internal/models"
)

// SQLCollection stores one record type in a PostgreSQL table with a BIGSERIAL id.
type SQLCollection[R models.Record[R]] struct {
	db    *sqlx.DB
	table string

	listQuery   string
	insertQuery string
	updateQuery string
	deleteQuery string
}

// NewSQLCollection builds a collection over table using the given non-identity columns.
func NewSQLCollection[R models.Record[R]](db *sqlx.DB, table string, columns []string) *SQLCollection[R] {
	named := make([]string, len(columns))
	assignments := make([]string, len(columns))
	for i, col := range columns {
		named[i] = ":" + col
		assignments[i] = fmt.Sprintf("%s = :%s", col, col)
	}
	cols := strings.Join(columns, ", ")

	return &SQLCollection[R]{
		db:          db,
		table:       table,
		listQuery:   fmt.Sprintf("SELECT id, %s FROM %s ORDER BY id ASC", cols, table),
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id", table, cols, strings.Join(named, ", ")),
		updateQuery: fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", table, strings.Join(assignments, ", ")),
		deleteQuery: fmt.Sprintf("DELETE FROM %s WHERE id = $1", table),
	}
}

func (c *SQLCollection[R]) Name() string { return c.table }

func (c *SQLCollection[R]) ListAll(ctx context.Context) ([]R, error) {
	var records []R
	if err := c.db.SelectContext(ctx, &records, c.listQuery); err != nil {
		return nil, persistenceError(c.table, "list", err)
	}
	return records, nil
}

func (c *SQLCollection[R]) Add(ctx context.Context, r R) (R, error) {
	var zero R
	rows, err := sqlx.NamedQueryContext(ctx, c.db, c.insertQuery, r)
	if err != nil {
		return zero, persistenceError(c.table, "add", err)
	}
	defer rows.Close() //nolint:errcheck

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, persistenceError(c.table, "add", err)
		}
		return zero, persistenceError(c.table, "add", fmt.Errorf("insert returned no id"))
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return zero, persistenceError(c.table, "add", err)
	}
	return r.WithRecordID(id), nil
}

func (c *SQLCollection[R]) Update(ctx context.Context, r R) (R, error) {
	var zero R
	if _, ok := r.RecordID(); !ok {
		return zero, ErrNotFound
	}
	res, err := c.db.NamedExecContext(ctx, c.updateQuery, r)
	if err != nil {
		return zero, persistenceError(c.table, "update", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return zero, persistenceError(c.table, "update", err)
	}
	if affected == 0 {
		return zero, ErrNotFound
	}
	return r, nil
}

func (c *SQLCollection[R]) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := c.db.ExecContext(ctx, c.deleteQuery, id); err != nil {
		return false, persistenceError(c.table, "delete", err)
	}
	return true, nil
}
