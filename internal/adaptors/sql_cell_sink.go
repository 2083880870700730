package adaptors

import (
	"context"
	"database/sql"
	"time"

	"login_checker/internal/pkg/errors"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"
)

var sqlCellStatements = map[string]struct {
	create string
	upsert string
}{
	DriverSQLite: {
		create: `
			CREATE TABLE IF NOT EXISTS login_results (
				cell VARCHAR(64) PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
		upsert: `
			INSERT INTO login_results (cell, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(cell) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
	},
	DriverMySQL: {
		create: `
			CREATE TABLE IF NOT EXISTS login_results (
				cell VARCHAR(64) PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
		upsert: `
			INSERT INTO login_results (cell, value, updated_at) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)`,
	},
}

// SQLCellSink stores the latest outcome under a named cell in the
// login_results table.
type SQLCellSink struct {
	db     *sql.DB
	driver string
	cell   string
	upsert string
	log    *log.Logger
}

func NewSQLCellSink(ctx context.Context, driver, dsn, cell string, log *log.Logger) (*SQLCellSink, error) {
	stmts, ok := sqlCellStatements[driver]
	if !ok {
		return nil, errors.Errorf(`unsupported sql sink driver %q`, driver)
	}
	if cell == "" {
		return nil, errors.New(`sql sink cell is empty`)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, `failed to open result database`)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, `failed to connect to result database`)
	}

	if _, err := db.ExecContext(ctx, stmts.create); err != nil {
		db.Close()
		return nil, errors.Wrap(err, `failed to create login_results table`)
	}

	return &SQLCellSink{
		db:     db,
		driver: driver,
		cell:   cell,
		upsert: stmts.upsert,
		log:    log,
	}, nil
}

func (s *SQLCellSink) Write(ctx context.Context, value string) error {
	if _, err := s.db.ExecContext(ctx, s.upsert, s.cell, value, time.Now().UTC()); err != nil {
		return errors.Wrap(err, `failed to store outcome`)
	}
	s.log.WithFields(log.Fields{
		`sink`:   `sql`,
		`driver`: s.driver,
		`cell`:   s.cell,
	}).Debug(`outcome written`)
	return nil
}

func (s *SQLCellSink) Close() error {
	return s.db.Close()
}
