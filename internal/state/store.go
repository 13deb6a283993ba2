// Package state persists loaded nuclide tables in a SQL database.
//
// SQLite (modernc.org/sqlite) is the default; PostgreSQL is reached through
// pgx. Records are stored as attribute maps and rebuilt through the
// attribute-map dialect on load, so a stored record passes the same
// validation as one read from an XML table.
package state

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/dialects/attrmap"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrTableNotFound is returned when a named table was never saved.
var ErrTableNotFound = errors.New("table not found")

// Config selects the database.
type Config struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

// DefaultDSN is the SQLite database used when none is configured.
const DefaultDSN = ".nuctab/state.db"

// TableInfo describes a saved table.
type TableInfo struct {
	Name      string
	Dialect   string
	Source    string
	CreatedAt time.Time
	Count     int
}

// Store is a state database.
type Store struct {
	db     *sql.DB
	driver Driver
	logger *slog.Logger
}

// Open connects to the configured database and applies pending migrations.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Driver == "" {
		cfg.Driver = "sqlite"
	}
	driver, err := LookupDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN
	memory := false
	if driver.Name == "sqlite" {
		if dsn == "" {
			dsn = DefaultDSN
		}
		memory = dsn == ":memory:"
		if !memory {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil {
				return nil, fmt.Errorf("failed to create state directory: %w", err)
			}
		}
		dsn = sqliteDSN(dsn)
	}
	if dsn == "" {
		return nil, fmt.Errorf("state.dsn is required for driver %q", cfg.Driver)
	}

	db, err := sql.Open(driver.Name, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}
	if memory {
		// Every connection to :memory: is a new database.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	s := NewWithDB(db, driver, logger)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debug("opened state store", "driver", cfg.Driver)
	return s, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

// NewWithDB wraps an open database without migrating it.
func NewWithDB(db *sql.DB, driver Driver, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{db: db, driver: driver, logger: logger}
}

// Migrate runs all pending database migrations.
func (s *Store) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(s.driver.Goose); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveTable stores nuclides under name in load order, replacing any table
// of that name. Nothing is changed if any write fails.
func (s *Store) SaveTable(ctx context.Context, info TableInfo, nuclides []*nuclide.Nuclide) (err error) {
	if info.Name == "" {
		return errors.New("table name is required")
	}
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, s.driver.Rebind(`DELETE FROM nuclides WHERE table_name = ?`), info.Name); err != nil {
		return fmt.Errorf("failed to clear table %s: %w", info.Name, err)
	}
	if _, err = tx.ExecContext(ctx, s.driver.Rebind(`DELETE FROM nuclide_tables WHERE name = ?`), info.Name); err != nil {
		return fmt.Errorf("failed to clear table %s: %w", info.Name, err)
	}
	if _, err = tx.ExecContext(ctx,
		s.driver.Rebind(`INSERT INTO nuclide_tables (name, dialect, source, created_at) VALUES (?, ?, ?, ?)`),
		info.Name, info.Dialect, info.Source, info.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create table %s: %w", info.Name, err)
	}

	insert := s.driver.Rebind(`INSERT INTO nuclides (table_name, seq, z, a, n, half_life_seconds, data) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	for i, n := range nuclides {
		data, mErr := json.Marshal(encodeRecord(n))
		if mErr != nil {
			err = fmt.Errorf("failed to encode %s: %w", n, mErr)
			return err
		}
		if _, err = tx.ExecContext(ctx, insert,
			info.Name, i, n.Z(), n.A(), n.N(), halfLifeColumn(n), string(data),
		); err != nil {
			return fmt.Errorf("failed to save %s: %w", n, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit table %s: %w", info.Name, err)
	}
	s.logger.Debug("saved table", "name", info.Name, "nuclides", len(nuclides))
	return nil
}

// LoadTable returns the nuclides of a saved table in their saved order.
func (s *Store) LoadTable(ctx context.Context, name string) ([]*nuclide.Nuclide, error) {
	if _, err := s.GetTable(ctx, name); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		s.driver.Rebind(`SELECT seq, data FROM nuclides WHERE table_name = ? ORDER BY seq`), name)
	if err != nil {
		return nil, fmt.Errorf("failed to load table %s: %w", name, err)
	}
	defer rows.Close()

	var out []*nuclide.Nuclide
	for rows.Next() {
		var seq int
		var data string
		if err := rows.Scan(&seq, &data); err != nil {
			return nil, fmt.Errorf("failed to scan nuclide: %w", err)
		}
		n, err := decodeRecord(name, seq, data)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// GetNuclide returns one nuclide of a saved table by neutron and proton
// number, or nil if the table has no such nuclide.
func (s *Store) GetNuclide(ctx context.Context, table string, n, z int) (*nuclide.Nuclide, error) {
	var seq int
	var data string
	err := s.db.QueryRowContext(ctx,
		s.driver.Rebind(`SELECT seq, data FROM nuclides WHERE table_name = ? AND n = ? AND z = ?`),
		table, n, z,
	).Scan(&seq, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nuclide: %w", err)
	}
	return decodeRecord(table, seq, data)
}

// GetTable returns the description of a saved table.
func (s *Store) GetTable(ctx context.Context, name string) (*TableInfo, error) {
	info := &TableInfo{}
	err := s.db.QueryRowContext(ctx, s.driver.Rebind(`
		SELECT t.name, t.dialect, t.source, t.created_at,
		       (SELECT COUNT(*) FROM nuclides n WHERE n.table_name = t.name)
		FROM nuclide_tables t WHERE t.name = ?`), name,
	).Scan(&info.Name, &info.Dialect, &info.Source, &info.CreatedAt, &info.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, ErrTableNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s: %w", name, err)
	}
	return info, nil
}

// ListTables returns every saved table ordered by name.
func (s *Store) ListTables(ctx context.Context) ([]TableInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.name, t.dialect, t.source, t.created_at,
		       (SELECT COUNT(*) FROM nuclides n WHERE n.table_name = t.name)
		FROM nuclide_tables t ORDER BY t.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var out []TableInfo
	for rows.Next() {
		var info TableInfo
		if err := rows.Scan(&info.Name, &info.Dialect, &info.Source, &info.CreatedAt, &info.Count); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

func halfLifeColumn(n *nuclide.Nuclide) sql.NullFloat64 {
	s := n.HalfLifeSeconds()
	if s.Kind != nuclide.SecondsMeasured {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: s.Value, Valid: true}
}

// record is the stored form of a nuclide.
type record struct {
	Z       string                        `json:"z"`
	A       string                        `json:"a"`
	Attrs   map[string]dialect.Attributes `json:"attrs"`
	Decays  []dialect.Attributes          `json:"decays"`
	Comment string                        `json:"comment,omitempty"`
	Isomers []record                      `json:"isomers,omitempty"`
}

func encodeRecord(n *nuclide.Nuclide) record {
	return toRecord(attrmap.Entry(n))
}

func toRecord(e dialect.Entry) record {
	r := record{Z: e.Z, A: e.A, Attrs: e.Attrs, Decays: e.Decays, Comment: e.Comment}
	for _, ie := range e.Isomers {
		r.Isomers = append(r.Isomers, toRecord(ie))
	}
	return r
}

func (r record) entry(pos dialect.Position) dialect.Entry {
	e := dialect.Entry{Pos: pos, Z: r.Z, A: r.A, Attrs: r.Attrs, Decays: r.Decays, Comment: r.Comment}
	for _, ir := range r.Isomers {
		e.Isomers = append(e.Isomers, ir.entry(pos))
	}
	return e
}

func decodeRecord(table string, seq int, data string) (*nuclide.Nuclide, error) {
	var r record
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, fmt.Errorf("table %s row %d: failed to decode: %w", table, seq, err)
	}
	return attrmap.Dialect{}.Build(r.entry(dialect.Position{Source: table, Line: seq + 1}))
}
