package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Postgres keeps documents in a single key-value table, for setups where
// several machines share one arrangement. The connection is opened
// lazily on first use.
type Postgres struct {
	dsn  string
	conn *pgx.Conn
}

func NewPostgres(dsn string) (*Postgres, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres storage requires a connection string")
	}
	return &Postgres{dsn: dsn}, nil
}

func (p *Postgres) connect(ctx context.Context) (*pgx.Conn, error) {
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}

	conn, err := pgx.Connect(ctx, p.dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	_, err = conn.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS studio_documents (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("preparing documents table: %w", err)
	}

	p.conn = conn
	return conn, nil
}

func (p *Postgres) Get(key string) (string, bool, error) {
	ctx := context.Background()
	conn, err := p.connect(ctx)
	if err != nil {
		return "", false, err
	}

	var value string
	err = conn.QueryRow(ctx,
		`SELECT value FROM studio_documents WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (p *Postgres) Set(key, value string) error {
	ctx := context.Background()
	conn, err := p.connect(ctx)
	if err != nil {
		return err
	}

	_, err = conn.Exec(ctx,
		`INSERT INTO studio_documents (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	return err
}

func (p *Postgres) Close() error {
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close(context.Background())
	p.conn = nil
	return err
}
