package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	data BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresStore keeps all collections as serialized blobs in a single-table
// PostgreSQL database. Credentials must not be embedded in the connection
// string; use environment variables, .pgpass, or the OS keyring.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

func (p *PostgresStore) Init() error {
	if err := p.open(); err != nil {
		return err
	}
	var exists bool
	err := p.db.QueryRow("SELECT EXISTS (SELECT 1 FROM collections LIMIT 1)").Scan(&exists)
	if err == nil && exists {
		return errors.New("storage already initialized in this database")
	}
	return nil
}

func (p *PostgresStore) open() error {
	if p.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", p.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	p.db = db
	return nil
}

func (p *PostgresStore) Load(collection string) ([]byte, error) {
	if err := p.open(); err != nil {
		return nil, err
	}
	var data []byte
	err := p.db.QueryRow("SELECT data FROM collections WHERE name = $1", collection).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load collection %s: %w", collection, err)
	}
	return data, nil
}

func (p *PostgresStore) Save(collection string, data []byte) error {
	if err := p.open(); err != nil {
		return err
	}
	_, err := p.db.Exec(`
		INSERT INTO collections (name, data, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		collection, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", collection, err)
	}
	return nil
}

func (p *PostgresStore) Close() error {
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}

func (p *PostgresStore) ConfigPath() string {
	return p.connStr
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password, either in URL userinfo or as a DSN key.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		if u, err := url.Parse(connStr); err == nil && u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
	}
	return strings.Contains(connStr, "password=")
}
