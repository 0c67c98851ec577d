package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite

	"github.com/bnema/termfab/internal/geometry"
	"github.com/bnema/termfab/internal/logging"
)

// positionKey is the single opaque key the control's position lives under.
const positionKey = "control_position"

const schema = `
CREATE TABLE IF NOT EXISTS ui_state (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Open opens (creating if needed) the state database at dbPath and ensures
// the schema exists.
func Open(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("database path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// positionRecord is the JSON payload stored under positionKey. Pointer
// fields distinguish "missing" from zero so a partial payload reads as
// malformed rather than as coordinate 0.
type positionRecord struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type positionRepo struct {
	db *sql.DB
}

// NewPositionRepository creates a SQLite-backed position store.
func NewPositionRepository(db *sql.DB) PositionStore {
	return &positionRepo{db: db}
}

// Load reads the persisted position. A missing row, malformed JSON, or a
// payload without both numeric fields all report absence; only
// infrastructure failures surface as errors.
func (r *positionRepo) Load(ctx context.Context) (geometry.Point, bool, error) {
	log := logging.FromContext(ctx)

	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM ui_state WHERE key = ?`, positionKey,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return geometry.Point{}, false, nil
		}
		return geometry.Point{}, false, fmt.Errorf("load position: %w", err)
	}

	var rec positionRecord
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		log.Debug().Err(err).Str("payload", value).Msg("discarding malformed position record")
		return geometry.Point{}, false, nil
	}
	if rec.X == nil || rec.Y == nil {
		log.Debug().Str("payload", value).Msg("discarding incomplete position record")
		return geometry.Point{}, false, nil
	}

	return geometry.Point{X: *rec.X, Y: *rec.Y}, true, nil
}

// Save replaces the persisted record with p in a single upsert.
func (r *positionRepo) Save(ctx context.Context, p geometry.Point) error {
	log := logging.FromContext(ctx)
	log.Debug().Int("x", p.X).Int("y", p.Y).Msg("saving control position")

	payload, err := json.Marshal(positionRecord{X: &p.X, Y: &p.Y})
	if err != nil {
		return fmt.Errorf("marshal position: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO ui_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		positionKey, string(payload),
	)
	if err != nil {
		return fmt.Errorf("save position: %w", err)
	}
	return nil
}

// Clear removes the persisted record.
func (r *positionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM ui_state WHERE key = ?`, positionKey,
	); err != nil {
		return fmt.Errorf("clear position: %w", err)
	}
	return nil
}
