// Package indexdb keeps a small read-model index of generated worlds. It is
// never consulted during generation; it exists so tooling can list worlds,
// find the den without regenerating, and verify snapshots against recorded
// digests.
package indexdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"terracraft/internal/gen"
	"terracraft/internal/sim/world"
)

type WorldRow struct {
	Name         string
	Width        int
	Height       int
	Seed         uint32
	Digest       string
	Den          gen.DenInfo
	SnapshotPath string
	Census       map[string]int
	CreatedAt    string
}

type req struct {
	row  WorldRow
	done chan struct{} // nil for fire-and-forget writes
}

// SQLiteIndex serializes all writes through a single goroutine so callers
// never block on sqlite and the db needs only one connection.
type SQLiteIndex struct {
	db *sql.DB

	ch   chan req
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS worlds (
  name          TEXT PRIMARY KEY,
  width         INTEGER NOT NULL,
  height        INTEGER NOT NULL,
  seed          INTEGER NOT NULL,
  digest        TEXT NOT NULL,
  den_center_x  INTEGER NOT NULL,
  den_center_y  INTEGER NOT NULL,
  den_radius_x  INTEGER NOT NULL,
  den_radius_y  INTEGER NOT NULL,
  snapshot_path TEXT NOT NULL DEFAULT '',
  census_json   TEXT NOT NULL DEFAULT '{}',
  created_at    TEXT NOT NULL
)`); err != nil {
		_ = db.Close()
		return nil, err
	}

	idx := &SQLiteIndex{
		db: db,
		ch: make(chan req, 16),
	}
	idx.wg.Add(1)
	go idx.writer()
	return idx, nil
}

func (idx *SQLiteIndex) writer() {
	defer idx.wg.Done()
	for r := range idx.ch {
		if r.row.Name != "" {
			idx.apply(r.row)
		}
		if r.done != nil {
			close(r.done)
		}
	}
}

func (idx *SQLiteIndex) apply(row WorldRow) {
	census, _ := json.Marshal(row.Census)
	_, err := idx.db.Exec(`
INSERT INTO worlds (name, width, height, seed, digest,
  den_center_x, den_center_y, den_radius_x, den_radius_y,
  snapshot_path, census_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  width=excluded.width, height=excluded.height, seed=excluded.seed,
  digest=excluded.digest,
  den_center_x=excluded.den_center_x, den_center_y=excluded.den_center_y,
  den_radius_x=excluded.den_radius_x, den_radius_y=excluded.den_radius_y,
  snapshot_path=excluded.snapshot_path, census_json=excluded.census_json,
  created_at=excluded.created_at`,
		row.Name, row.Width, row.Height, int64(row.Seed), row.Digest,
		row.Den.CenterX, row.Den.CenterY, row.Den.RadiusX, row.Den.RadiusY,
		row.SnapshotPath, string(census), row.CreatedAt)
	_ = err // index writes are best-effort; the world itself is the source of truth
}

// RecordWorld enqueues a row describing one generated world.
func (idx *SQLiteIndex) RecordWorld(name string, w *world.World, seed uint32, den gen.DenInfo, snapshotPath string) {
	if idx.closed.Load() {
		return
	}
	census := make(map[string]int)
	for t, n := range w.Census() {
		census[t.String()] = n
	}
	digest := w.Digest()
	idx.ch <- req{row: WorldRow{
		Name:         name,
		Width:        w.Width(),
		Height:       w.Height(),
		Seed:         seed,
		Digest:       fmt.Sprintf("%x", digest),
		Den:          den,
		SnapshotPath: snapshotPath,
		Census:       census,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}}
}

// Flush blocks until every previously enqueued write has been applied.
func (idx *SQLiteIndex) Flush() {
	if idx.closed.Load() {
		return
	}
	done := make(chan struct{})
	idx.ch <- req{done: done}
	<-done
}

func (idx *SQLiteIndex) ListWorlds(ctx context.Context) ([]WorldRow, error) {
	rows, err := idx.db.QueryContext(ctx, `
SELECT name, width, height, seed, digest,
  den_center_x, den_center_y, den_radius_x, den_radius_y,
  snapshot_path, census_json, created_at
FROM worlds ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WorldRow
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (idx *SQLiteIndex) GetWorld(ctx context.Context, name string) (WorldRow, error) {
	rows, err := idx.db.QueryContext(ctx, `
SELECT name, width, height, seed, digest,
  den_center_x, den_center_y, den_radius_x, den_radius_y,
  snapshot_path, census_json, created_at
FROM worlds WHERE name = ?`, name)
	if err != nil {
		return WorldRow{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return WorldRow{}, err
		}
		return WorldRow{}, sql.ErrNoRows
	}
	return scanRow(rows)
}

func scanRow(rows *sql.Rows) (WorldRow, error) {
	var row WorldRow
	var seed int64
	var censusJSON string
	if err := rows.Scan(&row.Name, &row.Width, &row.Height, &seed, &row.Digest,
		&row.Den.CenterX, &row.Den.CenterY, &row.Den.RadiusX, &row.Den.RadiusY,
		&row.SnapshotPath, &censusJSON, &row.CreatedAt); err != nil {
		return WorldRow{}, err
	}
	row.Seed = uint32(seed)
	if err := json.Unmarshal([]byte(censusJSON), &row.Census); err != nil {
		return WorldRow{}, err
	}
	return row, nil
}

// Close drains pending writes and closes the db.
func (idx *SQLiteIndex) Close() error {
	idx.once.Do(func() {
		idx.closed.Store(true)
		close(idx.ch)
	})
	idx.wg.Wait()
	return idx.db.Close()
}
