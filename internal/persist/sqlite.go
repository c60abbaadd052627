// Package persist stores the durable subset of application state (identity,
// saved views, projects, cycles, theme) in a local SQLite database and
// rehydrates it at startup. Loading is deliberately forgiving: an absent
// file or corrupt rows fall back to defaults instead of failing startup.
package persist

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/artti-capital/linea/internal/models"
	"github.com/artti-capital/linea/internal/state"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	settingTheme = "theme"
	settingUser  = "user"
)

// SnapshotStore persists state snapshots using modernc.org/sqlite (pure Go,
// no CGO).
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore opens (or creates) the database at the given path.
func NewSnapshotStore(dbPath string) (*SnapshotStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection serializes all access through Go's pool, matching
	// SQLite's one-writer model.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// Migrate runs all embedded SQL migration files in order.
func (s *SnapshotStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		var count int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE filename = ?", name).Scan(&count); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if count > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_migrations (filename) VALUES (?)", name); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
	}
	return nil
}

// Close releases the database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save rewrites the stored snapshot. Implements state.Persister.
func (s *SnapshotStore) Save(snap state.Snapshot) error {
	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"settings", "saved_views", "projects", "cycles"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?)", settingTheme, string(snap.Theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if snap.User != nil {
		data, err := json.Marshal(snap.User)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO settings (key, value) VALUES (?, ?)", settingUser, string(data)); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
	}

	for _, v := range snap.SavedViews {
		filters, err := json.Marshal(v.Filters)
		if err != nil {
			return fmt.Errorf("encode saved view %s: %w", v.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO saved_views (id, name, icon, filters) VALUES (?, ?, ?, ?)",
			v.ID, v.Name, v.Icon, string(filters)); err != nil {
			return fmt.Errorf("save view %s: %w", v.ID, err)
		}
	}

	for _, p := range snap.Projects {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode project %s: %w", p.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO projects (id, data) VALUES (?, ?)", p.ID, string(data)); err != nil {
			return fmt.Errorf("save project %s: %w", p.ID, err)
		}
	}

	for _, c := range snap.Cycles {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode cycle %s: %w", c.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO cycles (id, data) VALUES (?, ?)", c.ID, string(data)); err != nil {
			return fmt.Errorf("save cycle %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot save: %w", err)
	}
	return nil
}

// Load reads the stored snapshot. Rows that fail to decode are skipped and
// missing tables yield an empty snapshot, so callers always get something
// usable.
func (s *SnapshotStore) Load(ctx context.Context) state.Snapshot {
	var snap state.Snapshot

	if value, ok := s.setting(ctx, settingTheme); ok {
		snap.Theme = models.Theme(value)
	}
	if value, ok := s.setting(ctx, settingUser); ok {
		var u models.User
		if err := json.Unmarshal([]byte(value), &u); err == nil && u.ID != "" {
			snap.User = &u
		}
	}

	if rows, err := s.db.QueryContext(ctx, "SELECT id, name, icon, filters FROM saved_views"); err == nil {
		defer func() { _ = rows.Close() }()
		for rows.Next() {
			var v models.SavedView
			var filters string
			if err := rows.Scan(&v.ID, &v.Name, &v.Icon, &filters); err != nil {
				continue
			}
			if err := json.Unmarshal([]byte(filters), &v.Filters); err != nil {
				continue
			}
			snap.SavedViews = append(snap.SavedViews, v)
		}
	}

	if rows, err := s.db.QueryContext(ctx, "SELECT data FROM projects"); err == nil {
		defer func() { _ = rows.Close() }()
		for rows.Next() {
			var data string
			if err := rows.Scan(&data); err != nil {
				continue
			}
			var p models.Project
			if err := json.Unmarshal([]byte(data), &p); err != nil || p.ID == "" {
				continue
			}
			snap.Projects = append(snap.Projects, p)
		}
	}

	if rows, err := s.db.QueryContext(ctx, "SELECT data FROM cycles"); err == nil {
		defer func() { _ = rows.Close() }()
		for rows.Next() {
			var data string
			if err := rows.Scan(&data); err != nil {
				continue
			}
			var c models.Cycle
			if err := json.Unmarshal([]byte(data), &c); err != nil || c.ID == "" {
				continue
			}
			snap.Cycles = append(snap.Cycles, c)
		}
	}

	return snap
}

func (s *SnapshotStore) setting(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}
