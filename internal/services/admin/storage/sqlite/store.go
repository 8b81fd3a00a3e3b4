package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/cashdesk/internal/platform/id"
	"github.com/louisbranch/cashdesk/internal/platform/pagination"
	sqlitemigrate "github.com/louisbranch/cashdesk/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

var journalPageSize = pagination.PageSizeConfig{Default: 50, Max: 500}

var journalOrderBy = pagination.OrderByConfig{
	Default: storage.OrderNewestFirst,
	Allowed: []string{storage.OrderNewestFirst, storage.OrderOldestFirst},
}

// journalOrderClauses maps normalized orderings to SQL. The id tiebreak
// follows the same direction so equal timestamps stay stable.
var journalOrderClauses = map[string]string{
	storage.OrderNewestFirst: "recorded_at DESC, id DESC",
	storage.OrderOldestFirst: "recorded_at ASC, id ASC",
}

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite store at the provided path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordDecision persists one journal entry, assigning an id and timestamp
// when missing, and returns the stored entry.
func (s *Store) RecordDecision(ctx context.Context, entry storage.JournalEntry) (storage.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return storage.JournalEntry{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.JournalEntry{}, fmt.Errorf("storage is not configured")
	}
	entry.Kind = strings.TrimSpace(entry.Kind)
	entry.SubjectID = strings.TrimSpace(entry.SubjectID)
	entry.Decision = strings.TrimSpace(entry.Decision)
	switch {
	case entry.Kind == "":
		return storage.JournalEntry{}, fmt.Errorf("journal kind is required")
	case entry.SubjectID == "":
		return storage.JournalEntry{}, fmt.Errorf("journal subject id is required")
	case entry.Decision == "":
		return storage.JournalEntry{}, fmt.Errorf("journal decision is required")
	}
	if entry.ID == "" {
		generated, err := id.NewID()
		if err != nil {
			return storage.JournalEntry{}, err
		}
		entry.ID = generated
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = s.now()
	}
	entry.RecordedAt = entry.RecordedAt.UTC().Truncate(time.Millisecond)

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO review_journal (id, kind, subject_id, decision, detail, recorded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Kind, entry.SubjectID, entry.Decision, entry.Detail, entry.RecordedAt.UnixMilli(),
	)
	if err != nil {
		return storage.JournalEntry{}, fmt.Errorf("insert journal entry: %w", err)
	}
	return entry, nil
}

// ListDecisions returns entries matching opts, newest first unless
// opts.OrderBy asks otherwise.
func (s *Store) ListDecisions(ctx context.Context, opts storage.ListOptions) ([]storage.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	where, err := parseJournalFilter(opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrInvalidFilter, err)
	}
	orderBy, err := pagination.NormalizeOrderBy(opts.OrderBy, journalOrderBy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrInvalidOrder, err)
	}

	query := `SELECT id, kind, subject_id, decision, detail, recorded_at FROM review_journal`
	params := append([]any{}, where.params...)
	if where.clause != "" {
		query += " WHERE " + where.clause
	}
	query += " ORDER BY " + journalOrderClauses[orderBy] + " LIMIT ?"
	params = append(params, pagination.ClampPageSize(opts.PageSize, journalPageSize))

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []storage.JournalEntry
	for rows.Next() {
		var entry storage.JournalEntry
		var recordedAt int64
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.SubjectID, &entry.Decision, &entry.Detail, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entry.RecordedAt = time.UnixMilli(recordedAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return entries, nil
}

var _ storage.Store = (*Store)(nil)
