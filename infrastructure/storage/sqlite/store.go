// ABOUTME: SQLite-backed metadata store built with squirrel queries
// ABOUTME: Persists submitted records in a single file that survives restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"searchpilot-api/core/domain"
	"searchpilot-api/core/interfaces"
	timeutil "searchpilot-api/pkg/utils/time"
)

const table = "metadata"

var columns = []string{
	"id", "url", "title", "description", "keywords",
	"author", "published_date", "created_at", "updated_at",
}

// Store implements interfaces.MetadataStorage on SQLite
type Store struct {
	db       *sql.DB
	filePath string
	builder  sq.StatementBuilderType
}

var _ interfaces.MetadataStorage = (*Store)(nil)

// NewStore opens (or creates) the database at filePath and applies the schema
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite3", filePath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
		builder:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the metadata table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS metadata (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			keywords TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			published_date TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_metadata_created_at ON metadata(created_at);
	`

	_, err := s.db.Exec(query)
	return err
}

// Save inserts a new record
func (s *Store) Save(ctx context.Context, record *domain.Metadata) error {
	if record == nil || record.ID == "" {
		return errors.New("record must have an id")
	}

	published := ""
	if record.PublishedDate != nil {
		published = timeutil.FormatStorage(*record.PublishedDate)
	}

	_, err := s.builder.Insert(table).
		Columns(columns...).
		Values(
			record.ID,
			record.URL,
			record.Title,
			record.Description,
			record.Keywords,
			record.Author,
			published,
			timeutil.FormatStorage(record.CreatedAt),
			timeutil.FormatStorage(record.UpdatedAt),
		).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// Get retrieves a record by ID, returning nil when it does not exist
func (s *Store) Get(ctx context.Context, id string) (*domain.Metadata, error) {
	row := s.builder.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return record, nil
}

// List returns every record, newest first
func (s *Store) List(ctx context.Context) ([]domain.Metadata, error) {
	rows, err := s.builder.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "rowid DESC").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Metadata, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return records, nil
}

// Count returns the number of stored records
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.builder.Select("COUNT(*)").
		From(table).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// scanRecord reads one row. A creation time that fails to parse comes back as
// the zero time so the ranking pipeline can treat it as unknown. A missing
// update time falls back to the creation time.
func scanRecord(row sq.RowScanner) (*domain.Metadata, error) {
	var record domain.Metadata
	var published, created, updated string

	err := row.Scan(
		&record.ID,
		&record.URL,
		&record.Title,
		&record.Description,
		&record.Keywords,
		&record.Author,
		&published,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}

	if p := timeutil.ParseFlexibleTime(published); !p.IsZero() {
		record.PublishedDate = &p
	}
	record.CreatedAt = timeutil.ParseFlexibleTime(created)
	record.UpdatedAt = timeutil.ParseWithDefault(updated, record.CreatedAt)

	return &record, nil
}
