package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/markpad/internal/dbx"
	"github.com/dmitrijs2005/markpad/internal/editor/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB
// or *sql.Tx). The local-modification marker is stored as a nullable
// unix-milli column.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save upserts a record by document uuid. On conflict all mutable
// columns are replaced.
func (r *SQLiteRepository) Save(ctx context.Context, rec *Record) error {
	query := `INSERT INTO documents (uuid, content, template, secret, last_modified_locally)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(uuid) DO UPDATE SET content = excluded.content,
				template = excluded.template,
				secret = excluded.secret,
				last_modified_locally = excluded.last_modified_locally
	`

	var lm sql.NullInt64
	if rec.Document.LastModifiedLocally != nil {
		lm = sql.NullInt64{Int64: rec.Document.LastModifiedLocally.UnixMilli(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		rec.Document.UUID, rec.Document.Content, rec.Document.Template, rec.Secret, lm)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

// GetByUUID returns the record stored under uuid.
func (r *SQLiteRepository) GetByUUID(ctx context.Context, uuid string) (*Record, error) {
	query := `SELECT uuid, content, template, secret, last_modified_locally
			FROM documents WHERE uuid = ?`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, uuid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return rec, nil
}

// GetAll returns every stored record, ordered by uuid for stable
// listings.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*Record, error) {
	query := `SELECT uuid, content, template, secret, last_modified_locally
			FROM documents ORDER BY uuid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var result []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		uuid, content, template, secret string
		lm                              sql.NullInt64
	)
	if err := row.Scan(&uuid, &content, &template, &secret, &lm); err != nil {
		return nil, err
	}

	doc := &models.Document{UUID: uuid, Content: content, Template: template}
	if lm.Valid {
		t := time.UnixMilli(lm.Int64).UTC()
		doc.LastModifiedLocally = &t
	}
	return &Record{Document: doc, Secret: secret}, nil
}
