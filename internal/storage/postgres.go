package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/lib/pq"
)

// ErrDuplicateID is returned when a document with the same id already
// exists in the collection.
var ErrDuplicateID = errors.New("document id already exists")

// DocumentStore keeps every collection in one jsonb-backed table so the
// service can append and query documents the way the hosted document
// database did.
type DocumentStore struct {
	DB *sql.DB
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{DB: db}
}

func (s *DocumentStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			doc JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)`,
		"CREATE INDEX IF NOT EXISTS documents_collection_created_idx ON documents (collection, created_at DESC)",
	}
	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (s *DocumentStore) Create(ctx context.Context, collection, id string, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.DB.ExecContext(ctx,
		"INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3)",
		collection, id, payload)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

// Get unmarshals the document into out and reports whether it exists.
func (s *DocumentStore) Get(ctx context.Context, collection, id string, out interface{}) (bool, error) {
	var payload []byte
	err := s.DB.QueryRowContext(ctx,
		"SELECT doc FROM documents WHERE collection = $1 AND id = $2",
		collection, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return true, fmt.Errorf("unmarshal document %s/%s: %w", collection, id, err)
		}
	}
	return true, nil
}

// Query returns raw documents matching every filter field, ordered by
// the given document field (descending when desc is set) or by
// insertion time when orderBy is empty.
func (s *DocumentStore) Query(ctx context.Context, collection string, filter map[string]string, orderBy string, desc bool) ([]json.RawMessage, error) {
	query := "SELECT doc FROM documents WHERE collection = $1"
	args := []interface{}{collection}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, filter[k])
		query += fmt.Sprintf(" AND doc->>'%s' = $%d", k, len(args))
	}

	direction := "ASC"
	if desc {
		direction = "DESC"
	}
	if orderBy != "" {
		query += fmt.Sprintf(" ORDER BY doc->>'%s' %s", orderBy, direction)
	} else {
		query += " ORDER BY created_at " + direction
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			continue
		}
		docs = append(docs, json.RawMessage(payload))
	}
	return docs, rows.Err()
}

// Update merges the partial document into the stored one.
func (s *DocumentStore) Update(ctx context.Context, collection, id string, partial map[string]interface{}) error {
	payload, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("marshal partial document: %w", err)
	}
	result, err := s.DB.ExecContext(ctx,
		"UPDATE documents SET doc = doc || $3::jsonb WHERE collection = $1 AND id = $2",
		collection, id, payload)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
