package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/query"
)

// postgresCollection stores documents as JSONB rows keyed by a text id.
type postgresCollection struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresCollection returns a collection backed by the given table.
func NewPostgresCollection(pool *pgxpool.Pool, table string) Collection {
	return &postgresCollection{pool: pool, table: pgx.Identifier{table}.Sanitize()}
}

// NewPostgresCollections opens a handle for every collection table.
func NewPostgresCollections(pool *pgxpool.Pool) Collections {
	return Collections{
		Users:      NewPostgresCollection(pool, CollectionUsers),
		Categories: NewPostgresCollection(pool, CollectionCategories),
		Products:   NewPostgresCollection(pool, CollectionProducts),
		Orders:     NewPostgresCollection(pool, CollectionOrders),
	}
}

func (c *postgresCollection) Find(ctx context.Context, q query.Query) ([]domain.Document, error) {
	where, args, err := whereClause(q.Filter, nil)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf("SELECT id, doc FROM %s WHERE %s", c.table, where)
	orderBy, args := orderClause(q.Sort, args)
	sql += orderBy
	if n, ok := q.Limit.Get(); ok {
		args = append(args, n)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := c.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (c *postgresCollection) FindOne(ctx context.Context, filter query.Filter) (domain.Document, error) {
	where, args, err := whereClause(filter, nil)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf("SELECT id, doc FROM %s WHERE %s ORDER BY created_at LIMIT 1", c.table, where)
	doc, err := scanDocument(c.pool.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return doc, err
}

func (c *postgresCollection) InsertOne(ctx context.Context, doc domain.Document) (*InsertResult, error) {
	body := doc.Clone()
	id := idString(body[domain.FieldID])
	if id == "" {
		id = uuid.NewString()
	}
	delete(body, domain.FieldID)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf("INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)", c.table)
	if _, err := c.pool.Exec(ctx, sql, id, string(payload)); err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (c *postgresCollection) UpdateOne(ctx context.Context, filter query.Filter, set domain.Document, upsert bool) (*UpdateResult, error) {
	fields := set.Clone()
	delete(fields, domain.FieldID)
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	where, args, err := whereClause(filter, []any{string(payload)})
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(`
        WITH target AS (
            SELECT id, doc FROM %[1]s WHERE %[2]s ORDER BY created_at LIMIT 1 FOR UPDATE
        )
        UPDATE %[1]s AS t SET doc = t.doc || $1::jsonb
        FROM target WHERE t.id = target.id
        RETURNING target.doc IS DISTINCT FROM t.doc`, c.table, where)

	var modified bool
	err = c.pool.QueryRow(ctx, sql, args...).Scan(&modified)
	switch {
	case err == nil:
		res := &UpdateResult{Acknowledged: true, MatchedCount: 1}
		if modified {
			res.ModifiedCount = 1
		}
		return res, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, err
	case !upsert:
		return &UpdateResult{Acknowledged: true}, nil
	}

	inserted, err := c.InsertOne(ctx, upsertDocument(filter, set))
	if err != nil {
		return nil, err
	}
	return &UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &inserted.InsertedID}, nil
}

func (c *postgresCollection) DeleteOne(ctx context.Context, filter query.Filter) (*DeleteResult, error) {
	where, args, err := whereClause(filter, nil)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(
		"DELETE FROM %[1]s WHERE id = (SELECT id FROM %[1]s WHERE %[2]s ORDER BY created_at LIMIT 1)",
		c.table, where)
	cmd, err := c.pool.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: cmd.RowsAffected()}, nil
}

func (c *postgresCollection) Count(ctx context.Context, filter query.Filter) (int64, error) {
	where, args, err := whereClause(filter, nil)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", c.table, where), args...).Scan(&n)
	return n, err
}

// whereClause turns the filter into an id match plus a JSONB containment test.
// Placeholders continue numbering after args.
func whereClause(filter query.Filter, args []any) (string, []any, error) {
	var parts []string
	contains := make(map[string]any)
	for _, cond := range filter {
		if cond.Field == domain.FieldID {
			args = append(args, idString(cond.Value))
			parts = append(parts, fmt.Sprintf("id = $%d", len(args)))
			continue
		}
		contains[cond.Field] = cond.Value
	}
	if len(contains) > 0 {
		payload, err := json.Marshal(contains)
		if err != nil {
			return "", nil, err
		}
		args = append(args, string(payload))
		parts = append(parts, fmt.Sprintf("doc @> $%d::jsonb", len(args)))
	}
	if len(parts) == 0 {
		return "TRUE", args, nil
	}
	return strings.Join(parts, " AND "), args, nil
}

// orderClause keeps missing fields last on descending keys, as the document store does.
func orderClause(keys []query.SortKey, args []any) (string, []any) {
	if len(keys) == 0 {
		return "", args
	}
	terms := make([]string, 0, len(keys))
	for _, key := range keys {
		expr := "id"
		if key.Field != domain.FieldID {
			args = append(args, key.Field)
			expr = fmt.Sprintf("doc -> $%d::text", len(args))
		}
		if key.Direction == query.Descending {
			terms = append(terms, expr+" DESC NULLS LAST")
		} else {
			terms = append(terms, expr+" ASC NULLS FIRST")
		}
	}
	return " ORDER BY " + strings.Join(terms, ", "), args
}

func scanDocument(row pgx.Row) (domain.Document, error) {
	var (
		id  string
		raw []byte
	)
	if err := row.Scan(&id, &raw); err != nil {
		return nil, err
	}
	doc := domain.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc[domain.FieldID] = id
	return doc, nil
}
