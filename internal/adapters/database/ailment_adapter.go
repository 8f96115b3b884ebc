package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/repositories"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/infrastructure/clients/postgres"
	apperrors "github.com/makjesusfreak-ai/ReactWebApp99/pkg/errors"
)

const ailmentsTable = "ailments"

// AilmentAdapter implements the keyed document store over a Postgres JSONB
// table. The whole aggregate is stored as one document under its id; there is
// no nested addressing at the storage layer.
type AilmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAilmentAdapter creates a new ailment adapter
func NewAilmentAdapter(client *postgres.Client) repositories.AilmentRepository {
	return &AilmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Get retrieves an aggregate by id, returning nil when absent
func (a *AilmentAdapter) Get(ctx context.Context, id string) (*entities.Ailment, error) {
	query, args, err := a.db.From(ailmentsTable).
		Select("doc").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build ailment get query", err)
	}

	var doc []byte
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewInternalError("failed to get ailment", err)
	}

	var ailment entities.Ailment
	if err := json.Unmarshal(doc, &ailment); err != nil {
		return nil, apperrors.NewInternalError("failed to decode ailment document", err)
	}
	return &ailment, nil
}

// Put stores the whole aggregate, overwriting any existing document
func (a *AilmentAdapter) Put(ctx context.Context, ailment entities.Ailment) error {
	doc, err := json.Marshal(ailment)
	if err != nil {
		return apperrors.NewInternalError("failed to encode ailment document", err)
	}

	query, args, err := a.db.Insert(ailmentsTable).
		Rows(goqu.Record{"id": ailment.ID, "doc": doc}).
		OnConflict(goqu.DoUpdate("id", goqu.Record{"doc": doc})).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build ailment put query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to put ailment", err)
	}
	return nil
}

// Delete removes the aggregate with the given id
func (a *AilmentAdapter) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := a.db.Delete(ailmentsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build ailment delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.NewInternalError("failed to delete ailment", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternalError("failed to read delete result", err)
	}
	return affected > 0, nil
}

// Scan returns every stored aggregate (full-table read, no pagination)
func (a *AilmentAdapter) Scan(ctx context.Context) ([]entities.Ailment, error) {
	query, args, err := a.db.From(ailmentsTable).
		Select("doc").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build ailment scan query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan ailments", err)
	}
	defer rows.Close()

	ailments := []entities.Ailment{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, apperrors.NewInternalError("failed to read ailment row", err)
		}
		var ailment entities.Ailment
		if err := json.Unmarshal(doc, &ailment); err != nil {
			return nil, apperrors.NewInternalError("failed to decode ailment document", err)
		}
		ailments = append(ailments, ailment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate ailment rows", err)
	}
	return ailments, nil
}
