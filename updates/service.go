// Package updates serves updates and their update points. Neither carries an
// owner of its own; ownership is always resolved through the parent product,
// so every query joins back to products.belongs_to_id.
package updates

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/db"
)

// UpdateService defines the owner-scoped update operations.
type UpdateService interface {
	ListUpdates(ctx context.Context, ownerID string) ([]Update, error)
	GetUpdate(ctx context.Context, ownerID, id string) (*Update, error)
	CreateUpdate(ctx context.Context, ownerID string, req CreateUpdateRequest) (*Update, error)
	EditUpdate(ctx context.Context, ownerID, id string, req EditUpdateRequest) (*Update, error)
	DeleteUpdate(ctx context.Context, ownerID, id string) (*Update, error)
}

type updateServiceImpl struct {
	db db.Querier
}

// NewUpdateService creates a new UpdateService.
func NewUpdateService(q db.Querier) UpdateService {
	return &updateServiceImpl{db: q}
}

const updateColumns = `u.id, u.created_at, u.updated_at, u.title, u.body, u.status::text, u.version, u.asset, u.product_id`

func scanUpdate(row pgx.Row) (*Update, error) {
	var (
		u      Update
		status string
	)
	err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Title, &u.Body, &status, &u.Version, &u.Asset, &u.ProductID)
	if err != nil {
		return nil, err
	}
	u.Status = Status(status)
	return &u, nil
}

func (s *updateServiceImpl) ListUpdates(ctx context.Context, ownerID string) ([]Update, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+updateColumns+`
        FROM updates u JOIN products p ON p.id = u.product_id
        WHERE p.belongs_to_id = $1
        ORDER BY u.created_at, u.id`, ownerID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list updates", err)
	}
	defer rows.Close()

	list := []Update{}
	for rows.Next() {
		u, err := scanUpdate(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan update", err)
		}
		list = append(list, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list updates", err)
	}
	return list, nil
}

func (s *updateServiceImpl) GetUpdate(ctx context.Context, ownerID, id string) (*Update, error) {
	u, err := scanUpdate(s.db.QueryRow(ctx, `
        SELECT `+updateColumns+`
        FROM updates u JOIN products p ON p.id = u.product_id
        WHERE u.id = $1 AND p.belongs_to_id = $2`, id, ownerID))
	if err != nil {
		return nil, db.NotFoundOr(err, "update", "get")
	}
	return u, nil
}

// CreateUpdate inserts only when the target product belongs to ownerID; a
// product that is absent or foreign yields "product not found".
func (s *updateServiceImpl) CreateUpdate(ctx context.Context, ownerID string, req CreateUpdateRequest) (*Update, error) {
	u, err := scanUpdate(s.db.QueryRow(ctx, `
        WITH u AS (
            INSERT INTO updates (id, title, body, version, asset, product_id)
            SELECT $1, $2, $3, $4, $5, p.id
            FROM products p
            WHERE p.id = $6 AND p.belongs_to_id = $7
            RETURNING *
        )
        SELECT `+updateColumns+` FROM u`,
		db.NewID(), req.Title, req.Body, req.Version, req.Asset, req.ProductID, ownerID))
	if err != nil {
		return nil, db.NotFoundOr(err, "product", "create update for")
	}
	return u, nil
}

func (s *updateServiceImpl) EditUpdate(ctx context.Context, ownerID, id string, req EditUpdateRequest) (*Update, error) {
	var status *string
	if req.Status != nil {
		v := string(*req.Status)
		status = &v
	}

	u, err := scanUpdate(s.db.QueryRow(ctx, `
        WITH u AS (
            UPDATE updates
            SET title      = COALESCE($3, updates.title),
                body       = COALESCE($4, updates.body),
                status     = COALESCE($5::update_status, updates.status),
                version    = COALESCE($6, updates.version),
                asset      = COALESCE($7, updates.asset),
                updated_at = now()
            FROM products p
            WHERE updates.id = $1 AND p.id = updates.product_id AND p.belongs_to_id = $2
            RETURNING updates.*
        )
        SELECT `+updateColumns+` FROM u`,
		id, ownerID, req.Title, req.Body, status, req.Version, req.Asset))
	if err != nil {
		return nil, db.NotFoundOr(err, "update", "edit")
	}
	return u, nil
}

// DeleteUpdate removes the update and its points.
func (s *updateServiceImpl) DeleteUpdate(ctx context.Context, ownerID, id string) (*Update, error) {
	u, err := scanUpdate(s.db.QueryRow(ctx, `
        WITH u AS (
            DELETE FROM updates
            USING products p
            WHERE updates.id = $1 AND p.id = updates.product_id AND p.belongs_to_id = $2
            RETURNING updates.*
        )
        SELECT `+updateColumns+` FROM u`, id, ownerID))
	if err != nil {
		return nil, db.NotFoundOr(err, "update", "delete")
	}
	return u, nil
}
