package updates

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/db"
)

// PointService defines the owner-scoped update point operations.
type PointService interface {
	ListPoints(ctx context.Context, ownerID string) ([]UpdatePoint, error)
	GetPoint(ctx context.Context, ownerID, id string) (*UpdatePoint, error)
	CreatePoint(ctx context.Context, ownerID string, req CreatePointRequest) (*UpdatePoint, error)
	EditPoint(ctx context.Context, ownerID, id string, req EditPointRequest) (*UpdatePoint, error)
	DeletePoint(ctx context.Context, ownerID, id string) (*UpdatePoint, error)
}

type pointServiceImpl struct {
	db db.Querier
}

// NewPointService creates a new PointService.
func NewPointService(q db.Querier) PointService {
	return &pointServiceImpl{db: q}
}

const pointColumns = `pt.id, pt.created_at, pt.updated_at, pt.name, pt.description, pt.update_id`

// ownedPoints joins update_points (aliased pt) back to the owning product p.
const ownedPoints = `update_points pt
        JOIN updates u ON u.id = pt.update_id
        JOIN products p ON p.id = u.product_id`

func scanPoint(row pgx.Row) (*UpdatePoint, error) {
	var pt UpdatePoint
	if err := row.Scan(&pt.ID, &pt.CreatedAt, &pt.UpdatedAt, &pt.Name, &pt.Description, &pt.UpdateID); err != nil {
		return nil, err
	}
	return &pt, nil
}

func (s *pointServiceImpl) ListPoints(ctx context.Context, ownerID string) ([]UpdatePoint, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+pointColumns+` FROM `+ownedPoints+`
        WHERE p.belongs_to_id = $1
        ORDER BY pt.created_at, pt.id`, ownerID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list update points", err)
	}
	defer rows.Close()

	list := []UpdatePoint{}
	for rows.Next() {
		pt, err := scanPoint(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan update point", err)
		}
		list = append(list, *pt)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list update points", err)
	}
	return list, nil
}

func (s *pointServiceImpl) GetPoint(ctx context.Context, ownerID, id string) (*UpdatePoint, error) {
	pt, err := scanPoint(s.db.QueryRow(ctx, `
        SELECT `+pointColumns+` FROM `+ownedPoints+`
        WHERE pt.id = $1 AND p.belongs_to_id = $2`, id, ownerID))
	if err != nil {
		return nil, db.NotFoundOr(err, "update point", "get")
	}
	return pt, nil
}

// CreatePoint inserts only under an update whose product belongs to ownerID.
func (s *pointServiceImpl) CreatePoint(ctx context.Context, ownerID string, req CreatePointRequest) (*UpdatePoint, error) {
	pt, err := scanPoint(s.db.QueryRow(ctx, `
        WITH pt AS (
            INSERT INTO update_points (id, name, description, update_id)
            SELECT $1, $2, $3, u.id
            FROM updates u JOIN products p ON p.id = u.product_id
            WHERE u.id = $4 AND p.belongs_to_id = $5
            RETURNING *
        )
        SELECT `+pointColumns+` FROM pt`,
		db.NewID(), req.Name, req.Description, req.UpdateID, ownerID))
	if err != nil {
		return nil, db.NotFoundOr(err, "update", "create point for")
	}
	return pt, nil
}

func (s *pointServiceImpl) EditPoint(ctx context.Context, ownerID, id string, req EditPointRequest) (*UpdatePoint, error) {
	pt, err := scanPoint(s.db.QueryRow(ctx, `
        WITH pt AS (
            UPDATE update_points
            SET name        = COALESCE($3, update_points.name),
                description = COALESCE($4, update_points.description),
                updated_at  = now()
            FROM updates u JOIN products p ON p.id = u.product_id
            WHERE update_points.id = $1 AND u.id = update_points.update_id AND p.belongs_to_id = $2
            RETURNING update_points.*
        )
        SELECT `+pointColumns+` FROM pt`,
		id, ownerID, req.Name, req.Description))
	if err != nil {
		return nil, db.NotFoundOr(err, "update point", "edit")
	}
	return pt, nil
}

func (s *pointServiceImpl) DeletePoint(ctx context.Context, ownerID, id string) (*UpdatePoint, error) {
	pt, err := scanPoint(s.db.QueryRow(ctx, `
        WITH pt AS (
            DELETE FROM update_points
            USING updates u, products p
            WHERE update_points.id = $1 AND u.id = update_points.update_id
              AND p.id = u.product_id AND p.belongs_to_id = $2
            RETURNING update_points.*
        )
        SELECT `+pointColumns+` FROM pt`, id, ownerID))
	if err != nil {
		return nil, db.NotFoundOr(err, "update point", "delete")
	}
	return pt, nil
}
