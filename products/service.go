// Package products serves the product resource. Every operation is scoped to
// the calling user: a product owned by someone else behaves exactly like one
// that does not exist.
package products

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/db"
)

// ProductService defines the owner-scoped product operations.
type ProductService interface {
	ListProducts(ctx context.Context, ownerID string) ([]Product, error)
	GetProduct(ctx context.Context, ownerID, id string) (*Product, error)
	CreateProduct(ctx context.Context, ownerID, name string) (*Product, error)
	UpdateProduct(ctx context.Context, ownerID, id, name string) (*Product, error)
	DeleteProduct(ctx context.Context, ownerID, id string) (*Product, error)
}

// productServiceImpl is the PostgreSQL implementation of ProductService.
type productServiceImpl struct {
	db db.Querier
}

// NewProductService creates a new ProductService.
func NewProductService(q db.Querier) ProductService {
	return &productServiceImpl{db: q}
}

const productColumns = `id, created_at, name, belongs_to_id`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.Name, &p.BelongsToID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *productServiceImpl) ListProducts(ctx context.Context, ownerID string) ([]Product, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE belongs_to_id = $1 ORDER BY created_at, id`,
		ownerID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list products", err)
	}
	defer rows.Close()

	list := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan product", err)
		}
		list = append(list, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list products", err)
	}
	return list, nil
}

func (s *productServiceImpl) GetProduct(ctx context.Context, ownerID, id string) (*Product, error) {
	p, err := scanProduct(s.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND belongs_to_id = $2`,
		id, ownerID))
	if err != nil {
		return nil, db.NotFoundOr(err, "product", "get")
	}
	return p, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, ownerID, name string) (*Product, error) {
	p, err := scanProduct(s.db.QueryRow(ctx,
		`INSERT INTO products (id, name, belongs_to_id) VALUES ($1, $2, $3)
         RETURNING `+productColumns,
		db.NewID(), name, ownerID))
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create product", err)
	}
	return p, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, ownerID, id, name string) (*Product, error) {
	p, err := scanProduct(s.db.QueryRow(ctx,
		`UPDATE products SET name = $3 WHERE id = $1 AND belongs_to_id = $2
         RETURNING `+productColumns,
		id, ownerID, name))
	if err != nil {
		return nil, db.NotFoundOr(err, "product", "update")
	}
	return p, nil
}

// DeleteProduct removes the product together with its updates and their points.
func (s *productServiceImpl) DeleteProduct(ctx context.Context, ownerID, id string) (*Product, error) {
	p, err := scanProduct(s.db.QueryRow(ctx,
		`DELETE FROM products WHERE id = $1 AND belongs_to_id = $2
         RETURNING `+productColumns,
		id, ownerID))
	if err != nil {
		return nil, db.NotFoundOr(err, "product", "delete")
	}
	return p, nil
}
