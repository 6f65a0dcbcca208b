package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jarad-ux/eccocontrol-center/internal/domain"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
)

var _ repository.SalesRepRepository = (*SalesRepRepo)(nil)

// SalesRepRepo implements the SalesRepRepository port over PostgreSQL.
type SalesRepRepo struct {
	pool *pgxpool.Pool
}

// NewSalesRepRepository builds the persistence adapter for sales reps.
func NewSalesRepRepository(pool *pgxpool.Pool) *SalesRepRepo {
	return &SalesRepRepo{pool: pool}
}

const salesRepColumns = `id, user_id, name, role, division, is_active, created_at`

// Create persists a new sales rep. A second rep for the same auth subject
// maps to ErrDuplicate, which keeps the first-admin bootstrap idempotent.
func (r *SalesRepRepo) Create(ctx context.Context, rep *entity.SalesRep) error {
	query := `
		INSERT INTO sales_reps (id, user_id, name, role, division, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		rep.ID, rep.UserID, rep.Name, rep.Role, rep.Division, rep.IsActive, rep.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales rep: %w", err)
	}
	return nil
}

// GetByID fetches a rep by row id.
func (r *SalesRepRepo) GetByID(ctx context.Context, id string) (*entity.SalesRep, error) {
	query := `SELECT ` + salesRepColumns + ` FROM sales_reps WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByUserID fetches a rep by the identity provider's subject key.
func (r *SalesRepRepo) GetByUserID(ctx context.Context, userID string) (*entity.SalesRep, error) {
	query := `SELECT ` + salesRepColumns + ` FROM sales_reps WHERE user_id = $1`
	return r.scanOne(ctx, query, userID)
}

func (r *SalesRepRepo) scanOne(ctx context.Context, query string, arg any) (*entity.SalesRep, error) {
	var rep entity.SalesRep
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&rep.ID, &rep.UserID, &rep.Name, &rep.Role, &rep.Division, &rep.IsActive, &rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales rep: %w", err)
	}
	return &rep, nil
}

// List returns every rep, newest first.
func (r *SalesRepRepo) List(ctx context.Context) ([]*entity.SalesRep, error) {
	query := `SELECT ` + salesRepColumns + ` FROM sales_reps ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales reps: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesRep
	for rows.Next() {
		var rep entity.SalesRep
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.Name, &rep.Role, &rep.Division, &rep.IsActive, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sales rep: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// Count returns the number of reps. The first-admin bootstrap checks this.
func (r *SalesRepRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM sales_reps`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales reps: %w", err)
	}
	return n, nil
}

// Update persists changes to a rep.
func (r *SalesRepRepo) Update(ctx context.Context, rep *entity.SalesRep) error {
	query := `
		UPDATE sales_reps SET name = $2, role = $3, division = $4, is_active = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, rep.ID, rep.Name, rep.Role, rep.Division, rep.IsActive)
	if err != nil {
		return fmt.Errorf("update sales rep: %w", err)
	}
	return nil
}
