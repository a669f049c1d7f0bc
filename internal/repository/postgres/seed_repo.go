package postgres

import (
	"context"

	"go-investment-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedRepo struct {
	db *pgxpool.Pool
}

func NewSeedRepository(db *pgxpool.Pool) domain.SeedRepository {
	return &seedRepo{db: db}
}

func (r *seedRepo) CategoryExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sales_categories WHERE name = $1)`, name,
	).Scan(&exists)
	return exists, err
}

func (r *seedRepo) InsertCategory(ctx context.Context, category *domain.SalesCategory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales_categories (id, name, sort_order) VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.SortOrder,
	)
	return err
}

func (r *seedRepo) AdminExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM admin_users WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

func (r *seedRepo) InsertAdmin(ctx context.Context, user *domain.AdminUser) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO admin_users (id, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.PasswordHash, user.Role,
	)
	return err
}
