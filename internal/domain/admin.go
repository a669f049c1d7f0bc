package domain

import "context"

// SalesCategory is a fixed classification row in the internal sales-admin store
type SalesCategory struct {
	ID        string
	Name      string
	SortOrder int
}

// AdminUser is an account in the internal sales-admin store
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
}

// SeedRepository writes the fixed initial records for the sales-admin store.
// Every insert is guarded by an existence check so the seeder stays idempotent.
type SeedRepository interface {
	CategoryExists(ctx context.Context, name string) (bool, error)
	InsertCategory(ctx context.Context, category *SalesCategory) error
	AdminExists(ctx context.Context, email string) (bool, error)
	InsertAdmin(ctx context.Context, user *AdminUser) error
}
