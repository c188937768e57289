package port

import (
	"context"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/domain/entity"
)

// ListOptions controls invoice listing. OrderBy uses the column name with an
// optional leading "-" for descending order; the default is "-created_at".
// Limit of zero means no limit.
type ListOptions struct {
	OrderBy string
	Limit   int
}

// InvoiceRepository defines persistence operations for Invoice. Every
// operation takes the owning principal explicitly; implementations must scope
// all reads and writes to it. A missing record and a cross-owner record are
// both reported as entity.ErrNotFound.
type InvoiceRepository interface {
	// Create stores a new invoice for owner, assigning ID and CreatedAt.
	// The owner on the stored record is always the given principal, never
	// taken from the payload.
	Create(ctx context.Context, owner string, invoice *entity.Invoice) error

	// GetByID retrieves an invoice by ID, scoped to owner.
	GetByID(ctx context.Context, id, owner string) (*entity.Invoice, error)

	// List returns the owner's invoices, by default newest first.
	List(ctx context.Context, owner string, opts ListOptions) ([]*entity.Invoice, error)

	// Update replaces the mutable fields of an existing invoice.
	Update(ctx context.Context, id, owner string, invoice *entity.Invoice) error

	// Delete removes an invoice by ID, scoped to owner.
	Delete(ctx context.Context, id, owner string) error
}

// UserRepository defines persistence operations for User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
