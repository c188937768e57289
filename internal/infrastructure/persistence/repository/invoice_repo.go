package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/application/port"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/domain/entity"
	"go.uber.org/zap"
)

const invoiceColumns = `id, owner, vendor_name, product_name, invoice_number, serial_number,
		product_category, purchase_date, amount, currency, warranty_period_months,
		warranty_start_date, warranty_end_date, notes, file_url, created_at, updated_at`

// Columns accepted by List ordering. Anything else falls back to the default.
var orderableColumns = map[string]bool{
	"created_at":    true,
	"purchase_date": true,
	"amount":        true,
}

// InvoiceRepository implements port.InvoiceRepository on SQLite
type InvoiceRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *sql.DB, logger *zap.Logger) port.InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new invoice scoped to owner, assigning ID and timestamps.
// The owner column always comes from the principal, never from the payload.
func (r *InvoiceRepository) Create(ctx context.Context, owner string, invoice *entity.Invoice) error {
	if owner == "" {
		return entity.ErrUnauthorized
	}

	invoice.ID = uuid.NewString()
	invoice.Owner = owner
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID,
		invoice.Owner,
		invoice.VendorName,
		invoice.ProductName,
		invoice.InvoiceNumber,
		invoice.SerialNumber,
		invoice.ProductCategory,
		invoice.PurchaseDate,
		invoice.Amount,
		invoice.Currency,
		invoice.WarrantyPeriodMonths,
		invoice.WarrantyStartDate,
		invoice.WarrantyEndDate,
		invoice.Notes,
		invoice.FileURL,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create invoice", zap.Error(err))
		return fmt.Errorf("%w: create invoice: %v", entity.ErrRepository, err)
	}

	return nil
}

// GetByID retrieves an invoice by ID, scoped to owner
func (r *InvoiceRepository) GetByID(ctx context.Context, id, owner string) (*entity.Invoice, error) {
	if owner == "" {
		return nil, entity.ErrUnauthorized
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = ? AND owner = ?`

	invoice, err := scanInvoice(r.db.QueryRowContext(ctx, query, id, owner))
	if err == sql.ErrNoRows {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get invoice", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: get invoice: %v", entity.ErrRepository, err)
	}

	return invoice, nil
}

// List returns the owner's invoices, newest first by default
func (r *InvoiceRepository) List(ctx context.Context, owner string, opts port.ListOptions) ([]*entity.Invoice, error) {
	if owner == "" {
		return nil, entity.ErrUnauthorized
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE owner = ? ORDER BY ` + orderClause(opts.OrderBy)
	args := []interface{}{owner}
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list invoices", zap.Error(err))
		return nil, fmt.Errorf("%w: list invoices: %v", entity.ErrRepository, err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan invoice: %v", entity.ErrRepository, err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list invoices: %v", entity.ErrRepository, err)
	}
	return invoices, nil
}

// Update replaces the mutable fields of an invoice. Ownership and existence
// are checked in one statement: a cross-owner ID reports ErrNotFound.
func (r *InvoiceRepository) Update(ctx context.Context, id, owner string, invoice *entity.Invoice) error {
	if owner == "" {
		return entity.ErrUnauthorized
	}

	invoice.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE invoices
		SET vendor_name = ?, product_name = ?, invoice_number = ?, serial_number = ?,
			product_category = ?, purchase_date = ?, amount = ?, currency = ?,
			warranty_period_months = ?, warranty_start_date = ?, warranty_end_date = ?,
			notes = ?, file_url = ?, updated_at = ?
		WHERE id = ? AND owner = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		invoice.VendorName,
		invoice.ProductName,
		invoice.InvoiceNumber,
		invoice.SerialNumber,
		invoice.ProductCategory,
		invoice.PurchaseDate,
		invoice.Amount,
		invoice.Currency,
		invoice.WarrantyPeriodMonths,
		invoice.WarrantyStartDate,
		invoice.WarrantyEndDate,
		invoice.Notes,
		invoice.FileURL,
		invoice.UpdatedAt,
		id,
		owner,
	)
	if err != nil {
		r.logger.Error("Failed to update invoice", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: update invoice: %v", entity.ErrRepository, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update invoice: %v", entity.ErrRepository, err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	invoice.ID = id
	invoice.Owner = owner
	return nil
}

// Delete removes an invoice by ID, scoped to owner
func (r *InvoiceRepository) Delete(ctx context.Context, id, owner string) error {
	if owner == "" {
		return entity.ErrUnauthorized
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = ? AND owner = ?", id, owner)
	if err != nil {
		r.logger.Error("Failed to delete invoice", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: delete invoice: %v", entity.ErrRepository, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete invoice: %v", entity.ErrRepository, err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// orderClause maps a "-column" style order spec to SQL, defaulting to newest
// first. Column names are whitelisted.
func orderClause(orderBy string) string {
	if orderBy == "" {
		orderBy = "-created_at"
	}

	direction := "ASC"
	column := orderBy
	if strings.HasPrefix(orderBy, "-") {
		direction = "DESC"
		column = orderBy[1:]
	}

	if !orderableColumns[column] {
		return "created_at DESC"
	}
	return column + " " + direction
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInvoice(row rowScanner) (*entity.Invoice, error) {
	var invoice entity.Invoice
	var months sql.NullInt64
	var startDate, endDate sql.NullTime

	err := row.Scan(
		&invoice.ID,
		&invoice.Owner,
		&invoice.VendorName,
		&invoice.ProductName,
		&invoice.InvoiceNumber,
		&invoice.SerialNumber,
		&invoice.ProductCategory,
		&invoice.PurchaseDate,
		&invoice.Amount,
		&invoice.Currency,
		&months,
		&startDate,
		&endDate,
		&invoice.Notes,
		&invoice.FileURL,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if months.Valid {
		m := int(months.Int64)
		invoice.WarrantyPeriodMonths = &m
	}
	if startDate.Valid {
		invoice.WarrantyStartDate = &startDate.Time
	}
	if endDate.Valid {
		invoice.WarrantyEndDate = &endDate.Time
	}

	return &invoice, nil
}
