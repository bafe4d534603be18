package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/invoicing"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/shared"
	"github.com/mhassanrahi/invoice-asaan/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoicing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// invoiceCustomerRow is the scan target for invoice-customer joins
type invoiceCustomerRow struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	Value          int64
	Description    string
	Status         string
	CreatedBy      string
	OrganizationID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CustomerName   string
	CustomerEmail  string
}

func (row *invoiceCustomerRow) toDomain() invoicing.InvoiceWithCustomer {
	return invoicing.InvoiceWithCustomer{
		Invoice: invoicing.Invoice{
			BaseEntity: shared.BaseEntity{
				ID:        row.ID,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			CustomerID:     row.CustomerID,
			Value:          row.Value,
			Description:    row.Description,
			Status:         invoicing.Status(row.Status),
			CreatedBy:      row.CreatedBy,
			OrganizationID: row.OrganizationID,
		},
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
	}
}

// scoped applies the access scope predicate to an invoice query. Every
// read and mutation goes through here; there is no unscoped path.
func (r *GormInvoiceRepository) scoped(query *gorm.DB, scope invoicing.AccessScope) *gorm.DB {
	if scope.IsOrganization() {
		return query.Where("invoices.organization_id = ?", scope.OrganizationID())
	}
	return query.Where("invoices.organization_id IS NULL AND invoices.created_by = ?", scope.UserID())
}

func (r *GormInvoiceRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.id, invoices.customer_id, invoices.value, invoices.description, invoices.status, invoices.created_by, invoices.organization_id, invoices.created_at, invoices.updated_at, customers.name AS customer_name, customers.email AS customer_email").
		Joins("JOIN customers ON customers.id = invoices.customer_id")
}

// CreateWithCustomer inserts the customer and the invoice in one transaction
func (r *GormInvoiceRepository) CreateWithCustomer(ctx context.Context, customer *invoicing.Customer, invoice *invoicing.Invoice) error {
	customerModel := models.CustomerModelFromDomain(customer)
	invoiceModel := models.InvoiceModelFromDomain(invoice)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customerModel).Error; err != nil {
			return err
		}
		return tx.Create(invoiceModel).Error
	})
}

// FindByIDInScope returns the invoice joined with its customer
func (r *GormInvoiceRepository) FindByIDInScope(ctx context.Context, scope invoicing.AccessScope, id uuid.UUID) (*invoicing.InvoiceWithCustomer, error) {
	var row invoiceCustomerRow
	query := r.scoped(r.joined(ctx), scope).Where("invoices.id = ?", id)

	if err := query.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	result := row.toDomain()
	return &result, nil
}

// FindAllInScope returns all invoices visible to the scope
func (r *GormInvoiceRepository) FindAllInScope(ctx context.Context, scope invoicing.AccessScope, filter shared.Filter) ([]invoicing.InvoiceWithCustomer, error) {
	var rows []invoiceCustomerRow
	query := r.applyFilter(r.scoped(r.joined(ctx), scope), filter)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	invoices := make([]invoicing.InvoiceWithCustomer, len(rows))
	for i, row := range rows {
		invoices[i] = row.toDomain()
	}
	return invoices, nil
}

// UpdateStatusInScope sets the status of the invoice matching id and scope
func (r *GormInvoiceRepository) UpdateStatusInScope(ctx context.Context, scope invoicing.AccessScope, id uuid.UUID, status invoicing.Status) (int64, error) {
	query := r.scoped(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), scope).
		Where("invoices.id = ?", id)

	result := query.Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteInScope deletes the invoice matching id and scope. The customer
// row is left in place.
func (r *GormInvoiceRepository) DeleteInScope(ctx context.Context, scope invoicing.AccessScope, id uuid.UUID) (int64, error) {
	query := r.scoped(r.db.WithContext(ctx), scope).Where("invoices.id = ?", id)

	result := query.Delete(&models.InvoiceModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// sortableColumns maps exposed sort keys to columns. Ordering is
// interpolated into the SQL, so only whitelisted columns are accepted;
// anything else falls back to the default.
var sortableColumns = map[string]string{
	"created_at": "invoices.created_at",
	"value":      "invoices.value",
	"status":     "invoices.status",
}

// applyFilter applies pagination and ordering to a query
func (r *GormInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	orderBy, ok := sortableColumns[filter.OrderBy]
	if !ok {
		orderBy = "invoices.created_at"
	}
	orderDir := filter.OrderDir
	if orderDir != "asc" {
		orderDir = "desc"
	}
	query = query.Order(orderBy + " " + orderDir)

	if filter.PageSize > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PageSize
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

var _ invoicing.InvoiceRepository = (*GormInvoiceRepository)(nil)
