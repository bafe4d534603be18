package invoicing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	customerID := uuid.New()

	t.Run("creates pending organization invoice", func(t *testing.T) {
		identity := Identity{UserID: "user-1", OrganizationID: "org-1"}

		inv, err := NewInvoice(customerID, 1000, "Consulting", identity)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, inv.ID)
		assert.Equal(t, customerID, inv.CustomerID)
		assert.Equal(t, int64(1000), inv.Value)
		assert.Equal(t, StatusPending, inv.Status)
		assert.Equal(t, "user-1", inv.CreatedBy)
		require.NotNil(t, inv.OrganizationID)
		assert.Equal(t, "org-1", *inv.OrganizationID)
	})

	t.Run("creates private invoice without organization", func(t *testing.T) {
		identity := Identity{UserID: "user-1"}

		inv, err := NewInvoice(customerID, 500, "", identity)

		require.NoError(t, err)
		assert.Nil(t, inv.OrganizationID)
		assert.Equal(t, "user-1", inv.CreatedBy)
	})

	t.Run("fails without identity", func(t *testing.T) {
		inv, err := NewInvoice(customerID, 1000, "x", Identity{})

		assert.ErrorIs(t, err, shared.ErrUnauthorized)
		assert.Nil(t, inv)
	})

	t.Run("fails with nil customer", func(t *testing.T) {
		inv, err := NewInvoice(uuid.Nil, 1000, "x", Identity{UserID: "user-1"})

		assert.Error(t, err)
		assert.Nil(t, inv)
		assert.Contains(t, err.Error(), "customer")
	})

	t.Run("fails with negative value", func(t *testing.T) {
		inv, err := NewInvoice(customerID, -1, "x", Identity{UserID: "user-1"})

		assert.Error(t, err)
		assert.Nil(t, inv)
		assert.Contains(t, err.Error(), "negative")
	})
}

func TestInvoiceSetStatus(t *testing.T) {
	inv, err := NewInvoice(uuid.New(), 1000, "x", Identity{UserID: "user-1"})
	require.NoError(t, err)

	t.Run("accepts every canonical status", func(t *testing.T) {
		for _, opt := range AvailableStatuses {
			require.NoError(t, inv.SetStatus(opt.ID))
			assert.Equal(t, opt.ID, inv.Status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := inv.SetStatus(Status("archived"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown invoice status")
	})
}

func TestInvoicePayable(t *testing.T) {
	identity := Identity{UserID: "user-1"}

	t.Run("pending positive invoice is payable", func(t *testing.T) {
		inv, _ := NewInvoice(uuid.New(), 100, "x", identity)
		assert.True(t, inv.Payable())
	})

	t.Run("paid invoice is not payable", func(t *testing.T) {
		inv, _ := NewInvoice(uuid.New(), 100, "x", identity)
		require.NoError(t, inv.SetStatus(StatusPaid))
		assert.False(t, inv.Payable())
		assert.True(t, inv.IsPaid())
	})

	t.Run("zero value invoice is not payable", func(t *testing.T) {
		inv, _ := NewInvoice(uuid.New(), 0, "x", identity)
		assert.False(t, inv.Payable())
	})
}
