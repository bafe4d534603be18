package invoicing

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer successfully", func(t *testing.T) {
		org := "org-1"
		customer, err := NewCustomer("Acme Corp", "billing@acme.test", &org)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, customer.ID)
		assert.Equal(t, "Acme Corp", customer.Name)
		assert.Equal(t, "billing@acme.test", customer.Email)
		require.NotNil(t, customer.OrganizationID)
		assert.Equal(t, "org-1", *customer.OrganizationID)
	})

	t.Run("creates private customer without organization", func(t *testing.T) {
		customer, err := NewCustomer("Jane Doe", "jane@example.test", nil)

		require.NoError(t, err)
		assert.Nil(t, customer.OrganizationID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		customer, err := NewCustomer("", "a@b.co", nil)

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with overlong name", func(t *testing.T) {
		customer, err := NewCustomer(strings.Repeat("a", 256), "a@b.co", nil)

		assert.Error(t, err)
		assert.Nil(t, customer)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "a@b", "@b.co"} {
			customer, err := NewCustomer("Acme", email, nil)

			assert.Error(t, err, "email %q", email)
			assert.Nil(t, customer)
		}
	})
}
