package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"INVOICE_APP_NAME":          os.Getenv("INVOICE_APP_NAME"),
		"INVOICE_APP_ENV":           os.Getenv("INVOICE_APP_ENV"),
		"INVOICE_APP_PORT":          os.Getenv("INVOICE_APP_PORT"),
		"INVOICE_DATABASE_HOST":     os.Getenv("INVOICE_DATABASE_HOST"),
		"INVOICE_DATABASE_PORT":     os.Getenv("INVOICE_DATABASE_PORT"),
		"INVOICE_DATABASE_USER":     os.Getenv("INVOICE_DATABASE_USER"),
		"INVOICE_DATABASE_PASSWORD": os.Getenv("INVOICE_DATABASE_PASSWORD"),
		"INVOICE_DATABASE_DBNAME":   os.Getenv("INVOICE_DATABASE_DBNAME"),
		"INVOICE_DATABASE_SSLMODE":  os.Getenv("INVOICE_DATABASE_SSLMODE"),
		"INVOICE_DATABASE_MAX_OPEN_CONNS": os.Getenv("INVOICE_DATABASE_MAX_OPEN_CONNS"),
		"INVOICE_DATABASE_MAX_IDLE_CONNS": os.Getenv("INVOICE_DATABASE_MAX_IDLE_CONNS"),
		"INVOICE_JWT_SECRET":        os.Getenv("INVOICE_JWT_SECRET"),
		"INVOICE_STRIPE_SECRET_KEY": os.Getenv("INVOICE_STRIPE_SECRET_KEY"),
		"INVOICE_STRIPE_CURRENCY":   os.Getenv("INVOICE_STRIPE_CURRENCY"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "invoice-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "invoices", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "usd", cfg.Stripe.Currency)
		assert.Equal(t, 587, cfg.Email.Port)
	})

	t.Run("loads values from environment variables with INVOICE prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("INVOICE_APP_NAME", "test-app")
		os.Setenv("INVOICE_APP_PORT", "9000")
		os.Setenv("INVOICE_DATABASE_HOST", "testdb.local")
		os.Setenv("INVOICE_DATABASE_PORT", "5433")
		os.Setenv("INVOICE_STRIPE_CURRENCY", "eur")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "eur", cfg.Stripe.Currency)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("INVOICE_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("INVOICE_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("requires jwt.secret in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("INVOICE_APP_ENV", "production")
		os.Setenv("INVOICE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("INVOICE_DATABASE_SSLMODE", "require")
		os.Setenv("INVOICE_STRIPE_SECRET_KEY", "sk_live_x")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required in production")
	})

	t.Run("requires stripe.secret_key in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("INVOICE_APP_ENV", "production")
		os.Setenv("INVOICE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("INVOICE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("INVOICE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stripe.secret_key is required in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("INVOICE_APP_ENV", "production")
		os.Setenv("INVOICE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("INVOICE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("INVOICE_DATABASE_SSLMODE", "require")
		os.Setenv("INVOICE_STRIPE_SECRET_KEY", "sk_live_x")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}

func TestRedirectURLs(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{BaseURL: "https://invoices.example.com"},
		Stripe: StripeConfig{SuccessPath: "/payment/success", CancelPath: "/payment/cancel"},
	}

	assert.Equal(t, "https://invoices.example.com/payment/success?session_id={CHECKOUT_SESSION_ID}", cfg.SuccessURL())
	assert.Equal(t, "https://invoices.example.com/payment/cancel", cfg.CancelURL())
}
