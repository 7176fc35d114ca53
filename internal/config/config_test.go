package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "chef"
password = "from-file"
dbname = "reservations"

[chef_catalog]
url = "http://catalog:8080"

[payment_service]
url = "http://payments:8080"
timeout = 3

[booking]
deposit_percent = 50
refund_policy = "notice"
retry_attempts = 5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	// .env ищется в рабочей директории
	t.Chdir(dir)
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "from-file", cfg.Database.Password)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "reservation-events", cfg.Redis.Channel)
	assert.Equal(t, 5, cfg.ChefCatalog.Timeout)
	assert.Equal(t, 3, cfg.PaymentService.Timeout)
	assert.Equal(t, 50, cfg.Booking.DepositPercent)
	assert.Equal(t, "notice", cfg.Booking.RefundPolicy)

	budget := cfg.Booking.RetryBudget()
	assert.Equal(t, uint(5), budget.MaxAttempts)
	assert.Equal(t, 50*time.Millisecond, budget.InitialInterval)
	assert.Equal(t, 500*time.Millisecond, budget.MaxInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("PAYMENT_SERVICE_URL", "http://payments.internal")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "http://payments.internal", cfg.PaymentService.URL)
}

func TestLoad_DotEnv(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	require.NoError(t, os.WriteFile(".env", []byte("REDIS_PASSWORD=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("REDIS_PASSWORD") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Redis.Password)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("bad env port", func(t *testing.T) {
		path := writeConfig(t, sampleConfig)
		t.Setenv("DB_PORT", "abc")
		_, err := Load(path)
		assert.ErrorContains(t, err, "DB_PORT")
	})

	t.Run("missing payment url", func(t *testing.T) {
		path := writeConfig(t, `
[database]
dbname = "x"
[chef_catalog]
url = "http://catalog"
`)
		t.Setenv("PAYMENT_SERVICE_URL", "")
		_, err := Load(path)
		assert.ErrorContains(t, err, "payment_service.url")
	})

	t.Run("deposit out of range", func(t *testing.T) {
		cfg := defaults()
		cfg.ChefCatalog.URL = "http://c"
		cfg.PaymentService.URL = "http://p"
		cfg.Database.DBName = "x"
		cfg.Booking.DepositPercent = 120
		assert.ErrorContains(t, cfg.Validate(), "deposit_percent")
	})
}

func TestDatabaseConfig_URL(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "app", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/app?sslmode=disable", c.URL())
	assert.Contains(t, c.DSN(), "dbname=app")
}
