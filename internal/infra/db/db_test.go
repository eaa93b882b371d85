package db_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantsy/mercuryhook/internal/infra/db"
)

func newSQLite(t *testing.T, namespace string) *db.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, db.Migrate("sqlite", dsn, namespace))
	database, err := db.New("sqlite", dsn, namespace)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestTableName_SQLiteNamespace(t *testing.T) {
	database := newSQLite(t, "tenant1")
	assert.Equal(t, "tenant1_trigger_subscriptions", database.TableName("trigger_subscriptions"))

	var name string
	err := database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`,
		"tenant1_trigger_subscriptions",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "tenant1_trigger_subscriptions", name)
}

func TestTableName_NoNamespace(t *testing.T) {
	database := newSQLite(t, "")
	assert.Equal(t, "trigger_subscriptions", database.TableName("trigger_subscriptions"))
}

func TestRebind(t *testing.T) {
	database := newSQLite(t, "")
	assert.Equal(t, "SELECT * FROM t WHERE a = ? AND b = ?", database.Rebind("SELECT * FROM t WHERE a = $1 AND b = $2"))
	assert.Equal(t, "sqlite", database.Driver())
}

func TestMigrate_Idempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, db.Migrate("sqlite", dsn, ""))
	require.NoError(t, db.Migrate("sqlite", dsn, ""))
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := db.New("mysql", "dsn", "")
	assert.Error(t, err)
}

func TestHealthCheckMiddleware(t *testing.T) {
	database := newSQLite(t, "")
	h := db.HealthCheckMiddleware(database)(nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.Close())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
