package migrate

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/angelmondragon/activitycart/pkg/config"
	"github.com/angelmondragon/activitycart/pkg/db"
	"github.com/angelmondragon/activitycart/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteClient(t *testing.T) *db.Client {
	t.Helper()
	client, err := db.New(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "migrate.db"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func tableExists(t *testing.T, client *db.Client) bool {
	t.Helper()
	return client.DB().Migrator().HasTable("kv_entries")
}

func TestEmbeddedMigrationsAreValid(t *testing.T) {
	require.NoError(t, ValidateEmbedded())
	require.NoError(t, ValidateFS(Embedded(), embeddedDir))
}

func TestValidateFSRejectsBadFiles(t *testing.T) {
	badName := fstest.MapFS{
		"m/create.sql": {Data: []byte("-- +goose Up\n-- +goose Down\n")},
	}
	assert.Error(t, ValidateFS(badName, "m"))

	missingDown := fstest.MapFS{
		"m/20250101000000_x.sql": {Data: []byte("-- +goose Up\nSELECT 1;\n")},
	}
	assert.Error(t, ValidateFS(missingDown, "m"))

	duplicate := fstest.MapFS{
		"m/20250101000000_a.sql": {Data: []byte("-- +goose Up\n-- +goose Down\n")},
		"m/20250101000000_b.sql": {Data: []byte("-- +goose Up\n-- +goose Down\n")},
	}
	assert.Error(t, ValidateFS(duplicate, "m"))
}

func TestRunUpAndDownSQLite(t *testing.T) {
	client := newSQLiteClient(t)
	sqlDB, err := client.SQLDB()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, Run(ctx, sqlDB, config.DriverSQLite, "up"))
	assert.True(t, tableExists(t, client))

	require.NoError(t, Run(ctx, sqlDB, config.DriverSQLite, "down"))
	assert.False(t, tableExists(t, client))

	require.NoError(t, MigrateToVersion(ctx, sqlDB, config.DriverSQLite, "20250917090000"))
	assert.True(t, tableExists(t, client))
}

func TestRunRejectsUnknownDriver(t *testing.T) {
	client := newSQLiteClient(t)
	sqlDB, err := client.SQLDB()
	require.NoError(t, err)

	assert.Error(t, Run(context.Background(), sqlDB, "mysql", "up"))
	assert.Error(t, Run(context.Background(), nil, config.DriverSQLite, "up"))
}

func TestMaybeRunDevHonoursFlags(t *testing.T) {
	client := newSQLiteClient(t)
	logg := logger.New(logger.Options{ServiceName: "test"})

	cfg := &config.Config{App: config.AppConfig{Env: config.AppEnvProd}}
	cfg.FeatureFlags.AutoMigrate = true
	require.NoError(t, MaybeRunDev(context.Background(), cfg, logg, client))
	assert.False(t, tableExists(t, client))

	cfg.App.Env = config.AppEnvDev
	require.NoError(t, MaybeRunDev(context.Background(), cfg, logg, client))
	assert.True(t, tableExists(t, client))
}
