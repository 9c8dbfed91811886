package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
dbname = "container_slots"
user = "slots"
password = "secret"

[logs]
level = "debug"

[metrics]
enabled = true

[container]
rows = 2
cols = 10

[[container.price_tiers]]
up_to_cell = 10
price = 250

[[container.price_tiers]]
up_to_cell = 20
price = 400
`

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout, "unset fields keep defaults")
	assert.Equal(t, 2, cfg.Container.Rows)
	assert.Equal(t, 10, cfg.Container.Cols)
	assert.Equal(t, domain.DefaultContainerEnvelope, cfg.Container.Envelope.ToDomain())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, []domain.PriceTier{{UpToCell: 10, Price: 250}, {UpToCell: 20, Price: 400}}, cfg.Container.Tiers())
	assert.Equal(t, "host=db port=5432 user=slots password=secret dbname=container_slots sslmode=disable", cfg.Database.DSN())
}

func TestParse_RejectsInvalidGrid(t *testing.T) {
	_, err := Parse(`
[database]
dbname = "x"

[container]
rows = 0
`)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParse_RequiresDatabaseName(t *testing.T) {
	_, err := Parse(`[server]
http_port = 8080`)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_UsesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
