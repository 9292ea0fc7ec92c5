package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DanRulev/ordkort.git/internal/config"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/storage/db"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const legacyDump = `{
  "users": [{"id": 10, "username": "liza", "password_hash": "h1"}],
  "entries": [
    {"id": 5, "user_id": 10, "text": "run", "translation": "løbe",
     "notes": "Jeg løber hver morgen.", "is_external_input": true,
     "created_at": "2026-03-01T09:30:00Z"}
  ],
  "exercise_logs": [
    {"user_id": 10, "created_at": "2026-03-01T10:00:00"},
    {"user_id": 10, "created_at": "2026-03-01T11:00:00"},
    {"user_id": null, "created_at": "2026-03-01T12:00:00"}
  ]
}`

func testConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		Env: "development",
		DB: config.DBConfig{
			Driver:     db.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "ordkort.db"),
			Cfg:        config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
		},
	}
}

func runCLI(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()

	app := newCLIApp(cfg, zap.NewNop())
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out

	err := app.RunContext(context.Background(), append([]string{"ordkort"}, args...))
	return out.String(), err
}

func TestCLI_ImportExport(t *testing.T) {
	cfg := testConfig(t)

	_, err := runCLI(t, cfg, "migrate")
	require.NoError(t, err)

	in := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, os.WriteFile(in, []byte(legacyDump), 0o600))

	out, err := runCLI(t, cfg, "import", "--path", in)
	require.NoError(t, err)

	var summary models.ImportSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, models.ImportSummary{Users: 1, Entries: 1, DailyExerciseTotals: 1}, summary)

	exported := filepath.Join(t.TempDir(), "export.json")
	_, err = runCLI(t, cfg, "export", "-p", exported)
	require.NoError(t, err)

	raw, err := os.ReadFile(exported)
	require.NoError(t, err)

	var dump models.Dump
	require.NoError(t, json.Unmarshal(raw, &dump))
	require.Len(t, dump.Entries, 1)
	assert.Equal(t, "løbe", dump.Entries[0].Translation)
	assert.Equal(t, "Jeg løber hver morgen.", dump.Entries[0].Notes)
	assert.Equal(t, []models.DailyExerciseTotal{{UserID: 10, Day: "2026-03-01", Count: 2}}, dump.DailyExerciseTotals)

	// without --path the dump goes to stdout
	out, err = runCLI(t, cfg, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"username": "liza"`)
}

func TestCLI_Errors(t *testing.T) {
	cfg := testConfig(t)

	_, err := runCLI(t, cfg, "bot")
	assert.ErrorIs(t, err, errNoBotToken)

	_, err = runCLI(t, cfg, "import")
	assert.Error(t, err)

	_, err = runCLI(t, cfg, "import", "--path", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read import file")

	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"users": [`), 0o600))
	_, err = runCLI(t, cfg, "import", "--path", broken)
	assert.ErrorContains(t, err, "decode import file")

	cfg.DB.Driver = "mysql"
	_, err = runCLI(t, cfg, "migrate")
	assert.ErrorContains(t, err, "unsupported db driver")
}

func TestCLI_LoadedConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "configs"), "default")
	require.NoError(t, err)

	cfg.DB.SQLitePath = filepath.Join(t.TempDir(), "ordkort.db")
	cfg.Metrics.Enabled = false

	app := newCLIApp(*cfg, zap.NewNop())
	var out bytes.Buffer
	app.Writer = &out

	require.NoError(t, app.RunContext(context.Background(), []string{"ordkort", "migrate"}))
	require.NoError(t, app.RunContext(context.Background(), []string{"ordkort", "export"}))
	assert.Contains(t, out.String(), `"users": []`)
}
