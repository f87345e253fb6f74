package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/b2fa/internal/config"
	"github.com/cleared-dev/b2fa/internal/reconcile"
)

func TestRunConvert(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.csv")
	var out bytes.Buffer
	err := runConvert(&out, zerolog.Nop(), config.Default(), convertOptions{}, "../../testdata/statement.csv", outPath)
	require.NoError(t, err)
	assert.Equal(t, "Done!\n", out.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "03/06/2021,-950.00,\"RENT, FLAT 2\"\n")
}

func TestRunConvert_StrictMismatch(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.csv")
	var out bytes.Buffer
	err := runConvert(&out, zerolog.Nop(), config.Default(), convertOptions{strict: true}, "../../testdata/statement_mismatch.csv", outPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, reconcile.ErrUnbalanced)
	assert.Contains(t, out.String(), "$5.00")
}

func TestRunConvert_ReconcileDisabledInConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Reconcile.Enabled = false
	cfg.Reconcile.FailOnMismatch = true

	outPath := filepath.Join(t.TempDir(), "out.csv")
	var out bytes.Buffer
	err := runConvert(&out, zerolog.Nop(), cfg, convertOptions{}, "../../testdata/statement_mismatch.csv", outPath)
	require.NoError(t, err)
	assert.Equal(t, "Done!\n", out.String())
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	var out bytes.Buffer
	require.NoError(t, runInit(&out, path, false))
	assert.Error(t, runInit(&out, path, false))
	assert.NoError(t, runInit(&out, path, true))
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCheck(&out, "../../testdata/statement-converted.csv"))
	assert.Equal(t, "4 transactions, net 1246.50\n", out.String())
}

func TestRunCheck_Missing(t *testing.T) {
	var out bytes.Buffer
	err := runCheck(&out, filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestUsageError(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"only-one.csv"})
	cmd.SetOut(&bytes.Buffer{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, IsUsageError(err))
	assert.Equal(t, usageText, err.Error())
}
