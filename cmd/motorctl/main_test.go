package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor/internal/application/dto"
	"motor/internal/domain/constant"
)

func TestMigrateAndSweep(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "motor.db")
	t.Setenv("MOTOR_DB_PATH", dbPath)
	t.Setenv("MOTOR_LOG_LEVEL", "error")

	require.NoError(t, executeContext(context.Background(), "migrate"))
	assert.FileExists(t, dbPath)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"sweep", "mileage"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	var report dto.SweepReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, constant.SweepMileage, report.Kind)
	assert.NotEmpty(t, report.RunID)
}

func TestSweepRejectsArgs(t *testing.T) {
	t.Setenv("MOTOR_DB_PATH", filepath.Join(t.TempDir(), "motor.db"))
	assert.Error(t, executeContext(context.Background(), "sweep", "due", "extra"))
}

func executeContext(ctx context.Context, args ...string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
