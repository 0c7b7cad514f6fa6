package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor/internal/domain/constant"
	"motor/internal/pkg/config"
	"motor/internal/pkg/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.DBPath = "file::memory:"
	return cfg
}

func TestNewWiresServices(t *testing.T) {
	app, err := New(testConfig(t), logger.NewNop())
	require.NoError(t, err)
	defer func() { assert.NoError(t, app.Close()) }()

	assert.Nil(t, app.Line)
	require.NoError(t, app.Scheduler.RegisterSweeps("0 0 9 * * *", "0 0 9 * * MON"))

	report := app.Dispatch.RunDueSweep(context.Background())
	assert.Equal(t, constant.SweepDue, report.Kind)
	assert.Zero(t, report.Sent+report.Failed)

	all, err := app.Reminders.ListAllReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNewWithLineEnabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Line.ChannelSecret = "secret"
	cfg.Line.ChannelToken = "token"
	cfg.Line.AdminUserID = "Uadmin"

	app, err := New(cfg, logger.NewNop())
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.Line)
	assert.Equal(t, "Uadmin", app.Line.AdminUserID())
}
