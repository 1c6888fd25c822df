package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/homeledger/backend/config"
	"github.com/homeledger/backend/internal/infra/dependency"
	"github.com/homeledger/backend/internal/integration/persistence/model"
)

func useTestInjector(t *testing.T) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dbSQL, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.ObligationModel{},
		&model.TransactionModel{},
		&model.HouseholdMemberModel{},
		&model.VehicleModel{},
		&model.PetModel{},
		&model.AppointmentModel{},
		&model.MedicalRecordModel{},
		&model.GrowthRecordModel{},
		&model.MonthlyReportModel{},
	))

	cfg := config.Load()
	cfg.Gemini.APIKey = ""
	cfg.Notification.Channel = config.NotificationChannelLog
	cfg.Rules.Path = ""

	original := openInjector
	openInjector = func() (*dependency.Injector, func(), error) {
		injector, err := dependency.NewInjector(cfg, db, nil)
		return injector, func() {}, err
	}
	t.Cleanup(func() { openInjector = original })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagUser, flagPeriod, flagNotify, flagAll, flagVerbose = "", "", false, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands_RequireUser(t *testing.T) {
	useTestInjector(t)

	for _, name := range []string{"insights", "snapshot", "regenerate", "ensure"} {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, name)
			assert.ErrorContains(t, err, "--user is required")
		})
	}

	_, err := run(t, "insights", "--user", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid --user")
}

func TestInsightsCommand(t *testing.T) {
	useTestInjector(t)

	out, err := run(t, "insights", "--user", uuid.NewString())
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Contains(t, body, "insights")
	assert.Equal(t, false, body["generated"])
}

func TestRegenerateCommand(t *testing.T) {
	useTestInjector(t)
	userID := uuid.NewString()

	out, err := run(t, "regenerate", "--user", userID, "--period", "2024-03")
	require.NoError(t, err)

	var first struct {
		Created bool `json:"created"`
		Report  struct {
			ID         string `json:"id"`
			PeriodKey  string `json:"period_key"`
			ShareToken string `json:"share_token"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &first))
	assert.True(t, first.Created)
	assert.Equal(t, "2024-03", first.Report.PeriodKey)

	out, err = run(t, "regenerate", "--user", userID, "--period", "2024-03")
	require.NoError(t, err)

	var second = first
	require.NoError(t, json.Unmarshal([]byte(out), &second))
	assert.False(t, second.Created)
	assert.Equal(t, first.Report.ID, second.Report.ID)
	assert.Equal(t, first.Report.ShareToken, second.Report.ShareToken)
}

func TestRegenerateCommand_InvalidPeriod(t *testing.T) {
	useTestInjector(t)

	_, err := run(t, "regenerate", "--user", uuid.NewString(), "--period", "March")
	assert.ErrorContains(t, err, "expected YYYY-MM")
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2025, time.July, 19, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "default is current month", value: "", want: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{name: "explicit month", value: "2024-02", want: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{name: "day is dropped", value: "2024-02-10", want: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{name: "month name rejected", value: "February", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePeriod(tt.value, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}
