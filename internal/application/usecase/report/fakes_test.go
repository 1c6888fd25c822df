package report

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/household"
	"github.com/homeledger/backend/internal/domain/entity"
)

var errStoreDown = errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

type fakeSnapshots struct {
	snapshot *household.Snapshot
	calls    int
}

func (f *fakeSnapshots) Execute(_ context.Context, userID uuid.UUID) *household.Snapshot {
	f.calls++
	f.snapshot.UserID = userID
	return f.snapshot
}

// memoryReports keeps reports in memory keyed by (user, period).
type memoryReports struct {
	mu      sync.Mutex
	reports map[string]*entity.MonthlyReport
	saves   int
	findErr error
	saveErr error
}

func newMemoryReports() *memoryReports {
	return &memoryReports{reports: make(map[string]*entity.MonthlyReport)}
}

func reportKey(userID uuid.UUID, period time.Time) string {
	return userID.String() + "/" + period.Format("2006-01-02")
}

func (m *memoryReports) FindByPeriod(_ context.Context, userID uuid.UUID, periodKey time.Time) (*entity.MonthlyReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	r, ok := m.reports[reportKey(userID, periodKey)]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (m *memoryReports) Save(_ context.Context, report *entity.MonthlyReport) (*entity.MonthlyReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.saves++
	key := reportKey(report.UserID, report.PeriodKey)
	if existing, ok := m.reports[key]; ok {
		report.ID = existing.ID
		report.ShareToken = existing.ShareToken
		report.CreatedAt = existing.CreatedAt
	}
	copied := *report
	m.reports[key] = &copied
	return report, nil
}

func (m *memoryReports) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.MonthlyReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.MonthlyReport
	for _, r := range m.reports {
		if r.UserID == userID && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryReports) FindByShareToken(_ context.Context, token string) (*entity.MonthlyReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reports {
		if r.ShareToken == token {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memoryReports) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reports)
}

type fakeNotifier struct {
	notifications []entity.Notification
	err           error
}

func (f *fakeNotifier) Schedule(_ context.Context, n entity.Notification) error {
	f.notifications = append(f.notifications, n)
	return f.err
}

type fakeLock struct {
	acquired bool
	err      error
	released int
	keys     []string
}

func (f *fakeLock) Acquire(_ context.Context, key string, _ time.Duration) (func(), bool, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return nil, false, f.err
	}
	if !f.acquired {
		return nil, false, nil
	}
	return func() { f.released++ }, true, nil
}

type fakeGenerator struct {
	response  string
	err       error
	available bool
	calls     int
}

func (f *fakeGenerator) Generate(_ context.Context, _ adapter.GenerationRequest) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeGenerator) IsAvailable() bool {
	return f.available
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func money(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func floatPtr(v float64) *float64 { return &v }

func obligation(name, category, amount string) *entity.Obligation {
	return &entity.Obligation{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Amount:   money(amount),
		Status:   entity.ObligationStatusPending,
	}
}

// sampleSnapshot is a household on 2026-10-14 with two streaming bills and a spending spike.
func sampleSnapshot(now time.Time) *household.Snapshot {
	snapshot := &household.Snapshot{
		GeneratedAt: now,
		Spending: household.SpendingSnapshot{
			ThisPeriodTotal: money("600"),
			ThisPeriodCount: 12,
			LastPeriodTotal: money("500"),
			LastPeriodLabel: "September",
			PercentChange:   floatPtr(20),
		},
		Family:   []household.FamilyMember{},
		Growth:   []household.GrowthEntry{},
		Vehicles: []household.VehicleEntry{},
		Pets:     []household.PetEntry{},
		Upcoming: household.UpcomingCounts{AppointmentCount: 1, ObligationsDueCount: 2},
	}
	snapshot.Records.Obligations = []*entity.Obligation{
		obligation("Netflix", "Entertainment", "15.49"),
		obligation("Hulu", "", "7.99"),
		obligation("City Water", "Housing", "40.00"),
	}
	return snapshot
}
