package household

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger/backend/internal/application/usecase/extrapolation"
	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

var errMissingColumn = errors.New(`pq: column "paid_amount" does not exist`)

type fakeObligations struct {
	rows []*entity.Obligation
	err  error
}

func (f *fakeObligations) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Obligation, error) {
	return f.rows, f.err
}

type fakeTransactions struct {
	rows  []*entity.Transaction
	since time.Time
}

func (f *fakeTransactions) FindByUserSince(_ context.Context, _ uuid.UUID, since time.Time) ([]*entity.Transaction, error) {
	f.since = since
	return f.rows, nil
}

type fakeMembers struct{ rows []*entity.HouseholdMember }

func (f *fakeMembers) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.HouseholdMember, error) {
	return f.rows, nil
}

type fakeVehicles struct{ rows []*entity.Vehicle }

func (f *fakeVehicles) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Vehicle, error) {
	return f.rows, nil
}

type panickingPets struct{}

func (panickingPets) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Pet, error) {
	panic("unexpected column type")
}

// blockingAppointments never answers until its context ends.
type blockingAppointments struct{}

func (blockingAppointments) FindByUser(ctx context.Context, _ uuid.UUID) ([]*entity.Appointment, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type fakeGrowth struct{ rows []*entity.GrowthRecord }

func (f *fakeGrowth) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.GrowthRecord, error) {
	return f.rows, nil
}

func newTestUseCase(repos Repositories, now time.Time) *AggregateUseCase {
	engine := extrapolation.NewEngine(valueobject.DefaultClassificationRules(), 0)
	return NewAggregateUseCase(repos, engine, Options{
		QueryTimeout: 50 * time.Millisecond,
		Now:          func() time.Time { return now },
	})
}

func TestAggregateUseCase_NoRepositories(t *testing.T) {
	uc := newTestUseCase(Repositories{}, day(2026, 10, 14))

	snapshot := uc.Execute(context.Background(), uuid.New())

	require.NotNil(t, snapshot)
	assert.Empty(t, snapshot.Family)
	assert.Empty(t, snapshot.Growth)
	assert.Empty(t, snapshot.Vehicles)
	assert.Empty(t, snapshot.Pets)
	assert.NotNil(t, snapshot.Family)
	assert.NotNil(t, snapshot.Records.Obligations)
	assert.Nil(t, snapshot.Spending.PercentChange)
	assert.True(t, snapshot.Spending.ThisPeriodTotal.IsZero())
	assert.Zero(t, snapshot.Upcoming.AppointmentCount)
	assert.True(t, snapshot.Predictions.IsEmpty())
}

func TestAggregateUseCase_FailingDomainsDegrade(t *testing.T) {
	now := day(2026, 10, 14)
	birthday := day(2018, 10, 20)
	transactions := &fakeTransactions{rows: []*entity.Transaction{
		{Amount: decimal.NewFromInt(90), Type: entity.TransactionTypeExpense, Date: day(2026, 10, 3)},
		{Amount: decimal.NewFromInt(60), Type: entity.TransactionTypeExpense, Date: day(2026, 9, 3)},
	}}
	repos := Repositories{
		Obligations:  &fakeObligations{err: errMissingColumn},
		Transactions: transactions,
		Members: &fakeMembers{rows: []*entity.HouseholdMember{
			{Name: "Emma", Relationship: "daughter", Birthday: &birthday},
			{Name: "Sam"},
		}},
		Vehicles: &fakeVehicles{rows: []*entity.Vehicle{{
			Make:                 "Honda",
			Model:                "Civic",
			CurrentMileage:       intPtr(12000),
			LastOilChangeMileage: intPtr(9000),
			OilChangeInterval:    intPtr(3000),
		}}},
		Pets:         panickingPets{},
		Appointments: blockingAppointments{},
		GrowthRecords: &fakeGrowth{rows: []*entity.GrowthRecord{
			{Name: "Emma", RecordDate: day(2026, 1, 10), Size: "7"},
			{Name: "Emma", RecordDate: day(2026, 7, 10), Size: "8"},
			{Name: "Noah", RecordDate: day(2026, 7, 10), Size: "3"},
		}},
	}
	uc := newTestUseCase(repos, now)

	snapshot := uc.Execute(context.Background(), uuid.New())

	require.NotNil(t, snapshot)
	assert.Empty(t, snapshot.Records.Obligations)
	assert.Empty(t, snapshot.Pets)
	assert.Empty(t, snapshot.Records.Appointments)
	assert.Zero(t, snapshot.Upcoming.ObligationsDueCount)
	assert.Equal(t, day(2024, 10, 1), transactions.since)

	require.Len(t, snapshot.Family, 2)
	assert.Equal(t, "daughter", *snapshot.Family[0].Relationship)
	assert.Equal(t, 6, *snapshot.Family[0].DaysToNextBirthday)
	assert.Equal(t, "this week", *snapshot.Family[0].BirthdayLabel)
	assert.Nil(t, snapshot.Family[1].DaysToNextBirthday)
	assert.Nil(t, snapshot.Family[1].Relationship)

	require.NotNil(t, snapshot.Spending.PercentChange)
	assert.InDelta(t, 50.0, *snapshot.Spending.PercentChange, 0.001)
	assert.Equal(t, "September", snapshot.Spending.LastPeriodLabel)

	require.Len(t, snapshot.Vehicles, 1)
	assert.Equal(t, "Honda Civic", snapshot.Vehicles[0].Label)
	require.NotNil(t, snapshot.Vehicles[0].MaintenanceMessage)
	assert.Contains(t, *snapshot.Vehicles[0].MaintenanceMessage, "due")

	require.Len(t, snapshot.Growth, 2)
	assert.Equal(t, "8.5", *snapshot.Growth[0].NextSizeLabel)
	assert.Equal(t, 3, *snapshot.Growth[0].MonthsUntilNextSize)
	assert.Nil(t, snapshot.Growth[1].NextSizeLabel)
	require.NotNil(t, snapshot.Growth[1].Note)

	require.Len(t, snapshot.Predictions.Maintenance, 1)
	assert.NotNil(t, snapshot.Predictions.Spending)
}

func TestAggregateUseCase_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	uc := newTestUseCase(Repositories{Appointments: blockingAppointments{}}, day(2026, 10, 14))

	snapshot := uc.Execute(ctx, uuid.New())

	require.NotNil(t, snapshot)
	assert.Empty(t, snapshot.Records.Appointments)
}

func TestBuildUpcoming(t *testing.T) {
	now := day(2026, 10, 14)
	due := day(2026, 10, 30)
	late := day(2026, 12, 30)
	paid := day(2026, 10, 2)
	records := entity.HouseholdRecords{
		Appointments: []*entity.Appointment{
			{Title: "Dentist", Date: day(2026, 10, 20)},
			{Title: "Vet", Date: day(2026, 11, 13)},
			{Title: "Past", Date: day(2026, 10, 1)},
			{Title: "Far", Date: day(2027, 1, 1)},
		},
		Obligations: []*entity.Obligation{
			{Name: "Electric", DueDate: &due, Status: entity.ObligationStatusPending},
			{Name: "Water", DueDate: &due, PaidDate: &paid, Status: entity.ObligationStatusPaid},
			{Name: "Insurance", DueDate: &late, Status: entity.ObligationStatusPending},
			{Name: "Gym", DueDate: &due, Status: entity.ObligationStatusCancelled},
		},
	}

	counts := buildUpcoming(records, now)

	assert.Equal(t, 2, counts.AppointmentCount)
	assert.Equal(t, 1, counts.ObligationsDueCount)
}

func intPtr(v int) *int { return &v }
