package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger/backend/internal/application/usecase/household"
	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

func TestGroupCosts(t *testing.T) {
	rules := NewCostGroupRules(valueobject.DefaultClassificationRules())
	cancelled := obligation("Disney+", "", "13.99")
	cancelled.Status = entity.ObligationStatusCancelled
	comcast := obligation("Home internet", "Entertainment", "80.00")
	comcast.Provider = "Comcast"

	groups, total := GroupCosts(rules, []*entity.Obligation{
		obligation("Netflix", "Entertainment", "15.49"),
		obligation("Hulu", "", "7.99"),
		comcast,
		obligation("Car insurance", "Insurance", "120.00"),
		obligation("Gym", "", "30.00"),
		cancelled,
		nil,
	}, day(2026, 10, 1))

	streaming, ok := CostAnalysis{Groups: groups}.Group(valueobject.CostGroupStreaming)
	require.True(t, ok)
	assert.Equal(t, 2, streaming.Count)
	assert.True(t, money("23.48").Equal(streaming.Total), streaming.Total.String())

	utilities, ok := CostAnalysis{Groups: groups}.Group(valueobject.CostGroupUtilities)
	require.True(t, ok)
	assert.Equal(t, "Home internet", utilities.Items[0].Name)

	_, ok = CostAnalysis{Groups: groups}.Group("Insurance")
	assert.True(t, ok)
	other, ok := CostAnalysis{Groups: groups}.Group(valueobject.CostGroupOther)
	require.True(t, ok)
	assert.Equal(t, 1, other.Count)

	assert.Equal(t, "Insurance", groups[0].Label)
	assert.True(t, money("253.48").Equal(total), total.String())
}

func paidBill(name, amount string, due time.Time) *entity.Obligation {
	o := obligation(name, "", amount)
	o.Status = entity.ObligationStatusPaid
	o.DueDate = datePtr(due)
	o.PaidDate = datePtr(due)
	return o
}

func TestGroupCosts_RepeatingBillCountsOnce(t *testing.T) {
	rules := NewCostGroupRules(valueobject.DefaultClassificationRules())
	obligations := []*entity.Obligation{
		paidBill("Netflix", "15.49", day(2026, 8, 3)),
		paidBill("Netflix", "15.49", day(2026, 9, 3)),
		paidBill("Netflix", "15.49", day(2026, 10, 3)),
	}

	groups, total := GroupCosts(rules, obligations, day(2026, 10, 1))

	streaming, ok := CostAnalysis{Groups: groups}.Group(valueobject.CostGroupStreaming)
	require.True(t, ok)
	assert.Equal(t, 1, streaming.Count)
	assert.True(t, money("15.49").Equal(total), total.String())

	snapshot := sampleSnapshot(day(2026, 10, 14))
	snapshot.Records.Obligations = obligations
	draft := NewBuildDraftUseCase(&fakeSnapshots{snapshot: snapshot}, valueobject.DefaultClassificationRules()).
		Execute(context.Background(), uuid.New(), day(2026, 10, 14))
	for _, suggestion := range FallbackText(draft).Suggestions {
		assert.NotContains(t, suggestion, "streaming services")
	}
}

func TestInPeriod(t *testing.T) {
	period := day(2026, 10, 1)
	overdue := obligation("Electric", "", "90")
	overdue.DueDate = datePtr(day(2026, 9, 20))
	nextMonth := obligation("Electric", "", "90")
	nextMonth.DueDate = datePtr(day(2026, 11, 20))
	paidEarly := paidBill("Rent", "1500", day(2026, 10, 1))
	paidEarly.PaidDate = datePtr(day(2026, 9, 29))
	cancelled := obligation("Gym", "", "30")
	cancelled.Status = entity.ObligationStatusCancelled

	tests := []struct {
		name string
		o    *entity.Obligation
		want bool
	}{
		{name: "paid this month", o: paidBill("Netflix", "15.49", day(2026, 10, 3)), want: true},
		{name: "paid last month", o: paidBill("Netflix", "15.49", day(2026, 9, 3)), want: false},
		{name: "paid early for this month", o: paidEarly, want: true},
		{name: "unpaid and overdue", o: overdue, want: true},
		{name: "unpaid and due next month", o: nextMonth, want: false},
		{name: "unpaid without due date", o: obligation("Hulu", "", "7.99"), want: true},
		{name: "cancelled", o: cancelled, want: false},
		{name: "nil", o: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InPeriod(tt.o, period))
		})
	}
}

func TestClassify_KeywordBeatsDeclaredCategory(t *testing.T) {
	rules := NewCostGroupRules(valueobject.DefaultClassificationRules())

	assert.Equal(t, valueobject.CostGroupStreaming, Classify(rules, obligation("Spotify Family", "Music", "16.99")))
	assert.Equal(t, valueobject.CostGroupUtilities, Classify(rules, obligation("Electric bill", "Housing", "90")))
	assert.Equal(t, "Housing", Classify(rules, obligation("Rent", " Housing ", "1500")))
	assert.Equal(t, valueobject.CostGroupOther, Classify(rules, obligation("Piano lessons", "", "60")))
}

func TestClassify_NonStreamingSubscriptions(t *testing.T) {
	rules := NewCostGroupRules(valueobject.DefaultClassificationRules())

	tests := []struct {
		name     string
		category string
		want     string
	}{
		{name: "Costco membership subscription", category: "", want: valueobject.CostGroupOther},
		{name: "Antivirus subscription", category: "Software", want: "Software"},
		{name: "Magazine subscription", category: "Reading", want: "Reading"},
		{name: "Spotify subscription", category: "", want: valueobject.CostGroupStreaming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(rules, obligation(tt.name, tt.category, "10")))
		})
	}
}

func TestBuildTrend(t *testing.T) {
	paidAmount := money("90")
	obligations := []*entity.Obligation{
		{Amount: money("100"), PaidAmount: &paidAmount, PaidDate: datePtr(day(2026, 8, 5))},
		{Amount: money("20"), PaidDate: datePtr(day(2026, 9, 30))},
		{Amount: money("50"), PaidDate: datePtr(day(2026, 10, 1))},
		{Amount: money("75"), PaidDate: datePtr(day(2026, 7, 31))},
		{Amount: money("300"), DueDate: datePtr(day(2026, 10, 20))},
	}

	trend := BuildTrend(obligations, day(2026, 10, 17))

	require.Len(t, trend, TrendMonths)
	assert.Equal(t, "August 2026", trend[0].Label)
	assert.Equal(t, "September 2026", trend[1].Label)
	assert.Equal(t, "October 2026", trend[2].Label)
	assert.True(t, money("90").Equal(trend[0].Total))
	assert.Equal(t, 1, trend[0].Count)
	assert.True(t, money("20").Equal(trend[1].Total))
	assert.True(t, money("50").Equal(trend[2].Total))
	assert.Equal(t, day(2026, 8, 1), trend[0].Month)
}

func TestBuildHighlights(t *testing.T) {
	now := day(2026, 10, 14)
	snapshot := sampleSnapshot(now)
	snapshot.Records.Obligations = nil
	for i := 0; i < 7; i++ {
		o := obligation("Bill", "", "10")
		o.DueDate = datePtr(day(2026, 10, 28-i))
		snapshot.Records.Obligations = append(snapshot.Records.Obligations, o)
	}
	late := obligation("Property tax", "", "900")
	late.DueDate = datePtr(day(2026, 12, 20))
	snapshot.Records.Obligations = append(snapshot.Records.Obligations, late)

	for i := 0; i < 4; i++ {
		snapshot.Records.Appointments = append(snapshot.Records.Appointments,
			&entity.Appointment{Title: "Checkup", Date: day(2026, 10, 20+i), Time: "09:30"})
	}

	soon, later := 5, 40
	label := "this week"
	snapshot.Family = []household.FamilyMember{
		{Name: "Emma", DaysToNextBirthday: &soon, BirthdayLabel: &label},
		{Name: "Sam", DaysToNextBirthday: &later},
		{Name: "Lou"},
	}
	reg := "Registration expires in 10 days"
	snapshot.Vehicles = []household.VehicleEntry{
		{Label: "2019 Honda Civic", RegistrationLabel: &reg},
		{Label: "Bike"},
	}
	vax := "due soon"
	snapshot.Pets = []household.PetEntry{{Name: "Rex", VaccinationDueLabel: &vax}, {Name: "Tom"}}

	highlights := BuildHighlights(snapshot, now)

	require.Len(t, highlights, 5+3+1+1+1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, HighlightBill, highlights[i].Type)
	}
	assert.Equal(t, day(2026, 10, 22), *highlights[0].Date)
	assert.Equal(t, "$10.00 due", *highlights[0].Detail)
	for i := 5; i < 8; i++ {
		assert.Equal(t, HighlightAppointment, highlights[i].Type)
	}
	assert.Equal(t, "09:30", *highlights[5].Detail)
	assert.Equal(t, HighlightBirthday, highlights[8].Type)
	assert.Equal(t, "Emma's birthday", highlights[8].Label)
	assert.Equal(t, day(2026, 10, 19), *highlights[8].Date)
	assert.Equal(t, HighlightVehicle, highlights[9].Type)
	assert.Equal(t, HighlightPet, highlights[10].Type)
	assert.Equal(t, "Rex vaccination", highlights[10].Label)
}

func TestBuildDraftUseCase(t *testing.T) {
	now := day(2026, 10, 14)
	snapshots := &fakeSnapshots{snapshot: sampleSnapshot(now)}
	uc := NewBuildDraftUseCase(snapshots, valueobject.DefaultClassificationRules())
	userID := uuid.New()

	draft := uc.Execute(context.Background(), userID, day(2026, 10, 9))

	assert.Equal(t, userID, draft.UserID)
	assert.Equal(t, day(2026, 10, 1), draft.PeriodKey)
	assert.Len(t, draft.CostAnalysis.Groups, 2)
	assert.Len(t, draft.CostAnalysis.Trend, TrendMonths)
	assert.True(t, money("63.48").Equal(draft.CostAnalysis.Total))
	assert.NotNil(t, draft.Highlights)
	assert.Equal(t, 1, snapshots.calls)
}
