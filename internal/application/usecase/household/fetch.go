package household

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

// Domain names used in logs.
const (
	DomainObligations    = "obligations"
	DomainTransactions   = "transactions"
	DomainMembers        = "household_members"
	DomainVehicles       = "vehicles"
	DomainPets           = "pets"
	DomainAppointments   = "appointments"
	DomainMedicalRecords = "medical_records"
	DomainGrowthRecords  = "growth_records"
)

// Repositories holds one reader per household domain. A nil reader leaves its domain empty.
type Repositories struct {
	Obligations    adapter.ObligationRepository
	Transactions   adapter.TransactionRepository
	Members        adapter.HouseholdMemberRepository
	Vehicles       adapter.VehicleRepository
	Pets           adapter.PetRepository
	Appointments   adapter.AppointmentRepository
	MedicalRecords adapter.MedicalRecordRepository
	GrowthRecords  adapter.GrowthRecordRepository
}

func emptyRecords(userID uuid.UUID) entity.HouseholdRecords {
	return entity.HouseholdRecords{
		UserID:         userID,
		Obligations:    []*entity.Obligation{},
		Transactions:   []*entity.Transaction{},
		Members:        []*entity.HouseholdMember{},
		Vehicles:       []*entity.Vehicle{},
		Pets:           []*entity.Pet{},
		Appointments:   []*entity.Appointment{},
		MedicalRecords: []*entity.MedicalRecord{},
		GrowthRecords:  []*entity.GrowthRecord{},
	}
}

// fetchDomain runs one domain query with its own timeout. Any error or panic yields an empty result.
func fetchDomain[T any](
	ctx context.Context,
	timeout time.Duration,
	domain string,
	userID uuid.UUID,
	query func(context.Context) ([]T, error),
) (rows []T) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Household domain query panicked",
				"domain", domain,
				"user_id", userID,
				"panic", r,
			)
			rows = []T{}
		}
	}()

	queryCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rows, err := query(queryCtx)
	if err != nil {
		slog.Warn("Household domain unavailable, using empty default",
			"domain", domain,
			"user_id", userID,
			"error", err,
		)
		return []T{}
	}
	if rows == nil {
		return []T{}
	}
	return rows
}

// goFetch schedules fetchDomain on g and stores the result in dst.
func goFetch[T any](
	g *errgroup.Group,
	ctx context.Context,
	timeout time.Duration,
	domain string,
	userID uuid.UUID,
	dst *[]T,
	query func(context.Context) ([]T, error),
) {
	g.Go(func() error {
		*dst = fetchDomain(ctx, timeout, domain, userID, query)
		return nil
	})
}

// fetchRecords reads every domain concurrently. Each domain fails independently.
func (uc *AggregateUseCase) fetchRecords(ctx context.Context, userID uuid.UUID, now time.Time) entity.HouseholdRecords {
	records := emptyRecords(userID)
	repos := uc.repos
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -uc.historyMonths, 0)

	var g errgroup.Group
	g.SetLimit(uc.concurrency)

	if r := repos.Obligations; r != nil {
		goFetch(&g, ctx, uc.timeout, DomainObligations, userID, &records.Obligations,
			func(ctx context.Context) ([]*entity.Obligation, error) { return r.FindByUser(ctx, userID) })
	}
	if r := repos.Transactions; r != nil {
		goFetch(&g, ctx, uc.timeout, DomainTransactions, userID, &records.Transactions,
			func(ctx context.Context) ([]*entity.Transaction, error) { return r.FindByUserSince(ctx, userID, since) })
	}
	if r := repos.Members; r != nil {
		goFetch(&g, ctx, uc.timeout, DomainMembers, userID, &records.Members,
			func(ctx context.Context) ([]*entity.HouseholdMember, error) { return r.FindByUser(ctx, userID) })
	}
	if r := repos.Vehicles; r != nil {
		goFetch(&g, ctx, uc.timeout, DomainVehicles, userID, &records.Vehicles,
			func(ctx context.Context) ([]*entity.Vehicle, error) { return r.FindByUser(ctx, userID) })
	}
	if r := repos.Pets; r != nil {
		goFetch(&g, ctx, uc.timeout, DomainPets, userID, &records.Pets,
			func(ctx context.Context) ([]*entity.Pet, error) { return r.FindByUser(ctx, userID) })
	}
	if r := repos.Appointments; r != nil {
		goFetch(&g, ctx, uc.timeout, DomainAppointments, userID, &records.Appointments,
			func(ctx context.Context) ([]*entity.Appointment, error) { return r.FindByUser(ctx, userID) })
	}
	if r := repos.MedicalRecords; r != nil {
		goFetch(&g, ctx, uc.timeout, DomainMedicalRecords, userID, &records.MedicalRecords,
			func(ctx context.Context) ([]*entity.MedicalRecord, error) { return r.FindByUser(ctx, userID) })
	}
	if r := repos.GrowthRecords; r != nil {
		goFetch(&g, ctx, uc.timeout, DomainGrowthRecords, userID, &records.GrowthRecords,
			func(ctx context.Context) ([]*entity.GrowthRecord, error) { return r.FindByUser(ctx, userID) })
	}

	_ = g.Wait()
	return records
}
