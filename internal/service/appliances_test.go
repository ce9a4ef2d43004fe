package service

import (
	"context"
	"errors"
	"testing"

	"solarquote/internal/config"
	"solarquote/internal/models"
)

func testSolarConfig() config.SolarConfig {
	return config.SolarConfig{
		PeakSunHours:      5,
		EfficiencyFactor:  0.8,
		CostPerWatt:       11.25,
		TariffPerKWh:      0.18,
		SavingsPercentage: 0.85,
	}
}

type fakeApplianceRepo struct {
	rows    map[int][]models.Appliance
	listErr error
	insErr  error
	updErr  error
	delErr  error
}

func newFakeApplianceRepo() *fakeApplianceRepo {
	return &fakeApplianceRepo{rows: map[int][]models.Appliance{}}
}

func (f *fakeApplianceRepo) ListByUser(ctx context.Context, userID int) ([]models.Appliance, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows[userID], nil
}

func (f *fakeApplianceRepo) Insert(ctx context.Context, userID int, a models.Appliance) error {
	if f.insErr != nil {
		return f.insErr
	}
	f.rows[userID] = append(f.rows[userID], a)
	return nil
}

func (f *fakeApplianceRepo) Update(ctx context.Context, userID int, a models.Appliance) (bool, error) {
	if f.updErr != nil {
		return false, f.updErr
	}
	for i, row := range f.rows[userID] {
		if row.ID == a.ID {
			a.CreatedAt = row.CreatedAt
			f.rows[userID][i] = a
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplianceRepo) Delete(ctx context.Context, userID int, id string) (bool, error) {
	if f.delErr != nil {
		return false, f.delErr
	}
	for i, row := range f.rows[userID] {
		if row.ID == id {
			f.rows[userID] = append(f.rows[userID][:i], f.rows[userID][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplianceRepo) CountByUser(ctx context.Context, userID int) (int, error) {
	if f.listErr != nil {
		return 0, f.listErr
	}
	return len(f.rows[userID]), nil
}

func TestApplianceService_List_SeedsDefaultsOnFirstAccess(t *testing.T) {
	repo := newFakeApplianceRepo()
	svc := NewApplianceService(repo, testSolarConfig())

	snap, err := svc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snap.Appliances) != len(defaultAppliances) {
		t.Fatalf("expected %d seeded rows, got %d", len(defaultAppliances), len(snap.Appliances))
	}
	for _, a := range snap.Appliances {
		if a.ID == "" {
			t.Fatalf("seeded row has empty id: %+v", a)
		}
	}
	// The seeds mirror the reference household: 28.6 kWh/day.
	if snap.Estimate.TotalDailyKWh != 28.6 {
		t.Fatalf("seeded estimate = %v, want 28.6", snap.Estimate.TotalDailyKWh)
	}
	if snap.ValidationError != "" {
		t.Fatalf("unexpected validation error: %q", snap.ValidationError)
	}
}

func TestApplianceService_List_DoesNotReseedExistingList(t *testing.T) {
	repo := newFakeApplianceRepo()
	repo.rows[7] = []models.Appliance{{ID: "x", Name: "Fan", Wattage: 60, HoursPerDay: 4, Quantity: 1}}
	svc := NewApplianceService(repo, testSolarConfig())

	snap, err := svc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snap.Appliances) != 1 {
		t.Fatalf("expected the existing single row, got %d", len(snap.Appliances))
	}
}

func TestApplianceService_Add_RecomputesEstimate(t *testing.T) {
	repo := newFakeApplianceRepo()
	repo.rows[7] = []models.Appliance{{ID: "x", Name: "Fan", Wattage: 100, HoursPerDay: 10, Quantity: 1}}
	svc := NewApplianceService(repo, testSolarConfig())

	snap, err := svc.Add(context.Background(), 7, ApplianceParams{Name: "Heater", Wattage: 1000, HoursPerDay: 1, Quantity: 1})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(snap.Appliances) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(snap.Appliances))
	}
	if snap.Appliances[1].ID == "" {
		t.Fatalf("added row should get a generated id")
	}
	if snap.Estimate.TotalDailyKWh != 2.0 {
		t.Fatalf("estimate = %v, want 2.0", snap.Estimate.TotalDailyKWh)
	}
}

func TestApplianceService_Add_InvalidRowZeroesEstimateButKeepsList(t *testing.T) {
	repo := newFakeApplianceRepo()
	repo.rows[7] = []models.Appliance{{ID: "x", Name: "Fan", Wattage: 100, HoursPerDay: 10, Quantity: 1}}
	svc := NewApplianceService(repo, testSolarConfig())

	snap, err := svc.Add(context.Background(), 7, ApplianceParams{Name: "", Wattage: -5, HoursPerDay: 1, Quantity: 1})
	if err != nil {
		t.Fatalf("Add itself should succeed, got %v", err)
	}
	if len(snap.Appliances) != 2 {
		t.Fatalf("invalid row should still be stored, got %d rows", len(snap.Appliances))
	}
	if snap.ValidationError == "" {
		t.Fatalf("expected a validation message")
	}
	if snap.Estimate != (models.QuoteEstimate{}) {
		t.Fatalf("expected zeroed estimate, got %+v", snap.Estimate)
	}
}

func TestApplianceService_Update_NotFound(t *testing.T) {
	repo := newFakeApplianceRepo()
	svc := NewApplianceService(repo, testSolarConfig())

	_, err := svc.Update(context.Background(), 7, "ghost", ApplianceParams{Name: "Fan", Wattage: 60, HoursPerDay: 1, Quantity: 1})
	if !errors.Is(err, ErrApplianceNotFound) {
		t.Fatalf("expected ErrApplianceNotFound, got %v", err)
	}
}

func TestApplianceService_Remove_RecomputesEstimate(t *testing.T) {
	repo := newFakeApplianceRepo()
	repo.rows[7] = []models.Appliance{
		{ID: "a", Name: "Fan", Wattage: 100, HoursPerDay: 10, Quantity: 1},
		{ID: "b", Name: "Heater", Wattage: 1000, HoursPerDay: 1, Quantity: 1},
	}
	svc := NewApplianceService(repo, testSolarConfig())

	snap, err := svc.Remove(context.Background(), 7, "b")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(snap.Appliances) != 1 {
		t.Fatalf("expected 1 remaining row, got %d", len(snap.Appliances))
	}
	if snap.Estimate.TotalDailyKWh != 1.0 {
		t.Fatalf("estimate = %v, want 1.0", snap.Estimate.TotalDailyKWh)
	}
}

func TestApplianceService_Remove_EmptiedListIsZeroSuccess(t *testing.T) {
	repo := newFakeApplianceRepo()
	repo.rows[7] = []models.Appliance{{ID: "a", Name: "Fan", Wattage: 100, HoursPerDay: 10, Quantity: 1}}
	svc := NewApplianceService(repo, testSolarConfig())

	snap, err := svc.Remove(context.Background(), 7, "a")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if snap.ValidationError != "" {
		t.Fatalf("empty list must not be a validation error, got %q", snap.ValidationError)
	}
	if snap.Estimate != (models.QuoteEstimate{}) {
		t.Fatalf("expected all-zero estimate, got %+v", snap.Estimate)
	}
}

func TestApplianceService_List_RepoError(t *testing.T) {
	repo := newFakeApplianceRepo()
	repo.listErr = errors.New("db down")
	svc := NewApplianceService(repo, testSolarConfig())

	if _, err := svc.List(context.Background(), 7); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
