package service

import (
	"context"
	"errors"
	"time"

	"solarquote/internal/calc"
	"solarquote/internal/config"
	"solarquote/internal/models"
	"solarquote/internal/repository"

	"github.com/google/uuid"
)

var ErrApplianceNotFound = errors.New("appliance not found")

// defaultAppliances seed a first-time user's list so the form never starts
// empty. Fields mirror a typical household baseline.
var defaultAppliances = []models.Appliance{
	{Name: "LED Bulb", Wattage: 10, HoursPerDay: 6, Quantity: 10},
	{Name: "TV", Wattage: 100, HoursPerDay: 4, Quantity: 1},
	{Name: "Refrigerator", Wattage: 150, HoursPerDay: 24, Quantity: 1},
	{Name: "Air Conditioner", Wattage: 3000, HoursPerDay: 8, Quantity: 1},
}

type ApplianceService struct {
	repo  repository.ApplianceRepo
	solar config.SolarConfig
}

func NewApplianceService(repo repository.ApplianceRepo, solar config.SolarConfig) *ApplianceService {
	return &ApplianceService{repo: repo, solar: solar}
}

var _ Appliances = (*ApplianceService)(nil)

// snapshot recomputes the estimate for the given rows. A validation failure
// is not an operation error: the snapshot carries the message and zeroed
// estimate instead.
func (s *ApplianceService) snapshot(appliances []models.Appliance) Snapshot {
	est, err := calc.Calculate(appliances, s.solar)
	snap := Snapshot{Appliances: appliances, Estimate: est}
	if err != nil {
		snap.ValidationError = err.Error()
	}
	return snap
}

// List returns the user's rows and estimate, seeding the defaults on first
// access.
func (s *ApplianceService) List(ctx context.Context, userID int) (Snapshot, error) {
	n, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	if n == 0 {
		if err := s.seed(ctx, userID); err != nil {
			return Snapshot{}, err
		}
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(rows), nil
}

// Estimate is List without the implicit seeding; a bare recomputation.
func (s *ApplianceService) Estimate(ctx context.Context, userID int) (Snapshot, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(rows), nil
}

func (s *ApplianceService) Add(ctx context.Context, userID int, p ApplianceParams) (Snapshot, error) {
	row := models.Appliance{
		ID:          uuid.NewString(),
		Name:        p.Name,
		Wattage:     p.Wattage,
		HoursPerDay: p.HoursPerDay,
		Quantity:    p.Quantity,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, userID, row); err != nil {
		return Snapshot{}, err
	}
	return s.Estimate(ctx, userID)
}

func (s *ApplianceService) Update(ctx context.Context, userID int, id string, p ApplianceParams) (Snapshot, error) {
	row := models.Appliance{
		ID:          id,
		Name:        p.Name,
		Wattage:     p.Wattage,
		HoursPerDay: p.HoursPerDay,
		Quantity:    p.Quantity,
	}
	ok, err := s.repo.Update(ctx, userID, row)
	if err != nil {
		return Snapshot{}, err
	}
	if !ok {
		return Snapshot{}, ErrApplianceNotFound
	}
	return s.Estimate(ctx, userID)
}

func (s *ApplianceService) Remove(ctx context.Context, userID int, id string) (Snapshot, error) {
	ok, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return Snapshot{}, err
	}
	if !ok {
		return Snapshot{}, ErrApplianceNotFound
	}
	return s.Estimate(ctx, userID)
}

// seed inserts the default rows with staggered timestamps so list order is
// deterministic.
func (s *ApplianceService) seed(ctx context.Context, userID int) error {
	base := time.Now().UTC()
	for i, d := range defaultAppliances {
		row := d
		row.ID = uuid.NewString()
		row.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		if err := s.repo.Insert(ctx, userID, row); err != nil {
			return err
		}
	}
	return nil
}
