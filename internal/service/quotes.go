package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"solarquote/internal/calc"
	"solarquote/internal/config"
	"solarquote/internal/models"
	"solarquote/internal/repository"

	"github.com/google/uuid"
)

// Form validation errors. Each is a fixed per-field message; the first
// failing field blocks the submission.
var (
	ErrContactName     = errors.New("name is required")
	ErrContactEmail    = errors.New("enter a valid email address")
	ErrContactPhone    = errors.New("enter a valid phone number")
	ErrContactLocation = errors.New("location is required")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,18}$`)
)

type QuoteService struct {
	quotes     repository.QuoteRequestRepo
	appliances repository.ApplianceRepo
	solar      config.SolarConfig
}

func NewQuoteService(quotes repository.QuoteRequestRepo, appliances repository.ApplianceRepo, solar config.SolarConfig) *QuoteService {
	return &QuoteService{quotes: quotes, appliances: appliances, solar: solar}
}

var _ Quotes = (*QuoteService)(nil)

// validateForm checks the contact fields in display order and returns the
// first failure.
func validateForm(f ContactForm) (ContactForm, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Location = strings.TrimSpace(f.Location)

	if f.Name == "" {
		return f, ErrContactName
	}
	if !emailPattern.MatchString(f.Email) {
		return f, ErrContactEmail
	}
	if !phonePattern.MatchString(f.Phone) {
		return f, ErrContactPhone
	}
	if f.Location == "" {
		return f, ErrContactLocation
	}
	return f, nil
}

// Submit validates the contact form, snapshots the latest estimate for the
// user's current list, and persists the request. If the list is currently
// invalid the stored estimate is the zeroed error state, matching what the
// user had on screen.
func (s *QuoteService) Submit(ctx context.Context, userID int, form ContactForm) (models.QuoteRequest, error) {
	form, err := validateForm(form)
	if err != nil {
		return models.QuoteRequest{}, err
	}

	rows, err := s.appliances.ListByUser(ctx, userID)
	if err != nil {
		return models.QuoteRequest{}, err
	}
	est, calcErr := calc.Calculate(rows, s.solar)
	if calcErr != nil {
		est = models.QuoteEstimate{}
	}

	req := models.QuoteRequest{
		ID:             uuid.NewString(),
		SubmittedAt:    time.Now().UTC(),
		Name:           form.Name,
		Email:          form.Email,
		Phone:          form.Phone,
		Location:       form.Location,
		Estimate:       est,
		ApplianceCount: len(rows),
	}
	if err := s.quotes.Append(ctx, userID, req); err != nil {
		return models.QuoteRequest{}, err
	}
	return req, nil
}

var errInvalidTimeRange = errors.New("invalid time range: from must be <= to")

// History lists the user's past submissions within [from, to], inclusive.
// Zero bounds are open-ended.
func (s *QuoteService) History(ctx context.Context, userID int, from, to time.Time) ([]models.QuoteRequest, error) {
	from = toUTC(from)
	to = toUTC(to)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	return s.quotes.List(ctx, userID, from, to)
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
