package service

import (
	"context"
	"time"

	"solarquote/internal/config"
	"solarquote/internal/models"
	"solarquote/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Appliances owns the per-user load list. Every mutation returns a snapshot
// with the list and the synchronously recomputed estimate.
type Appliances interface {
	List(ctx context.Context, userID int) (Snapshot, error)
	Add(ctx context.Context, userID int, p ApplianceParams) (Snapshot, error)
	Update(ctx context.Context, userID int, id string, p ApplianceParams) (Snapshot, error)
	Remove(ctx context.Context, userID int, id string) (Snapshot, error)
	Estimate(ctx context.Context, userID int) (Snapshot, error)
}

// Quotes accepts detailed-quote submissions and serves their history.
type Quotes interface {
	Submit(ctx context.Context, userID int, form ContactForm) (models.QuoteRequest, error)
	History(ctx context.Context, userID int, from, to time.Time) ([]models.QuoteRequest, error)
}

// Advisor fetches AI-generated appliance suggestions and energy-saving tips.
type Advisor interface {
	Suggestions(ctx context.Context, userID int) ([]models.Suggestion, error)
	Tips(ctx context.Context, userID int) ([]string, error)
}

// Generator is the remote generative-language call the advisor depends on.
type Generator interface {
	Generate(ctx context.Context, prompt string, wantJSON bool) (string, error)
}

// Service aggregates all sub-services behind one wiring point.
type Service struct {
	Appliances
	Quotes
	Advisor
	Authorization
}

// NewService wires the repository layer and the remote generator into the
// concrete services.
func NewService(repos *repository.Repository, gen Generator, solar config.SolarConfig, signingKey string) *Service {
	appliances := NewApplianceService(repos.Appliances, solar)
	return &Service{
		Appliances:    appliances,
		Quotes:        NewQuoteService(repos.QuoteRequests, repos.Appliances, solar),
		Advisor:       NewAdvisorService(repos.Appliances, gen),
		Authorization: NewAuthService(repos.Auth, signingKey),
	}
}
