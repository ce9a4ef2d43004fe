package repository

import (
	"context"
	"database/sql"
	"time"

	"solarquote/internal/models"
	"solarquote/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// ApplianceRepo owns the per-user appliance rows in insertion order.
type ApplianceRepo interface {
	ListByUser(ctx context.Context, userID int) ([]models.Appliance, error)
	Insert(ctx context.Context, userID int, a models.Appliance) error
	Update(ctx context.Context, userID int, a models.Appliance) (bool, error)
	Delete(ctx context.Context, userID int, id string) (bool, error)
	CountByUser(ctx context.Context, userID int) (int, error)
}

// QuoteRequestRepo is append-mostly: submissions plus filtered history reads.
type QuoteRequestRepo interface {
	Append(ctx context.Context, userID int, q models.QuoteRequest) error
	List(ctx context.Context, userID int, from, to time.Time) ([]models.QuoteRequest, error)
}

type Repository struct {
	Appliances    ApplianceRepo
	QuoteRequests QuoteRequestRepo
	Auth          Authorization
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Appliances:    NewApplianceSQLite(database),
		QuoteRequests: NewQuoteRequestSQLite(database),
		Auth:          NewUserRepository(database),
	}
}

// InitDB forwards to the db package so callers only import repository.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
