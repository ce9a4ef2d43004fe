package handlers

import (
	"context"
	"net/http"
	"time"

	"solarquote/internal/models"
	"solarquote/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockAppliances struct {
	snap       service.Snapshot
	err        error
	updateErr  error
	removeErr  error
	lastUser   int
	lastID     string
	lastParams service.ApplianceParams

	listCalls   int
	addCalls    int
	updateCalls int
	removeCalls int
	estCalls    int
}

func (m *mockAppliances) List(ctx context.Context, userID int) (service.Snapshot, error) {
	m.listCalls++
	m.lastUser = userID
	return m.snap, m.err
}
func (m *mockAppliances) Add(ctx context.Context, userID int, p service.ApplianceParams) (service.Snapshot, error) {
	m.addCalls++
	m.lastUser = userID
	m.lastParams = p
	return m.snap, m.err
}
func (m *mockAppliances) Update(ctx context.Context, userID int, id string, p service.ApplianceParams) (service.Snapshot, error) {
	m.updateCalls++
	m.lastUser = userID
	m.lastID = id
	m.lastParams = p
	if m.updateErr != nil {
		return service.Snapshot{}, m.updateErr
	}
	return m.snap, m.err
}
func (m *mockAppliances) Remove(ctx context.Context, userID int, id string) (service.Snapshot, error) {
	m.removeCalls++
	m.lastUser = userID
	m.lastID = id
	if m.removeErr != nil {
		return service.Snapshot{}, m.removeErr
	}
	return m.snap, m.err
}
func (m *mockAppliances) Estimate(ctx context.Context, userID int) (service.Snapshot, error) {
	m.estCalls++
	m.lastUser = userID
	return m.snap, m.err
}

type mockQuotes struct {
	req       models.QuoteRequest
	submitErr error
	history   []models.QuoteRequest
	histErr   error
	lastForm  service.ContactForm
	lastFrom  time.Time
	lastTo    time.Time
}

func (m *mockQuotes) Submit(ctx context.Context, userID int, form service.ContactForm) (models.QuoteRequest, error) {
	m.lastForm = form
	return m.req, m.submitErr
}
func (m *mockQuotes) History(ctx context.Context, userID int, from, to time.Time) ([]models.QuoteRequest, error) {
	m.lastFrom = from
	m.lastTo = to
	return m.history, m.histErr
}

type mockAdvisor struct {
	suggestions []models.Suggestion
	sugErr      error
	tips        []string
	tipsErr     error
}

func (m *mockAdvisor) Suggestions(ctx context.Context, userID int) ([]models.Suggestion, error) {
	return m.suggestions, m.sugErr
}
func (m *mockAdvisor) Tips(ctx context.Context, userID int) ([]string, error) {
	return m.tips, m.tipsErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
