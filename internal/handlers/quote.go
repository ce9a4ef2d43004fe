package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"solarquote/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid  = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid    = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errSubmitQuote  = "failed to submit quote request"
	errQuoteHistory = "failed to load quote requests"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// Request DTO for a detailed-quote submission.
type quoteRequestBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// QuoteRequestBody is an exported model for Swagger docs of the contact payload.
type QuoteRequestBody struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Phone    string `json:"phone" example:"+15551234567"`
	Location string `json:"location" example:"Lagos"`
}

// isFormError reports whether err is one of the per-field contact failures.
func isFormError(err error) bool {
	return errors.Is(err, service.ErrContactName) ||
		errors.Is(err, service.ErrContactEmail) ||
		errors.Is(err, service.ErrContactPhone) ||
		errors.Is(err, service.ErrContactLocation)
}

// @Summary      Submit a detailed quote request
// @Description  Persists the contact details with a snapshot of the current estimate.
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        body  body  QuoteRequestBody  true  "Contact payload"
// @Success      200   {object}  map[string]interface{}  "status, request"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/quote [post]
// @Security     BearerAuth
func (h *Handler) submitQuote(c *gin.Context) {
	var body quoteRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	req, err := h.services.Quotes.Submit(c.Request.Context(), userID(c), service.ContactForm{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Location: body.Location,
	})
	if err != nil {
		if isFormError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errSubmitQuote, "quote_submit_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "submitted",
		"request": req,
	})
}

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List quote requests
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive.
// @Tags         quote
// @Produce      json
// @Param        from  query   string  false  "Start of range"  example(2026-03-01)
// @Param        to    query   string  false  "End of range. Date-only treated as end of day."  example(2026-03-31)
// @Success      200   {object}  map[string]interface{}  "count, requests"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/quote/requests [get]
// @Security     BearerAuth
func (h *Handler) quoteHistory(c *gin.Context) {
	var (
		from time.Time
		to   time.Time
		err  error
	)
	// Parse 'from' (optional)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	// Parse 'to' (optional). If only a date is provided, make it end-of-day inclusive.
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	// Validate range if both provided
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}

	requests, err := h.services.Quotes.History(c.Request.Context(), userID(c), from, to)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("quote_history_failed", "err", err, "from", from, "to", to)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errQuoteHistory})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(requests),
		"requests": requests,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2026-03-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
