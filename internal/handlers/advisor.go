package handlers

import (
	"errors"
	"net/http"

	"solarquote/internal/advisor"

	"github.com/gin-gonic/gin"
)

const (
	errSuggestions = "failed to fetch appliance suggestions"
	errTips        = "failed to fetch energy-saving tips"
)

// advisorStatus maps a remote failure to 502 and anything else to 500.
func advisorStatus(err error) int {
	if errors.Is(err, advisor.ErrRemoteService) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// @Summary      Appliance suggestions
// @Description  AI-suggested appliances not already in the user's list.
// @Tags         advisor
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, suggestions"
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/advisor/suggestions [get]
// @Security     BearerAuth
func (h *Handler) getSuggestions(c *gin.Context) {
	suggestions, err := h.services.Advisor.Suggestions(c.Request.Context(), userID(c))
	if err != nil {
		h.logAndJSONError(c, advisorStatus(err), errSuggestions, "advisor_suggestions_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(suggestions),
		"suggestions": suggestions,
	})
}

// @Summary      Energy-saving tips
// @Description  Free-form AI tips for the user's current usage, one per line.
// @Tags         advisor
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, tips"
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/advisor/tips [get]
// @Security     BearerAuth
func (h *Handler) getTips(c *gin.Context) {
	tips, err := h.services.Advisor.Tips(c.Request.Context(), userID(c))
	if err != nil {
		h.logAndJSONError(c, advisorStatus(err), errTips, "advisor_tips_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(tips),
		"tips":  tips,
	})
}
