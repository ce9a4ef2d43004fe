package handlers

import (
	"errors"
	"net/http"

	"solarquote/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errListAppliances  = "failed to load appliances"
	errAddAppliance    = "failed to add appliance"
	errUpdateAppliance = "failed to update appliance"
	errRemoveAppliance = "failed to remove appliance"
	errGetEstimate     = "failed to compute estimate"
	errApplianceGone   = "appliance not found"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// userID reads the id the auth middleware stored in the context.
func userID(c *gin.Context) int {
	v, _ := c.Get("userId")
	id, _ := v.(int)
	return id
}

// Request DTO for adding or editing a row. Validity of the values is the
// calculator's concern; the handler only requires a parseable body.
type applianceRequest struct {
	Name        string  `json:"name"`
	Wattage     float64 `json:"wattage"`
	HoursPerDay float64 `json:"hours_per_day"`
	Quantity    int     `json:"quantity"`
}

func (r applianceRequest) params() service.ApplianceParams {
	return service.ApplianceParams{
		Name:        r.Name,
		Wattage:     r.Wattage,
		HoursPerDay: r.HoursPerDay,
		Quantity:    r.Quantity,
	}
}

// ApplianceRequest is an exported model for Swagger docs of the row payload.
type ApplianceRequest struct {
	// Display name of the appliance
	Name string `json:"name" example:"Washing Machine"`
	// Power draw in watts
	Wattage float64 `json:"wattage" example:"500"`
	// Daily usage hours, 0..24
	HoursPerDay float64 `json:"hours_per_day" example:"1.5"`
	// Number of identical units
	Quantity int `json:"quantity" example:"1"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List appliances with current estimate
// @Description  Seeds the default rows on a user's first access.
// @Tags         appliances
// @Produce      json
// @Success      200  {object}  service.Snapshot
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/appliances [get]
// @Security     BearerAuth
func (h *Handler) listAppliances(c *gin.Context) {
	snap, err := h.services.Appliances.List(c.Request.Context(), userID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListAppliances, "appliances_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Add appliance
// @Tags         appliances
// @Accept       json
// @Produce      json
// @Param        body  body  ApplianceRequest  true  "Row payload"
// @Success      200   {object}  service.Snapshot
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/appliances [post]
// @Security     BearerAuth
func (h *Handler) addAppliance(c *gin.Context) {
	var req applianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	snap, err := h.services.Appliances.Add(c.Request.Context(), userID(c), req.params())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errAddAppliance, "appliance_add_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Update appliance
// @Tags         appliances
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "Row id"
// @Param        body  body  ApplianceRequest  true  "Row payload"
// @Success      200   {object}  service.Snapshot
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/appliances/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateAppliance(c *gin.Context) {
	var req applianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	snap, err := h.services.Appliances.Update(c.Request.Context(), userID(c), c.Param("id"), req.params())
	if err != nil {
		if errors.Is(err, service.ErrApplianceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errApplianceGone})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateAppliance, "appliance_update_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Remove appliance
// @Tags         appliances
// @Produce      json
// @Param        id  path  string  true  "Row id"
// @Success      200  {object}  service.Snapshot
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/appliances/{id} [delete]
// @Security     BearerAuth
func (h *Handler) removeAppliance(c *gin.Context) {
	snap, err := h.services.Appliances.Remove(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrApplianceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errApplianceGone})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRemoveAppliance, "appliance_remove_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Current estimate
// @Tags         appliances
// @Produce      json
// @Success      200  {object}  service.Snapshot
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/estimate [get]
// @Security     BearerAuth
func (h *Handler) getEstimate(c *gin.Context) {
	snap, err := h.services.Appliances.Estimate(c.Request.Context(), userID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetEstimate, "estimate_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
