package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	adminUseCase "github.com/powerstack-ng/powerstack-api/internal/domain/usecase/admin"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/dto"
)

// analyticsDateLayout is the wire format for analytics date windows.
const analyticsDateLayout = "2006-01-02"

// AdminHandler handles user management and analytics HTTP requests
type AdminHandler struct {
	adminService *adminUseCase.UseCase
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminService *adminUseCase.UseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// Users handles the GET /admin/users endpoint
func (h *AdminHandler) Users(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	userType := c.Query("type")
	if userType == "" {
		respondBadRequest(c, "Missing required query parameter: type")
		return
	}

	users, err := h.adminService.UsersByType(c.Request.Context(), claims, userType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// User handles the GET /admin/user endpoint
func (h *AdminHandler) User(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	email := c.Query("user_email")
	if email == "" {
		respondBadRequest(c, "Missing required query parameter: user_email")
		return
	}

	detail, err := h.adminService.GetUser(c.Request.Context(), claims, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Purchase handles the GET /admin/purchase endpoint
func (h *AdminHandler) Purchase(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	reference := c.Query("reference")
	if reference == "" {
		respondBadRequest(c, "Missing required query parameter: reference")
		return
	}

	receipt, err := h.adminService.PurchaseByReference(c.Request.Context(), claims, reference)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// UserStatus handles the POST /admin/userStatus endpoint
func (h *AdminHandler) UserStatus(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req dto.UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.adminService.SetUserStatus(c.Request.Context(), claims, req.UserEmail, *req.Active); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User status updated"})
}

// TransactionAnalytics handles the POST /admin/analytics/transactions endpoint
func (h *AdminHandler) TransactionAnalytics(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	req, window, ok := h.bindAnalyticsRequest(c)
	if !ok {
		return
	}

	result, err := h.adminService.TransactionsByDateRange(c.Request.Context(), claims, req.Type, window.from, window.to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ActiveUserAnalytics handles the POST /admin/analytics/activeUsers endpoint
func (h *AdminHandler) ActiveUserAnalytics(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	req, window, ok := h.bindAnalyticsRequest(c)
	if !ok {
		return
	}

	result, err := h.adminService.ActiveUsersByDateRange(c.Request.Context(), claims, req.Type, window.from, window.to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type dateWindow struct {
	from time.Time
	to   time.Time
}

// bindAnalyticsRequest parses the request and widens the end date to
// the end of its day so a single-day window is inclusive.
func (h *AdminHandler) bindAnalyticsRequest(c *gin.Context) (dto.AnalyticsRequest, dateWindow, bool) {
	var req dto.AnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return req, dateWindow{}, false
	}

	from, err := time.Parse(analyticsDateLayout, req.StartDate)
	if err != nil {
		respondBadRequest(c, "Invalid startDate: "+req.StartDate)
		return req, dateWindow{}, false
	}
	end, err := time.Parse(analyticsDateLayout, req.EndDate)
	if err != nil {
		respondBadRequest(c, "Invalid endDate: "+req.EndDate)
		return req, dateWindow{}, false
	}
	if end.Before(from) {
		respondBadRequest(c, "endDate precedes startDate")
		return req, dateWindow{}, false
	}

	to := end.AddDate(0, 0, 1).Add(-time.Second)
	return req, dateWindow{from: from, to: to}, true
}
