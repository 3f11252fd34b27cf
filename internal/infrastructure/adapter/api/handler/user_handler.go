package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	domainerr "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	userUseCase "github.com/powerstack-ng/powerstack-api/internal/domain/usecase/user"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles account-surface HTTP requests
type UserHandler struct {
	userService *userUseCase.UseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *userUseCase.UseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Dashboard handles the GET /user/dashboard endpoint. First call for a
// fresh identity provisions the account.
func (h *UserHandler) Dashboard(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	user, _, err := h.userService.EnsureUser(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	if !user.IsActive {
		respondError(c, domainerr.ErrAccountDeactivated)
		return
	}

	c.JSON(http.StatusOK, user.ToDashboard())
}

// Purchases handles the GET /user/purchases endpoint
func (h *UserHandler) Purchases(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	receipts, err := h.userService.PurchaseHistory(c.Request.Context(), claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchases": receipts})
}

// Receipt handles the GET /user/receipt endpoint
func (h *UserHandler) Receipt(c *gin.Context) {
	reference := c.Query("txnRef")
	if reference == "" {
		respondBadRequest(c, "Missing required query parameter: txnRef")
		return
	}

	receipt, err := h.userService.GetReceipt(c.Request.Context(), reference)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// AddMeter handles the POST /user/addMeter endpoint
func (h *UserHandler) AddMeter(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req dto.AddMeterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	added, err := h.userService.AddMeter(c.Request.Context(), claims.Email, entity.Meter{
		MeterName:     req.MeterName,
		MeterNumber:   req.MeterNumber,
		MeterType:     req.MeterType,
		MeterLocation: req.MeterLocation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Meter saved"
	if !added {
		message = "Meter already saved"
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// RemoveMeter handles the POST /user/removeMeter endpoint
func (h *UserHandler) RemoveMeter(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req dto.RemoveMeterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.userService.RemoveMeter(c.Request.Context(), claims.Email, req.MeterNumber); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Meter removed"})
}
