package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	ticketUseCase "github.com/powerstack-ng/powerstack-api/internal/domain/usecase/ticket"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/dto"
)

// TicketHandler handles support ticket HTTP requests
type TicketHandler struct {
	ticketService *ticketUseCase.UseCase
	logger        coreport.Logger
}

// NewTicketHandler creates a new ticket handler instance
func NewTicketHandler(ticketService *ticketUseCase.UseCase, logger coreport.Logger) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
		logger:        logger,
	}
}

// Submit handles the POST /user/ticket endpoint
func (h *TicketHandler) Submit(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req dto.TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	ticketID, err := h.ticketService.Submit(c.Request.Context(), claims, req.Details)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TicketResponse{
		TicketID: ticketID,
		Message:  "Ticket submitted",
	})
}

// List handles the GET /admin/tickets endpoint
func (h *TicketHandler) List(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.List(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// UpdateStatus handles the POST /admin/ticketStatus endpoint
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req dto.TicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.ticketService.UpdateStatus(c.Request.Context(), claims, req.TicketID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Ticket status updated"})
}

// AddComment handles the POST /admin/ticketComment endpoint
func (h *TicketHandler) AddComment(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req dto.TicketCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.ticketService.AddComment(c.Request.Context(), claims, req.TicketID, req.Comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment added"})
}
