package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	domainerr "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	paymentUseCase "github.com/powerstack-ng/powerstack-api/internal/domain/usecase/payment"
	userUseCase "github.com/powerstack-ng/powerstack-api/internal/domain/usecase/user"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *paymentUseCase.Service
	userService    *userUseCase.UseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(
	paymentService *paymentUseCase.Service,
	userService *userUseCase.UseCase,
	logger coreport.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		userService:    userService,
		logger:         logger,
	}
}

// InitPay handles the POST /user/initPay endpoint
func (h *PaymentHandler) InitPay(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req dto.InitPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amountKobo, err := entity.ParseNaira(req.Amount)
	if err != nil {
		respondBadRequest(c, "Invalid amount: "+req.Amount)
		return
	}

	email := claims.Email
	phone := claims.PhoneNumber
	if entity.TxnType(req.TxnType) == entity.TxnPublic && req.Email != "" {
		// Guest checkout carries its own contact details.
		email = req.Email
		phone = req.PhoneNumber
	}

	result, err := h.paymentService.InitializePayment(c.Request.Context(), paymentUseCase.InitializePaymentRequest{
		Email:       email,
		PhoneNumber: phone,
		AmountKobo:  amountKobo,
		TxnType:     entity.TxnType(req.TxnType),
		Platform:    req.Platform,
		MeterNumber: req.MeterNumber,
		MeterType:   req.MeterType,
		Location:    req.Location,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InitPayResponse{
		AuthorizationURL: result.AuthorizationURL,
		TxnRef:           result.Reference,
	})
}

// ConfirmPay handles the GET /user/confirmPay endpoint
func (h *PaymentHandler) ConfirmPay(c *gin.Context) {
	reference := c.Query("txnRef")
	if reference == "" {
		respondBadRequest(c, "Missing required query parameter: txnRef")
		return
	}

	purchase, err := h.paymentService.ConfirmPayment(c.Request.Context(), reference)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchase.ToReceipt())
}

// WalletPay handles the POST /user/walletPay endpoint
func (h *PaymentHandler) WalletPay(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req dto.WalletPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amountKobo, err := entity.ParseNaira(req.Amount)
	if err != nil {
		respondBadRequest(c, "Invalid amount: "+req.Amount)
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

	purchase, err := h.paymentService.PayWithWallet(c.Request.Context(), paymentUseCase.PayWithWalletRequest{
		Email:           claims.Email,
		PhoneNumber:     claims.PhoneNumber,
		AmountKobo:      amountKobo,
		MeterNumber:     req.MeterNumber,
		MeterType:       req.MeterType,
		Location:        req.Location,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchase.ToReceipt())
}
