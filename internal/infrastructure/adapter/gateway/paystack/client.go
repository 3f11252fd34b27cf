package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/gateway"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/config"
)

// Client talks to the Paystack REST API. It implements the
// PaymentGateway port.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
	logger    core.Logger
}

// NewClient creates a Paystack client from configuration.
func NewClient(cfg config.PaystackConfig, logger core.Logger) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		http:      &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
}

type initializeRequest struct {
	Email       string                 `json:"email"`
	Amount      string                 `json:"amount"`
	Reference   string                 `json:"reference"`
	CallbackURL string                 `json:"callback_url,omitempty"`
	Metadata    gateway.ChargeMetadata `json:"metadata"`
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Status          string                 `json:"status"`
	Amount          int64                  `json:"amount"`
	Fees            int64                  `json:"fees"`
	TransactionDate string                 `json:"transaction_date"`
	Metadata        gateway.ChargeMetadata `json:"metadata"`
	Customer        struct {
		Email string `json:"email"`
	} `json:"customer"`
}

// InitializeCharge opens a hosted payment session.
func (c *Client) InitializeCharge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeSession, error) {
	payload := initializeRequest{
		Email:       req.Email,
		Amount:      strconv.FormatInt(req.AmountKobo, 10),
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
		Metadata:    req.Metadata,
	}

	var data initializeData
	if err := c.post(ctx, "/transaction/initialize", payload, &data); err != nil {
		return nil, err
	}

	return &gateway.ChargeSession{
		AuthorizationURL: data.AuthorizationURL,
		Reference:        data.Reference,
	}, nil
}

// VerifyCharge fetches the authoritative transaction record.
func (c *Client) VerifyCharge(ctx context.Context, reference string) (*gateway.ChargeVerification, error) {
	var data verifyData
	if err := c.get(ctx, "/transaction/verify/"+reference, &data); err != nil {
		return nil, err
	}

	return &gateway.ChargeVerification{
		Status:          data.Status,
		AmountKobo:      data.Amount,
		FeesKobo:        data.Fees,
		TransactionDate: data.TransactionDate,
		CustomerEmail:   data.Customer.Email,
		Metadata:        data.Metadata,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.NewGatewayError("encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.NewGatewayError("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, path, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errs.NewGatewayError("build request", err)
	}

	return c.do(req, path, out)
}

// do sends the request and decodes the standard Paystack response
// envelope. Any transport failure, non-2xx status or status=false
// envelope surfaces as a gateway error.
func (c *Client) do(req *http.Request, path string, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Gateway request failed", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return errs.NewGatewayError(path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.NewGatewayError(path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errs.NewGatewayError(path, fmt.Errorf("malformed response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Status {
		c.logger.Error("Gateway rejected request", map[string]any{
			"path":        path,
			"status_code": resp.StatusCode,
			"message":     env.Message,
		})
		return errs.NewGatewayError(path, fmt.Errorf("status %d: %s", resp.StatusCode, env.Message))
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errs.NewGatewayError(path, fmt.Errorf("malformed data: %w", err))
	}
	return nil
}
