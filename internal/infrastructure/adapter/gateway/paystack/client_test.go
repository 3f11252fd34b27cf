package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	gwport "github.com/powerstack-ng/powerstack-api/internal/domain/port/gateway"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/logger"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.PaystackConfig{
		SecretKey: "sk_test_secret",
		BaseURL:   serverURL,
		Timeout:   5 * time.Second,
	}, logger.NewNoopLogger())
}

func TestInitializeCharge(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/transaction/initialize", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Authorization URL created",
				"data": {
					"authorization_url": "https://checkout.paystack.com/abc123",
					"access_code": "abc123",
					"reference": "ref-001"
				}
			}`))
		}))
		defer server.Close()

		session, err := newTestClient(server.URL).InitializeCharge(context.Background(), gwport.ChargeRequest{
			Email:       "user@example.com",
			AmountKobo:  100000,
			Reference:   "ref-001",
			CallbackURL: "https://app.powerstack.ng/receipt/ref-001?confirm=true",
			Metadata:    gwport.ChargeMetadata{TxnType: "Simple", MeterNumber: "12345678901"},
		})
		require.NoError(t, err)

		assert.Equal(t, "https://checkout.paystack.com/abc123", session.AuthorizationURL)
		assert.Equal(t, "ref-001", session.Reference)
		assert.Equal(t, "Bearer sk_test_secret", gotAuth)
		// Paystack takes the amount as a kobo string.
		assert.Equal(t, "100000", gotBody["amount"])
		assert.Equal(t, "user@example.com", gotBody["email"])
	})

	t.Run("Rejected envelope is a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).InitializeCharge(context.Background(), gwport.ChargeRequest{
			Email: "user@example.com", AmountKobo: 100000, Reference: "ref-001",
		})
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}

func TestVerifyCharge(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/transaction/verify/ref-001", r.URL.Path)

			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {
					"status": "success",
					"amount": 100000,
					"fees": 1500,
					"transaction_date": "2025-03-14T10:31:00.000Z",
					"customer": {"email": "user@example.com"},
					"metadata": {"tx_type": "Simple", "meter_number": "12345678901"}
				}
			}`))
		}))
		defer server.Close()

		v, err := newTestClient(server.URL).VerifyCharge(context.Background(), "ref-001")
		require.NoError(t, err)

		assert.True(t, v.Success())
		assert.Equal(t, int64(100000), v.AmountKobo)
		assert.Equal(t, int64(1500), v.FeesKobo)
		assert.Equal(t, "user@example.com", v.CustomerEmail)
		assert.Equal(t, "Simple", v.Metadata.TxnType)
	})

	t.Run("Abandoned transaction is not a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {"status": "abandoned", "amount": 100000, "fees": 0}
			}`))
		}))
		defer server.Close()

		v, err := newTestClient(server.URL).VerifyCharge(context.Background(), "ref-001")
		require.NoError(t, err)
		assert.False(t, v.Success())
	})

	t.Run("Non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).VerifyCharge(context.Background(), "ref-404")
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("Malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).VerifyCharge(context.Background(), "ref-001")
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("Unreachable gateway", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestClient(server.URL).VerifyCharge(context.Background(), "ref-001")
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}
