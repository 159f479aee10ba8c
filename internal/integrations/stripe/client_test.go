package stripe

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingMetrics struct {
	calls []string
}

func (m *recordingMetrics) ObservePaymentCall(operation, status string) {
	m.calls = append(m.calls, operation+":"+status)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingMetrics) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := &recordingMetrics{}
	c := NewClient(Config{
		SecretKey:  "sk_test_123",
		BaseURL:    srv.URL,
		Timeout:    2 * time.Second,
		MaxRetries: 0,
	}, m, nopLogger{})

	return c, m
}

func intentJSON(id string, amount int64, status string) string {
	return fmt.Sprintf(`{"id":%q,"object":"payment_intent","amount":%d,"currency":"usd","client_secret":"%s_secret_abc","status":%q}`,
		id, amount, id, status)
}

func TestClient_CreateIntent(t *testing.T) {
	var form string
	c, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.Form.Encode()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(intentJSON("pi_1", 45000, "requires_payment_method")))
	})

	pi, err := c.CreateIntent(context.Background(), 45000, "usd", map[string]string{"room_id": "room_1"})
	require.NoError(t, err)

	assert.Equal(t, "pi_1", pi.ID)
	assert.Equal(t, int64(45000), pi.Amount)
	assert.Equal(t, "usd", pi.Currency)
	assert.Equal(t, "pi_1_secret_abc", pi.ClientSecret)
	assert.Contains(t, form, "amount=45000")
	assert.Contains(t, form, "currency=usd")
	assert.Equal(t, []string{"create_intent:ok"}, m.calls)
}

func TestClient_CreateIntent_RejectsNonPositiveAmount(t *testing.T) {
	c, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called")
	})

	_, err := c.CreateIntent(context.Background(), 0, "usd", nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, m.calls)
}

func TestClient_UpdateIntentAmount(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_1", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "30000", r.Form.Get("amount"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(intentJSON("pi_1", 30000, "requires_payment_method")))
	})

	pi, err := c.UpdateIntentAmount(context.Background(), "pi_1", 30000)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), pi.Amount)
}

func TestClient_RetrieveIntent_NotFound(t *testing.T) {
	c, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such payment_intent: 'pi_x'"}}`))
	})

	_, err := c.RetrieveIntent(context.Background(), "pi_x")
	assert.ErrorIs(t, err, ErrIntentNotFound)
	assert.Equal(t, []string{"retrieve_intent:error"}, m.calls)
}

func TestClient_ProviderFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"amount_too_small","message":"Amount must be at least 50 cents"}}`))
	})

	_, err := c.CreateIntent(context.Background(), 10, "usd", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)
	assert.True(t, strings.Contains(err.Error(), "CreateIntent"))
}

func TestClient_ZeroMaxRetriesCallsProviderOnce(t *testing.T) {
	var requests int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Stripe-Should-Retry", "true")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"temporarily unavailable"}}`))
	})

	_, err := c.RetrieveIntent(context.Background(), "pi_1")
	assert.ErrorIs(t, err, ErrProvider)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}
