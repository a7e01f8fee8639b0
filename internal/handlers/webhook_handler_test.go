package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixgate-systems/pixgate/internal/service"
	"github.com/pixgate-systems/pixgate/internal/webhook"
)

// denyLimiter always refuses, simulating an exhausted window.
type denyLimiter struct{}

func (denyLimiter) Allow(ctx context.Context, key string) (bool, error) { return false, nil }
func (denyLimiter) Close() error                                        { return nil }

func newTestHandler(auth webhook.AuthConfig, subs webhook.Subscriptions) *WebhookHandler {
	pipeline := service.New(auth, subs, nil, nil)
	return NewWebhookHandler(pipeline, nil, nil, 1<<20)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/abacatepay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) WebhookResponse {
	t.Helper()
	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleUnifiedForwards(t *testing.T) {
	h := newTestHandler(webhook.AuthConfig{Mode: webhook.AuthNone}, nil)

	rec := postJSON(t, h.HandleUnified, `{"data":{"amount":1000,"status":"PAID","platformFee":50,"brCode":"xyz"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.DeliveryID)
	assert.False(t, resp.Suppressed)

	require.NotNil(t, resp.Event)
	assert.Equal(t, "pix.payment.completed", resp.Event["event"])
	assert.Equal(t, "pix", resp.Event["resourceType"])
}

func TestHandleInvalidJSON(t *testing.T) {
	h := newTestHandler(webhook.AuthConfig{Mode: webhook.AuthNone}, nil)

	rec := postJSON(t, h.HandleUnified, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestHandleMethodNotAllowed(t *testing.T) {
	h := newTestHandler(webhook.AuthConfig{Mode: webhook.AuthNone}, nil)

	req := httptest.NewRequest(http.MethodGet, "/webhooks/abacatepay", nil)
	rec := httptest.NewRecorder()
	h.HandleUnified(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleAuthFailureIsOKButSuppressed(t *testing.T) {
	auth := webhook.AuthConfig{Mode: webhook.AuthHeader, HeaderName: "X-Token", HeaderValue: "good"}
	h := newTestHandler(auth, nil)

	rec := postJSON(t, h.HandleUnified, `{"brCode":"x"}`)

	require.Equal(t, http.StatusOK, rec.Code, "gateway must never see an auth error status")
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Suppressed)
	assert.Equal(t, service.ReasonAuthFailed, resp.Reason)
	assert.Empty(t, resp.DeliveryID)
}

func TestHandleNotSubscribedSuppressed(t *testing.T) {
	subs := webhook.NewSubscriptions(webhook.EventBillingPaid)
	h := newTestHandler(webhook.AuthConfig{Mode: webhook.AuthNone}, subs)

	rec := postJSON(t, h.HandleUnified, `{"brCode":"x","status":"PAID"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Suppressed)
	assert.Equal(t, service.ReasonNotSubscribed, resp.Reason)
}

func TestHandleResourceScopeMismatch(t *testing.T) {
	h := newTestHandler(webhook.AuthConfig{Mode: webhook.AuthNone}, nil)

	rec := postJSON(t, h.Resource(webhook.KindCoupon), `{"name":"A","email":"a@x.com","taxId":"1","cellphone":"2"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Suppressed)
	assert.Equal(t, service.ReasonResourceMismatch, resp.Reason)
}

func TestHandleResourceScopedForwards(t *testing.T) {
	h := newTestHandler(webhook.AuthConfig{Mode: webhook.AuthNone}, nil)

	rec := postJSON(t, h.Resource(webhook.KindBilling), `{"url":"https://pay.example.com/b/1","status":"PAID"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Suppressed)
	assert.Equal(t, "billing.paid", resp.Event["event"])
}

func TestHandleRateLimited(t *testing.T) {
	pipeline := service.New(webhook.AuthConfig{Mode: webhook.AuthNone}, nil, nil, nil)
	h := NewWebhookHandler(pipeline, denyLimiter{}, nil, 0)

	rec := postJSON(t, h.HandleUnified, `{"brCode":"x"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Suppressed)
	assert.Equal(t, reasonRateLimited, resp.Reason)
}

func TestHandleBodyTooLarge(t *testing.T) {
	h := newTestHandler(webhook.AuthConfig{Mode: webhook.AuthNone}, nil)
	h.maxBodySize = 16

	rec := postJSON(t, h.HandleUnified, `{"padding":"`+strings.Repeat("a", 64)+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndReady(t *testing.T) {
	h := newTestHandler(webhook.AuthConfig{Mode: webhook.AuthNone}, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")

	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ready")
}
