package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ucsbapi/config"
	"ucsbapi/internal/domain/constants"
	"ucsbapi/internal/domain/service"
	"ucsbapi/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushBody(t *testing.T, event *service.ResourceEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	msg.Subscription = "projects/local/subscriptions/resource-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func serve(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func TestHandlePush_LogsEvent(t *testing.T) {
	var buf bytes.Buffer
	h := NewPushHandler(&config.Config{}, slog.New(slog.NewJSONHandler(&buf, nil)))

	rec := serve(h, newPushBody(t, &service.ResourceEvent{
		EventID:    "e-1",
		Resource:   "animals",
		Operation:  "create",
		Key:        "7",
		Actor:      "admin@ucsb.edu",
		OccurredAt: time.Now(),
	}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"resource":"animals"`)
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"actor":"admin@ucsb.edu"`)
}

func TestHandlePush_Malformed(t *testing.T) {
	h := NewPushHandler(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, http.StatusBadRequest, serve(h, `{"message":{"data":"%%%"}}`, nil).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, serve(h, `{"message":{"data":"`+notJSON+`"}}`, nil).Code)
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	h := NewPushHandler(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.True(t, h.verifyPushAuth)

	body := newPushBody(t, &service.ResourceEvent{EventID: "e-1", Resource: "books", Operation: "delete", Key: "1"})

	assert.Equal(t, http.StatusUnauthorized, serve(h, body, nil).Code)

	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good" {
			return nil, errors.New("bad token")
		}
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
	}

	assert.Equal(t, http.StatusUnauthorized, serve(h, body, http.Header{"Authorization": {"Bearer bad"}}).Code)
	assert.Equal(t, http.StatusOK, serve(h, body, http.Header{"Authorization": {"Bearer good"}}).Code)
}
