package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor/internal/infrastructure/line"
	"motor/internal/pkg/logger"
)

const testChannelSecret = "test-secret"

type replyRecorder struct {
	mu      sync.Mutex
	replies []string
}

func (r *replyRecorder) texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.replies...)
}

func newLineFixture(t *testing.T) (*LineHandler, *fakeDispatch, *replyRecorder) {
	t.Helper()
	rec := &replyRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Text string `json:"text"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.mu.Lock()
		for _, m := range body.Messages {
			rec.replies = append(rec.replies, m.Text)
		}
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client, err := line.NewClient(testChannelSecret, "token", "Uadmin", logger.NewNop(), line.WithEndpoint(srv.URL))
	require.NoError(t, err)

	dispatch := &fakeDispatch{}
	return NewLineHandler(client, dispatch, logger.NewNop()), dispatch, rec
}

func webhookBody(userID, text string) string {
	return fmt.Sprintf(`{"destination":"Ubot","events":[{"type":"message","mode":"active","timestamp":1717232400000,"replyToken":"rt-1","source":{"type":"user","userId":%q},"message":{"type":"text","id":"100","text":%q}}]}`, userID, text)
}

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(testChannelSecret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func webhookContext(body, signature string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
	req.Header.Set("X-Line-Signature", signature)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLineHandler_AdminCommands(t *testing.T) {
	h, dispatch, replies := newLineFixture(t)

	body := webhookBody("Uadmin", " DUE ")
	c, rec := webhookContext(body, sign(body))
	require.NoError(t, h.HandleWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, dispatch.due)

	body = webhookBody("Uadmin", "mileage")
	c, _ = webhookContext(body, sign(body))
	require.NoError(t, h.HandleWebhook(c))
	assert.Equal(t, 1, dispatch.mileage)

	body = webhookBody("Uadmin", "help")
	c, _ = webhookContext(body, sign(body))
	require.NoError(t, h.HandleWebhook(c))

	texts := replies.texts()
	require.Len(t, texts, 3)
	assert.Contains(t, texts[0], "[due] sent=2")
	assert.Contains(t, texts[1], "[mileage] sent=5")
	assert.Equal(t, helpText, texts[2])
}

func TestLineHandler_IgnoresOtherUsers(t *testing.T) {
	h, dispatch, replies := newLineFixture(t)

	body := webhookBody("Ustranger", "due")
	c, rec := webhookContext(body, sign(body))
	require.NoError(t, h.HandleWebhook(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, dispatch.due)
	assert.Empty(t, replies.texts())
}

func TestLineHandler_RejectsBadSignature(t *testing.T) {
	h, dispatch, _ := newLineFixture(t)

	body := webhookBody("Uadmin", "due")
	c, rec := webhookContext(body, "bm90IGEgc2lnbmF0dXJl")
	require.NoError(t, h.HandleWebhook(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, dispatch.due)
}
