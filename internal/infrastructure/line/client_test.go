package line

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor/internal/application/dto"
	"motor/internal/domain/constant"
	"motor/internal/pkg/logger"
)

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient("", "token", "U1", logger.NewNop())
	assert.Error(t, err)
	_, err = NewClient("secret", "token", "", logger.NewNop())
	assert.Error(t, err)
}

func TestNotifySweepPushesSummaryToAdmin(t *testing.T) {
	type pushBody struct {
		To       string `json:"to"`
		Messages []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	var got pushBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/bot/message/push", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := NewClient("secret", "token", "Uadmin", logger.NewNop(), WithEndpoint(srv.URL))
	require.NoError(t, err)

	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	report := dto.SweepReport{RunID: "r1", Kind: constant.SweepDue, StartedAt: start, FinishedAt: start.Add(2 * time.Second), Sent: 3, Marked: 1}
	require.NoError(t, c.NotifySweep(context.Background(), report))

	assert.Equal(t, "Uadmin", got.To)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "text", got.Messages[0].Type)
	assert.Equal(t, report.Summary(), got.Messages[0].Text)
}

func TestNotifySweepReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"You have reached your monthly limit."}`))
	}))
	defer srv.Close()

	c, err := NewClient("secret", "token", "Uadmin", logger.NewNop(), WithEndpoint(srv.URL))
	require.NoError(t, err)

	assert.Error(t, c.NotifySweep(context.Background(), dto.SweepReport{Kind: constant.SweepMileage}))
}
