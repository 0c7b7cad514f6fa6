package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor/internal/domain/notifier"
	"motor/internal/pkg/logger"
)

func TestClientSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/12345/messages", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, PhoneNumberID: "12345", AccessToken: "tok", Timeout: time.Second}, logger.NewNop())

	require.NoError(t, c.Send(context.Background(), "hello", "+966500000000"))
	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "+966500000000", got.To)
	assert.Equal(t, "text", got.Type)
	assert.Equal(t, "hello", got.Text.Body)
}

func TestClientSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid parameter","code":100}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, PhoneNumberID: "1", Timeout: time.Second}, logger.NewNop())

	err := c.Send(context.Background(), "hello", "+1")
	require.Error(t, err)

	var chErr *notifier.ChannelError
	require.True(t, errors.As(err, &chErr))
	assert.Equal(t, ChannelName, chErr.Channel)
	assert.Contains(t, err.Error(), "Invalid parameter")
}

func TestClientSendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: url, PhoneNumberID: "1", Timeout: time.Second}, logger.NewNop())

	var chErr *notifier.ChannelError
	assert.ErrorAs(t, c.Send(context.Background(), "hello", "+1"), &chErr)
}
