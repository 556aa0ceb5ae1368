package notifier_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DerekDew/poe2-api-stub/internal/infrastructure/notifier"
)

func TestDiscordSend(t *testing.T) {
	rq := require.New(t)

	var gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal(http.MethodPost, r.Method)
		rq.Equal("application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		rq.NoError(err)
		gotBody = string(body)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	discord := notifier.NewDiscord(server.URL)

	rq.NoError(discord.Send(context.Background(), "hello"))
	rq.Equal(`{"content":"hello"}`, gotBody)
}

func TestDiscordSendServerError(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	discord := notifier.NewDiscord(server.URL)

	err := discord.Send(context.Background(), "hello")
	rq.ErrorContains(err, "502")
}
