package mailgun

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwick/shelf-api/internal/events"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMailer(t *testing.T, handler http.HandlerFunc) *Mailer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	m := NewMailer("mg.example.com", "key-testing", "Shelf <noreply@mg.example.com>", discardLogger())
	m.baseURL = server.URL
	m.client = server.Client()
	return m
}

func TestSend(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotSubject string
	var gotUser, gotPass string
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotFrom = r.PostFormValue("from")
		gotTo = r.PostFormValue("to")
		gotSubject = r.PostFormValue("subject")
		w.WriteHeader(http.StatusOK)
	})

	err := m.Send(context.Background(), "alice@example.com", "Hello", "Hi there")
	require.NoError(t, err)

	assert.Equal(t, "/mg.example.com/messages", gotPath)
	assert.Equal(t, "api", gotUser)
	assert.Equal(t, "key-testing", gotPass)
	assert.Equal(t, "Shelf <noreply@mg.example.com>", gotFrom)
	assert.Equal(t, "alice@example.com", gotTo)
	assert.Equal(t, "Hello", gotSubject)
}

func TestSendSurfacesAPIFailure(t *testing.T) {
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Forbidden", http.StatusUnauthorized)
	})

	err := m.Send(context.Background(), "alice@example.com", "Hello", "Hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestHandleEventSendsWelcomeEmail(t *testing.T) {
	var gotTo, gotText string
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("to")
		gotText = r.PostFormValue("text")
		w.WriteHeader(http.StatusOK)
	})

	event, err := events.NewEvent(events.TypeUserRegistered, events.UserRegisteredPayload{
		UserID:   uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, m.HandleEvent(context.Background(), event))
	assert.Equal(t, "alice@example.com", gotTo)
	assert.Contains(t, gotText, "alice")
}

func TestHandleEventIgnoresOtherTypes(t *testing.T) {
	called := false
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	event, err := events.NewEvent("item.created", map[string]string{"id": "x"})
	require.NoError(t, err)

	require.NoError(t, m.HandleEvent(context.Background(), event))
	assert.False(t, called, "unrelated events must not trigger email")
}

func TestNewMailerDefaultSender(t *testing.T) {
	m := NewMailer("mg.example.com", "key", "", discardLogger())
	assert.Equal(t, "postmaster@mg.example.com", m.sender)
}
