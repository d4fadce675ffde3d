package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_SendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+447123456789", r.PostForm.Get("To"))
		assert.Equal(t, "+441234567890", r.PostForm.Get("From"))
		assert.Equal(t, "hello", r.PostForm.Get("Body"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid": "SM42", "status": "queued"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "secret", "+441234567890", server.URL, time.Second, nopLogger{})

	result, err := client.SendMessage(context.Background(), "+447123456789", "hello")
	require.NoError(t, err)
	assert.Equal(t, "SM42", result.SID)
}

func TestClient_SendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": 21211, "message": "The 'To' number is not a valid phone number."}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "secret", "+441234567890", server.URL, time.Second, nopLogger{})

	_, err := client.SendMessage(context.Background(), "bogus", "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIError)
	assert.Contains(t, err.Error(), "21211")
	assert.Contains(t, err.Error(), "not a valid phone number")
}

func TestClient_SendMessage_NotConfigured(t *testing.T) {
	client := NewClient("", "", "", "https://api.twilio.com", time.Second, nopLogger{})

	_, err := client.SendMessage(context.Background(), "+447123456789", "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_CheckHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("PageSize"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages": [{"sid": "SM1", "status": "delivered"}]}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "secret", "+441234567890", server.URL, time.Second, nopLogger{})

	result, err := client.CheckHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestClient_CheckHealth_AuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code": 20003, "message": "Authentication Error - invalid username"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "wrong", "+441234567890", server.URL, time.Second, nopLogger{})

	_, err := client.CheckHealth(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIError)
}
