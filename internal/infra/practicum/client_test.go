package practicum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchStatuses_OK(t *testing.T) {
	var gotAuth, gotFrom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks": [{"homework_name": "proj1", "status": "approved"}], "current_date": 1700000000}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second)
	payload, err := client.FetchStatuses(context.Background(), 1690000000)
	require.NoError(t, err)

	assert.Equal(t, "OAuth secret", gotAuth)
	assert.Equal(t, "1690000000", gotFrom)

	homeworks, err := homework.CheckResponse(payload)
	require.NoError(t, err)
	assert.Len(t, homeworks, 1)

	current, ok := homework.CurrentDate(payload)
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000), current)
}

func TestClient_FetchStatuses_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second)
	_, err := client.FetchStatuses(context.Background(), 0)

	var apiErr *homework.RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "Service Unavailable", apiErr.Reason)
	assert.Equal(t, "maintenance", apiErr.Body)
	assert.Nil(t, apiErr.Err)
}

func TestClient_FetchStatuses_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client := NewClient(endpoint, "secret", time.Second)
	_, err := client.FetchStatuses(context.Background(), 0)

	var apiErr *homework.RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
	assert.Error(t, apiErr.Err)
}

func TestClient_FetchStatuses_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second)
	_, err := client.FetchStatuses(context.Background(), 0)

	var apiErr *homework.RemoteAPIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestClient_FetchStatuses_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, "secret", 50*time.Millisecond)
	_, err := client.FetchStatuses(context.Background(), 0)

	var apiErr *homework.RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_FetchStatuses_LargeErrorBodyIsCut(t *testing.T) {
	page := "<html><body>" + strings.Repeat("Сервис недоступен. ", 1000) + "</body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second)
	_, err := client.FetchStatuses(context.Background(), 0)

	var apiErr *homework.RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, utf8.ValidString(apiErr.Body))
	assert.Equal(t, maxErrorBodyRunes, utf8.RuneCountInString(apiErr.Body))
	assert.Less(t, utf8.RuneCountInString(apiErr.Error()), 4096)
}
