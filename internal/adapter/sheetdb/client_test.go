package sheetdb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchRows(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantFirst string
	}{
		{name: "bare array", body: `[{"Model":"A"},{"Model":"B"}]`, wantLen: 2, wantFirst: "A"},
		{name: "data envelope", body: `{"data":[{"Model":"C"}]}`, wantLen: 1, wantFirst: "C"},
		{name: "object without data", body: `{"message":"empty"}`, wantLen: 0},
		{name: "empty body", body: ``, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			rows, err := NewClient(time.Second).FetchRows(context.Background(), server.URL)
			require.NoError(t, err)
			require.Len(t, rows, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, rows[0]["Model"])
			}
		})
	}
}

func TestClient_FetchRows_Errors(t *testing.T) {
	t.Run("upstream status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("rate limited"))
		}))
		defer server.Close()

		_, err := NewClient(time.Second).FetchRows(context.Background(), server.URL)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
		assert.Equal(t, "rate limited", statusErr.Body)
	})

	t.Run("malformed json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("[{"))
		}))
		defer server.Close()

		_, err := NewClient(time.Second).FetchRows(context.Background(), server.URL)
		assert.Error(t, err)
	})
}

func TestClient_AppendRows(t *testing.T) {
	var received struct {
		Data []map[string]string `json:"data"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"created":1}`))
	}))
	defer server.Close()

	body, err := NewClient(time.Second).AppendRows(context.Background(), server.URL, []map[string]string{{"name": "Aoife"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"created":1}`, string(body))
	require.Len(t, received.Data, 1)
	assert.Equal(t, "Aoife", received.Data[0]["name"])
}
