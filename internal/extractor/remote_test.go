package extractor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxRetries:    2,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

func newTestClient(url string) *Client {
	c := NewClient(url)
	c.retry = fastRetry()
	return c
}

func TestExtractText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "soa.pdf", hdr.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "01/04/23 UPI-SWIGGY 250.00 9,750.00"}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).ExtractText(context.Background(), "soa.pdf", []byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Contains(t, text, "UPI-SWIGGY")
}

func TestExtractTextMissingTextField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "done"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ExtractText(context.Background(), "soa.pdf", []byte("pdf"))
	var extErr *ExtractError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, ErrBadResponse, extErr.Code)
	assert.False(t, extErr.Retryable)
}

func TestExtractTextNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ExtractText(context.Background(), "soa.pdf", []byte("pdf"))
	var extErr *ExtractError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, ErrBadResponse, extErr.Code)
}

func TestExtractTextServiceErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "unsupported document"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ExtractText(context.Background(), "soa.pdf", []byte("pdf"))
	var extErr *ExtractError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, ErrBadResponse, extErr.Code)
	assert.Contains(t, extErr.Message, "unsupported document")
}

func TestExtractTextRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Cold start on the first hit.
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"text": "recovered"}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).ExtractText(context.Background(), "soa.pdf", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExtractTextEmptyPayload(t *testing.T) {
	_, err := NewClient("http://unused").ExtractText(context.Background(), "soa.pdf", nil)
	var extErr *ExtractError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, ErrEmptyDocument, extErr.Code)
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), fastRetry(), func(ctx context.Context) (string, error) {
		calls++
		return "", &ExtractError{Code: ErrBadResponse, Message: "permanent"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), fastRetry(), func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("transient")
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls) // initial attempt + 2 retries
}

func TestWithRetryHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := withRetry(ctx, fastRetry(), func(ctx context.Context) (string, error) {
		return "", errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
