package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/observability"
)

func TestNew_Defaults(t *testing.T) {
	f := New(Config{})

	assert.Equal(t, domain.DefaultDocumentTimeout, f.client.Timeout)
	assert.Equal(t, int64(domain.DefaultMaxDocumentBytes), f.maxBytes)
	assert.Equal(t, domain.DefaultDocumentUserAgent, f.userAgent)
}

func TestFetch_Success(t *testing.T) {
	var mu sync.Mutex
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotUA = r.Header.Get("User-Agent")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 body"))
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics("test", reg)
	f := New(Config{Timeout: time.Second, Metrics: metrics})

	raw, err := f.Fetch(context.Background(), srv.URL+"/paper.pdf")

	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/paper.pdf", raw.URI)
	assert.Equal(t, "application/pdf", raw.MIMEType)
	assert.Equal(t, []byte("%PDF-1.4 body"), raw.Content)

	mu.Lock()
	assert.Equal(t, domain.DefaultDocumentUserAgent, gotUA)
	mu.Unlock()

	count, err := testutil.GatherAndCount(reg, "test_document_bytes")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFetch_CustomUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
	}))
	defer srv.Close()

	f := New(Config{UserAgent: "pwc-mcp-test/1.0"})
	raw, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "pwc-mcp-test/1.0", string(raw.Content))
}

func TestFetch_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/abs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/pdf", http.StatusFound)
	})
	mux.HandleFunc("/pdf", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	raw, err := New(Config{}).Fetch(context.Background(), srv.URL+"/abs")

	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/pdf", raw.URI)
	assert.Equal(t, "application/pdf", raw.MIMEType)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	_, err := New(Config{}).Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Contains(t, err.Error(), "HTTP 410")
}

func TestFetch_TooLarge(t *testing.T) {
	body := strings.Repeat("x", 64)

	t.Run("declared length", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		defer srv.Close()

		_, err := New(Config{MaxBytes: 16}).Fetch(context.Background(), srv.URL)

		assert.ErrorIs(t, err, domain.ErrDocumentTooLarge)
	})

	t.Run("chunked body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			for i := 0; i < 4; i++ {
				_, _ = w.Write([]byte(body))
				w.(http.Flusher).Flush()
			}
		}))
		defer srv.Close()

		_, err := New(Config{MaxBytes: 100}).Fetch(context.Background(), srv.URL)

		assert.ErrorIs(t, err, domain.ErrDocumentTooLarge)
	})

	t.Run("exactly at limit", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		defer srv.Close()

		raw, err := New(Config{MaxBytes: 64}).Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Len(t, raw.Content, 64)
	})
}

func TestFetch_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(Config{}).Fetch(context.Background(), url)

	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(Config{Timeout: 50 * time.Millisecond}).Fetch(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := New(Config{}).Fetch(context.Background(), "http://[::1")

	assert.ErrorIs(t, err, ErrFetchFailed)
}
