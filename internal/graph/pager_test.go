package graph

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectRecords_SinglePage(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "raw-token", r.Header.Get("Authorization"),
			"report endpoints take the raw token, no Bearer prefix")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":[{"id":"a","callType":"user_in"},{"id":"b","callType":"user_out"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.CollectRecords(context.Background(), server.URL+"/report", "raw-token")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0]["id"])
	assert.Equal(t, "b", records[1]["id"])
	assert.Equal(t, int64(1), requests.Load(), "no continuation means no further requests")
}

func TestCollectRecords_FollowsContinuationChain(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/report", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"value":[{"id":"a"},{"id":"b"}],"@odata.NextLink":"%s/page2"}`, server.URL)
	})
	mux.HandleFunc("/page2", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"value":[{"id":"c"}],"@odata.NextLink":"%s/page3"}`, server.URL)
	})
	mux.HandleFunc("/page3", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"value":[{"id":"d"},{"id":"e"}]}`))
	})

	client := newTestClient(server.URL)

	records, err := client.CollectRecords(context.Background(), server.URL+"/report", "raw-token")

	require.NoError(t, err)
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec["id"].(string))
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids,
		"records arrive as the concatenation of pages, in page order")
}

func TestCollectRecords_FailedPageAbortsChain(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	var laterRequests atomic.Int64
	mux.HandleFunc("/report", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"value":[{"id":"a"},{"id":"b"}],"@odata.NextLink":"%s/page2"}`, server.URL)
	})
	mux.HandleFunc("/page2", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/page3", func(_ http.ResponseWriter, _ *http.Request) {
		laterRequests.Add(1)
	})

	client := newTestClient(server.URL)

	records, err := client.CollectRecords(context.Background(), server.URL+"/report", "raw-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, ErrServerError)
	// Records seen before the failure stay delivered, but the failing page
	// never repeats them and the chain stops there.
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0]["id"])
	assert.Equal(t, "b", records[1]["id"])
	assert.Zero(t, laterRequests.Load())
}

func TestCollectRecords_UnauthorisedPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CollectRecords(context.Background(), server.URL+"/report", "expired-token")

	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, ErrUnauthorised)
}

func TestCollectRecords_MalformedPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"value": [`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CollectRecords(context.Background(), server.URL+"/report", "raw-token")

	assert.ErrorIs(t, err, ErrFetch)
}

func TestCollectRecords_EmptyToken(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CollectRecords(context.Background(), server.URL+"/report", "")

	assert.ErrorIs(t, err, ErrAuth)
	assert.Zero(t, requests.Load())
}

func TestStreamRecords_LazyDelivery(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	var page2Requests atomic.Int64
	mux.HandleFunc("/report", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"value":[{"id":"a"}],"@odata.NextLink":"%s/page2"}`, server.URL)
	})
	mux.HandleFunc("/page2", func(w http.ResponseWriter, _ *http.Request) {
		page2Requests.Add(1)
		w.Write([]byte(`{"value":[{"id":"b"}]}`))
	})

	client := newTestClient(server.URL)

	records, errs := client.StreamRecords(context.Background(), server.URL+"/report", "raw-token")

	// The first record is available before the second page is requested.
	first := <-records
	assert.Equal(t, "a", first["id"])
	assert.Zero(t, page2Requests.Load(), "page 2 must not be fetched until page 1 is consumed")

	second := <-records
	assert.Equal(t, "b", second["id"])

	_, open := <-records
	assert.False(t, open)
	assert.NoError(t, <-errs)
}

func TestStreamRecords_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"value":[{"id":"a"},{"id":"b"}],"@odata.NextLink":"%s/loop"}`, "http://"+r.Host)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := newTestClient(server.URL)

	records, errs := client.StreamRecords(ctx, server.URL+"/report", "raw-token")

	<-records
	cancel()

	for range records {
	}
	err := <-errs
	assert.ErrorIs(t, err, context.Canceled)
}
