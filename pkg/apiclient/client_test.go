package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New("https://api.example.com", ""); err == nil {
		t.Fatalf("expected error for empty api key")
	}
	if _, err := New("https://api.example.com", "key-123"); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestRequestIncludesDefaultHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "key-123" {
			t.Errorf("x-api-key = %q, want %q", got, "key-123")
		}
		if got := r.Header.Get("accept"); got != "application/json" {
			t.Errorf("accept = %q, want application/json", got)
		}
		if got := r.Header.Get("content-type"); got != "application/json" {
			t.Errorf("content-type = %q, want application/json", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Get(context.Background(), "/ping", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestHeaderOverridesWin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("accept"); got != "text/plain" {
			t.Errorf("accept = %q, want text/plain", got)
		}
		if got := r.Header.Get("x-api-key"); got != "key-123" {
			t.Errorf("x-api-key = %q, want key-123", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), http.MethodGet, "/ping", nil, nil, map[string]string{"accept": "text/plain"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
}

func TestQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("q"); got != "economy" {
			t.Errorf("q = %q, want economy", got)
		}
		if got := q.Get("page"); got != "0" {
			t.Errorf("page = %q, want 0", got)
		}
		if !q.Has("empty") || q.Get("empty") != "" {
			t.Errorf("empty param missing or non-empty: %q", q.Get("empty"))
		}
		if got := q.Get("flag"); got != "false" {
			t.Errorf("flag = %q, want false", got)
		}
		if q.Has("skip") {
			t.Errorf("skip param should be omitted, got %q", q.Get("skip"))
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Get(context.Background(), "/news/search", Params{
		"q":     "economy",
		"page":  0,
		"empty": "",
		"flag":  false,
		"skip":  nil,
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestGetParsesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"articles":[{"id":"a1"}],"total":1}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	result, err := c.Get(context.Background(), "/news/search", nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	body, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result is %T, want map", result)
	}
	if body["total"] != float64(1) {
		t.Errorf("total = %v, want 1", body["total"])
	}
	articles, ok := body["articles"].([]any)
	if !ok || len(articles) != 1 {
		t.Fatalf("articles = %v, want one entry", body["articles"])
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"query":"economy"}` {
			t.Errorf("body = %s", body)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"alert-1"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	result, err := c.Post(context.Background(), "/alerts", map[string]string{"query": "economy"})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if body, _ := result.(map[string]any); body["id"] != "alert-1" {
		t.Errorf("id = %v, want alert-1", body["id"])
	}
}

func TestStatusErrorWithJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Bad Request","details":"Invalid parameter"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Get(context.Background(), "/news/search", nil)
	if err == nil {
		t.Fatalf("expected error on 400")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
	if apiErr.Response == nil {
		t.Errorf("Response should be set")
	}
	if apiErr.Data == nil || apiErr.Data.Message != "Bad Request" || apiErr.Data.Details != "Invalid parameter" {
		t.Errorf("Data = %+v", apiErr.Data)
	}
	if apiErr.Error() != "Bad Request" {
		t.Errorf("Error() = %q, want Bad Request", apiErr.Error())
	}
	if apiErr.IsTimeout() {
		t.Errorf("IsTimeout() should be false for a server response")
	}
}

func TestStatusErrorNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such article"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Get(context.Background(), "/news/articles/x", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Error() != "Not Found" {
		t.Errorf("Error() = %q, want status text fallback", apiErr.Error())
	}
}

func TestStatusErrorUnknownCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(599)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Get(context.Background(), "/ping", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Error() != "HTTP error! status: 599" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestTimeoutYields408(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, srv.URL)
	c.timeout = 50 * time.Millisecond

	_, err := c.Get(context.Background(), "/slow", nil)
	if err == nil {
		t.Fatalf("expected timeout error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusRequestTimeout {
		t.Errorf("Status = %d, want 408", apiErr.Status)
	}
	if apiErr.Error() != "Request timeout" {
		t.Errorf("Error() = %q, want Request timeout", apiErr.Error())
	}
	if !apiErr.IsTimeout() {
		t.Errorf("IsTimeout() should be true")
	}
	if apiErr.Response != nil {
		t.Errorf("Response should be nil for a timeout")
	}
}

func TestTransportErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(t, srv.URL)
	_, err := c.Get(context.Background(), "/ping", nil)
	if err == nil {
		t.Fatalf("expected transport error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure should not be an *APIError: %v", err)
	}
}

func TestInvalidJSONOn2xxIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Get(context.Background(), "/ping", nil)
	if err == nil {
		t.Fatalf("expected decode error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("decode failure should not be an *APIError: %v", err)
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(baseURL, "key-123")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}
