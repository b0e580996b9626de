package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-gateway/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(Options{
		BaseURL:  srv.URL,
		Timeout:  2 * time.Second,
		RetryMax: 3,
		Token:    func() string { return token },
	})
	c.retryDelay = time.Millisecond
	return c
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"c1","email":"a@b.c"}`))
	}), "tok123")

	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestAnonymousRequestOmitsAuth(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}), "")

	if _, err := c.ListCategories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestServerMessagePropagated(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"email already registered"}`))
	}), "")

	_, err := c.Register(context.Background(), domain.RegisterInput{Email: "a@b.c"})
	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("expected RequestError, got %T %v", err, err)
	}
	if reqErr.Status != http.StatusConflict || reqErr.Message != "email already registered" {
		t.Fatalf("unexpected error: %+v", reqErr)
	}
}

func TestFieldValidationSummary(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"password":"too short","email":"invalid"}}`))
	}), "")

	_, err := c.Login(context.Background(), domain.LoginInput{})
	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("expected RequestError, got %T %v", err, err)
	}
	// Fields are sorted for a stable summary.
	if reqErr.Message != "email: invalid; password: too short" {
		t.Fatalf("unexpected summary: %q", reqErr.Message)
	}
}

func TestRetriesTransientFailures(t *testing.T) {
	attempts := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	}), "")

	if _, err := c.ListBrands(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestClientErrorNotRetried(t *testing.T) {
	attempts := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"product not found"}`))
	}), "")

	_, err := c.GetProductByID(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("404 must not be retried, got %d attempts", attempts)
	}
}

func TestStatusOnlyErrorGetsFallbackMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}), "")

	_, err := c.MyOrders(context.Background())
	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("expected RequestError, got %T %v", err, err)
	}
	if reqErr.Message != "request failed with status 403" {
		t.Fatalf("unexpected message: %q", reqErr.Message)
	}
}

func TestListProductsQueryParams(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"products":[],"pagination":{"page":2,"limit":12}}`))
	}), "")

	list, err := c.ListProducts(context.Background(), domain.ProductFilter{
		Category: "shirts",
		Page:     2,
		Limit:    12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Pagination.Page != 2 {
		t.Fatalf("unexpected pagination: %+v", list.Pagination)
	}
	if gotQuery != "category=shirts&limit=12&page=2" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
}
