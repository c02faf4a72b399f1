package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"onlinemart-client/internal/domain"
)

func TestClient_AuthorizationAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/buyer/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Fatalf("expected a request id header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "description": "Monstera", "retailPrice": 24.5}]`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, 0, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	products, err := client.BuyerProducts(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("buyer products: %v", err)
	}
	if len(products) != 1 || products[0].Description != "Monstera" || products[0].RetailPrice != 24.5 {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestClient_NoAuthorizationWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, present := r.Header["Authorization"]; present {
			t.Fatalf("login must not carry an authorization header")
		}
		w.Write([]byte(`{"token": "tok", "role": "BUYER", "username": "alice", "userId": 7}`))
	}))
	defer srv.Close()

	client, _ := New(srv.URL, 0, nil)
	auth, err := client.Login(context.Background(), domain.LoginRequest{UsernameOrEmail: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if auth.Role != domain.RoleBuyer || auth.UserID != 7 {
		t.Fatalf("unexpected auth response %+v", auth)
	}
}

func TestClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "CONFLICT", "message": "Insufficient stock.", "details": ["product 4"]}`))
	}))
	defer srv.Close()

	client, _ := New(srv.URL, 0, nil)
	_, err := client.CreateOrder(context.Background(), "tok", domain.CreateOrderRequest{})
	var srvErr *domain.ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("expected a server error, got %v", err)
	}
	if srvErr.Message != "Insufficient stock." || srvErr.Code != http.StatusConflict || len(srvErr.Details) != 1 {
		t.Fatalf("unexpected server error %+v", srvErr)
	}
}

func TestClient_ErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>upstream down</html>`))
	}))
	defer srv.Close()

	client, _ := New(srv.URL, 0, nil)
	_, err := client.BuyerProducts(context.Background(), "tok")
	var srvErr *domain.ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("expected a server error, got %v", err)
	}
	if srvErr.Message != "Request failed." || srvErr.Code != http.StatusBadGateway {
		t.Fatalf("unexpected server error %+v", srvErr)
	}
}

func TestClient_NoContentSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/buyer/watchlist/5" {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, _ := New(srv.URL, 0, nil)
	if err := client.AddWatchlist(context.Background(), "tok", 5); err != nil {
		t.Fatalf("add watchlist: %v", err)
	}
}

func TestClient_EmptyBodyOnTypedCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, _ := New(srv.URL, 0, nil)
	_, err := client.BuyerProducts(context.Background(), "tok")
	if !errors.Is(err, domain.ErrDecode) {
		t.Fatalf("expected a decode error for an empty typed response, got %v", err)
	}
}

func TestClient_UndecodableSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unterminated`))
	}))
	defer srv.Close()

	client, _ := New(srv.URL, 0, nil)
	_, err := client.BuyerProduct(context.Background(), "tok", 3)
	var decodeErr *domain.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected a decode error, got %v", err)
	}
	if decodeErr.Raw != `{"unterminated` {
		t.Fatalf("expected the raw payload to be kept, got %q", decodeErr.Raw)
	}
}

func TestClient_AdminOrdersPageQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Fatalf("unexpected page query %q", got)
		}
		w.Write([]byte(`[{"id": 9, "placedAt": 1736937000, "status": "PROCESSING", "buyerUsername": "dana"}]`))
	}))
	defer srv.Close()

	client, _ := New(srv.URL, 0, nil)
	page, err := client.AdminOrders(context.Background(), "tok", 2)
	if err != nil {
		t.Fatalf("admin orders: %v", err)
	}
	if len(page.Content) != 1 || page.Content[0].ID != 9 {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "not-a-url", "localhost:8080"} {
		if _, err := New(baseURL, 0, nil); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("expected invalid request for %q, got %v", baseURL, err)
		}
	}
}
