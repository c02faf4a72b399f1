package orders

import (
	"context"
	"errors"
	"testing"

	"onlinemart-client/internal/domain"
)

type stubAdminGateway struct {
	stubPager
	detail     domain.AdminOrderDetail
	transition domain.OrderStatusResponse
	callErr    error
}

func (s *stubAdminGateway) AdminOrder(_ context.Context, _ string, _ int) (domain.AdminOrderDetail, error) {
	return s.detail, s.callErr
}

func (s *stubAdminGateway) CompleteAdminOrder(_ context.Context, _ string, _ int) (domain.OrderStatusResponse, error) {
	return s.transition, s.callErr
}

func (s *stubAdminGateway) CancelAdminOrder(_ context.Context, _ string, _ int) (domain.OrderStatusResponse, error) {
	return s.transition, s.callErr
}

type stubBuyerGateway struct {
	orders     []domain.OrderSummary
	order      domain.BuyerOrder
	transition domain.OrderStatusResponse
	err        error
}

func (s *stubBuyerGateway) BuyerOrders(_ context.Context, _ string) ([]domain.OrderSummary, error) {
	return s.orders, s.err
}

func (s *stubBuyerGateway) BuyerOrder(_ context.Context, _ string, _ int) (domain.BuyerOrder, error) {
	return s.order, s.err
}

func (s *stubBuyerGateway) CancelBuyerOrder(_ context.Context, _ string, _ int) (domain.OrderStatusResponse, error) {
	return s.transition, s.err
}

func TestAdminOrders_LoadAccumulatesAllPages(t *testing.T) {
	gw := &stubAdminGateway{stubPager: stubPager{
		errAt: -1,
		pages: []domain.OrderPage{
			{Content: summaries(1, 2)},
			{Content: summaries(3)},
			{},
		},
	}}
	store := NewAdminOrders(gw)

	if err := store.Load(context.Background(), "tok"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := orderIDs(store.Orders()); len(got) != 3 {
		t.Fatalf("unexpected orders %v", got)
	}
	if store.Loading() {
		t.Fatalf("loading flag must be released")
	}
}

func TestAdminOrders_LoadErrorKeepsPartialCache(t *testing.T) {
	gw := &stubAdminGateway{stubPager: stubPager{
		errAt: 1,
		pages: []domain.OrderPage{{Content: summaries(1, 2)}},
	}}
	store := NewAdminOrders(gw)

	if err := store.Load(context.Background(), "tok"); err == nil {
		t.Fatalf("expected the fetch error to surface")
	}
	if got := orderIDs(store.Orders()); len(got) != 2 {
		t.Fatalf("expected the partial listing to be served, got %v", got)
	}
	if store.Loading() {
		t.Fatalf("loading flag must be released")
	}
}

func TestAdminOrders_CompleteReconcilesCachedStatus(t *testing.T) {
	gw := &stubAdminGateway{
		stubPager:  stubPager{errAt: -1, pages: []domain.OrderPage{{Content: summaries(1, 2)}, {}}},
		transition: domain.OrderStatusResponse{OrderID: 2, Status: domain.OrderCompleted},
	}
	store := NewAdminOrders(gw)
	if err := store.Load(context.Background(), "tok"); err != nil {
		t.Fatalf("load: %v", err)
	}

	status, err := store.Complete(context.Background(), "tok", 2)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if status != domain.OrderCompleted {
		t.Fatalf("unexpected status %s", status)
	}
	for _, o := range store.Orders() {
		if o.ID == 2 && o.Status != domain.OrderCompleted {
			t.Fatalf("expected the cached status reconciled, got %+v", o)
		}
	}
}

func TestAdminOrders_TransitionFailureLeavesCache(t *testing.T) {
	gw := &stubAdminGateway{
		stubPager: stubPager{errAt: -1, pages: []domain.OrderPage{{Content: summaries(1)}, {}}},
		callErr:   errors.New("boom"),
	}
	store := NewAdminOrders(gw)
	if err := store.Load(context.Background(), "tok"); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := store.Cancel(context.Background(), "tok", 1); err == nil {
		t.Fatalf("expected the gateway error to surface")
	}
	if store.Orders()[0].Status != domain.OrderProcessing {
		t.Fatalf("a failed transition must not touch the cache, got %+v", store.Orders()[0])
	}
}

func TestBuyerOrders_CancelUsesServerStatus(t *testing.T) {
	gw := &stubBuyerGateway{
		orders: []domain.OrderSummary{{ID: 5, Status: domain.OrderProcessing}},
		// The server may answer something other than CANCELED; the cache
		// takes the server's word.
		transition: domain.OrderStatusResponse{OrderID: 5, Status: domain.OrderCompleted},
	}
	store := NewBuyerOrders(gw)
	if err := store.Load(context.Background(), "tok"); err != nil {
		t.Fatalf("load: %v", err)
	}

	status, err := store.Cancel(context.Background(), "tok", 5)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if status != domain.OrderCompleted {
		t.Fatalf("unexpected status %s", status)
	}
	if store.Orders()[0].Status != domain.OrderCompleted {
		t.Fatalf("expected the cached status overwritten with the server's answer, got %+v", store.Orders()[0])
	}
}

func TestBuyerOrders_LoadFailureKeepsCache(t *testing.T) {
	gw := &stubBuyerGateway{orders: []domain.OrderSummary{{ID: 5, Status: domain.OrderProcessing}}}
	store := NewBuyerOrders(gw)
	if err := store.Load(context.Background(), "tok"); err != nil {
		t.Fatalf("load: %v", err)
	}

	gw.err = errors.New("boom")
	if err := store.Load(context.Background(), "tok"); err == nil {
		t.Fatalf("expected the fetch error to surface")
	}
	if len(store.Orders()) != 1 {
		t.Fatalf("a failed reload must keep the cache, got %+v", store.Orders())
	}
}
