package service

import (
	"context"
	"errors"
	"testing"

	"github.com/logimart/shipment-service/internal/core/domain"
)

func TestResolve_ExistingCustomer_ReturnedUnchanged(t *testing.T) {
	customers := newStubCustomerRepo()
	gateway := &stubGateway{}
	seeded := seedCustomer(customers, 7)
	resolver := NewCustomerResolver(customers, gateway, discardLogger)

	got, err := resolver.Resolve(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != seeded.Name || got.Type != seeded.Type {
		t.Errorf("local record must be returned unchanged, got %+v", got)
	}
	if gateway.userCalls != 0 {
		t.Errorf("no remote call may happen for a known customer, got %d", gateway.userCalls)
	}
	if customers.upsertCalls != 0 {
		t.Errorf("no upsert may happen for a known customer, got %d", customers.upsertCalls)
	}
}

func TestResolve_UnknownCustomer_NonNumericRemoteID(t *testing.T) {
	customers := newStubCustomerRepo()
	gateway := &stubGateway{user: &domain.MarketplaceUser{ID: "abc", Name: "Sari"}}
	resolver := NewCustomerResolver(customers, gateway, discardLogger)

	_, err := resolver.Resolve(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error for a non-numeric marketplace user id")
	}
	if customers.upsertCalls != 0 {
		t.Errorf("no row may be written for an unusable remote id, got %d upserts", customers.upsertCalls)
	}
}

func TestResolve_ConcurrentMaterialization_SecondUpsertIsNoOp(t *testing.T) {
	customers := newStubCustomerRepo()
	gateway := &stubGateway{user: &domain.MarketplaceUser{ID: "42", Name: "Sari", Phone: "0813", Address: "Jl. Sudirman"}}
	resolver := NewCustomerResolver(customers, gateway, discardLogger)

	first, err := resolver.Resolve(context.Background(), 42)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	// The losing side of the race reaches the upsert after the row already
	// exists; the conflict-tolerant upsert returns the existing row instead
	// of failing.
	second, err := customers.UpsertMarketplace(context.Background(), &domain.Customer{
		ID:   42,
		Name: "Sari (stale copy)",
		Type: domain.CustomerTypeMarketplace,
	})
	if err != nil {
		t.Fatalf("racing upsert must not fail: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("both resolutions must converge on one row, got %d and %d", first.ID, second.ID)
	}
	if second.Name != first.Name {
		t.Errorf("the first materialized row is authoritative, got %q want %q", second.Name, first.Name)
	}
	if len(customers.byID) != 1 {
		t.Errorf("expected exactly one stored customer, got %d", len(customers.byID))
	}
}

func TestResolve_RepositoryFailure_Propagated(t *testing.T) {
	gateway := &stubGateway{user: &domain.MarketplaceUser{ID: "42", Name: "Sari"}}
	resolver := NewCustomerResolver(failingCustomerRepo{}, gateway, discardLogger)

	_, err := resolver.Resolve(context.Background(), 42)
	if err == nil || errors.Is(err, domain.ErrMarketplaceUserNotFound) {
		t.Fatalf("expected a wrapped repository error, got %v", err)
	}
}

type failingCustomerRepo struct{}

func (failingCustomerRepo) FindByID(context.Context, int64) (*domain.Customer, error) {
	return nil, domain.ErrCustomerNotFound
}

func (failingCustomerRepo) UpsertMarketplace(context.Context, *domain.Customer) (*domain.Customer, error) {
	return nil, errors.New("db unavailable")
}
