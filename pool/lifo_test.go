// File: pool/lifo_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/fake"
	"github.com/momentics/hioload-pool/pool"
)

func TestLIFO_BootstrapSeedsCapacity(t *testing.T) {
	f := fake.NewFactory()
	s, err := pool.NewLIFO(3, f.New)
	if err != nil {
		t.Fatalf("NewLIFO failed: %v", err)
	}
	if s.Cap() != 3 {
		t.Errorf("expected capacity 3, got %d", s.Cap())
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 idle instances after bootstrap, got %d", s.Len())
	}
	if f.Created() != 3 {
		t.Errorf("expected exactly 3 manufactures, got %d", f.Created())
	}
}

func TestLIFO_RentsNewestFirst(t *testing.T) {
	f := fake.NewFactory()
	s, err := pool.NewLIFO(3, f.New)
	if err != nil {
		t.Fatalf("NewLIFO failed: %v", err)
	}
	// Bootstrap pushed 1,2,3; the stack hands back 3,2,1.
	for want := 3; want >= 1; want-- {
		item, err := s.Rent()
		if err != nil {
			t.Fatalf("Rent failed: %v", err)
		}
		if item.ID() != want {
			t.Errorf("expected instance %d off the top, got %d", want, item.ID())
		}
	}
}

func TestLIFO_ReturnsToTop(t *testing.T) {
	f := fake.NewFactory()
	s, err := pool.NewLIFO(2, f.New)
	if err != nil {
		t.Fatalf("NewLIFO failed: %v", err)
	}
	a, _ := s.Rent()
	b, _ := s.Rent()

	// Return a then b; the stack must replay the freshest return first.
	if err := s.Return(a); err != nil {
		t.Fatalf("Return failed: %v", err)
	}
	if err := s.Return(b); err != nil {
		t.Fatalf("Return failed: %v", err)
	}

	first, _ := s.Rent()
	second, _ := s.Rent()
	if first != b || second != a {
		t.Errorf("expected replay %d then %d, got %d then %d",
			b.ID(), a.ID(), first.ID(), second.ID())
	}
}

func TestLIFO_OverflowManufacturesWhenEmpty(t *testing.T) {
	f := fake.NewFactory()
	s, err := pool.NewLIFO(1, f.New)
	if err != nil {
		t.Fatalf("NewLIFO failed: %v", err)
	}
	if _, err := s.Rent(); err != nil {
		t.Fatalf("first Rent failed: %v", err)
	}
	over, err := s.Rent()
	if err != nil {
		t.Fatalf("overflow Rent failed: %v", err)
	}
	if over.ID() != 2 {
		t.Errorf("expected a freshly manufactured instance, got %d", over.ID())
	}
	if s.Len() != 0 {
		t.Errorf("overflow manufacture must not touch the idle stack, Len=%d", s.Len())
	}
}

func TestLIFO_OverflowReturnDisposes(t *testing.T) {
	f := fake.NewFactory()
	s, err := pool.NewLIFO(1, f.New)
	if err != nil {
		t.Fatalf("NewLIFO failed: %v", err)
	}
	seeded, _ := s.Rent()
	over, _ := s.Rent()

	if err := s.Return(seeded); err != nil {
		t.Fatalf("Return of seeded instance failed: %v", err)
	}
	if err := s.Return(over); err != nil {
		t.Fatalf("overflow Return failed: %v", err)
	}
	if !over.Closed() {
		t.Error("overflow instance must be closed, not stored")
	}
	if s.Len() != 1 {
		t.Errorf("idle stack must stay at capacity, Len=%d", s.Len())
	}
}

func TestLIFO_CapacityZero(t *testing.T) {
	f := fake.NewFactory()
	s, err := pool.NewLIFO(0, f.New)
	if err != nil {
		t.Fatalf("NewLIFO failed: %v", err)
	}
	item, err := s.Rent()
	if err != nil {
		t.Fatalf("Rent failed: %v", err)
	}
	if err := s.Return(item); err != nil {
		t.Fatalf("Return failed: %v", err)
	}
	if !item.Closed() {
		t.Error("returned instance must be disposed at capacity zero")
	}
}

func TestLIFO_ReturnWithoutRent(t *testing.T) {
	f := fake.NewFactory()
	s, err := pool.NewLIFO(1, f.New)
	if err != nil {
		t.Fatalf("NewLIFO failed: %v", err)
	}
	foreign, _ := fake.NewFactory().New()
	if err := s.Return(foreign); !errors.Is(err, api.ErrNoRental) {
		t.Fatalf("expected ErrNoRental, got %v", err)
	}
	if foreign.Closed() {
		t.Error("a rejected Return must leave the instance with the caller")
	}
}

func TestLIFO_DrainClosesIdle(t *testing.T) {
	f := fake.NewFactory()
	s, err := pool.NewLIFO(2, f.New)
	if err != nil {
		t.Fatalf("NewLIFO failed: %v", err)
	}
	if err := s.Drain(); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if f.Closed() != 2 {
		t.Errorf("expected both idle instances closed, got %d", f.Closed())
	}
	if err := s.Drain(); err != nil {
		t.Errorf("second Drain must be a no-op, got %v", err)
	}
	if _, err := s.Rent(); !errors.Is(err, api.ErrClosed) {
		t.Errorf("Rent after Drain should fail with ErrClosed, got %v", err)
	}
}

func TestLIFO_BootstrapFailureCleansUp(t *testing.T) {
	f := fake.NewFactory()
	f.FailAt(2)

	_, err := pool.NewLIFO(3, f.New)
	if err == nil {
		t.Fatal("expected bootstrap failure")
	}
	if f.Created() != 1 {
		t.Errorf("expected 1 manufacture before the failure, got %d", f.Created())
	}
	if f.Closed() != 1 {
		t.Errorf("expected the seeded instance closed again, got %d", f.Closed())
	}
}
