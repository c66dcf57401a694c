package biz

import (
	"context"
	"errors"
	"testing"

	"starfall/internal/game/starfall"

	"github.com/shopspring/decimal"
	kerrors "github.com/yola1107/kratos/v2/errors"
	"github.com/yola1107/kratos/v2/log"
)

type fakeSessionRepo struct {
	sessions map[int64]*starfall.FreeSpinsSession
	locked   map[int64]bool
	lockErr  error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: map[int64]*starfall.FreeSpinsSession{},
		locked:   map[int64]bool{},
	}
}

func (f *fakeSessionRepo) Load(_ context.Context, memberID int64) (*starfall.FreeSpinsSession, error) {
	return f.sessions[memberID], nil
}

func (f *fakeSessionRepo) Save(_ context.Context, memberID int64, s *starfall.FreeSpinsSession) error {
	f.sessions[memberID] = s
	return nil
}

func (f *fakeSessionRepo) Clear(_ context.Context, memberID int64) error {
	delete(f.sessions, memberID)
	return nil
}

func (f *fakeSessionRepo) Lock(_ context.Context, memberID int64) (func(), error) {
	if f.lockErr != nil {
		return nil, f.lockErr
	}
	f.locked[memberID] = true
	return func() { f.locked[memberID] = false }, nil
}

type fakeOrderRepo struct {
	orders    []*SpinOrder
	published int
}

func (f *fakeOrderRepo) Save(_ context.Context, order *SpinOrder) error {
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) PublishAudit(_ context.Context, _ *SpinOrder, _ *starfall.SpinOutcome) error {
	f.published++
	return nil
}

func newTestUsecase() (*SpinUsecase, *fakeSessionRepo, *fakeOrderRepo) {
	sessions := newFakeSessionRepo()
	orders := &fakeOrderRepo{}
	return NewSpinUsecase(sessions, orders, log.DefaultLogger), sessions, orders
}

func TestSpinPersistsOrderAndReleasesLock(t *testing.T) {
	uc, sessions, orders := newTestUsecase()

	order, outcome, err := uc.Spin(context.Background(), 42, decimal.RequireFromString("1.30"), "real", "biz-seed")
	if err != nil {
		t.Fatal(err)
	}
	if len(orders.orders) != 1 || orders.published != 1 {
		t.Fatalf("order not persisted/published: %d/%d", len(orders.orders), orders.published)
	}
	if order.Seed != "biz-seed" || order.GameID != outcome.GameID {
		t.Fatalf("order fields wrong: %+v", order)
	}
	if !order.Win.Equal(outcome.TotalWin) {
		t.Fatalf("order win %s != outcome %s", order.Win, outcome.TotalWin)
	}
	if sessions.locked[42] {
		t.Fatal("spin lock not released")
	}
}

func TestSpinGeneratesSeedWhenEmpty(t *testing.T) {
	uc, _, _ := newTestUsecase()
	order, _, err := uc.Spin(context.Background(), 42, decimal.New(1, 0), "demo", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(order.Seed) != 64 {
		t.Fatalf("generated seed should be 32-byte hex, got %q", order.Seed)
	}
}

func TestSpinUsesStoredSessionForMode(t *testing.T) {
	uc, sessions, _ := newTestUsecase()
	sessions.sessions[42] = &starfall.FreeSpinsSession{Active: true, SpinsRemaining: 3, AccumulatedMultiplier: 4}

	order, outcome, err := uc.Spin(context.Background(), 42, decimal.New(1, 0), "real", "mode-seed")
	if err != nil {
		t.Fatal(err)
	}
	if order.Mode != string(starfall.ModeFreeSpins) {
		t.Fatalf("active session must force free_spins, got %s", order.Mode)
	}
	if outcome.AppliedMultiplierTotal < 4 {
		t.Fatalf("accumulator floor lost: %d", outcome.AppliedMultiplierTotal)
	}
	next := sessions.sessions[42]
	if next != nil && next.SpinsRemaining != 2+outcome.FreeSpinsAwarded {
		t.Fatalf("remaining %d after one of 3 spins (awarded %d)", next.SpinsRemaining, outcome.FreeSpinsAwarded)
	}
}

func TestMapEngineErrorClasses(t *testing.T) {
	bad := mapEngineError(&starfall.ValidationError{Field: "bet", Reason: "x"})
	if !kerrors.IsBadRequest(bad) {
		t.Fatalf("validation error must map to BadRequest, got %v", bad)
	}
	for _, err := range []error{
		&starfall.ConfigError{Field: "pay_table", Reason: "x"},
		&starfall.InvariantError{Seed: "s", Step: 1, Reason: "x"},
		errors.New("opaque"),
	} {
		mapped := mapEngineError(err)
		if kerrors.Code(mapped) != 500 {
			t.Fatalf("%T must map to 500, got %v", err, mapped)
		}
	}
}

func TestSpinBusyLockIsConflict(t *testing.T) {
	uc, sessions, orders := newTestUsecase()
	sessions.lockErr = errors.New("lock held")

	_, _, err := uc.Spin(context.Background(), 42, decimal.RequireFromString("1.30"), "real", "s")
	if err == nil {
		t.Fatal("busy lock accepted")
	}
	if !kerrors.IsConflict(err) {
		t.Fatalf("want Conflict, got %v", err)
	}
	if len(orders.orders) != 0 {
		t.Fatal("busy lock must not persist orders")
	}
}

func TestSpinRejectsBadInput(t *testing.T) {
	uc, _, orders := newTestUsecase()
	cases := []struct {
		name    string
		member  int64
		bet     string
		profile string
	}{
		{"bad member", 0, "1.00", "real"},
		{"sub-cent bet", 42, "0.001", "real"},
		{"unknown profile", 42, "1.00", "boosted"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := uc.Spin(context.Background(), c.member, decimal.RequireFromString(c.bet), c.profile, "s")
			if err == nil {
				t.Fatal("bad input accepted")
			}
			if !kerrors.IsBadRequest(err) {
				t.Fatalf("want BadRequest, got %v", err)
			}
		})
	}
	if len(orders.orders) != 0 {
		t.Fatal("rejected spins must not persist orders")
	}
}
