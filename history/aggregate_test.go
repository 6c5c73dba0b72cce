package history

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func twoViewAggregator(t *testing.T) (*Aggregator, *Store, *Store) {
	t.Helper()
	a := NewAggregator()

	s1 := NewStore()
	s1.IncTotal()
	s1.IncLogged()
	s1.Append(rec(1, 0.25), 0)

	s2 := NewStore()
	s2.IncTotal()
	s2.IncTotal()
	s2.IncLogged()
	s2.Append(rec(1, 0.5), 0)
	s2.Append(rec(2, 0.5), 0)

	if err := a.Register("alpha", NewStatsView(s1)); err != nil {
		t.Fatalf("Register(alpha) error = %v", err)
	}
	if err := a.Register("beta", NewStatsView(s2)); err != nil {
		t.Fatalf("Register(beta) error = %v", err)
	}
	return a, s1, s2
}

func TestAggregator_Register(t *testing.T) {
	a := NewAggregator()

	if err := a.Register("f", StatsView{}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := a.Register("f", StatsView{}); !errors.Is(err, ErrDuplicateView) {
		t.Errorf("Register(dup) error = %v, want ErrDuplicateView", err)
	}
	if err := a.Register("", StatsView{}); !errors.Is(err, ErrEmptyViewName) {
		t.Errorf("Register(empty) error = %v, want ErrEmptyViewName", err)
	}
}

func TestAggregator_NamesSorted(t *testing.T) {
	a, _, _ := twoViewAggregator(t)

	got := a.Names()
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestAggregator_Totals(t *testing.T) {
	a, _, _ := twoViewAggregator(t)

	total, logged := a.Totals()
	if total != 3 || logged != 2 {
		t.Errorf("Totals() = %d/%d, want 3/2", total, logged)
	}
	if got := a.ElapsedSecsLogged(); got != 1.25 {
		t.Errorf("ElapsedSecsLogged() = %v, want 1.25", got)
	}
}

func TestAggregator_CollectRows(t *testing.T) {
	a, _, _ := twoViewAggregator(t)

	got, err := a.CollectRows(context.Background())
	if err != nil {
		t.Fatalf("CollectRows() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("CollectRows() len = %d, want 2", len(got))
	}
	if len(got["alpha"]) != 2 {
		t.Errorf("alpha rows = %d, want header + 1 record", len(got["alpha"]))
	}
	if len(got["beta"]) != 3 {
		t.Errorf("beta rows = %d, want header + 2 records", len(got["beta"]))
	}
}

func TestAggregator_CollectRowsCanceled(t *testing.T) {
	a, _, _ := twoViewAggregator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.CollectRows(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("CollectRows(canceled) error = %v, want context.Canceled", err)
	}
}

func TestAggregator_ClearAll(t *testing.T) {
	a, s1, s2 := twoViewAggregator(t)

	a.ClearAll()

	if s1.TotalCalls() != 0 || s2.TotalCalls() != 0 {
		t.Error("ClearAll() left counters standing")
	}
	if s1.Len() != 0 || s2.Len() != 0 {
		t.Error("ClearAll() left records standing")
	}
}
