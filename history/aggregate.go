package history

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Aggregator composes read-only stats across several interceptors.
// Interceptors never share counters or records; an Aggregator is the
// explicit composition point for hosts that want totals over many
// wrapped callables.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Ownership: registered views stay owned by their interceptors; the
//   aggregator only reads through them, except for ClearAll.
type Aggregator struct {
	mu    sync.RWMutex
	views map[string]StatsView
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{views: make(map[string]StatsView)}
}

// Register adds a named view. Names must be unique and non-empty.
func (a *Aggregator) Register(name string, view StatsView) error {
	if name == "" {
		return ErrEmptyViewName
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.views[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateView, name)
	}
	a.views[name] = view
	return nil
}

// Names returns the registered view names, sorted.
func (a *Aggregator) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.views))
	for name := range a.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Totals returns the summed total and logged call counts across every
// registered view.
func (a *Aggregator) Totals() (total, logged uint64) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, v := range a.views {
		total += v.TotalCalls()
		logged += v.LoggedCalls()
	}
	return total, logged
}

// ElapsedSecsLogged returns the summed retained elapsed seconds across
// every registered view.
func (a *Aggregator) ElapsedSecsLogged() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var sum float64
	for _, v := range a.views {
		sum += v.ElapsedSecsLogged()
	}
	return sum
}

// CollectRows renders every registered view's rows, one export per
// view, collecting concurrently. The context bounds the collection.
func (a *Aggregator) CollectRows(ctx context.Context) (map[string][][]string, error) {
	a.mu.RLock()
	views := make(map[string]StatsView, len(a.views))
	for name, v := range a.views {
		views[name] = v
	}
	a.mu.RUnlock()

	var outMu sync.Mutex
	out := make(map[string][][]string, len(views))

	g, ctx := errgroup.WithContext(ctx)
	for name, v := range views {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows := v.Rows()
			outMu.Lock()
			out[name] = rows
			outMu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ClearAll clears history and counters on every registered view.
func (a *Aggregator) ClearAll() {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, v := range a.views {
		v.ClearHistory()
	}
}
