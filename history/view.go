package history

import "io"

// StatsView is the read-only façade over one interceptor's counters and
// history. Its only mutating operation is the explicit ClearHistory
// pass-through.
type StatsView struct {
	store *Store
}

// NewStatsView wraps store. A zero StatsView (or a nil store) reads as
// empty.
func NewStatsView(store *Store) StatsView {
	return StatsView{store: store}
}

// TotalCalls returns the number of invocations, enabled or not.
func (v StatsView) TotalCalls() uint64 {
	if v.store == nil {
		return 0
	}
	return v.store.TotalCalls()
}

// LoggedCalls returns the number of invocations whose enabled setting
// resolved truthy.
func (v StatsView) LoggedCalls() uint64 {
	if v.store == nil {
		return 0
	}
	return v.store.LoggedCalls()
}

// ElapsedSecsLogged returns the elapsed-seconds sum over the retained
// records.
func (v StatsView) ElapsedSecsLogged() float64 {
	if v.store == nil {
		return 0
	}
	return v.store.ElapsedSecsLogged()
}

// History returns a copy of the retained records, oldest first.
func (v StatsView) History() []Record {
	if v.store == nil {
		return nil
	}
	return v.store.Snapshot()
}

// HistoryLen returns the number of retained records.
func (v StatsView) HistoryLen() int {
	if v.store == nil {
		return 0
	}
	return v.store.Len()
}

// Rows renders the retained records as a header row plus one row per
// record.
func (v StatsView) Rows() [][]string {
	return Rows(v.History())
}

// WriteCSV writes the retained records to w in CSV form.
func (v StatsView) WriteCSV(w io.Writer) error {
	return WriteCSV(w, v.History())
}

// ClearHistory drops the retained records and resets both counters.
func (v StatsView) ClearHistory() {
	if v.store != nil {
		v.store.Clear()
	}
}
