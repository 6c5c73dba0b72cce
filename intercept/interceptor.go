package intercept

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonwraymond/callops/bind"
	"github.com/jonwraymond/callops/history"
	"github.com/jonwraymond/callops/settings"
	"github.com/jonwraymond/callops/sink"
)

// Target is the callable an Interceptor wraps. Arguments arrive bound
// against the declared signature; the returned value and error pass
// through to the caller untouched.
type Target func(ctx context.Context, args bind.Arguments) (any, error)

type options struct {
	settings  map[string]any
	out       sink.Sink
	observers []Observer
	now       func() time.Time
}

// Option configures an Interceptor at construction.
type Option func(*options)

// WithSettings overrides initial setting values by name. Unknown names
// fail construction; later options override earlier ones.
func WithSettings(values map[string]any) Option {
	return func(o *options) {
		if o.settings == nil {
			o.settings = make(map[string]any, len(values))
		}
		for k, v := range values {
			o.settings[k] = v
		}
	}
}

// WithSink directs log lines to s instead of standard error.
func WithSink(s sink.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.out = s
		}
	}
}

// WithObserver registers an observer. The option may be repeated;
// observers run in registration order.
func WithObserver(ob Observer) Option {
	return func(o *options) {
		if ob != nil {
			o.observers = append(o.observers, ob)
		}
	}
}

// WithClock substitutes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Interceptor wraps one callable with call logging, settings
// resolution, chain tracking, and call history.
//
// Contract:
//   - Concurrency: all methods are safe for concurrent use. The
//     interceptor's internal lock guards only counter and history
//     updates and is never held while the target runs.
//   - Context: the context passed to Invoke carries the call chain; it
//     is extended, never replaced, and handed to the target.
//   - Errors: the target's error returns unchanged. Invoke adds errors
//     only for argument binding, before any counter moves.
type Interceptor struct {
	display   string
	sig       bind.Signature
	target    Target
	settings  *settings.Mapping
	store     *history.Store
	out       sink.Sink
	observers []Observer
	now       func() time.Time
}

// New builds an interceptor for target with the given signature.
// Settings start from DefaultSpecs, overridden by WithSettings. The
// prefix setting is read once here to fix the display name; rebinding
// it later has no effect.
func New(sig bind.Signature, target Target, opts ...Option) (*Interceptor, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	o := options{
		out: sink.Writer(os.Stderr),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	m, err := settings.NewMapping(DefaultSpecs(), o.settings)
	if err != nil {
		return nil, err
	}
	prefix, _ := m.Get(SettingPrefix)
	p, _ := prefix.(string)
	return &Interceptor{
		display:   p + sig.FuncName,
		sig:       sig,
		target:    target,
		settings:  m,
		store:     history.NewStore(),
		out:       o.out,
		observers: o.observers,
		now:       o.now,
	}, nil
}

// Name returns the display name, the prefix setting prepended to the
// signature's function name.
func (it *Interceptor) Name() string { return it.display }

// Signature returns the declared signature.
func (it *Interceptor) Signature() bind.Signature { return it.sig }

// Settings returns the live settings mapping. Changes apply to
// subsequent calls.
func (it *Interceptor) Settings() *settings.Mapping { return it.settings }

// Stats returns a read-only view of the interceptor's counters and
// retained history.
func (it *Interceptor) Stats() history.StatsView { return history.NewStatsView(it.store) }

// Invoke calls the target with positional and keyword arguments.
// Binding failures surface before any counter moves.
func (it *Interceptor) Invoke(ctx context.Context, positional []any, keyword map[string]any) (any, error) {
	return it.invoke(ctx, positional, keyword)
}

// Call invokes the target with positional arguments only.
func (it *Interceptor) Call(ctx context.Context, positional ...any) (any, error) {
	return it.invoke(ctx, positional, nil)
}

func (it *Interceptor) invoke(ctx context.Context, positional []any, keyword map[string]any) (any, error) {
	args, err := bind.Bind(it.sig, positional, keyword)
	if err != nil {
		return nil, err
	}
	st := it.settings.ResolveAll(args)

	callNum := it.store.IncTotal()

	chain := ChainFromContext(ctx)
	if chain == nil {
		chain = NewChain()
		ctx = WithChain(ctx, chain)
	}
	ancestors := chain.Names()
	logged := enabledFor(st.Value(SettingEnabled), len(ancestors))

	var loggedNum uint64
	if logged {
		loggedNum = it.store.IncLogged()
	}

	// Disabled frames stay on the chain so descendants see the true
	// depth; Names elides them from displayed chains.
	chain.Push(Frame{Name: it.display, Enabled: logged})
	defer func() {
		if perr := chain.Pop(); perr != nil {
			panic(perr)
		}
	}()

	var from []string
	pad := ""
	head := it.display
	if logged {
		from = displayedChain(ancestors)
		if st.Bool(SettingIndent) {
			pad = strings.Repeat("    ", len(ancestors))
		}
		if st.Bool(SettingLogCallNumber) {
			head += " [" + strconv.FormatUint(loggedNum, 10) + "]"
		}
		it.out.WriteLine(pad + head + " <== called by " + strings.Join(from, " <== "))
		if st.Bool(SettingLogArgs) && it.sig.HasParams() {
			it.out.WriteLine(argsLine(pad, args, st.String(SettingArgsSep)))
		}
	}

	start := it.now()
	tctx, dones := it.observeBegin(ctx, Entry{
		Name:      it.display,
		CallNum:   callNum,
		LoggedNum: loggedNum,
		Logged:    logged,
		Depth:     len(ancestors),
		Start:     start,
	})
	value, terr := it.target(tctx, args)
	end := it.now()
	elapsed := end.Sub(start)
	observeDone(dones, Result{Value: value, Err: terr, Elapsed: elapsed})

	if logged {
		retval := renderResult(value, terr)
		if st.Bool(SettingLogRetval) {
			it.out.WriteLine(pad + "    " + it.display + " return value: " + truncate(retval, maxRetvalLen))
		}
		if st.Bool(SettingLogElapsed) {
			it.out.WriteLine(pad + "    elapsed time: " + strconv.FormatFloat(elapsed.Seconds(), 'f', 6, 64) + " [secs]")
		}
		if st.Bool(SettingLogExit) {
			it.out.WriteLine(pad + head + " ==> returning to " + strings.Join(from, " ==> "))
		}
		if st.Bool(SettingRecordHistory) {
			argsCell, kwargsCell := renderRecordArgs(args)
			bound := 0
			if n, ok := st.Int(SettingMaxHistory); ok {
				bound = n
			}
			it.store.Append(history.Record{
				CallNum:     callNum,
				LoggedNum:   loggedNum,
				Name:        it.display,
				Chain:       ancestors,
				Args:        argsCell,
				Kwargs:      kwargsCell,
				Retval:      retval,
				ElapsedSecs: elapsed.Seconds(),
				Timestamp:   end,
			}, bound)
		}
	}

	return value, terr
}
