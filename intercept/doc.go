// Package intercept wraps registered callables with configurable
// per-call observability: selective logging of invocation, arguments,
// return value, elapsed time, and call nesting, plus an optional
// bounded record of past invocations.
//
// An Interceptor is constructed once per wrapped callable with a
// declared signature and a settings mapping. Each Invoke binds the
// call's arguments, resolves the effective settings (direct values or
// values supplied indirectly through the call's own parameters), tracks
// the call on the context's chain, and passes the target's result and
// error through unchanged.
//
// The call chain travels on the context. A context carrying a chain
// belongs to one logical execution; hand Detach(ctx) to spawned
// goroutines so each tracks its own nesting.
package intercept
