package intercept

import "context"

// Frame is one active interception on a call chain.
type Frame struct {
	// Name is the display name of the intercepted callable.
	Name string

	// Enabled reports whether the call was logged. Disabled frames stay
	// on the chain for depth bookkeeping but are elided from the chains
	// shown by descendant calls.
	Enabled bool
}

// Chain is the stack of active interceptions for one logical execution.
// The innermost call is the last frame.
//
// Contract:
//   - Concurrency: a Chain is owned by a single execution context and is
//     not safe for concurrent use. A context carrying a chain must not
//     be shared across goroutines; use Detach for handoff.
//   - Errors: Pop on an empty chain returns ErrStackUnderflow.
type Chain struct {
	frames []Frame
}

// NewChain returns an empty call chain.
func NewChain() *Chain {
	return &Chain{}
}

// Push adds a frame as the new innermost call.
func (c *Chain) Push(f Frame) {
	c.frames = append(c.frames, f)
}

// Pop removes the innermost frame.
func (c *Chain) Pop() error {
	if len(c.frames) == 0 {
		return ErrStackUnderflow
	}
	c.frames = c.frames[:len(c.frames)-1]
	return nil
}

// Depth reports the number of active frames, enabled or not.
func (c *Chain) Depth() int {
	return len(c.frames)
}

// EnabledDepth reports the number of active enabled frames.
func (c *Chain) EnabledDepth() int {
	n := 0
	for _, f := range c.frames {
		if f.Enabled {
			n++
		}
	}
	return n
}

// Names returns the display names of the enabled frames, outermost
// first. Disabled frames are skipped.
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.frames))
	for _, f := range c.frames {
		if f.Enabled {
			names = append(names, f.Name)
		}
	}
	return names
}

type contextKey int

const chainKey contextKey = 0

// WithChain returns a context carrying the chain.
func WithChain(ctx context.Context, c *Chain) context.Context {
	return context.WithValue(ctx, chainKey, c)
}

// ChainFromContext returns the chain carried by ctx, or nil if none.
func ChainFromContext(ctx context.Context) *Chain {
	c, _ := ctx.Value(chainKey).(*Chain)
	return c
}

// Detach returns a context without a call chain. Hand the result to a
// spawned goroutine so its interceptions nest independently of the
// parent execution.
func Detach(ctx context.Context) context.Context {
	return WithChain(ctx, nil)
}
