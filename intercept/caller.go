package intercept

import (
	"runtime"
	"strings"
)

// unknownCaller is shown when the runtime stack yields no usable name.
const unknownCaller = "<unknown>"

// callerName resolves the function that invoked the interceptor. It is
// consulted only when a logged call has no enabled ancestors on its
// chain.
func callerName() string {
	pcs := make([]uintptr, 8)
	n := runtime.Callers(1, pcs)
	if n == 0 {
		return unknownCaller
	}
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if fr.Function != "" && !internalFrame(fr.Function) {
			return trimFuncName(fr.Function)
		}
		if !more {
			return unknownCaller
		}
	}
}

// internalFrame reports whether a runtime symbol names one of the
// functions between the intercepted caller and the stack capture.
// Logical frames are matched by name rather than skipped by count so
// that inlining cannot shift the answer.
func internalFrame(fn string) bool {
	switch {
	case strings.HasSuffix(fn, "intercept.callerName"),
		strings.HasSuffix(fn, "intercept.displayedChain"),
		strings.HasSuffix(fn, "intercept.(*Interceptor).invoke"),
		strings.HasSuffix(fn, "intercept.(*Interceptor).Invoke"),
		strings.HasSuffix(fn, "intercept.(*Interceptor).Call"):
		return true
	}
	return false
}

// trimFuncName drops the import path from a runtime symbol, keeping the
// package-qualified name: "example.com/pkg/sub.(*T).M" becomes
// "sub.(*T).M".
func trimFuncName(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}
