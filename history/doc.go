// Package history provides the bounded record of past intercepted calls
// and the read-only statistics exposed over it.
//
// A Store owns one interceptor's call counters and its ring of call
// records; StatsView is the read-only façade handed to hosts.
// Aggregator composes totals and exports across several interceptors
// without any shared global state.
package history
