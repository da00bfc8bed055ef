// Package cache provides a generic compute-once memoization cache.
//
// Unlike an LRU or TTL cache, Memo never evicts: it is intended for derived
// data that is expensive to build but stable for the lifetime of the process,
// such as sorted listings computed from a static data source. Callers that
// need fresh state construct a fresh Memo instead of invalidating entries.
//
// # Usage
//
//	memo := cache.NewMemo[string, []string]()
//
//	names := memo.GetOrCompute("key", func() []string {
//		return buildExpensiveListing()
//	})
//
// Repeated calls with the same key return the stored value without invoking
// the compute function again.
//
// # Thread Safety
//
// All methods are safe for concurrent use. The compute function passed to
// GetOrCompute must be idempotent: two goroutines racing on the first call for
// a key may both compute, but exactly one result is stored and returned to
// every caller from then on.
package cache
