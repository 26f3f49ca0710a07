package handlers

// CacheControlHeader exposes the redirect cache directive to the external
// test package.
const CacheControlHeader = cacheControlHeaderValue

// SetIDGenerator swaps the id generator and returns a func restoring the
// original, so tests can force collisions.
func SetIDGenerator(fn func() string) (restore func()) {
	orig := newID
	newID = fn
	return func() { newID = orig }
}
