// Package history persists the set of receipt identities that have already
// been posted. It is the single source of truth for "already posted": the
// posting loop must consult it before any network side effect.
package history

// Store records posted receipt identities durably across runs.
// RecordPosted must be flushed before it returns so the next HasPosted call
// observes it even across a process restart. Recording an identity twice is a
// no-op, not an error.
type Store interface {
	HasPosted(identity string) bool
	RecordPosted(identity string) error
	Close() error
}
