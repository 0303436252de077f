// ABOUTME: Persistence port for the plan and log registries.
// ABOUTME: A Store is an opaque key-value map; each registry owns one key.
package store

// Keys for the two persisted registries. Each registry reads its key once at
// construction and rewrites it in full on every mutation.
const (
	LogsKey  = "runningLogs"
	PlansKey = "runningPlans"
)

// Store is the narrow contract the registries depend on. Get returns a nil
// value (and nil error) for a missing key; callers treat that as empty state.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Syncer is implemented by backends that replicate to a remote, such as the
// Charm KV store. Local backends simply don't implement it.
type Syncer interface {
	Sync() error
}
