// internal/state/interface.go
package state

// Storage is the key-value store persisted layouts live in. Implementations
// may be backed by sqlite, memory, or anything else with this shape.
// Write failures are not reported: persistence is a convenience.
type Storage interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string)
}

// Verify implementations satisfy Storage at compile time.
var (
	_ Storage = (*Manager)(nil)
	_ Storage = (*Memory)(nil)
)
