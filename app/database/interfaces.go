package database

// SnapshotRepository is the durable key-value contract the persistence
// adapter is written against.
type SnapshotRepository interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
