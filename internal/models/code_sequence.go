package models

// CodeSequence backs the per-entity-class code counters (PAT-NNN,
// SPEC-NNN). Bumping the row atomically inside the provisioning
// transaction guarantees unique, monotonic codes under concurrent
// creation.
type CodeSequence struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}
