package model

// Entity is implemented by every record persisted by the storage tiers.
// Kind is the explicit discriminator the adapters route on.
type Entity interface {
	Kind() Kind
	GetID() int64
	SetID(int64)
}

// Record carries the tier-assigned integer identifier. A zero ID marks the
// record as new; the active tier assigns the ID on insert. IDs are unique
// per kind per tier and are not portable across tiers.
type Record struct {
	ID int64 `gorm:"column:id;primaryKey"`
}

// GetID returns the record identifier, zero for a new record.
func (r *Record) GetID() int64 { return r.ID }

// SetID assigns the record identifier.
func (r *Record) SetID(id int64) { r.ID = id }
