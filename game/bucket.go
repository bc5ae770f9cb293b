package game

// Bucket is an ordered set of visual IDs sharing a tag
type Bucket struct {
	// IDs in insertion order (preallocated slice)
	IDs []VisualID
}

// NewBucket creates a bucket with preallocated storage
func NewBucket(initialCapacity int) *Bucket {
	return &Bucket{
		IDs: make([]VisualID, 0, initialCapacity),
	}
}

// Add appends id unless it is already present
func (b *Bucket) Add(id VisualID) {
	for _, existing := range b.IDs {
		if existing == id {
			return
		}
	}
	b.IDs = append(b.IDs, id)
}

// Remove deletes id and keeps the remaining order
func (b *Bucket) Remove(id VisualID) bool {
	for i, existing := range b.IDs {
		if existing == id {
			copy(b.IDs[i:], b.IDs[i+1:])
			b.IDs = b.IDs[:len(b.IDs)-1]
			return true
		}
	}
	return false
}

// Snapshot returns a copy safe to iterate while the bucket changes
func (b *Bucket) Snapshot() []VisualID {
	out := make([]VisualID, len(b.IDs))
	copy(out, b.IDs)
	return out
}

// Len returns the number of members
func (b *Bucket) Len() int {
	return len(b.IDs)
}

// Clear removes all members but keeps capacity
func (b *Bucket) Clear() {
	b.IDs = b.IDs[:0]
}
