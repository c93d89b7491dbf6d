package treap

// metrics counts the work done by a Treap. It lives inside the Treap and
// shares its single-goroutine contract, so the counters are plain integers.
type metrics struct {
	inserts       int64
	updates       int64
	deletes       int64
	misses        int64
	priorityDraws int64
	splits        int64
	merges        int64
}

func (m *metrics) incInsert() { m.inserts++ }
func (m *metrics) incUpdate() { m.updates++ }
func (m *metrics) incDelete() { m.deletes++ }
func (m *metrics) incMiss()   { m.misses++ }
func (m *metrics) incDraw()   { m.priorityDraws++ }
func (m *metrics) incSplit()  { m.splits++ }

func (m *metrics) incMerge(n int64) {
	m.merges += n
}

// Stats is a snapshot of a Treap's operation counters.
type Stats struct {
	// Inserts counts Set calls that added a new key.
	Inserts int64
	// Updates counts Set calls that overwrote an existing key.
	Updates int64
	// Deletes counts successful Delete calls.
	Deletes int64
	// Misses counts Get, Contains and Delete calls on absent keys.
	Misses int64
	// PriorityDraws counts values taken from the priority source.
	PriorityDraws int64
	// Splits counts tree splits, one per inserted key.
	Splits int64
	// Merges counts tree merges: two per insert, one per delete.
	Merges int64
}

// Stats returns the operation counters accumulated since the Treap was
// created.
func (t *Treap[K, V]) Stats() Stats {
	m := &t.metrics
	return Stats{
		Inserts:       m.inserts,
		Updates:       m.updates,
		Deletes:       m.deletes,
		Misses:        m.misses,
		PriorityDraws: m.priorityDraws,
		Splits:        m.splits,
		Merges:        m.merges,
	}
}
