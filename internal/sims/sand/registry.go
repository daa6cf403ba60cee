package sand

// Registry owns every live cell, bucketed by kind. Insertion order within a
// bucket is update order.
//
// Removal tombstones the cell in O(1); Compact drops tombstones while keeping
// the remaining order, and runs once per tick after every rule has fired.
type Registry struct {
	buckets [kindCount][]Cell
	live    [kindCount]int
	dirty   bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Add appends c to its bucket. Cells of unknown kinds are dropped.
func (r *Registry) Add(c Cell) {
	k := c.Kind()
	if !k.Valid() {
		return
	}
	r.buckets[k] = append(r.buckets[k], c)
	r.live[k]++
}

// Remove tombstones c. It reports false when c was already removed, so a cell
// is never destroyed twice.
func (r *Registry) Remove(c Cell) bool {
	b := c.cellBody()
	if b.dead {
		return false
	}
	b.dead = true
	r.live[b.kind]--
	r.dirty = true
	return true
}

// Len reports the number of live cells of kind k.
func (r *Registry) Len(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return r.live[k]
}

// Total reports the number of live cells across all buckets.
func (r *Registry) Total() int {
	n := 0
	for _, c := range r.live {
		n += c
	}
	return n
}

// Bucket returns a copy of the live cells of kind k in update order.
func (r *Registry) Bucket(k Kind) []Cell {
	if !k.Valid() {
		return nil
	}
	out := make([]Cell, 0, r.live[k])
	for _, c := range r.buckets[k] {
		if c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

// Each calls fn for the live cells of kind k until fn returns false. Cells
// appended during the walk are not visited.
func (r *Registry) Each(k Kind, fn func(Cell) bool) {
	if !k.Valid() {
		return
	}
	n := len(r.buckets[k])
	for i := 0; i < n; i++ {
		c := r.buckets[k][i]
		if !c.Alive() {
			continue
		}
		if !fn(c) {
			return
		}
	}
}

// At finds the first live cell of kind k at p by scanning its bucket.
func (r *Registry) At(k Kind, p Point) Cell {
	if !k.Valid() {
		return nil
	}
	var found Cell
	r.Each(k, func(c Cell) bool {
		if c.Pos() == p {
			found = c
			return false
		}
		return true
	})
	return found
}

// Compact drops removed cells from every bucket, preserving order.
func (r *Registry) Compact() {
	if !r.dirty {
		return
	}
	for k, bucket := range r.buckets {
		kept := bucket[:0]
		for _, c := range bucket {
			if c.Alive() {
				kept = append(kept, c)
			}
		}
		for i := len(kept); i < len(bucket); i++ {
			bucket[i] = nil
		}
		r.buckets[k] = kept
	}
	r.dirty = false
}

// Reset drops every cell.
func (r *Registry) Reset() {
	for k := range r.buckets {
		r.buckets[k] = nil
		r.live[k] = 0
	}
	r.dirty = false
}

func (r *Registry) slots(k Kind) int { return len(r.buckets[k]) }

func (r *Registry) slot(k Kind, i int) Cell { return r.buckets[k][i] }
