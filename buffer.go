package tdigest

// bufEntry is a (value, weight) pair staged for re-ingestion.
type bufEntry struct {
	value  float64
	weight float64
}

// buffer holds centroids extracted from a digest while it is rebuilt.
type buffer struct {
	vec []bufEntry
}

func newBuffer(capacity int) *buffer {
	return &buffer{
		vec: make([]bufEntry, 0, capacity),
	}
}

// push stages an entry. Entries without positive weight carry no mass and
// are dropped.
func (b *buffer) push(value, weight float64) {
	if weight > 0 {
		b.vec = append(b.vec, bufEntry{value, weight})
	}
}

// shuffle permutes the staged entries uniformly at random.
func (b *buffer) shuffle(rng Rand) {
	rng.Shuffle(len(b.vec), func(i, j int) {
		b.vec[i], b.vec[j] = b.vec[j], b.vec[i]
	})
}

func (b *buffer) entries() []bufEntry {
	return b.vec
}

func (b *buffer) totalWeight() float64 {
	var w float64
	for _, e := range b.vec {
		w += e.weight
	}
	return w
}

func (b *buffer) size() int {
	return len(b.vec)
}
