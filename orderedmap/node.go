package orderedmap

const (
	left  = 0
	right = 1
)

// node is a red-black tree node. Children live in link so that the
// rebalancing code can be written once for both directions.
type node[K, V any] struct {
	link  [2]*node[K, V]
	red   bool
	key   K
	value V
}

func isRed[K, V any](n *node[K, V]) bool {
	return n != nil && n.red
}

// rotateSingle rotates n in direction dir and recolors so the new
// subtree root is black and n is red.
func rotateSingle[K, V any](n *node[K, V], dir int) *node[K, V] {
	save := n.link[1-dir]
	n.link[1-dir] = save.link[dir]
	save.link[dir] = n

	n.red = true
	save.red = false

	return save
}

// rotateDouble is two single rotations: first the child on the opposite
// side of dir, then n itself.
func rotateDouble[K, V any](n *node[K, V], dir int) *node[K, V] {
	n.link[1-dir] = rotateSingle(n.link[1-dir], 1-dir)
	return rotateSingle(n, dir)
}

func swapPayload[K, V any](a, b *node[K, V]) {
	a.key, b.key = b.key, a.key
	a.value, b.value = b.value, a.value
}

func (n *node[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}
