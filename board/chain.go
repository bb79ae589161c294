package board

// chainSet is the union-find-with-liberties structure described in spec
// section 4.2. Every slice is indexed by vertex and sized once at board
// creation; nothing here allocates after newChainSet, which is what lets
// play() run with no heap traffic.
//
// Besides the union-find parent array, each chain also threads its
// stones through a circular linked list (ring). Union-find alone can
// merge two chains in O(1) but cannot enumerate a chain's members; the
// ring gives O(1) splicing (swap two links) and O(size) enumeration,
// which is what captureChain needs to walk every stone in a doomed chain.
// This is the standard trick real Go engines use instead of a BFS
// flood-fill per capture.
type chainSet struct {
	parent []Vertex // union-find parent; parent[v] == v at a root
	ring   []Vertex // circular linked list of a chain's stones
	size   []int32  // valid at roots: stone count
	libs   []int32  // valid at roots: pseudo-liberty count (sum of e(stone))
	// libSum and libSumSq are valid at roots: the sum, and sum of squares,
	// of the liberty *vertex index* named by every stone-neighbor edge to
	// an empty point (one term per edge, so a liberty shared by two of the
	// chain's stones is counted twice, matching libs). libs*libSumSq ==
	// libSum*libSum by Cauchy-Schwarz iff every one of those terms names
	// the same vertex, i.e. the chain has exactly one distinct liberty --
	// see inAtari. Summing per-stone liberty *counts* instead of vertex
	// identities (as an earlier version of this file did) does not have
	// this property: it can't distinguish "one shared liberty" from
	// "several different liberties that happen to tie in count".
	libSum   []int64
	libSumSq []int64
	any      []Vertex // valid at roots: a liberty vertex, best-effort cached
}

func newChainSet(n int) chainSet {
	return chainSet{
		parent:   make([]Vertex, n),
		ring:     make([]Vertex, n),
		size:     make([]int32, n),
		libs:     make([]int32, n),
		libSum:   make([]int64, n),
		libSumSq: make([]int64, n),
		any:      make([]Vertex, n),
	}
}

func (c *chainSet) resetAll() {
	for i := range c.parent {
		c.parent[i] = Vertex(i)
		c.ring[i] = Vertex(i)
	}
	for i := range c.size {
		c.size[i] = 0
		c.libs[i] = 0
		c.libSum[i] = 0
		c.libSumSq[i] = 0
		c.any[i] = NoKo
	}
}

// find returns v's chain representative, compressing the path it walks.
func (c *chainSet) find(v Vertex) Vertex {
	root := v
	for c.parent[root] != root {
		root = c.parent[root]
	}
	for c.parent[v] != root {
		next := c.parent[v]
		c.parent[v] = root
		v = next
	}
	return root
}

// newSingleton creates a fresh one-stone chain at v. emptyNeighbors,
// libSum and libSumSq describe v's liberties (one edge per empty
// neighbor); the caller has already scanned v's neighbors to determine
// all three, plus a seed liberty vertex for the "any" cache.
func (c *chainSet) newSingleton(v Vertex, emptyNeighbors int32, libSum, libSumSq int64, aLiberty Vertex) {
	c.parent[v] = v
	c.ring[v] = v
	c.size[v] = 1
	c.libs[v] = emptyNeighbors
	c.libSum[v] = libSum
	c.libSumSq[v] = libSumSq
	c.any[v] = aLiberty
}

// removeLiberty records that the chain rooted at root just lost the
// liberty at vertex v (one of its stones' neighbors was just occupied).
func (c *chainSet) removeLiberty(root Vertex, v Vertex) {
	c.libs[root]--
	c.libSum[root] -= int64(v)
	c.libSumSq[root] -= int64(v) * int64(v)
}

// addLiberty is the inverse: a neighbor of the chain rooted at root was
// just emptied (captured), so v is a liberty again.
func (c *chainSet) addLiberty(root Vertex, v Vertex) {
	c.libs[root]++
	c.libSum[root] += int64(v)
	c.libSumSq[root] += int64(v) * int64(v)
	c.any[root] = v
}

// union merges the chains rooted at a and b (already confirmed distinct
// by the caller) by size, splicing their rings together, and returns the
// surviving root.
func (c *chainSet) union(a, b Vertex) Vertex {
	ra, rb := c.find(a), c.find(b)
	if ra == rb {
		return ra
	}
	if c.size[ra] < c.size[rb] {
		ra, rb = rb, ra
	}
	c.parent[rb] = ra
	c.size[ra] += c.size[rb]
	c.libs[ra] += c.libs[rb]
	c.libSum[ra] += c.libSum[rb]
	c.libSumSq[ra] += c.libSumSq[rb]
	c.ring[a], c.ring[b] = c.ring[b], c.ring[a]
	return ra
}

// inAtari reports whether the chain rooted at root has exactly one
// distinct liberty. libs*libSumSq == libSum*libSum is Cauchy-Schwarz
// equality on the per-edge liberty-vertex terms, which holds iff every
// edge names the same vertex -- the identity from spec section 9 that
// lets atari be tested with no neighbor scan.
func (c *chainSet) inAtari(root Vertex) bool {
	libs := int64(c.libs[root])
	sum := c.libSum[root]
	return libs*c.libSumSq[root] == sum*sum
}
