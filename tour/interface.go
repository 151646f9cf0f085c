package tour

// NodeId identifies a tour node by its stable repository index. Per the design
// notes, intra-tour references are small integer ids into the owning
// tour's arenas, never raw pointers — NodeId is simply that index and stays
// valid across flips even though a node's position changes.
type NodeId = int

// Relation is the answer to a relation(a,b) query: whether b is the effective
// successor or predecessor of a, or neither.
type Relation int

const (
	// None means a and b are not tour-adjacent.
	None Relation = iota
	// Successor means b is a's effective successor.
	Successor
	// Predecessor means b is a's effective predecessor.
	Predecessor
)

// Tour is the abstract contract every concrete tour representation satisfies.
// All node arguments and return values are NodeIds — stable repository
// indices, not positions.
type Tour interface {
	// Apply rearranges the tour to match order, recomputing total distance.
	Apply(order *Order) error

	// Get validates that index names a node owned by this tour.
	Get(index NodeId) (NodeId, error)

	// Len returns N.
	Len() int

	// Successor returns n's effective successor.
	Successor(n NodeId) (NodeId, error)

	// Predecessor returns n's effective predecessor.
	Predecessor(n NodeId) (NodeId, error)

	// Between reports whether traversing forward from a, b is reached before c.
	Between(a, b, c NodeId) (bool, error)

	// Relation reports whether b is a's effective successor, predecessor, or
	// neither.
	Relation(a, b NodeId) (Relation, error)

	// Flip replaces edges (f1,t1) and (f2,t2), where t1=Successor(f1) and
	// t2=Successor(f2), with (f1,f2) and (t1,t2), reversing one of the two
	// resulting arcs.
	Flip(f1, t1, f2, t2 NodeId) error

	// Distance delegates to the repository.
	Distance(a, b NodeId) float64

	// TotalDistance returns the sum of consecutive-pair distances.
	TotalDistance() float64

	// Reset clears visited/status flags on every node.
	Reset()

	// GenCandidates populates each node's candidate list with its k nearest
	// neighbors (ties broken by ascending repository index).
	GenCandidates(k int)

	// Candidates returns n's candidate list, nearest first.
	Candidates(n NodeId) ([]NodeId, error)

	// Order snapshots the tour's current visiting order starting at node 0.
	Order() *Order
}
