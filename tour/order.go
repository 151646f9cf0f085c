package tour

// Order is a linear sequence of repository indices with an associated cost;
// used both as input (reset a tour to a known permutation) and output
// (snapshot a tour for comparison). It holds no tour pointers — pure data.
type Order struct {
	order     []int
	totalDist float64
}

// NewOrder wraps a permutation with zero cost.
func NewOrder(order []int) *Order {
	return &Order{order: order}
}

// NewOrderWithCost wraps a permutation with a precomputed cost.
func NewOrderWithCost(order []int, totalDist float64) *Order {
	return &Order{order: order, totalDist: totalDist}
}

// Len returns the number of entries.
func (o *Order) Len() int { return len(o.order) }

// Slice returns the underlying slice (not copied — callers must not mutate
// it after handing it to Apply unless they own it exclusively).
func (o *Order) Slice() []int { return o.order }

// TotalDist returns the order's associated cost.
func (o *Order) TotalDist() float64 { return o.totalDist }

// Add appends an index.
func (o *Order) Add(index int) { o.order = append(o.order, index) }

// ValidatePermutation reports whether order is a permutation of [0,n).
func ValidatePermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
