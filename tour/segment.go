package tour

// segId identifies a segment in the TwoLevelList's segment arena.
type segId = int

// segment is a contiguous run of tour nodes in the two-level structure,
// carrying a reversal bit. first/last/len/rank describe the segment in
// its own intrinsic order; reverse decides whether intrinsic or reversed
// order is the segment's effective order.
type segment struct {
	rank    int // position among segments in the cyclic segment list
	reverse bool
	first   NodeId
	last    NodeId
	len     int
	next    segId
	prev    segId
	alive   bool
}
