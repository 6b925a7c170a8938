package zipper

// Adapter supplies the three structural capabilities that make a cursor
// generic over an arbitrary node type N. The engine never inspects N
// directly; all structural knowledge flows through the adapter.
//
// Contract:
//
//	Children is defined only for nodes where IsBranch reports true.
//	Rebuild(n, cs) returns the node that replaces n with its children set
//	to exactly cs, and must preserve branch-ness: a rebuilt branch stays
//	a branch. Nodes are treated as immutable values; Rebuild produces a
//	new value rather than mutating n in place.
type Adapter[N any] interface {
	// IsBranch reports whether n has or can have children.
	IsBranch(n N) bool

	// Children returns the ordered child sequence of a branch node.
	Children(n N) []N

	// Rebuild returns a copy of n with its children replaced by children.
	Rebuild(n N, children []N) N
}

// FuncAdapter adapts three standalone functions into an Adapter, so tree
// shapes can be described with closures at construction time without
// declaring a named adapter type.
type FuncAdapter[N any] struct {
	IsBranchFunc func(N) bool
	ChildrenFunc func(N) []N
	RebuildFunc  func(N, []N) N
}

// IsBranch delegates to IsBranchFunc.
func (fa FuncAdapter[N]) IsBranch(n N) bool {
	return fa.IsBranchFunc(n)
}

// Children delegates to ChildrenFunc.
func (fa FuncAdapter[N]) Children(n N) []N {
	return fa.ChildrenFunc(n)
}

// Rebuild delegates to RebuildFunc.
func (fa FuncAdapter[N]) Rebuild(n N, children []N) N {
	return fa.RebuildFunc(n, children)
}
