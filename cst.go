package gramma

// Node is a concrete syntax tree node, emitted whenever a Rule with
// Capture=true matches (invariant I5), and, in debug mode, for each matched
// keyword literal. Value holds exactly one of:
//
//   - *Node                a single captured child
//   - []interface{}        an ordered list of children (repetitions, or a
//                           sequence whose captured elements number more
//                           than one — see the unwrap-singleton rule,
//                           spec §4.7)
//   - string / float64      a scalar produced by a terminal rule's Parse
//                           callback
//   - nil                   an empty match (e.g. an optional that didn't
//                           match, or a sequence of discarded keywords);
//                           a repeat that matched zero times yields an
//                           empty list instead
//
// Line and Column are only populated when the Parser was constructed with
// debug mode on; they name the position of the first token that produced
// the node.
type Node struct {
	Type   string
	Value  interface{}
	Line   int
	Column int
}
