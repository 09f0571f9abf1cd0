package tree

import "errors"

// ErrRotationPrecondition is raised when a rotation is asked to pivot on
// a node whose required child is absent. Reachable only through a defect
// in the fix-up logic itself — it should never surface from a public BST
// or RBT operation (§7).
var ErrRotationPrecondition = errors.New("tree: rotation precondition violated: missing child")
