// Package symbols implements the analyzer's scope stack: declaration,
// lookup, shadowing, and the per-branch initialization tracking that
// `val`/`mut`/`undef` mutability rules need across conditional arms.
package symbols

import (
	"hexen/internal/diagnostics"
	"hexen/internal/types"
)

// Symbol is one declared name: a function parameter or a `val`/`mut`
// binding. Function signatures are not stored as Symbols.
type Symbol struct {
	Name        string
	Type        *types.Type
	Mut         bool
	Initialized bool
	Pos         diagnostics.Position
}
