package symbols

import "fmt"

// Table is the scope stack. Every function body, bare block,
// expression block, and conditional branch pushes its own Scope so
// that a name declared inside is invisible outside — universal scope
// isolation, regardless of the block's role.
type Table struct {
	current *Scope
}

func NewTable() *Table {
	return &Table{}
}

func (t *Table) EnterScope(kind Kind) {
	t.current = newScope(kind, t.current)
}

func (t *Table) ExitScope() {
	if t.current != nil {
		t.current = t.current.parent
	}
}

// Depth reports how many scopes are currently pushed; tests use it to
// assert a block balances its Enter/Exit calls.
func (t *Table) Depth() int {
	n := 0
	for s := t.current; s != nil; s = s.parent {
		n++
	}
	return n
}

// Declare adds a new symbol to the innermost scope. It is an error to
// redeclare a name already present in that same scope; shadowing a
// name from an enclosing scope is allowed.
func (t *Table) Declare(sym *Symbol) error {
	if t.current == nil {
		return fmt.Errorf("declare %q with no open scope", sym.Name)
	}
	if _, exists := t.current.symbols[sym.Name]; exists {
		return fmt.Errorf("%q already declared in this scope", sym.Name)
	}
	t.current.symbols[sym.Name] = sym
	return nil
}

// Lookup walks outward from the innermost scope and returns the first
// match.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for s := t.current; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// MarkInitialized flips a previously-`undef` symbol to initialized
// once the statement engine sees its first assignment.
func (t *Table) MarkInitialized(name string) bool {
	sym, ok := t.Lookup(name)
	if !ok {
		return false
	}
	sym.Initialized = true
	return true
}
