package symbols

// Snapshot captures the Initialized flag of every symbol currently
// visible, keyed by name. The block engine takes one snapshot before
// entering a conditional's branches and one after each branch so it
// can decide, afterward, which variables the branch intersection
// actually initialized.
func (t *Table) Snapshot() map[string]bool {
	snap := make(map[string]bool)
	seen := make(map[string]bool)
	for s := t.current; s != nil; s = s.parent {
		for name, sym := range s.symbols {
			if seen[name] {
				continue // an inner shadow already recorded this name
			}
			seen[name] = true
			snap[name] = sym.Initialized
		}
	}
	return snap
}

// IntersectInitialized reports which names among candidates became
// initialized on every one of branches. A variable initialized on
// some but not all branches (including an absent else, which this
// function's caller must supply as an all-false branch) does not
// count as initialized afterward — conditional initialization must be
// total to be safe.
func IntersectInitialized(candidates []string, branches []map[string]bool) map[string]bool {
	result := make(map[string]bool, len(candidates))
	for _, name := range candidates {
		initAll := len(branches) > 0
		for _, b := range branches {
			if !b[name] {
				initAll = false
				break
			}
		}
		result[name] = initAll
	}
	return result
}

// ApplyInitialized marks every name in initialized as Initialized on
// its symbol, looked up from the current scope outward. Call this
// after IntersectInitialized once a conditional's branches have all
// been analyzed.
func (t *Table) ApplyInitialized(initialized map[string]bool) {
	for name, ok := range initialized {
		if !ok {
			continue
		}
		t.MarkInitialized(name)
	}
}
