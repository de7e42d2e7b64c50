package symbols_test

import (
	"testing"

	"hexen/internal/symbols"
	"hexen/internal/types"
)

func sym(name string, initialized bool) *symbols.Symbol {
	return &symbols.Symbol{Name: name, Type: types.I32(), Initialized: initialized}
}

func TestDeclareRejectsRedeclarationInSameScope(t *testing.T) {
	table := symbols.NewTable()
	table.EnterScope(symbols.FunctionScope)
	if err := table.Declare(sym("x", true)); err != nil {
		t.Fatalf("first declaration should succeed: %v", err)
	}
	if err := table.Declare(sym("x", true)); err == nil {
		t.Fatal("expected an error redeclaring 'x' in the same scope")
	}
}

func TestDeclareAllowsShadowingInNestedScope(t *testing.T) {
	table := symbols.NewTable()
	table.EnterScope(symbols.FunctionScope)
	table.Declare(sym("x", true))
	table.EnterScope(symbols.BlockScope)
	if err := table.Declare(sym("x", true)); err != nil {
		t.Fatalf("shadowing in a nested scope should be allowed: %v", err)
	}
}

func TestLookupFindsInnermostMatchFirst(t *testing.T) {
	table := symbols.NewTable()
	table.EnterScope(symbols.FunctionScope)
	outer := sym("x", true)
	outer.Type = types.I32()
	table.Declare(outer)

	table.EnterScope(symbols.BlockScope)
	inner := sym("x", true)
	inner.Type = types.Bool()
	table.Declare(inner)

	got, ok := table.Lookup("x")
	if !ok || got.Type.Kind != types.KindBool {
		t.Fatalf("expected the innermost shadow (bool), got %v", got)
	}

	table.ExitScope()
	got, ok = table.Lookup("x")
	if !ok || got.Type.Kind != types.KindI32 {
		t.Fatalf("expected the outer symbol (i32) after exiting the inner scope, got %v", got)
	}
}

func TestExitScopeBalancesDepth(t *testing.T) {
	table := symbols.NewTable()
	table.EnterScope(symbols.FunctionScope)
	table.EnterScope(symbols.BlockScope)
	if table.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", table.Depth())
	}
	table.ExitScope()
	if table.Depth() != 1 {
		t.Fatalf("expected depth 1 after one exit, got %d", table.Depth())
	}
}

func TestMarkInitializedFlipsLookedUpSymbol(t *testing.T) {
	table := symbols.NewTable()
	table.EnterScope(symbols.FunctionScope)
	s := sym("v", false)
	table.Declare(s)
	if s.Initialized {
		t.Fatal("symbol should start uninitialized for this test")
	}
	if !table.MarkInitialized("v") {
		t.Fatal("MarkInitialized should find 'v'")
	}
	if !s.Initialized {
		t.Fatal("MarkInitialized should flip Initialized to true")
	}
}

func TestSnapshotAndIntersectInitialized(t *testing.T) {
	table := symbols.NewTable()
	table.EnterScope(symbols.FunctionScope)
	table.Declare(sym("a", false))
	table.Declare(sym("b", false))

	before := table.Snapshot()
	if before["a"] || before["b"] {
		t.Fatalf("Snapshot should record 'a' and 'b' as uninitialized, got %v", before)
	}

	branchA := map[string]bool{"a": true, "b": false}
	branchB := map[string]bool{"a": true, "b": true}

	result := symbols.IntersectInitialized([]string{"a", "b"}, []map[string]bool{branchA, branchB})
	if !result["a"] {
		t.Error("'a' was initialized on every branch and should intersect to true")
	}
	if result["b"] {
		t.Error("'b' was not initialized on every branch and should intersect to false")
	}

	table.ApplyInitialized(result)
	sa, _ := table.Lookup("a")
	sb, _ := table.Lookup("b")
	if !sa.Initialized {
		t.Error("ApplyInitialized should have marked 'a' initialized")
	}
	if sb.Initialized {
		t.Error("ApplyInitialized must not touch 'b', which did not intersect to true")
	}
}
