package types_test

import (
	"testing"

	"hexen/internal/types"
)

func TestCanAdaptImplicitComptimeToConcrete(t *testing.T) {
	cases := []struct {
		from, to *types.Type
		want     bool
	}{
		{types.ComptimeInt(), types.I32(), true},
		{types.ComptimeInt(), types.I64(), true},
		{types.ComptimeInt(), types.F64(), true},
		{types.ComptimeInt(), types.Usize(), true},
		{types.ComptimeFloat(), types.F32(), true},
		{types.ComptimeFloat(), types.I32(), false}, // needs an explicit conversion
		{types.I32(), types.I64(), false},           // concrete-to-concrete is never implicit
	}
	for _, c := range cases {
		if got := types.CanAdaptImplicit(c.from, c.to); got != c.want {
			t.Errorf("CanAdaptImplicit(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCanAdaptExplicitAllowsNarrowingButNeverUsizeFromFloat(t *testing.T) {
	if !types.CanAdaptExplicit(types.I64(), types.I32()) {
		t.Error("explicit i64 -> i32 narrowing should be allowed")
	}
	if !types.CanAdaptExplicit(types.ComptimeFloat(), types.I32()) {
		t.Error("explicit comptime_float -> i32 should be allowed")
	}
	if types.CanAdaptExplicit(types.F64(), types.Usize()) {
		t.Error("f64 -> usize must be forbidden even explicitly")
	}
	if types.CanAdaptExplicit(types.Usize(), types.F32()) {
		t.Error("usize -> f32 must be forbidden even explicitly")
	}
}

func TestUnifyComptimePromotesToFloatWhenEitherSideIsFloat(t *testing.T) {
	if got := types.UnifyComptime(types.ComptimeInt(), types.ComptimeInt()); got.Kind != types.KindComptimeInt {
		t.Errorf("int+int should stay comptime_int, got %s", got)
	}
	if got := types.UnifyComptime(types.ComptimeInt(), types.ComptimeFloat()); got.Kind != types.KindComptimeFloat {
		t.Errorf("int+float should promote to comptime_float, got %s", got)
	}
}

func TestComptimeArrayAdaptsRespectsWildcardAndElementKind(t *testing.T) {
	from := types.ComptimeArray(types.ComptimeInt(), []types.Dim{types.FixedDim(3)})
	toWildcard := types.Array(types.I32(), []types.Dim{types.WildcardDim()})
	if !types.CanAdaptImplicit(from, toWildcard) {
		t.Error("a comptime int array should adapt to a wildcard-shaped i32 array")
	}
	toFloat := types.Array(types.F64(), []types.Dim{types.FixedDim(3)})
	if !types.CanAdaptImplicit(from, toFloat) {
		t.Error("a comptime int array should adapt implicitly to a float element array")
	}
	fromFloat := types.ComptimeArray(types.ComptimeFloat(), []types.Dim{types.FixedDim(3)})
	toInt := types.Array(types.I32(), []types.Dim{types.FixedDim(3)})
	if types.CanAdaptImplicit(fromFloat, toInt) {
		t.Error("a comptime float array must not adapt implicitly to an integer element array")
	}
}
