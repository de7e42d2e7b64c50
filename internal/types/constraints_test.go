package types_test

import (
	"testing"

	"hexen/internal/types"
)

func TestFitsIntBounds(t *testing.T) {
	if !types.FitsInt(127, types.KindI32) {
		t.Error("127 should fit in i32")
	}
	if types.FitsInt(1<<40, types.KindI32) {
		t.Error("2^40 should not fit in i32")
	}
	if !types.FitsInt(1<<40, types.KindI64) {
		t.Error("2^40 should fit in i64")
	}
	if types.FitsInt(-1, types.KindUsize) {
		t.Error("a negative value should never fit usize")
	}
}

func TestMinMaxClamp(t *testing.T) {
	if got := types.Min(3, 7); got != 3 {
		t.Errorf("Min(3,7) = %d, want 3", got)
	}
	if got := types.Max(3, 7); got != 7 {
		t.Errorf("Max(3,7) = %d, want 7", got)
	}
	if got := types.Clamp(10, 0, 5); got != 5 {
		t.Errorf("Clamp(10,0,5) = %d, want 5", got)
	}
	if got := types.Clamp(-1, 0, 5); got != 0 {
		t.Errorf("Clamp(-1,0,5) = %d, want 0", got)
	}
}
