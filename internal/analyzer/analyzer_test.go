package analyzer_test

import (
	"testing"

	"hexen/internal/diagnostics"
	"hexen/internal/scenario"
)

func TestScenarios(t *testing.T) {
	scenarios := []scenario.Scenario{
		{
			Name: "comptime adapts to multiple contexts",
			Source: `func main(): void = {
				val a: i32 = 42
				val b: i64 = 42
				val c: f64 = 42
			}`,
		},
		{
			Name: "mixed concrete requires explicit context",
			Source: `func main(): void = {
				val x: i32 = 10
				val y: i64 = 20
				val z = x + y
			}`,
			Want: []diagnostics.Code{diagnostics.MixedConcreteRequiresContext},
		},
		{
			Name: "val with undef is rejected",
			Source: `func main(): void = {
				val p: i32 = undef
			}`,
			Want: []diagnostics.Code{diagnostics.ValWithUndef},
		},
		{
			Name: "passing a concrete array variable requires an explicit copy",
			Source: `func f(a: [3]i32): void = {}
			func main(): void = {
				val arr: [3]i32 = [1, 2, 3]
				f(arr)
			}`,
			Want: []diagnostics.Code{diagnostics.MissingExplicitCopy},
		},
		{
			Name: "an explicit copy silences the array-copy diagnostic",
			Source: `func f(a: [3]i32): void = {}
			func main(): void = {
				val arr: [3]i32 = [1, 2, 3]
				f(arr[..])
			}`,
		},
		{
			Name: "a float range without a step cannot be materialized",
			Source: `func main(): void = {
				val r: [_]f32 = [0.0..1.0]
			}`,
			Want: []diagnostics.Code{diagnostics.FloatRangeMissingStep},
		},
		{
			Name: "expression block infers its yielded type",
			Source: `func main(): void = {
				val x = { -> 40 + 2 }
			}`,
		},
		{
			Name: "reading an undef variable not initialized on every branch",
			Source: `func main(): void = {
				mut v: i32 = undef
				if true {
					v = 1
				}
				val w = v
			}`,
			Want: []diagnostics.Code{diagnostics.UseOfUninitialized},
		},
		{
			Name: "an else branch completes the initialization intersection",
			Source: `func main(): void = {
				mut v: i32 = undef
				if true {
					v = 1
				} else {
					v = 2
				}
				val w = v
			}`,
		},
		{
			Name: "assigning to a val after its initial value is immutable assignment",
			Source: `func main(): void = {
				val v: i32 = 1
				v = 2
			}`,
			Want: []diagnostics.Code{diagnostics.AssignToImmutable},
		},
		{
			Name: "a non-void function missing a return on every path is flagged",
			Source: `func f(): i32 = {
				val x: i32 = 1
			}`,
			Want: []diagnostics.Code{diagnostics.ReturnMissingValue},
		},
		{
			Name: "a literal outside its target's range overflows",
			Source: `func main(): void = {
				val x: i32 = 99999999999999
			}`,
			Want: []diagnostics.Code{diagnostics.LiteralOverflow},
		},
		{
			Name: "a non-bool condition is rejected",
			Source: `func main(): void = {
				val x: i32 = 1
				if x {}
			}`,
			Want: []diagnostics.Code{diagnostics.ConditionNotBool},
		},
		{
			Name: "a non-bool elif condition is rejected",
			Source: `func main(): void = {
				val x: i32 = 1
				if false {} else if x {}
			}`,
			Want: []diagnostics.Code{diagnostics.ConditionNotBool},
		},
		{
			Name: "an empty array literal with no target type requires context",
			Source: `func main(): void = {
				val a = []
			}`,
			Want: []diagnostics.Code{diagnostics.EmptyArrayRequiresContext},
		},
		{
			Name: "an empty array literal with a target type is accepted",
			Source: `func main(): void = {
				val a: [0]i32 = []
			}`,
		},
		{
			Name: "narrowing i64 into i32 without explicit conversion truncates",
			Source: `func main(): void = {
				val a: i64 = 42
				val b: i32 = a
			}`,
			Want: []diagnostics.Code{diagnostics.PotentialTruncation},
		},
		{
			Name: "narrowing i64 into f32 without explicit conversion loses precision",
			Source: `func main(): void = {
				val a: i64 = 42
				val b: f32 = a
			}`,
			Want: []diagnostics.Code{diagnostics.PotentialPrecisionLoss},
		},
		{
			Name: "converting bool to i32 is forbidden outright",
			Source: `func main(): void = {
				val a: bool = true
				val b: i32 = a : i32
			}`,
			Want: []diagnostics.Code{diagnostics.ForbiddenConversion},
		},
		{
			Name: "a void-typed parameter is rejected",
			Source: `func f(a: void): void = {}
			func main(): void = {}`,
			Want: []diagnostics.Code{diagnostics.ForbiddenVoidParameter},
		},
		{
			Name: "a duplicate parameter name is rejected",
			Source: `func f(a: i32, a: i64): void = {}
			func main(): void = {}`,
			Want: []diagnostics.Code{diagnostics.DuplicateParameter},
		},
		{
			Name: "a runtime-valued expression block with no target requires context",
			Source: `func concrete(): i32 = { return 1 }
			func main(): void = {
				val x = {
					val c: i32 = concrete()
					-> c
				}
			}`,
			Want: []diagnostics.Code{diagnostics.RuntimeBlockRequiresContext},
		},
		{
			Name: "a range with runtime bounds materializes with an inferred dimension",
			Source: `func bound(): i32 = { return 5 }
			func main(): void = {
				val lo: i32 = 0
				val hi: i32 = bound()
				val a: [_]i32 = [lo..hi]
			}`,
		},
		{
			Name: "an unbounded range cannot be materialized into an array",
			Source: `func main(): void = {
				val a: [_]i32 = [0..]
			}`,
			Want: []diagnostics.Code{diagnostics.UnboundedRangeNotMaterializable},
		},
		{
			Name: "returning a value from a void function is rejected",
			Source: `func main(): void = {
				return 1
			}`,
			Want: []diagnostics.Code{diagnostics.ReturnInVoidFunction},
		},
		{
			Name: "a bare return in a value-returning function is rejected",
			Source: `func f(): i32 = {
				return
			}`,
			Want: []diagnostics.Code{diagnostics.ReturnMissingValue},
		},
	}

	stats := (&scenario.Runner{Scenarios: scenarios, Reporter: &testReporter{t: t}}).Run()
	if stats.Failed > 0 {
		t.Fatalf("%d/%d scenarios failed", stats.Failed, stats.Total)
	}
}

// testReporter adapts scenario.Reporter to *testing.T so a failing
// scenario names itself in `go test` output instead of only in the
// final tally.
type testReporter struct{ t *testing.T }

func (r *testReporter) ScenarioPassed(scenario.Result) {}

func (r *testReporter) ScenarioFailed(res scenario.Result) {
	r.t.Errorf("%s: %s", res.Scenario, res.Detail)
}

func (r *testReporter) Summary(scenario.Stats) {}
