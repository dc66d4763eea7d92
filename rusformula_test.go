/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package rusformula

import (
	"math"
	"testing"

	"github.com/zyktin/rusformula/namespace"
	"github.com/zyktin/rusformula/parser"
)

func TestEvalAssignmentChain(t *testing.T) {
	ns := namespace.NewSeeded(nil)
	if _, err := EvalInto("x = 1; y = 2; z = x + y;", ns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, _ := ns.Get(nil, "z")
	if v.(float64) != 3 {
		t.Errorf("z: expected 3, got %v", v)
	}
}

func TestEvalStringEquality(t *testing.T) {
	result, err := Eval(`'test' == "test"`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(float64) != 1 {
		t.Errorf("expected truthy, got %v", result)
	}
}

func TestEvalEpsilonEquality(t *testing.T) {
	result, err := Eval("3 * 0.1 == 0.1 + 0.1 + 0.1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(float64) != 1 {
		t.Errorf("expected truthy, got %v", result)
	}
}

func TestEvalConditionBranches(t *testing.T) {
	ns := namespace.NewSeeded(map[string]interface{}{"x": float64(0)})
	src := "ЕСЛИ(x>=1){x=100;}ИНАЧЕ_ЕСЛИ(x==0){x=17;}ИНАЧЕ{x=55;}"
	if _, err := EvalInto(src, ns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, _ := ns.Get(nil, "x")
	if v.(float64) != 17 {
		t.Errorf("x: expected 17, got %v", v)
	}
}

func TestEvalZeroDivisionYieldsInfinity(t *testing.T) {
	result, err := Eval("10 / 0", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(result.(float64), 1) {
		t.Errorf("expected +Inf, got %v", result)
	}
}

func TestEvalBuiltinSumAndAvg(t *testing.T) {
	result, err := Eval("СУММ(1,2,3) + СРЗНАЧ(2,4)", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(float64) != 9 {
		t.Errorf("expected 9, got %v", result)
	}
}

func TestEvalSeedIsNotMutated(t *testing.T) {
	seed := map[string]interface{}{"x": float64(1)}
	if _, err := Eval("x = x + 1;", seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seed["x"].(float64) != 1 {
		t.Errorf("caller's seed map must not be mutated by Eval, got %v", seed["x"])
	}
}

func TestVerboseEvalReportsNamespaceLookups(t *testing.T) {
	_, vr, err := VerboseEval("СУММ(1,2)", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vr.Report.Namespace.Get == 0 {
		t.Error("expected at least one recorded namespace lookup")
	}
	if !vr.Report.Namespace.NamesGet["СУММ"] {
		t.Error("expected the callee name to show up among the looked-up names")
	}
	if vr.Tree == nil {
		t.Error("expected a populated parse tree")
	}
	if len(vr.Trace) == 0 {
		t.Error("expected at least one trace line from the pipeline stages")
	}
	if _, ok := vr.Namespace["СУММ"]; !ok {
		t.Error("expected the namespace snapshot to include the seeded builtin table")
	}
}

/*
TestReserializeRoundTrip parses a source string, serializes the tree back
to surface syntax, reparses that output and checks the two trees print
identically: SerializeText is a stable fixed point of the parse/serialize
pair, not merely a one-way renderer.
*/
func TestReserializeRoundTrip(t *testing.T) {
	src := `ЕСЛИ(x>=1){y=СУММ(x,2)*3;}ИНАЧЕ{y=0;}`

	root, err := parseSource(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	rendered := parser.SerializeText(root)

	reparsed, err := parseSource(rendered)
	if err != nil {
		t.Fatalf("reparse error: %v\nrendered: %s", err, rendered)
	}

	again := parser.SerializeText(reparsed)
	if rendered != again {
		t.Errorf("serialization is not a fixed point:\nfirst:  %s\nsecond: %s", rendered, again)
	}
}

func TestEvalUnknownFunctionErrors(t *testing.T) {
	if _, err := Eval("НЕИЗВЕСТНО(1)", nil); err == nil {
		t.Error("expected an error for an unbound callee")
	}
}

func TestEvalAssignmentTypeLockErrors(t *testing.T) {
	if _, err := Eval(`x = "s"; x = 1;`, nil); err == nil {
		t.Error("expected an error on the type-changing reassignment")
	}
}
