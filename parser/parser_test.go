/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import "testing"

func mustParse(t *testing.T, src string) *ASTNode {
	t.Helper()
	q, err := Analyze(src)
	if err != nil {
		t.Fatalf("Analyze(%q): %v", src, err)
	}
	root, err := NewParser(q).Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return root
}

func TestParsePlusTimesPrecedence(t *testing.T) {
	root := mustParse(t, "2+3*4;")
	stmt := root.Child(0)
	if stmt.Kind != KindBinary || stmt.Operator.Kind != TokPlus {
		t.Fatalf("expected top-level '+', got %v", stmt.Kind)
	}
	right := stmt.Child(1)
	if right.Kind != KindBinary || right.Operator.Kind != TokTimes {
		t.Fatalf("expected '*' nested under '+', got %v", right.Kind)
	}
}

func TestParsePowerIsLeftAssociative(t *testing.T) {
	root := mustParse(t, "2**3**2;")
	stmt := root.Child(0)
	if stmt.Kind != KindBinary || stmt.Operator.Kind != TokPower {
		t.Fatalf("expected top-level '**', got %v", stmt.Kind)
	}
	left := stmt.Child(0)
	if left.Kind != KindBinary || left.Operator.Kind != TokPower {
		t.Fatalf("expected '**' nested on the left (left-associative), got %v on %v", left.Kind, stmt.Child(1).Kind)
	}
}

func TestParseAssignmentRequiresNameOnLeft(t *testing.T) {
	root := mustParse(t, "x = 1;")
	stmt := root.Child(0)
	if stmt.Kind != KindAssignment {
		t.Fatalf("expected Assignment, got %v", stmt.Kind)
	}
	if stmt.Child(0).Kind != KindName {
		t.Errorf("expected Name on the left, got %v", stmt.Child(0).Kind)
	}
}

func TestParseUnaryMinusOnlyBindsToNumberLiteral(t *testing.T) {
	root := mustParse(t, "-5+10;")
	stmt := root.Child(0)
	if stmt.Kind != KindBinary || stmt.Operator.Kind != TokPlus {
		t.Fatalf("expected '+' at top level, got %v", stmt.Kind)
	}
	left := stmt.Child(0)
	if left.Kind != KindUnaryMinus {
		t.Fatalf("expected UnaryMinus on the left, got %v", left.Kind)
	}
	if left.Child(0).Sign != "-" {
		t.Errorf("expected the wrapped Var to carry the '-' sign, got %q", left.Child(0).Sign)
	}
}

func TestParseCallWithNestedCallArguments(t *testing.T) {
	root := mustParse(t, "СУММ(1, МАКС(2,3));")
	call := root.Child(0)
	if call.Kind != KindCall {
		t.Fatalf("expected Call, got %v", call.Kind)
	}
	if len(call.Children) != 3 {
		t.Fatalf("expected name + 2 args, got %d children", len(call.Children))
	}
	nested := call.Child(2)
	if nested.Kind != KindCall || nested.Child(0).Token.Raw != "МАКС" {
		t.Fatalf("expected nested МАКС call, got %v", nested.Kind)
	}
}

func TestParseConditionChainShape(t *testing.T) {
	root := mustParse(t, "ЕСЛИ(x>=1){y=1;}ИНАЧЕ_ЕСЛИ(x==0){y=2;}ИНАЧЕ{y=3;};")
	cond := root.Child(0)
	if cond.Kind != KindCondition {
		t.Fatalf("expected Condition, got %v", cond.Kind)
	}
	if len(cond.Children) != 3 {
		t.Fatalf("expected If+Elif+Else, got %d children", len(cond.Children))
	}
	if cond.Child(0).Kind != KindIf || cond.Child(1).Kind != KindElif || cond.Child(2).Kind != KindElse {
		t.Errorf("unexpected child kinds: %v %v %v", cond.Child(0).Kind, cond.Child(1).Kind, cond.Child(2).Kind)
	}
	if cond.Child(0).Child(1).Kind != KindScope {
		t.Errorf("expected the If body to be wrapped in a Scope, got %v", cond.Child(0).Child(1).Kind)
	}
}

func TestParseParenthesesGroupBeforePrecedence(t *testing.T) {
	root := mustParse(t, "(2+3)*4;")
	stmt := root.Child(0)
	if stmt.Kind != KindBinary || stmt.Operator.Kind != TokTimes {
		t.Fatalf("expected top-level '*', got %v", stmt.Kind)
	}
	left := stmt.Child(0)
	if left.Kind != KindPar {
		t.Fatalf("expected Par on the left, got %v", left.Kind)
	}
}

func TestParseTrailingSemicolonInsideScopeIsDropped(t *testing.T) {
	root := mustParse(t, "ЕСЛИ(1){x=1;;}ИНАЧЕ{x=0;};")
	cond := root.Child(0)
	scope := cond.Child(0).Child(1)
	body := scope.Child(0)
	if len(body.Children) != 1 {
		t.Fatalf("expected the doubled ';' to leave exactly one statement, got %d", len(body.Children))
	}
}

func TestParseMultipleStatements(t *testing.T) {
	root := mustParse(t, "x=1;y=2;z=x+y;")
	if root.Kind != KindInstruction {
		t.Fatalf("expected Instruction root, got %v", root.Kind)
	}
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(root.Children))
	}
}

func TestParseUnexpectedEOFIsSyntaxError(t *testing.T) {
	q, err := Analyze("1+")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if _, err := NewParser(q).Parse(); err == nil {
		t.Error("expected a parse error for a dangling operator")
	}
}
