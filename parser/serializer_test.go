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

import (
	"strings"
	"testing"
)

func reserialize(t *testing.T, src string) string {
	t.Helper()
	root := mustParse(t, src)
	return SerializeText(root)
}

func TestSerializeTextRoundTripIsStable(t *testing.T) {
	for _, src := range []string{
		"x = 1;",
		"x = 1 + 2 * 3;",
		"СУММ(1, 2, 3);",
		`ЕСЛИ(x>=1){y=1;}ИНАЧЕ_ЕСЛИ(x==0){y=2;}ИНАЧЕ{y=3;};`,
	} {
		first := reserialize(t, src)

		q, err := Analyze(first)
		if err != nil {
			t.Fatalf("%q: reparse lex error: %v", src, err)
		}
		root, err := NewParser(q).Parse()
		if err != nil {
			t.Fatalf("%q: reparse error: %v\nrendered: %s", src, err, first)
		}
		second := SerializeText(root)

		if first != second {
			t.Errorf("%q: not a fixed point:\n first: %s\nsecond: %s", src, first, second)
		}
	}
}

func TestSerializeTextPreservesOperatorFigure(t *testing.T) {
	out := reserialize(t, "x = 1 + 2;")
	if !strings.Contains(out, "+") {
		t.Errorf("expected the '+' figure in the rendered text, got %q", out)
	}
}

func TestSerializeTextRendersCallArguments(t *testing.T) {
	out := reserialize(t, "СУММ(1, 2);")
	if !strings.Contains(out, "СУММ(1, 2)") {
		t.Errorf("expected СУММ(1, 2) in the rendered text, got %q", out)
	}
}

func TestSerializeTargetRemapsBuiltinNames(t *testing.T) {
	root := mustParse(t, "СУММ(1, 2);")
	out := SerializeTarget(root)
	if !strings.Contains(out, "custom_sum") {
		t.Errorf("expected the target-language name custom_sum, got %q", out)
	}
}

func TestSerializeTargetWrapsFloatsInRoundingCall(t *testing.T) {
	root := mustParse(t, "x = 2.5;")
	out := SerializeTarget(root)
	if !strings.Contains(out, "math_round(2.5") {
		t.Errorf("expected a math_round wrapper around the float literal, got %q", out)
	}
}

func TestSerializeTargetLeavesIntegersBare(t *testing.T) {
	root := mustParse(t, "x = 2;")
	out := SerializeTarget(root)
	if strings.Contains(out, "math_round") {
		t.Errorf("expected an integer literal to stay unwrapped, got %q", out)
	}
}

func TestSerializeTargetUnknownBuiltinIsMarked(t *testing.T) {
	root := mustParse(t, "НЕИЗВЕСТНО(1);")
	out := SerializeTarget(root)
	if !strings.Contains(out, "?НЕИЗВЕСТНО?") {
		t.Errorf("expected an unmapped callee to render as ?NAME?, got %q", out)
	}
}

func TestSerializeTextIfElseUsesRussianKeywords(t *testing.T) {
	root := mustParse(t, "ЕСЛИ(1){x=1;}ИНАЧЕ{x=0;};")
	out := SerializeText(root)
	if !strings.Contains(out, "ЕСЛИ") || !strings.Contains(out, "ИНАЧЕ") {
		t.Errorf("expected Russian keywords preserved, got %q", out)
	}
}

func TestSerializeTargetIfElseUsesPythonKeywords(t *testing.T) {
	root := mustParse(t, "ЕСЛИ(1){x=1;}ИНАЧЕ{x=0;};")
	out := SerializeTarget(root)
	if !strings.Contains(out, "if ") || !strings.Contains(out, "else:") {
		t.Errorf("expected target-language if/else keywords, got %q", out)
	}
}
