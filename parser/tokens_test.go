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

func TestNumOpRequiresBothNumeric(t *testing.T) {
	f := OperatorTable[TokPlus]
	if _, err := f(1.0, "x"); err == nil {
		t.Error("expected a type-mismatch error for float+string")
	}
	v, err := f(2.0, 3.0)
	if err != nil || v.(float64) != 5 {
		t.Errorf("got (%v, %v), want (5, nil)", v, err)
	}
}

func TestCmpOpReturnsOneOrZero(t *testing.T) {
	f := OperatorTable[TokLT]

	v, err := f(1.0, 2.0)
	if err != nil || v.(float64) != 1 {
		t.Errorf("1<2: got (%v, %v), want (1, nil)", v, err)
	}

	v, err = f(2.0, 1.0)
	if err != nil || v.(float64) != 0 {
		t.Errorf("2<1: got (%v, %v), want (0, nil)", v, err)
	}
}

func TestOperatorTableExcludesDivideAndEquality(t *testing.T) {
	for _, k := range []TokenKind{TokDivide, TokEq, TokNotEq} {
		if _, ok := OperatorTable[k]; ok {
			t.Errorf("%s must stay out of OperatorTable; it needs interpreter-level special casing", k)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	cases := []struct {
		tok  *Token
		want bool
	}{
		{&Token{Kind: TokInteger}, true},
		{&Token{Kind: TokFloat}, true},
		{&Token{Kind: TokString}, true},
		{&Token{Kind: TokName}, false},
		{nil, false},
	}
	for _, c := range cases {
		if got := c.tok.IsLiteral(); got != c.want {
			t.Errorf("%+v: got %v, want %v", c.tok, got, c.want)
		}
	}
}

func TestFiguresCoverEveryOperatorTableKey(t *testing.T) {
	for k := range OperatorTable {
		if _, ok := Figures[k]; !ok {
			t.Errorf("%s is in OperatorTable but missing a display Figure", k)
		}
	}
}
