/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package builtins

import (
	"fmt"
	"math"
	"testing"
)

func TestMathRoundHalfAwayFromZero(t *testing.T) {
	if got := MathRound(2.735, 2); math.Abs(got-2.74) > 1e-9 {
		t.Errorf("expected 2.74, got %v", got)
	}
	if got := MathRound(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf to pass through unchanged, got %v", got)
	}
}

func TestRemFloorModulo(t *testing.T) {
	if got := Rem(-7, 3); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
	if got := Rem(7, -3); got != -2 {
		t.Errorf("expected -2, got %v", got)
	}
}

func TestSumCall(t *testing.T) {
	fns := DefaultFunctions()
	sum := fns["СУММ"].(Callable)

	res, err := sum.Call([]interface{}{1.0, 2.0, 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if res.(float64) != 6.0 {
		t.Errorf("expected 6, got %v", res)
	}
}

func TestAvgEmptyError(t *testing.T) {
	fns := DefaultFunctions()
	avg := fns["СРЗНАЧ"].(Callable)

	if _, err := avg.Call(nil); err == nil {
		t.Error("expected an error for an empty argument list")
	}
}

func TestRoundWithDecimals(t *testing.T) {
	fns := DefaultFunctions()
	round := fns["ОКРУГЛ"].(Callable)

	res, err := round.Call([]interface{}{2.735, 2.0})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.(float64)-2.74) > 1e-9 {
		t.Errorf("expected 2.74, got %v", res)
	}
}

func TestJoinUsesFirstArgAsSeparator(t *testing.T) {
	fns := DefaultFunctions()
	join := fns["ОБЪЕДИНИТЬ"].(Callable)

	res, err := join.Call([]interface{}{",", "a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if res.(string) != "a,b,c" {
		t.Errorf("expected a,b,c, got %v", res)
	}
}

func TestAllOfEmptyIsFalse(t *testing.T) {
	fns := DefaultFunctions()
	all := fns["ВСЕ_ИЗ"].(Callable)

	res, err := all.Call(nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.(float64) != 0 {
		t.Error("expected 0 for an empty argument list")
	}
}

func TestFuncWrapperMasksIdentity(t *testing.T) {
	fns := DefaultFunctions()
	fw := fns["СУММ"].(fmt.Stringer)

	if fw.String() != "<функция СУММ>" {
		t.Errorf("unexpected identity: %v", fw.String())
	}
}

func TestDefaultNamesIncludesConstants(t *testing.T) {
	names := DefaultNames()
	if names["ИСТИНА"].(float64) != 1 {
		t.Error("expected ИСТИНА == 1")
	}
	if names["ЛОЖЬ"].(float64) != 0 {
		t.Error("expected ЛОЖЬ == 0")
	}
}
