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
	"math/rand"
	"strconv"
	"strings"
)

/*
FuncWrapper masks a built-in Callable so that printing it never leaks the
underlying Go function: it always renders as <функция NAME>, matching the
identity-hiding the original function table applied to every entry.
*/
type FuncWrapper struct {
	Callable
	name string
}

func wrap(name string, fn interface{}) *FuncWrapper {
	return &FuncWrapper{Callable: NewFunctionAdapter(name, fn), name: name}
}

func (fw *FuncWrapper) String() string {
	return fmt.Sprintf("<функция %v>", fw.name)
}

/*
MathRound rounds number to decimals fractional digits using half-away-
from-zero rounding, not Go's default round-half-to-even. Infinities pass
through unchanged.
*/
func MathRound(number float64, decimals int) float64 {
	if math.IsInf(number, 0) {
		return number
	}

	scale := math.Pow(10, float64(decimals))
	exp := number * scale

	whole := math.Trunc(exp)
	if math.Abs(exp-whole) < 0.5 {
		return whole / scale
	}
	return (whole + math.Copysign(1, exp)) / scale
}

/*
Rem implements floor-division modulo, matching the sign convention of
Python's mod operator: the result always carries the sign of the divisor.
*/
func Rem(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

func customSum(args ...float64) float64 {
	var total float64
	for _, a := range args {
		total += a
	}
	return total
}

func customAvg(args ...float64) (float64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("СРЗНАЧ требует хотя бы один аргумент")
	}
	return customSum(args...) / float64(len(args)), nil
}

func customMin(args ...float64) (float64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("МИН требует хотя бы один аргумент")
	}
	m := args[0]
	for _, a := range args[1:] {
		if a < m {
			m = a
		}
	}
	return m, nil
}

func customMax(args ...float64) (float64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("МАКС требует хотя бы один аргумент")
	}
	m := args[0]
	for _, a := range args[1:] {
		if a > m {
			m = a
		}
	}
	return m, nil
}

func customConcatenate(args ...interface{}) string {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(toText(a))
	}
	return sb.String()
}

/*
customJoin implements СЦЕПИТЬ's companion with a separator, taking the
literal spec text (separator first, remaining args joined by it) rather
than replicating the original's off-by-one behaviour, which used the
first argument both as separator and as the first joined value.
*/
func customJoin(args ...interface{}) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("ОБЪЕДИНИТЬ требует хотя бы один аргумент")
	}

	sep := toText(args[0])
	rest := args[1:]

	parts := make([]string, len(rest))
	for i, a := range rest {
		parts[i] = toText(a)
	}
	return strings.Join(parts, sep), nil
}

func customAll(args ...float64) float64 {
	if len(args) == 0 {
		return 0
	}
	for _, a := range args {
		if a == 0 {
			return 0
		}
	}
	return 1
}

func customAny(args ...float64) float64 {
	for _, a := range args {
		if a != 0 {
			return 1
		}
	}
	return 0
}

func customNotAny(args ...float64) float64 {
	if customAny(args...) == 0 {
		return 1
	}
	return 0
}

func toText(v interface{}) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func customText(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func customValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("не удалось преобразовать %q в число", s)
	}
	return v, nil
}

func customTrunc(v float64) float64 {
	return math.Trunc(v)
}

func stub(args ...interface{}) float64 {
	return 0
}

/*
DefaultFunctions returns the domain function table, in the same grouping
as the original: math, text, logical, date/time and special (side-
effecting) reserved names that are wired elsewhere and stubbed here.
*/
func DefaultFunctions() map[string]interface{} {
	return map[string]interface{}{
		"СЛЧИС":      wrap("СЛЧИС", func() float64 { return rand.Float64() }),
		"МИН":        wrap("МИН", customMin),
		"МАКС":       wrap("МАКС", customMax),
		"СУММ":       wrap("СУММ", customSum),
		"ABS":        wrap("ABS", math.Abs),
		"ОКРУГЛ":     wrap("ОКРУГЛ", func(n float64, d ...float64) float64 { return MathRound(n, variadicDecimals(d)) }),
		"ОКРВВЕРХ":   wrap("ОКРВВЕРХ", math.Ceil),
		"ОКРВНИЗ":    wrap("ОКРВНИЗ", math.Floor),
		"ЦЕЛОЕ":      wrap("ЦЕЛОЕ", math.Trunc),
		"ОСТАТ":      wrap("ОСТАТ", Rem),
		"СЛУЧМЕЖДУ":  wrap("СЛУЧМЕЖДУ", func(lo, hi float64) float64 { return float64(int(lo) + rand.Intn(int(hi)-int(lo)+1)) }),
		"КОРЕНЬ":     wrap("КОРЕНЬ", math.Sqrt),
		"ОТБР":       wrap("ОТБР", customTrunc),
		"СРЗНАЧ":     wrap("СРЗНАЧ", customAvg),
		"ТЕКСТ":      wrap("ТЕКСТ", customText),
		"ЗНАЧЕН":     wrap("ЗНАЧЕН", customValue),
		"СТРОЧН":     wrap("СТРОЧН", strings.ToLower),
		"ПРОПИСН":    wrap("ПРОПИСН", strings.ToUpper),
		"СЦЕПИТЬ":    wrap("СЦЕПИТЬ", customConcatenate),
		"ОБЪЕДИНИТЬ": wrap("ОБЪЕДИНИТЬ", customJoin),
		"ВСЕ_ИЗ":     wrap("ВСЕ_ИЗ", customAll),
		"ОДИН_ИЗ":    wrap("ОДИН_ИЗ", customAny),
		"НИ_ОДИН_ИЗ": wrap("НИ_ОДИН_ИЗ", customNotAny),
		"ТОЧКА":      wrap("ТОЧКА", stub),
		"СЕЙЧАС":     wrap("СЕЙЧАС", stub),
		"СЕГОДНЯ":    wrap("СЕГОДНЯ", stub),
		"MQTT":       wrap("MQTT", stub),
		"ОТЧЁТ":      wrap("ОТЧЁТ", stub),
		"СОХР":       wrap("СОХР", stub),
		"ЗАГР":       wrap("ЗАГР", stub),
	}
}

func variadicDecimals(d []float64) int {
	if len(d) == 0 {
		return 0
	}
	return int(d[0])
}

/*
DefaultConstants returns the two reachable constants every namespace is
seeded with.
*/
func DefaultConstants() map[string]interface{} {
	return map[string]interface{}{
		"ЛОЖЬ":   float64(0),
		"ИСТИНА": float64(1),
	}
}

/*
DefaultNames returns the full seed table (functions plus constants) a
fresh namespace starts from.
*/
func DefaultNames() map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range DefaultFunctions() {
		out[k] = v
	}
	for k, v := range DefaultConstants() {
		out[k] = v
	}
	return out
}
