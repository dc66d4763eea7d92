/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package builtins implements the domain function table (СУММ, СРЗНАЧ,
ОКРУГЛ, ...) reachable from evaluated formulas, plus the two reachable
constants ЛОЖЬ and ИСТИНА.
*/
package builtins

import (
	"fmt"
	"reflect"
)

/*
Callable is anything that can be invoked from an evaluated formula with a
positional argument list.
*/
type Callable interface {
	Call(args []interface{}) (interface{}, error)
}

/*
FunctionAdapter bridges a native Go function to the Callable interface
used by the interpreter's call evaluation, converting numeric arguments
between the float64 the evaluator speaks and whatever concrete numeric
kind the wrapped function declares, and recovering panics (index errors,
nil dereferences, ...) from third-party-unaware Go code into a plain
error rather than crashing the whole evaluation.
*/
type FunctionAdapter struct {
	fn   reflect.Value
	name string
}

/*
NewFunctionAdapter wraps fn, a Go function value, as a Callable named
name (used only for error messages and for the <функция NAME> display
form).
*/
func NewFunctionAdapter(name string, fn interface{}) *FunctionAdapter {
	return &FunctionAdapter{fn: reflect.ValueOf(fn), name: name}
}

/*
Call converts args to the wrapped function's declared parameter types,
invokes it, and converts the result(s) back to the plain interface{}
values the evaluator works with. A function may declare a final error
return, which is split off rather than returned as a result value.
*/
func (fa *FunctionAdapter) Call(args []interface{}) (ret interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ошибка выполнения функции %v: %v", fa.name, r)
		}
	}()

	ft := fa.fn.Type()
	variadic := ft.IsVariadic()

	fargs := make([]reflect.Value, 0, len(args))

	for i, arg := range args {
		var expected reflect.Type

		switch {
		case variadic && i >= ft.NumIn()-1:
			expected = ft.In(ft.NumIn() - 1).Elem()
		case i < ft.NumIn():
			expected = ft.In(i)
		default:
			return nil, fmt.Errorf("функция %v: передано слишком много аргументов (%v)", fa.name, len(args))
		}

		fargs = append(fargs, reflect.ValueOf(coerce(arg, expected)))
	}

	minIn := ft.NumIn()
	if variadic {
		minIn--
	}
	if len(fargs) < minIn {
		return nil, fmt.Errorf("функция %v: недостаточно аргументов, ожидалось минимум %v, получено %v",
			fa.name, minIn, len(fargs))
	}

	var outs []reflect.Value
	if variadic {
		outs = fa.fn.CallSlice(packVariadic(fargs, ft))
	} else {
		outs = fa.fn.Call(fargs)
	}

	return splitResults(outs, ft)
}

/*
coerce converts v to expected's kind when both are numeric, leaving
anything else untouched for Call's reflect.Call to validate.
*/
func coerce(v interface{}, expected reflect.Type) interface{} {
	f, ok := v.(float64)
	if !ok {
		return v
	}

	switch expected.Kind() {
	case reflect.Int:
		return int(f)
	case reflect.Int64:
		return int64(f)
	case reflect.Float32:
		return float32(f)
	case reflect.Float64:
		return f
	default:
		return v
	}
}

/*
packVariadic regroups the trailing arguments of a variadic call into the
slice CallSlice expects as its final argument.
*/
func packVariadic(fargs []reflect.Value, ft reflect.Type) []reflect.Value {
	fixed := ft.NumIn() - 1
	if len(fargs) < fixed {
		fixed = len(fargs)
	}

	elemType := ft.In(ft.NumIn() - 1).Elem()
	variadicPart := reflect.MakeSlice(ft.In(ft.NumIn()-1), 0, len(fargs)-fixed)

	for _, a := range fargs[fixed:] {
		if !a.Type().AssignableTo(elemType) && a.Type().ConvertibleTo(elemType) {
			a = a.Convert(elemType)
		}
		variadicPart = reflect.Append(variadicPart, a)
	}

	return append(append([]reflect.Value{}, fargs[:fixed]...), variadicPart)
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

/*
splitResults converts reflect output values back to plain interface{},
peeling off a trailing error return if the function declares one.
*/
func splitResults(outs []reflect.Value, ft reflect.Type) (interface{}, error) {
	var err error
	results := make([]interface{}, 0, len(outs))

	for i, v := range outs {
		if i == len(outs)-1 && ft.Out(i) == errType {
			if !v.IsNil() {
				err = v.Interface().(error)
			}
			continue
		}

		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			results = append(results, float64(v.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			results = append(results, float64(v.Uint()))
		case reflect.Float32, reflect.Float64:
			results = append(results, v.Float())
		default:
			results = append(results, v.Interface())
		}
	}

	if len(results) == 1 {
		return results[0], err
	}
	if len(results) == 0 {
		return nil, err
	}
	return results, err
}
