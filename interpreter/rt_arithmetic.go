/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"math"

	"github.com/zyktin/rusformula/parser"
	"github.com/zyktin/rusformula/util"
)

/*
evalBinary evaluates both operands (left before right, never short-
circuited), then applies the operator. Division by a zero right operand
is not an error: it yields +Inf and a zero_division event. Plus accepts
either two numbers or two strings (concatenation); every other operator
requires both operands to be numeric.
*/
func evalBinary(node *parser.ASTNode, ctx *Context) error {
	if err := Eval(node.Child(0), ctx); err != nil {
		return err
	}
	left, err := ctx.Stack.Pop(node)
	if err != nil {
		return err
	}

	if err := Eval(node.Child(1), ctx); err != nil {
		return err
	}
	right, err := ctx.Stack.Pop(node)
	if err != nil {
		return err
	}

	result, err := applyBinary(node, ctx, left, right)
	if err != nil {
		return util.NewSemanticError("не удалось выполнить операцию "+node.Operator.Figure, node)
	}

	ctx.Stack.Append(node, roundIfFloat(result))
	return nil
}

func applyBinary(node *parser.ASTNode, ctx *Context, left, right interface{}) (interface{}, error) {
	if node.Operator.Kind == parser.TokDivide {
		rf, ok := right.(float64)
		if !ok {
			return nil, &typeError{a: left, b: right}
		}
		lf, ok := left.(float64)
		if !ok {
			return nil, &typeError{a: left, b: right}
		}
		if rf == 0 {
			ctx.propagate("zero_division", map[string]interface{}{
				"operation": node.Child(0).Kind,
			})
			return math.Inf(1), nil
		}
		return lf / rf, nil
	}

	if node.Operator.Kind == parser.TokPlus {
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
	}

	fn, ok := parser.OperatorTable[node.Operator.Kind]
	if !ok {
		return nil, &typeError{a: left, b: right}
	}
	return fn(left, right)
}
