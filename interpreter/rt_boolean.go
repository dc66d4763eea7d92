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
	"github.com/zyktin/rusformula/parser"
	"github.com/zyktin/rusformula/util"
)

/*
evalLogical handles and/or/==/!=, strictly evaluating both operands
before applying the operator (no short-circuit). and/or coerce their
operands to booleans first; == and != use epsilon-tolerant numeric
comparison or exact string comparison. The result is always 0 or 1.
*/
func evalLogical(node *parser.ASTNode, ctx *Context) error {
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

	var result bool

	switch node.Operator.Kind {
	case parser.TokAnd:
		result = toBool(left) && toBool(right)
	case parser.TokOr:
		result = toBool(left) || toBool(right)
	case parser.TokEq, parser.TokNotEq:
		eq, err := epsilonEq(left, right)
		if err != nil {
			return util.NewSemanticError("нельзя сравнивать значения разных типов", node)
		}
		result = eq
		if node.Operator.Kind == parser.TokNotEq {
			result = !eq
		}
	default:
		if fn, ok := parser.OperatorTable[node.Operator.Kind]; ok {
			v, err := fn(left, right)
			if err != nil {
				return util.NewSemanticError("нельзя сравнивать значения разных типов", node)
			}
			result = toBool(v)
		} else {
			return util.NewSemanticError("неизвестный логический оператор", node)
		}
	}

	ctx.Stack.Append(node, boolToFloat(result))
	return nil
}
