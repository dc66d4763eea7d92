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

	"github.com/zyktin/rusformula/builtins"
	"github.com/zyktin/rusformula/config"
	"github.com/zyktin/rusformula/parser"
	"github.com/zyktin/rusformula/util"
)

/*
Eval walks node, leaving its result (if it has one) on ctx.Stack. Most
node kinds push exactly one value; Instruction, Scope, Par and Condition
are transparent and leave whichever child's push stands in for their own
result, matching the stack discipline a caller relies on to retrieve the
final evaluation result.
*/
func Eval(node *parser.ASTNode, ctx *Context) error {
	switch node.Kind {
	case parser.KindInstruction:
		return evalInstruction(node, ctx)
	case parser.KindScope:
		return Eval(node.Child(0), ctx)
	case parser.KindPar:
		return Eval(node.Child(0), ctx)
	case parser.KindVar:
		return evalVar(node, ctx)
	case parser.KindName:
		return evalName(node, ctx)
	case parser.KindUnaryMinus:
		return Eval(node.Child(0), ctx)
	case parser.KindUnaryNot:
		return evalUnaryNot(node, ctx)
	case parser.KindBinary:
		return evalBinary(node, ctx)
	case parser.KindLogical:
		return evalLogical(node, ctx)
	case parser.KindAssignment:
		return evalAssignment(node, ctx)
	case parser.KindCall:
		return evalCall(node, ctx)
	case parser.KindCondition:
		return evalCondition(node, ctx)
	}

	return util.NewSemanticError("неизвестный тип узла дерева: "+string(node.Kind), node)
}

/*
Result fully evaluates root and returns the value remaining on the stack,
or nil if nothing is left (an unmatched condition with no Else, or an
Instruction whose only statements were assignments).
*/
func Result(root *parser.ASTNode, ctx *Context) (interface{}, error) {
	if err := Eval(root, ctx); err != nil {
		return nil, err
	}
	if ctx.Stack.Len() == 0 {
		return nil, nil
	}
	return ctx.Stack.Pop(root)
}

func evalInstruction(node *parser.ASTNode, ctx *Context) error {
	for _, child := range node.Children {
		if err := Eval(child, ctx); err != nil {
			return err
		}
	}
	return nil
}

/*
toBool applies the truthiness rule shared by UnaryNot, Condition
predicates and the and/or coercion in Logical: a float64 is truthy unless
it equals zero, a string is truthy unless it is empty.
*/
func toBool(v interface{}) bool {
	switch t := v.(type) {
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return v != nil
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

/*
roundIfFloat applies DEFAULT_PRECISION rounding to numeric results;
non-numeric values pass through unchanged.
*/
func roundIfFloat(v interface{}) interface{} {
	if f, ok := v.(float64); ok {
		return roundPrecision(f)
	}
	return v
}

func roundPrecision(f float64) float64 {
	if math.IsInf(f, 0) {
		return f
	}
	return builtins.MathRound(f, config.Int(config.Precision))
}

/*
epsilonEq implements the strict equality rule: numeric operands compare
within EPSILON, string operands compare exactly, any other pairing is a
semantic error.
*/
func epsilonEq(a, b interface{}) (bool, error) {
	if af, aok := a.(float64); aok {
		if bf, bok := b.(float64); bok {
			return math.Abs(af-bf) < config.Float(config.Epsilon), nil
		}
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return as == bs, nil
		}
	}
	return false, &typeError{a: a, b: b}
}

/*
sameType reports whether a and b hold the same evaluator-visible dynamic
type (float64, string, or callable); used by the assignment type lock.
*/
func sameType(a, b interface{}) bool {
	switch a.(type) {
	case float64:
		_, ok := b.(float64)
		return ok
	case string:
		_, ok := b.(string)
		return ok
	case builtins.Callable:
		_, ok := b.(builtins.Callable)
		return ok
	default:
		return false
	}
}

func isNumeric(v interface{}) bool {
	_, ok := v.(float64)
	return ok
}

type typeError struct {
	a, b interface{}
}

func (e *typeError) Error() string {
	return "несовместимые типы операндов"
}
