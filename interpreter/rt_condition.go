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

import "github.com/zyktin/rusformula/parser"

/*
evalCondition tries If, then each Elif in order, running and returning
the first branch whose predicate is truthy; a trailing Else runs
unconditionally if reached. If no branch matches and there is no Else,
Condition leaves nothing on the stack. Condition itself never pushes: the
matched branch's Scope leaves its own result in place.
*/
func evalCondition(node *parser.ASTNode, ctx *Context) error {
	ifNode := node.Child(0)
	matched, err := evalPredicate(ifNode.Child(0), ctx)
	if err != nil {
		return err
	}
	if matched {
		return Eval(ifNode.Child(1), ctx)
	}

	for _, child := range node.Children[1:] {
		if child.Kind == parser.KindElse {
			return Eval(child.Child(0), ctx)
		}

		matched, err := evalPredicate(child.Child(0), ctx)
		if err != nil {
			return err
		}
		if matched {
			return Eval(child.Child(1), ctx)
		}
	}

	return nil
}

func evalPredicate(predicate *parser.ASTNode, ctx *Context) (bool, error) {
	if err := Eval(predicate, ctx); err != nil {
		return false, err
	}
	v, err := ctx.Stack.Pop(predicate)
	if err != nil {
		return false, err
	}
	return toBool(v), nil
}
