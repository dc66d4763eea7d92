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
evalUnaryNot evaluates its single child and pushes the numeric negation of
its truthiness: 1 if the child was falsy, 0 otherwise.
*/
func evalUnaryNot(node *parser.ASTNode, ctx *Context) error {
	if err := Eval(node.Child(0), ctx); err != nil {
		return err
	}

	v, err := ctx.Stack.Pop(node)
	if err != nil {
		return err
	}

	ctx.Stack.Append(node, boolToFloat(!toBool(v)))
	return nil
}
