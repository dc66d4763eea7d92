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
evalAssignment evaluates the right-hand side and stores it under the left
Name, refusing to silently change a non-numeric variable's type. It does
not itself push anything: the RHS's push is balanced by the pop used to
retrieve it, leaving the stack exactly as it was before the statement.
*/
func evalAssignment(node *parser.ASTNode, ctx *Context) error {
	nameNode := node.Child(0)
	if nameNode.Kind != parser.KindName {
		return util.NewSemanticError("слева от присваивания должно быть имя переменной", node)
	}
	name := nameNode.Token.Raw

	if err := Eval(node.Child(1), ctx); err != nil {
		return err
	}
	value, err := ctx.Stack.Pop(node)
	if err != nil {
		return err
	}

	existing, had := ctx.Namespace.Get(node, name)

	if had && !(isNumeric(value) && isNumeric(existing)) && !sameType(value, existing) {
		return util.NewSemanticError(
			"попытка изменения типа при присвоении значения переменной \""+name+"\"", node)
	}

	if err := ctx.Namespace.Set(node, name, value); err != nil {
		return util.NewSyntaxError(err.Error())
	}

	return nil
}
