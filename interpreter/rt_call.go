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
	"fmt"

	"github.com/zyktin/rusformula/builtins"
	"github.com/zyktin/rusformula/parser"
	"github.com/zyktin/rusformula/util"
)

/*
evalCall evaluates its arguments strictly left to right, resolves the
callee (must be bound and callable) and pushes the return value, having
emitted a call event naming the callee and its stringified operands.
*/
func evalCall(node *parser.ASTNode, ctx *Context) error {
	nameNode := node.Child(0)
	name := nameNode.Token.Raw

	args := make([]interface{}, 0, len(node.Children)-1)
	operandStrings := make([]string, 0, len(node.Children)-1)

	for _, argNode := range node.Children[1:] {
		if err := Eval(argNode, ctx); err != nil {
			return err
		}
		v, err := ctx.Stack.Pop(node)
		if err != nil {
			return err
		}
		args = append(args, v)
		operandStrings = append(operandStrings, fmt.Sprint(v))
	}

	fnValue, ok := ctx.Namespace.Get(node, name)
	if !ok {
		return util.NewSemanticError("функция с названием \""+name+"\" не найдена", node)
	}

	callable, ok := fnValue.(builtins.Callable)
	if !ok {
		return util.NewSemanticError("объект с названием \""+name+"\" не является вызываемым", node)
	}

	ctx.propagate("call", map[string]interface{}{
		"name": name, "operand": operandStrings,
	})

	result, err := callable.Call(args)
	if err != nil {
		return util.NewSemanticError("ошибка вызова функции \""+name+"\": "+err.Error(), node)
	}

	ctx.Stack.Append(node, roundIfFloat(result))
	return nil
}
