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
	"strconv"

	"github.com/zyktin/rusformula/parser"
	"github.com/zyktin/rusformula/util"
)

/*
evalVar pushes a literal's value: a rounded number for Integer/Float
tokens (with the Sign prefix from a preceding UnaryMinus applied), or the
raw payload for a String token (the lexer already strips its quotes).
*/
func evalVar(node *parser.ASTNode, ctx *Context) error {
	tok := node.Token
	if tok == nil {
		return util.NewSemanticError("переменная не содержит значения", node)
	}

	var value interface{}

	switch tok.Kind {
	case parser.TokInteger, parser.TokFloat:
		f, err := strconv.ParseFloat(node.Sign+tok.Raw, 64)
		if err != nil {
			return util.NewSemanticError("не удалось разобрать число: "+tok.Raw, node)
		}
		value = roundPrecision(f)

	case parser.TokString:
		value = tok.Raw

	default:
		return util.NewSemanticError("узел Var содержит не литерал: "+string(tok.Kind), node)
	}

	ctx.Stack.Append(node, value)
	return nil
}

/*
evalName resolves an identifier against the namespace; a miss is a
semantic error. Float results are re-rounded before being pushed, since a
namespace entry may have been written by a different precision setting.
*/
func evalName(node *parser.ASTNode, ctx *Context) error {
	name := node.Token.Raw

	value, ok := ctx.Namespace.Get(node, name)
	if !ok {
		return util.NewSemanticError("переменная с именем \""+name+"\" не найдена", node)
	}

	ctx.Stack.Append(node, roundIfFloat(value))
	return nil
}
