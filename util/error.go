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
Package util holds the two fatal error kinds the evaluator raises, plus
logging support. The lexer and parser report syntax errors with their
own parser.LexError and parser.ParseError types.
*/
package util

import (
	"fmt"

	"github.com/zyktin/rusformula/parser"
)

/*
SyntaxError reports malformed input found during evaluation: an
assignment key starting with a digit. Malformed source text (a disallowed
character, unbalanced quotes or brackets, an unrecognisable token, an
unexpected token kind) is reported by the parser package instead.
*/
type SyntaxError struct {
	Detail string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("синтаксическая ошибка: %s", e.Detail)
}

/*
NewSyntaxError builds a SyntaxError from a detail string.
*/
func NewSyntaxError(detail string) *SyntaxError {
	return &SyntaxError{Detail: detail}
}

/*
SemanticError reports well-formed but ill-typed or unresolved input: a name
not bound, a callee not bound or not callable, an unsupported operand-type
combination, equality between unlike types, assignment narrowing of a
non-numeric variable to a different type, or a malformed Var carrying a
non-literal token. Node identifies where in the tree the error occurred.
*/
type SemanticError struct {
	Detail string
	Node   *parser.ASTNode
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("семантическая ошибка: %s", e.Detail)
}

/*
NewSemanticError builds a SemanticError anchored on the offending node.
*/
func NewSemanticError(detail string, node *parser.ASTNode) *SemanticError {
	return &SemanticError{Detail: detail, Node: node}
}
