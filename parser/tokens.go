/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import "math"

/*
TokenKind identifies the lexical category of a Token.
*/
type TokenKind string

/*
Recognised token kinds. Name is always attempted last so that reserved
keywords win against identifiers which happen to share their spelling.
*/
const (
	TokInteger TokenKind = "integer"
	TokFloat   TokenKind = "float"
	TokString  TokenKind = "string"
	TokName    TokenKind = "name"

	TokPlus   TokenKind = "plus"
	TokMinus  TokenKind = "minus"
	TokTimes  TokenKind = "times"
	TokDivide TokenKind = "divide"
	TokPower  TokenKind = "power"

	TokLT     TokenKind = "lt"
	TokLE     TokenKind = "le"
	TokGT     TokenKind = "gt"
	TokGE     TokenKind = "ge"
	TokEq     TokenKind = "eq"
	TokNotEq  TokenKind = "noteq"
	TokAnd    TokenKind = "and"
	TokOr     TokenKind = "or"
	TokNot    TokenKind = "not"

	TokIf   TokenKind = "if"
	TokElif TokenKind = "elif"
	TokElse TokenKind = "else"

	TokLParen    TokenKind = "lparen"
	TokRParen    TokenKind = "rparen"
	TokLCurl     TokenKind = "lcurl"
	TokRCurl     TokenKind = "rcurl"
	TokSemicolon TokenKind = "semicolon"
	TokComma     TokenKind = "comma"
	TokAssign    TokenKind = "assign"

	TokEOF TokenKind = "eof"
)

/*
Token is an immutable lexical unit: a kind tag, the raw source slice that
matched it and a canonical figure used when re-emitting source text.
*/
type Token struct {
	Kind   TokenKind
	Raw    string
	Figure string
	Pos    int
	Line   int
	Col    int
}

/*
IsLiteral returns true for tokens which can be carried directly by a Var node.
*/
func (t *Token) IsLiteral() bool {
	return t != nil && (t.Kind == TokInteger || t.Kind == TokFloat || t.Kind == TokString)
}

/*
OperatorFunc is the two-argument function attached to a binary-operator kind.
*/
type OperatorFunc func(a, b interface{}) (interface{}, error)

func numOp(f func(a, b float64) float64) OperatorFunc {
	return func(a, b interface{}) (interface{}, error) {
		af, aok := a.(float64)
		bf, bok := b.(float64)
		if !aok || !bok {
			return nil, newTypeError(a, b)
		}
		return f(af, bf), nil
	}
}

func cmpOp(f func(a, b float64) bool) OperatorFunc {
	return func(a, b interface{}) (interface{}, error) {
		af, aok := a.(float64)
		bf, bok := b.(float64)
		if !aok || !bok {
			return nil, newTypeError(a, b)
		}
		if f(af, bf) {
			return 1.0, nil
		}
		return 0.0, nil
	}
}

func newTypeError(a, b interface{}) error {
	return &TypeMismatchError{A: a, B: b}
}

/*
TypeMismatchError is returned by an OperatorFunc when its operands are not
both numeric; the caller (the interpreter) turns it into a semantic error
carrying the offending node.
*/
type TypeMismatchError struct {
	A, B interface{}
}

func (e *TypeMismatchError) Error() string {
	return "operand types do not match"
}

/*
OperatorTable maps the binary-operator token kinds to their two-argument
function. And/Or are handled separately by the interpreter because they
coerce to truthiness rather than requiring numeric operands.
*/
var OperatorTable = map[TokenKind]OperatorFunc{
	TokPlus:  numOp(func(a, b float64) float64 { return a + b }),
	TokMinus: numOp(func(a, b float64) float64 { return a - b }),
	TokTimes: numOp(func(a, b float64) float64 { return a * b }),
	TokPower: numOp(math.Pow),
	TokLT:    cmpOp(func(a, b float64) bool { return a < b }),
	TokLE:    cmpOp(func(a, b float64) bool { return a <= b }),
	TokGT:    cmpOp(func(a, b float64) bool { return a > b }),
	TokGE:    cmpOp(func(a, b float64) bool { return a >= b }),
}

/*
Figures holds the canonical display text for structural and keyword tokens,
used by the serializer and by error messages.
*/
var Figures = map[TokenKind]string{
	TokPlus: "+", TokMinus: "-", TokTimes: "*", TokDivide: "/", TokPower: "**",
	TokLT: "<", TokLE: "<=", TokGT: ">", TokGE: ">=",
	TokEq: "==", TokNotEq: "!=",
	TokAnd: "И", TokOr: "ИЛИ", TokNot: "НЕ",
	TokIf: "ЕСЛИ", TokElif: "ИНАЧЕ_ЕСЛИ", TokElse: "ИНАЧЕ",
	TokLParen: "(", TokRParen: ")", TokLCurl: "{", TokRCurl: "}",
	TokSemicolon: ";", TokComma: ",", TokAssign: "=",
}

/*
keywordMap lists reserved words recognised case-insensitively, both the
Russian spelling and the English alias accepted by the source language.
*/
var keywordMap = map[string]TokenKind{
	"ЕСЛИ": TokIf, "IF": TokIf,
	"ИНАЧЕ_ЕСЛИ": TokElif, "ELIF": TokElif,
	"ИНАЧЕ": TokElse, "ELSE": TokElse,
	"И": TokAnd, "AND": TokAnd,
	"ИЛИ": TokOr, "OR": TokOr,
	"НЕ": TokNot, "NOT": TokNot,
}
