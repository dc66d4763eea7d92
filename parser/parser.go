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

import "fmt"

/*
ParseError is a syntax error raised while building the AST from a token
queue: an unexpected token kind at a consumption point, or an unbalanced
call/condition structure.
*/
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("синтаксическая ошибка: %s", e.Detail)
}

/*
Parser is a recursive-descent parser over nine precedence tiers (8 down to
0, lowest precedence first) driven directly off a TokenQueue.
*/
type Parser struct {
	q *TokenQueue
}

/*
NewParser wraps an already-lexed TokenQueue.
*/
func NewParser(q *TokenQueue) *Parser {
	return &Parser{q: q}
}

/*
Parse builds the root Instruction node from the whole token queue.
*/
func (p *Parser) Parse() (*ASTNode, error) {
	return p.tier8(0)
}

/*
tier8 - statements. Accumulates children until the queue is exhausted or a
closing brace is next; Stop nodes produced by a trailing ';' are dropped
rather than attached.
*/
func (p *Parser) tier8(depth int) (*ASTNode, error) {
	head := NewNode(KindInstruction, nil)

	for p.q.HasNext() {
		child, err := p.tier7(depth + 1)
		if err != nil {
			return nil, err
		}

		if child.Kind != KindStop {
			head.AddChild(child)
		}

		if p.q.NextIn(TokRCurl) {
			break
		}
	}

	return head, nil
}

/*
tier7 - assignment. Builds Assignment(head, '=', tier6) for each '=' seen;
the right-hand side of each step is a tier-6 expression.
*/
func (p *Parser) tier7(depth int) (*ASTNode, error) {
	head, err := p.tier6(depth + 1)
	if err != nil {
		return nil, err
	}

	for p.q.NextIn(TokAssign) && head.Kind != KindStop {
		opTok := p.q.CutNext()
		rhs, err := p.tier6(depth + 1)
		if err != nil {
			return nil, err
		}

		node := NewNode(KindAssignment, nil)
		node.Operator = opTok
		node.AddChild(head)
		node.AddChild(rhs)
		head = node
	}

	return head, nil
}

/*
tier6 - logical and/or.
*/
func (p *Parser) tier6(depth int) (*ASTNode, error) {
	return p.logicalTier(depth, p.tier5, TokAnd, TokOr)
}

/*
tier5 - equality.
*/
func (p *Parser) tier5(depth int) (*ASTNode, error) {
	return p.logicalTier(depth, p.tier4, TokEq, TokNotEq)
}

/*
tier4 - ordering comparisons.
*/
func (p *Parser) tier4(depth int) (*ASTNode, error) {
	return p.logicalTier(depth, p.tier3, TokGT, TokLT, TokLE, TokGE)
}

func (p *Parser) logicalTier(depth int, next func(int) (*ASTNode, error), kinds ...TokenKind) (*ASTNode, error) {
	head, err := next(depth + 1)
	if err != nil {
		return nil, err
	}

	for p.q.NextIn(kinds...) && head.Kind != KindStop {
		opTok := p.q.CutNext()
		rhs, err := next(depth + 1)
		if err != nil {
			return nil, err
		}

		node := NewNode(KindLogical, nil)
		node.Operator = opTok
		node.AddChild(head)
		node.AddChild(rhs)
		head = node
	}

	return head, nil
}

/*
tier3 - addition and subtraction.
*/
func (p *Parser) tier3(depth int) (*ASTNode, error) {
	return p.binaryTier(depth, p.tier2, TokPlus, TokMinus)
}

/*
tier2 - multiplication and division.
*/
func (p *Parser) tier2(depth int) (*ASTNode, error) {
	return p.binaryTier(depth, p.tier1, TokTimes, TokDivide)
}

/*
tier1 - exponentiation, left-associative as written.
*/
func (p *Parser) tier1(depth int) (*ASTNode, error) {
	return p.binaryTier(depth, p.tier0, TokPower)
}

func (p *Parser) binaryTier(depth int, next func(int) (*ASTNode, error), kinds ...TokenKind) (*ASTNode, error) {
	head, err := next(depth + 1)
	if err != nil {
		return nil, err
	}

	for p.q.NextIn(kinds...) && head.Kind != KindStop {
		opTok := p.q.CutNext()
		rhs, err := next(depth + 1)
		if err != nil {
			return nil, err
		}

		node := NewNode(KindBinary, nil)
		node.Operator = opTok
		node.AddChild(head)
		node.AddChild(rhs)
		head = node
	}

	return head, nil
}

/*
tier0 - atoms: literals, names, calls, parenthesised groups, unary minus on
a following number, unary not, if-conditions, and the Stop sentinels.
*/
func (p *Parser) tier0(depth int) (*ASTNode, error) {
	current := p.q.CutNext()
	if current == nil {
		return nil, &ParseError{Detail: "неожиданный конец выражения"}
	}

	switch {
	case current.Kind == TokSemicolon:
		return NewNode(KindStop, nil), nil

	case current.IsLiteral():
		return NewNode(KindVar, current), nil

	case current.Kind == TokLParen:
		inner, err := p.tier7(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := p.q.DisposeNext(TokRParen); err != nil {
			return nil, err
		}
		node := NewNode(KindPar, nil)
		node.AddChild(inner)
		return node, nil

	case current.Kind == TokMinus && p.q.ShowNext() != nil &&
		(p.q.ShowNext().Kind == TokInteger || p.q.ShowNext().Kind == TokFloat):
		numTok := p.q.CutNext()
		varNode := NewNode(KindVar, numTok)
		varNode.Sign = "-"
		node := NewNode(KindUnaryMinus, nil)
		node.AddChild(varNode)
		return node, nil

	case current.Kind == TokName:
		nameNode := NewNode(KindName, current)
		if p.q.NextIn(TokLParen) {
			return p.callHandler(nameNode, depth+1)
		}
		return nameNode, nil

	case current.Kind == TokNot:
		child, err := p.tier1(depth + 1)
		if err != nil {
			return nil, err
		}
		node := NewNode(KindUnaryNot, nil)
		node.AddChild(child)
		return node, nil

	case current.Kind == TokIf:
		return p.ifHandler(depth + 1)

	case current.Kind == TokRParen:
		return NewNode(KindStop, nil), nil

	default:
		return nil, &ParseError{Detail: fmt.Sprintf(
			"не удалось обработать токен: %q (%s)", current.Raw, current.Kind)}
	}
}

/*
callHandler parses the parenthesised, comma-separated argument list of a
function call. Nested parentheses inside an argument expression are tracked
by a depth counter so only the matching outer ')' ends the call.
*/
func (p *Parser) callHandler(name *ASTNode, depth int) (*ASTNode, error) {
	node := NewNode(KindCall, nil)
	node.AddChild(name)

	pars := 0
	for p.q.HasNext() {
		if p.q.NextIn(TokLParen) {
			p.q.CutNext()
			pars++
		}

		arg, err := p.tier7(depth + 1)
		if err != nil {
			return nil, err
		}

		if arg.Kind == KindStop {
			break
		}
		node.AddChild(arg)

		if p.q.NextIn(TokRParen) {
			p.q.CutNext()
			if pars <= 1 {
				break
			}
			pars--
		}

		if p.q.NextIn(TokComma) {
			p.q.CutNext()
			continue
		}
	}

	return node, nil
}

/*
ifHandler parses a full ЕСЛИ/ИНАЧЕ_ЕСЛИ/ИНАЧЕ chain into a single Condition
node: one If, zero or more Elif, at most one Else.
*/
func (p *Parser) ifHandler(depth int) (*ASTNode, error) {
	condition := NewNode(KindCondition, nil)

	ifNode := NewNode(KindIf, nil)
	condition.AddChild(ifNode)
	if err := p.cutAndAppend(ifNode, depth, TokLParen, TokRParen, false); err != nil {
		return nil, err
	}
	if err := p.cutAndAppend(ifNode, depth, TokLCurl, TokRCurl, true); err != nil {
		return nil, err
	}

	for p.q.NextIn(TokElif) {
		p.q.CutNext()
		elifNode := NewNode(KindElif, nil)

		if err := p.cutAndAppend(elifNode, depth, TokLParen, TokRParen, false); err != nil {
			return nil, err
		}
		if err := p.cutAndAppend(elifNode, depth, TokLCurl, TokRCurl, true); err != nil {
			return nil, err
		}
		condition.AddChild(elifNode)
	}

	if p.q.NextIn(TokElse) {
		p.q.CutNext()
		elseNode := NewNode(KindElse, nil)

		if err := p.cutAndAppend(elseNode, depth, TokLCurl, TokRCurl, true); err != nil {
			return nil, err
		}
		condition.AddChild(elseNode)
	}

	return condition, nil
}

/*
cutAndAppend disposes a matching pair of bracket tokens and appends either a
tier-7 expression child (predicate) or a Scope wrapping a tier-8 statements
block (body) to head.
*/
func (p *Parser) cutAndAppend(head *ASTNode, depth int, open, close TokenKind, asScope bool) error {
	if err := p.q.DisposeNext(open); err != nil {
		return err
	}

	var child *ASTNode
	if asScope {
		body, err := p.tier8(depth + 1)
		if err != nil {
			return err
		}
		child = NewNode(KindScope, nil)
		child.AddChild(body)
	} else {
		expr, err := p.tier7(depth + 1)
		if err != nil {
			return err
		}
		child = expr
	}

	head.AddChild(child)

	return p.q.DisposeNext(close)
}
