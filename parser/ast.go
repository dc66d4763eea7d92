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

import (
	"fmt"
	"strings"

	"devt.de/krotik/common/stringutil"
)

/*
Kind tags an ASTNode variant. The tree is a single struct type rather than
one Go type per variant; Kind decides which fields are meaningful and which
evaluator/serializer branch applies.
*/
type Kind string

/*
AST node kinds. Stop is produced by the parser as a control signal and is
never attached to a finished tree.
*/
const (
	KindInstruction Kind = "instruction"
	KindPar         Kind = "par"
	KindScope       Kind = "scope"
	KindVar         Kind = "var"
	KindName        Kind = "name"
	KindUnaryMinus  Kind = "unary_minus"
	KindUnaryNot    Kind = "unary_not"
	KindBinary      Kind = "binary"
	KindLogical     Kind = "logical"
	KindAssignment  Kind = "assignment"
	KindCall        Kind = "call"
	KindCondition   Kind = "condition"
	KindIf          Kind = "if"
	KindElif        Kind = "elif"
	KindElse        Kind = "else"
	KindStop        Kind = "stop"
)

/*
ASTNode is a tagged-variant tree node. Children are owned exclusively by
their parent; Parent and Index (1-based sibling position) are maintained by
AddChild and are valid for every node except the root.

Sign carries the "-" prefix baked into a Var by a preceding UnaryMinus at
parse time; Operator carries the operator token for Binary/Logical nodes.
*/
type ASTNode struct {
	Kind     Kind
	Token    *Token
	Operator *Token
	Sign     string
	Children []*ASTNode
	Parent   *ASTNode
	Index    int
}

/*
NewNode creates a detached node of the given kind, optionally anchored to a
token (Var, Name). Binary, Logical and Assignment nodes are created with a
nil token and carry their operator in Operator.
*/
func NewNode(kind Kind, tok *Token) *ASTNode {
	return &ASTNode{Kind: kind, Token: tok}
}

/*
AddChild appends a child, sets its parent back-reference and assigns its
1-based sibling index.
*/
func (n *ASTNode) AddChild(child *ASTNode) {
	child.Parent = n
	n.Children = append(n.Children, child)
	child.Index = len(n.Children)
}

/*
Child returns the i-th child (0-based) or nil if out of range.
*/
func (n *ASTNode) Child(i int) *ASTNode {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

/*
String renders an indented dump of the subtree, supplementing the debug
visibility that the colorized call-stack printer gave the original tool
without reproducing its terminal-coloring concerns.
*/
func (n *ASTNode) String() string {
	var b strings.Builder
	n.dump(&b, 0)
	return b.String()
}

func (n *ASTNode) dump(b *strings.Builder, level int) {
	fmt.Fprintf(b, "%s%s", stringutil.GenerateRollingString(" ", level*2), n.Kind)
	if n.Token != nil {
		fmt.Fprintf(b, " %q", n.Token.Raw)
	}
	if n.Operator != nil {
		fmt.Fprintf(b, " [%s]", n.Operator.Figure)
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		c.dump(b, level+1)
	}
}
