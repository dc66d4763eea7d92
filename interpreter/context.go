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
Package interpreter is the tree-walking evaluator: a single central Eval
dispatcher, type-switching on node Kind, replaces one runtime type per AST
variant since nothing here needs the extra indirection of attaching a
runtime component at parse time - there are no sinks, no async evaluation,
no user-declared functions.
*/
package interpreter

import (
	"github.com/zyktin/rusformula/evalstack"
	"github.com/zyktin/rusformula/namespace"
	"github.com/zyktin/rusformula/observe"
)

/*
Context bundles the Namespace and Stack one evaluation exclusively
borrows for its duration, plus the shared Informer both funnel their
events through on the way to whatever Watcher, if any, is attached.
*/
type Context struct {
	Namespace *namespace.Namespace
	Stack     *evalstack.Stack
	events    *observe.Informer
}

/*
NewContext wires ns and stack to share a single upward event channel.
*/
func NewContext(ns *namespace.Namespace, stack *evalstack.Stack) *Context {
	events := &observe.Informer{}
	ns.SetParent(events)
	stack.SetParent(events)
	return &Context{Namespace: ns, Stack: stack, events: events}
}

/*
Watch attaches w as the sink for every event this context's Namespace and
Stack produce.
*/
func (ctx *Context) Watch(w *observe.Watcher) {
	ctx.events.SetWatcher(w)
}

func (ctx *Context) propagate(header string, data map[string]interface{}) {
	ctx.events.Propagate(header, data)
}
