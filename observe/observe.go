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
Package observe implements the upward event-propagation channel shared by
the Namespace and the evaluation Stack: an Informer forwards named events
with key/value payloads up a parent chain until a Watcher records them.
*/
package observe

import "sort"

/*
Event is one recorded occurrence: a header naming the kind of event
(namespace_get, namespace_assign, namespace_overwrite, stack_append,
stack_pop, zero_division, call, ...) plus its payload.
*/
type Event struct {
	Header string
	Data   map[string]interface{}
}

/*
Informer is the shared trait of Namespace and Stack: it forwards events
either to a directly attached Watcher, or up to a parent Informer, never
both. It is a non-owning, borrowed reference — never shared ownership of
the chain it propagates through.
*/
type Informer struct {
	parent  *Informer
	watcher *Watcher
}

/*
SetParent attaches a parent Informer events are forwarded to when no
Watcher is directly attached.
*/
func (i *Informer) SetParent(parent *Informer) {
	i.parent = parent
}

/*
SetWatcher attaches a Watcher that receives this Informer's events directly,
taking precedence over any parent.
*/
func (i *Informer) SetWatcher(w *Watcher) {
	i.watcher = w
}

/*
Propagate forwards an event to the attached Watcher, or failing that to the
parent Informer's Propagate. With neither attached, the event is dropped.
*/
func (i *Informer) Propagate(header string, data map[string]interface{}) {
	if i.watcher != nil {
		i.watcher.Inform(header, data)
	} else if i.parent != nil {
		i.parent.Propagate(header, data)
	}
}

/*
Watcher is an append-only event log plus an aggregation step that turns the
log into summary counters.
*/
type Watcher struct {
	history []Event
}

/*
NewWatcher returns an empty Watcher.
*/
func NewWatcher() *Watcher {
	return &Watcher{}
}

/*
Inform appends a new event to the history.
*/
func (w *Watcher) Inform(header string, data map[string]interface{}) {
	w.history = append(w.history, Event{Header: header, Data: data})
}

/*
History returns the raw recorded events, in order.
*/
func (w *Watcher) History() []Event {
	return w.history
}

/*
StackReport aggregates stack-related events.
*/
type StackReport struct {
	Append  int
	Pop     int
	MaxSize int
}

/*
NamespaceReport aggregates namespace-related events.
*/
type NamespaceReport struct {
	Get            int
	Assign         int
	Overwrite      int
	Names          []string
	NamesGet       map[string]bool
	NamesAssign    map[string]bool
	NamesOverwrite map[string]bool
}

/*
Report is the aggregate view of everything a Watcher recorded during one
evaluation.
*/
type Report struct {
	Stack     StackReport
	Namespace NamespaceReport
}

/*
MakeReport aggregates the raw event history into counters and key sets,
mirroring the shape of the original tool's watcher report.
*/
func (w *Watcher) MakeReport() Report {
	report := Report{
		Namespace: NamespaceReport{
			NamesGet:       map[string]bool{},
			NamesAssign:    map[string]bool{},
			NamesOverwrite: map[string]bool{},
		},
	}

	for _, ev := range w.history {
		switch ev.Header {
		case "stack_append":
			report.Stack.Append++
			if size, ok := ev.Data["size"].(int); ok && size > report.Stack.MaxSize {
				report.Stack.MaxSize = size
			}
		case "stack_pop":
			report.Stack.Pop++
			if size, ok := ev.Data["size"].(int); ok && size > report.Stack.MaxSize {
				report.Stack.MaxSize = size
			}
		case "namespace_get":
			report.Namespace.Get++
			if key, ok := ev.Data["key"].(string); ok {
				report.Namespace.NamesGet[key] = true
			}
		case "namespace_assign":
			report.Namespace.Assign++
			if key, ok := ev.Data["key"].(string); ok {
				report.Namespace.NamesAssign[key] = true
			}
		case "namespace_overwrite":
			report.Namespace.Overwrite++
			if key, ok := ev.Data["key"].(string); ok {
				report.Namespace.NamesOverwrite[key] = true
			}
		}
	}

	seen := map[string]bool{}
	for k := range report.Namespace.NamesGet {
		seen[k] = true
	}
	for k := range report.Namespace.NamesAssign {
		seen[k] = true
	}
	for k := range report.Namespace.NamesOverwrite {
		seen[k] = true
	}
	for k := range seen {
		report.Namespace.Names = append(report.Namespace.Names, k)
	}
	sort.Strings(report.Namespace.Names)

	return report
}
