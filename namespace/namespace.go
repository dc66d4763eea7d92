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
Package namespace implements the variable store the evaluator reads from
and writes to: a mapping from name to value (number, string or callable
built-in), preseeded with the runtime's built-ins and reachable constants.
*/
package namespace

import (
	"encoding/json"
	"fmt"
	"sync"
	"unicode"

	"devt.de/krotik/common/stringutil"

	"github.com/zyktin/rusformula/builtins"
	"github.com/zyktin/rusformula/observe"
)

/*
Namespace is an event-emitting wrapper around a plain map. Every access
propagates an event up its Informer chain to whatever Watcher, if any, is
attached to this evaluation.
*/
type Namespace struct {
	observe.Informer

	mu   sync.RWMutex
	data map[string]interface{}
}

/*
New returns an empty Namespace, seeded only with contents, with no
built-ins. Useful for isolating evaluator behaviour in tests.
*/
func New(contents map[string]interface{}) *Namespace {
	data := map[string]interface{}{}
	for k, v := range contents {
		data[k] = v
	}
	return &Namespace{data: data}
}

/*
NewSeeded returns a Namespace preseeded with the default built-in symbol
table plus any caller-supplied contents (which may shadow built-ins).
*/
func NewSeeded(contents map[string]interface{}) *Namespace {
	data := map[string]interface{}{}
	for k, v := range builtins.DefaultNames() {
		data[k] = v
	}
	for k, v := range contents {
		data[k] = v
	}
	return &Namespace{data: data}
}

/*
Get looks up key, emitting a namespace_get event regardless of whether the
key was present. caller is an opaque tag used only for the event payload.
*/
func (ns *Namespace) Get(caller interface{}, key string) (interface{}, bool) {
	ns.mu.RLock()
	value, ok := ns.data[key]
	ns.mu.RUnlock()

	ns.Propagate("namespace_get", map[string]interface{}{
		"key": key, "value": value, "caller": caller,
	})

	return value, ok
}

/*
Set stores value under key, rejecting keys whose first character is a
digit with a syntax error. Emits namespace_assign on first-time assignment,
namespace_overwrite (carrying the previous value) otherwise.
*/
func (ns *Namespace) Set(caller interface{}, key string, value interface{}) error {
	if len(key) > 0 && unicode.IsDigit([]rune(key)[0]) {
		return &KeyError{Key: key}
	}

	ns.mu.Lock()
	existing, had := ns.data[key]
	ns.data[key] = value
	ns.mu.Unlock()

	if had {
		ns.Propagate("namespace_overwrite", map[string]interface{}{
			"key": key, "value": value, "previous_value": existing, "caller": caller,
		})
	} else {
		ns.Propagate("namespace_assign", map[string]interface{}{
			"key": key, "value": value, "caller": caller,
		})
	}

	return nil
}

/*
Dict returns a snapshot copy of the namespace contents.
*/
func (ns *Namespace) Dict() map[string]interface{} {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	out := make(map[string]interface{}, len(ns.data))
	for k, v := range ns.data {
		out[k] = v
	}
	return out
}

/*
ToJSONObject renders the namespace contents as a plain JSON-marshalable
map, falling back to stringutil's generic object conversion for any value
that json.Marshal rejects, and to the value's %v text if that fails too.
A wrapped builtin marshals directly, as its exported struct shape. Used by VerboseEval's
report so a caller can serialize the post-evaluation namespace state
without reaching into evaluator-internal types.
*/
func (ns *Namespace) ToJSONObject() map[string]interface{} {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	ret := make(map[string]interface{}, len(ns.data))

	for k, v := range ns.data {
		var value interface{} = fmt.Sprintf("%v", v)

		bytes, err := json.Marshal(v)
		if err != nil {
			bytes, err = json.Marshal(stringutil.ConvertToJSONMarshalableObject(v))
		}
		if err == nil {
			json.Unmarshal(bytes, &value)
		}

		ret[k] = value
	}

	return ret
}

/*
Clear empties the namespace.
*/
func (ns *Namespace) Clear() {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.data = map[string]interface{}{}
}

/*
KeyError is a syntax error raised when an assignment key begins with a
digit.
*/
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return "для переменных допускаются только имена, начинающиеся не с цифры: " + e.Key
}
