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
Package evalstack implements the evaluator's operand stack: a plain LIFO of
intermediate values, wrapped so pushes and pops emit observe events.
*/
package evalstack

import (
	"errors"

	"github.com/zyktin/rusformula/observe"
)

/*
ErrEmpty is returned by Pop when the stack has nothing left to remove.
*/
var ErrEmpty = errors.New("попытка извлечь значение из пустого стека")

/*
Stack is a LIFO of intermediate evaluation results.
*/
type Stack struct {
	observe.Informer

	items []interface{}
}

/*
New returns an empty Stack.
*/
func New() *Stack {
	return &Stack{}
}

/*
Append pushes value onto the stack, emitting a stack_append event carrying
the post-operation size.
*/
func (s *Stack) Append(caller interface{}, value interface{}) {
	s.items = append(s.items, value)

	s.Propagate("stack_append", map[string]interface{}{
		"value": value, "size": len(s.items), "caller": caller,
	})
}

/*
Pop removes and returns the top value, emitting a stack_pop event carrying
the post-operation size. Returns ErrEmpty if the stack has nothing to pop.
*/
func (s *Stack) Pop(caller interface{}) (interface{}, error) {
	if len(s.items) == 0 {
		return nil, ErrEmpty
	}

	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	s.Propagate("stack_pop", map[string]interface{}{
		"value": top, "size": len(s.items), "caller": caller,
	})

	return top, nil
}

/*
Len returns the current number of items on the stack.
*/
func (s *Stack) Len() int {
	return len(s.items)
}
