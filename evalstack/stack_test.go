/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package evalstack

import (
	"testing"

	"github.com/zyktin/rusformula/observe"
)

func TestAppendAndPop(t *testing.T) {
	s := New()
	s.Append(nil, 1.0)
	s.Append(nil, 2.0)

	v, err := s.Pop(nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != 2.0 {
		t.Errorf("expected LIFO order, got %v", v)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 remaining item, got %d", s.Len())
	}
}

func TestPopEmpty(t *testing.T) {
	s := New()
	if _, err := s.Pop(nil); err != ErrEmpty {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestStackEvents(t *testing.T) {
	s := New()
	w := observe.NewWatcher()
	s.SetWatcher(w)

	s.Append(nil, 1.0)
	s.Append(nil, 2.0)
	s.Pop(nil)

	report := w.MakeReport()
	if report.Stack.Append != 2 || report.Stack.Pop != 1 || report.Stack.MaxSize != 2 {
		t.Errorf("unexpected report: %+v", report.Stack)
	}
}
