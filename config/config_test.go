/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import "testing"

func TestConfig(t *testing.T) {
	if res := Int(Precision); res != 5 {
		t.Error("unexpected precision:", res)
	}

	if res := Float(Epsilon); res != 1e-9 {
		t.Error("unexpected epsilon:", res)
	}

	if res := Int(IndentWidth); res != 4 {
		t.Error("unexpected indent width:", res)
	}

	if res := Int(MaxLetters); res != 100000 {
		t.Error("unexpected max letters:", res)
	}

	if res := Str(Precision); res != "5" {
		t.Error("unexpected string form:", res)
	}
}
