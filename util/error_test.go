/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"testing"

	"github.com/zyktin/rusformula/parser"
)

func TestSyntaxError(t *testing.T) {
	err := NewSyntaxError("неожиданный токен")

	if err.Error() != "синтаксическая ошибка: неожиданный токен" {
		t.Error("unexpected message:", err.Error())
	}
}

func TestSemanticError(t *testing.T) {
	node := parser.NewNode(parser.KindName, &parser.Token{Kind: parser.TokName, Raw: "x"})
	err := NewSemanticError("переменная x не найдена", node)

	if err.Error() != "семантическая ошибка: переменная x не найдена" {
		t.Error("unexpected message:", err.Error())
	}

	if err.Node != node {
		t.Error("node reference not retained")
	}
}
