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

	"github.com/zyktin/rusformula/config"
)

/*
targetNameReplacements maps each built-in function name to its equivalent
identifier in the target language. Names with no entry render as "?NAME?"
so the gap is visible rather than silently wrong. СТОП has no corresponding
built-in in the evaluated symbol table but keeps a mapping here because the
source tool carried the same asymmetry.
*/
var targetNameReplacements = map[string]string{
	"СЛЧИС": "random.random", "МИН": "min", "МАКС": "max", "СУММ": "custom_sum",
	"ABS": "abs", "ОКРУГЛ": "math_round", "ОКРВВЕРХ": "math.ceil",
	"ОКРВНИЗ": "math.floor", "ЦЕЛОЕ": "int", "ОСТАТ": "mod",
	"СЛУЧМЕЖДУ": "random.randint", "КОРЕНЬ": "math.sqrt", "ОТБР": "math.trunc",
	"СРЗНАЧ": "custom_avg",
	"СТРОЧН": "str.lower", "ТЕКСТ": "str", "ПРОПИСН": "str.upper",
	"ЗНАЧЕН": "float", "СЦЕПИТЬ": "custom_concatenate", "ОБЪЕДИНИТЬ": "custom_join",
	"ВСЕ_ИЗ": "custom_all", "ОДИН_ИЗ": "custom_any", "НИ_ОДИН_ИЗ": "custom_not_any",
	"ТОЧКА": "rig", "СЕЙЧАС": "now", "СЕГОДНЯ": "today", "MQTT": "mqtt",
	"ОТЧЁТ": "report", "СОХР": "save", "ЗАГР": "load", "СТОП": "exit",
}

/*
scriptNameReplacements maps a handful of Russian phrases used as string
arguments to ТОЧКА/СЕЙЧАС/СЕГОДНЯ into the identifiers the target runtime
expects for them.
*/
var scriptNameReplacements = map[string]string{
	"реальное время": "realtime",
	"название дня":   "day_name",
	"номер дня":      "day_number",
	"число":          "day",
}

func translateScriptName(name string) string {
	if v, ok := scriptNameReplacements[name]; ok {
		return v
	}
	return fmt.Sprintf("?%s?", name)
}

func indent(width int) string {
	return strings.Repeat(" ", width)
}

/*
SerializeText re-serializes an AST into the surface syntax it was parsed
from: canonical figures, trailing ';' on every statement and Condition,
Russian keywords, brace-delimited indented scopes.
*/
func SerializeText(node *ASTNode) string {
	return strings.TrimSpace(serializeText(node, ""))
}

func serializeText(node *ASTNode, prefix string) string {
	switch node.Kind {
	case KindVar:
		return prefix + serializeVarText(node)

	case KindUnaryMinus:
		return prefix + serializeText(node.Child(0), "")

	case KindUnaryNot:
		return prefix + "НЕ " + serializeText(node.Child(0), "")

	case KindName:
		return prefix + node.Token.Raw

	case KindAssignment:
		left := serializeText(node.Child(0), "")
		right := serializeText(node.Child(1), "")
		return fmt.Sprintf("%s%s = %s;", prefix, left, right)

	case KindBinary, KindLogical:
		left := serializeText(node.Child(0), "")
		right := serializeText(node.Child(1), "")
		return fmt.Sprintf("%s%s %s %s", prefix, left, node.Operator.Figure, right)

	case KindCall:
		return prefix + serializeCallText(node)

	case KindInstruction:
		var lines []string
		for _, c := range node.Children {
			lines = append(lines, statementText(c, prefix))
		}
		return strings.Join(lines, "\n")

	case KindCondition:
		var b strings.Builder
		for _, c := range node.Children {
			b.WriteString(serializeText(c, prefix))
		}
		b.WriteString(";")
		return prefix + b.String()

	case KindIf:
		left := serializeText(node.Child(0), "")
		right := serializeText(node.Child(1), prefix)
		return fmt.Sprintf("ЕСЛИ (%s)\n%s", left, right)

	case KindElif:
		left := serializeText(node.Child(0), "")
		right := serializeText(node.Child(1), prefix)
		return fmt.Sprintf("\n%sИНАЧЕ_ЕСЛИ (%s)\n%s", prefix, left, right)

	case KindElse:
		right := serializeText(node.Child(0), prefix)
		return fmt.Sprintf("\n%sИНАЧЕ\n%s", prefix, right)

	case KindScope:
		body := serializeText(node.Child(0), prefix+indent(config.Int(config.IndentWidth)))
		return fmt.Sprintf("%s{\n%s\n%s}", prefix, body, prefix)

	case KindPar:
		return fmt.Sprintf("(%s)", serializeText(node.Child(0), ""))
	}

	return ""
}

/*
statementText appends the trailing ';' every top-level statement gets,
unless the child already terminates itself (Assignment, Condition).
*/
func statementText(node *ASTNode, prefix string) string {
	text := serializeText(node, prefix)
	if node.Kind == KindAssignment || node.Kind == KindCondition {
		return text
	}
	return text + ";"
}

func serializeVarText(node *ASTNode) string {
	switch node.Token.Kind {
	case TokInteger, TokFloat:
		return node.Sign + node.Token.Raw
	default:
		return fmt.Sprintf("%q", node.Token.Raw)
	}
}

func serializeCallText(node *ASTNode) string {
	name := node.Child(0).Token.Raw
	var args []string
	for _, c := range node.Children[1:] {
		args = append(args, serializeText(c, ""))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

/*
SerializeTarget re-serializes an AST into the equivalent target-language
form: built-in names remapped, float literals wrapped in a rounding call,
if/elif/else with colons and indentation, and special string arguments
translated through the script-name lookup.
*/
func SerializeTarget(node *ASTNode) string {
	return strings.TrimSpace(serializeTarget(node, ""))
}

func serializeTarget(node *ASTNode, prefix string) string {
	switch node.Kind {
	case KindVar:
		return prefix + serializeVarTarget(node)

	case KindUnaryMinus:
		return prefix + serializeTarget(node.Child(0), "")

	case KindUnaryNot:
		return prefix + "not " + serializeTarget(node.Child(0), "")

	case KindName:
		return prefix + node.Token.Raw

	case KindAssignment:
		left := serializeTarget(node.Child(0), "")
		right := serializeTarget(node.Child(1), "")
		return fmt.Sprintf("%s%s = %s", prefix, left, right)

	case KindBinary, KindLogical:
		left := serializeTarget(node.Child(0), "")
		right := serializeTarget(node.Child(1), "")
		return fmt.Sprintf("%s%s %s %s", prefix, left, node.Operator.Figure, right)

	case KindCall:
		return prefix + serializeCallTarget(node)

	case KindInstruction:
		var lines []string
		for _, c := range node.Children {
			lines = append(lines, serializeTarget(c, prefix))
		}
		return strings.Join(lines, "\n")

	case KindCondition:
		var b strings.Builder
		for _, c := range node.Children {
			b.WriteString(serializeTarget(c, prefix))
		}
		return b.String()

	case KindIf:
		left := serializeTarget(node.Child(0), "")
		right := serializeTarget(node.Child(1), prefix)
		return fmt.Sprintf("%sif %s:\n%s", prefix, left, right)

	case KindElif:
		left := serializeTarget(node.Child(0), "")
		right := serializeTarget(node.Child(1), prefix)
		return fmt.Sprintf("\n\n%selif %s:\n%s", prefix, left, right)

	case KindElse:
		right := serializeTarget(node.Child(0), prefix)
		return fmt.Sprintf("\n\n%selse:\n%s\n", prefix, right)

	case KindScope:
		return serializeTarget(node.Child(0), prefix+indent(config.Int(config.IndentWidth)))

	case KindPar:
		return fmt.Sprintf("(%s)", serializeTarget(node.Child(0), ""))
	}

	return ""
}

func serializeVarTarget(node *ASTNode) string {
	switch node.Token.Kind {
	case TokInteger:
		return node.Sign + node.Token.Raw
	case TokFloat:
		return fmt.Sprintf("math_round(%s%s, %d)", node.Sign, node.Token.Raw, config.Int(config.Precision))
	default:
		return fmt.Sprintf("%q", node.Token.Raw)
	}
}

func serializeCallTarget(node *ASTNode) string {
	originalName := node.Child(0).Token.Raw
	newName, ok := targetNameReplacements[originalName]
	if !ok {
		newName = fmt.Sprintf("?%s?", originalName)
	}

	var args []string
	for _, c := range node.Children[1:] {
		args = append(args, serializeTarget(c, ""))
	}

	if newName == "rig" && len(args) > 1 {
		args[1] = fmt.Sprintf("%q", translateScriptName(strings.Trim(args[1], `"'`)))
	} else if (newName == "now" || newName == "today") {
		for i, a := range args {
			args[i] = fmt.Sprintf("%q", translateScriptName(strings.Trim(a, `"'`)))
		}
	}

	return fmt.Sprintf("%s(%s)", newName, strings.Join(args, ", "))
}
