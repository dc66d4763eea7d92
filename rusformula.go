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
Package rusformula is the public entry point to the expression-and-
statement language: lex, parse and evaluate a source string against a
namespace in one call, or ask for a VerboseResult that additionally
reports stage timings and an event-watcher summary.
*/
package rusformula

import (
	"fmt"
	"time"

	"github.com/zyktin/rusformula/evalstack"
	"github.com/zyktin/rusformula/interpreter"
	"github.com/zyktin/rusformula/namespace"
	"github.com/zyktin/rusformula/observe"
	"github.com/zyktin/rusformula/parser"
	"github.com/zyktin/rusformula/util"
)

/*
traceSize is how many of VerboseEval's own log lines its MemoryLogger
retains; the trace is diagnostic, not part of the evaluation result, so a
small bound is enough.
*/
const traceSize = 16

/*
Eval lexes, parses and evaluates source, returning the final stack value
(nil if the evaluation left nothing to pop). seed, if non-nil, preseeds
the namespace on top of the default built-in symbol table. The seed is
copied, so assignments made during evaluation are not written back to
it; use EvalInto to read them afterwards.
*/
func Eval(source string, seed map[string]interface{}) (interface{}, error) {
	root, err := parseSource(source)
	if err != nil {
		return nil, err
	}

	ns := namespace.NewSeeded(seed)
	ctx := interpreter.NewContext(ns, evalstack.New())

	return interpreter.Result(root, ctx)
}

/*
EvalInto behaves like Eval but evaluates against the caller-owned ns
directly rather than building a fresh one, so the caller can read back
every assignment side effect afterwards.
*/
func EvalInto(source string, ns *namespace.Namespace) (interface{}, error) {
	root, err := parseSource(source)
	if err != nil {
		return nil, err
	}

	ctx := interpreter.NewContext(ns, evalstack.New())
	return interpreter.Result(root, ctx)
}

/*
Stage records the wall-clock duration of one pipeline phase.
*/
type Stage struct {
	LexicalAnalysis time.Duration
	TreeCreation    time.Duration
	Evaluation      time.Duration
}

/*
VerboseResult is what VerboseEval returns in addition to the plain value:
per-stage timings, the parsed tree (for inspection, not reparsing) and
the aggregated watcher report.
*/
type VerboseResult struct {
	Stage     Stage
	Tree      *parser.ASTNode
	Report    observe.Report
	Namespace map[string]interface{}
	Trace     []string
}

/*
VerboseEval behaves like Eval but attaches a Watcher for the duration of
the call, logs one trace line per pipeline stage to an in-memory ring
buffer, and returns timing, an aggregated event report, a JSON-safe
namespace snapshot and the trace alongside the value.
*/
func VerboseEval(source string, seed map[string]interface{}) (interface{}, VerboseResult, error) {
	var vr VerboseResult

	logger := util.NewMemoryLogger(traceSize)

	start := time.Now()
	q, err := parser.Analyze(source)
	vr.Stage.LexicalAnalysis = time.Since(start)
	logger.LogDebug(fmt.Sprintf("лексический анализ: %s", vr.Stage.LexicalAnalysis))
	if err != nil {
		logger.LogError(err)
		vr.Trace = logger.Slice()
		return nil, vr, err
	}

	start = time.Now()
	root, err := parser.NewParser(q).Parse()
	vr.Stage.TreeCreation = time.Since(start)
	logger.LogDebug(fmt.Sprintf("построение дерева: %s", vr.Stage.TreeCreation))
	if err != nil {
		logger.LogError(err)
		vr.Trace = logger.Slice()
		return nil, vr, err
	}
	vr.Tree = root

	ns := namespace.NewSeeded(seed)
	stack := evalstack.New()
	ctx := interpreter.NewContext(ns, stack)

	w := observe.NewWatcher()
	ctx.Watch(w)

	start = time.Now()
	result, err := interpreter.Result(root, ctx)
	vr.Stage.Evaluation = time.Since(start)
	logger.LogDebug(fmt.Sprintf("вычисление: %s", vr.Stage.Evaluation))
	if err != nil {
		logger.LogError(err)
	}

	vr.Report = w.MakeReport()
	vr.Namespace = ns.ToJSONObject()
	vr.Trace = logger.Slice()

	return result, vr, err
}

func parseSource(source string) (*parser.ASTNode, error) {
	q, err := parser.Analyze(source)
	if err != nil {
		return nil, err
	}
	return parser.NewParser(q).Parse()
}
