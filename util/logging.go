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
	"fmt"
	"io"
	"log"
	"strings"

	"devt.de/krotik/common/datautil"
)

/*
Logger is the external sink to which VerboseEval releases its stage-timing
and event messages.
*/
type Logger interface {
	LogError(v ...interface{})
	LogInfo(v ...interface{})
	LogDebug(v ...interface{})
}

/*
LogLevel filters which of a LogLevelLogger's calls reach the wrapped Logger.
*/
type LogLevel string

/*
Recognised log levels, from least to most verbose.
*/
const (
	LevelError LogLevel = "error"
	LevelInfo  LogLevel = "info"
	LevelDebug LogLevel = "debug"
)

/*
LogLevelLogger wraps a Logger and drops calls below its configured level.
*/
type LogLevelLogger struct {
	wrapped Logger
	level   LogLevel
}

/*
NewLogLevelLogger wraps logger with level-based filtering.
*/
func NewLogLevelLogger(logger Logger, level string) (*LogLevelLogger, error) {
	lv := LogLevel(strings.ToLower(level))

	if lv != LevelDebug && lv != LevelInfo && lv != LevelError {
		return nil, fmt.Errorf("invalid log level: %v", lv)
	}

	return &LogLevelLogger{wrapped: logger, level: lv}, nil
}

/*
Level returns the configured filtering level.
*/
func (ll *LogLevelLogger) Level() LogLevel {
	return ll.level
}

func (ll *LogLevelLogger) LogError(v ...interface{}) {
	ll.wrapped.LogError(v...)
}

func (ll *LogLevelLogger) LogInfo(v ...interface{}) {
	if ll.level == LevelInfo || ll.level == LevelDebug {
		ll.wrapped.LogInfo(v...)
	}
}

func (ll *LogLevelLogger) LogDebug(v ...interface{}) {
	if ll.level == LevelDebug {
		ll.wrapped.LogDebug(v...)
	}
}

/*
MemoryLogger keeps the most recent log lines in a bounded ring buffer,
backing VerboseEval's in-process debug reports.
*/
type MemoryLogger struct {
	ring *datautil.RingBuffer
}

/*
NewMemoryLogger returns a MemoryLogger retaining at most size lines.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{ring: datautil.NewRingBuffer(size)}
}

func (ml *MemoryLogger) LogError(v ...interface{}) {
	ml.ring.Add(fmt.Sprintf("ошибка: %v", fmt.Sprint(v...)))
}

func (ml *MemoryLogger) LogInfo(v ...interface{}) {
	ml.ring.Add(fmt.Sprint(v...))
}

func (ml *MemoryLogger) LogDebug(v ...interface{}) {
	ml.ring.Add(fmt.Sprintf("отладка: %v", fmt.Sprint(v...)))
}

/*
Slice returns the retained log lines in order.
*/
func (ml *MemoryLogger) Slice() []string {
	raw := ml.ring.Slice()
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = v.(string)
	}
	return out
}

/*
Reset clears the retained log lines.
*/
func (ml *MemoryLogger) Reset() {
	ml.ring.Reset()
}

/*
Size returns the number of retained log lines.
*/
func (ml *MemoryLogger) Size() int {
	return ml.ring.Size()
}

func (ml *MemoryLogger) String() string {
	return ml.ring.String()
}

/*
StdOutLogger writes every message to the standard logger.
*/
type StdOutLogger struct{}

/*
NewStdOutLogger returns a StdOutLogger.
*/
func NewStdOutLogger() *StdOutLogger {
	return &StdOutLogger{}
}

func (sl *StdOutLogger) LogError(v ...interface{}) {
	log.Print(fmt.Sprintf("ошибка: %v", fmt.Sprint(v...)))
}

func (sl *StdOutLogger) LogInfo(v ...interface{}) {
	log.Print(fmt.Sprint(v...))
}

func (sl *StdOutLogger) LogDebug(v ...interface{}) {
	log.Print(fmt.Sprintf("отладка: %v", fmt.Sprint(v...)))
}

/*
NullLogger discards every message.
*/
type NullLogger struct{}

/*
NewNullLogger returns a NullLogger.
*/
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (nl *NullLogger) LogError(v ...interface{}) {}
func (nl *NullLogger) LogInfo(v ...interface{})  {}
func (nl *NullLogger) LogDebug(v ...interface{}) {}

/*
BufferLogger writes every message, newline-terminated, to an io.Writer.
*/
type BufferLogger struct {
	out io.Writer
}

/*
NewBufferLogger returns a BufferLogger writing into out.
*/
func NewBufferLogger(out io.Writer) *BufferLogger {
	return &BufferLogger{out: out}
}

func (bl *BufferLogger) LogError(v ...interface{}) {
	fmt.Fprintln(bl.out, fmt.Sprintf("ошибка: %v", fmt.Sprint(v...)))
}

func (bl *BufferLogger) LogInfo(v ...interface{}) {
	fmt.Fprintln(bl.out, fmt.Sprint(v...))
}

func (bl *BufferLogger) LogDebug(v ...interface{}) {
	fmt.Fprintln(bl.out, fmt.Sprintf("отладка: %v", fmt.Sprint(v...)))
}
