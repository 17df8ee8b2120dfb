// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/text"
)

// 🎨 Display configuration
const (
	countWidth = 4 // width of the changed/examined columns
)

// 🎯 Logger prints the run summary to the console and mirrors it to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

var _ operation.Observer = (*Logger)(nil)

// 🏭 New creates a new logger. Structured output goes to stderr.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatRule formats the summary line for one rule
func formatRule(rule text.ReplacementRule, res operation.Result) string {
	return fmt.Sprintf("changed %*d examined %*d %s -> %s",
		countWidth, res.Changed,
		countWidth, res.Examined,
		rule.FromText, rule.ToText)
}

// 📝 Started announces the directory being processed
func (l *Logger) Started(ctx context.Context, root string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "Recursively apply search and replace to %s\n",
		color.New(color.FgCyan).Sprint(root))

	l.zlog.Info().Str("root", root).Msg("starting rename")
}

// 📝 RuleApplied prints the summary line for a rule that changed at least one file
func (l *Logger) RuleApplied(ctx context.Context, rule text.ReplacementRule, res operation.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.zlog.Debug().
		Str("find", rule.FromText).
		Str("replace", rule.ToText).
		Str("glob", rule.FileFilterGlob).
		Int("changed", res.Changed).
		Int("examined", res.Examined).
		Msg("rule applied")

	if res.Changed == 0 {
		return
	}

	fmt.Fprintln(l.console, formatRule(rule, res))
}

// 📝 Finished prints the completion line
func (l *Logger) Finished(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, color.New(color.FgGreen).Sprint("Finished!"))
	l.zlog.Info().Msg("rename finished")
}

// 📝 Usage prints a usage hint
func (l *Logger) Usage(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, msg)
}
