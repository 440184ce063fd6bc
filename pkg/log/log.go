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
)

// 🎯 FileOperation represents a rewritten file for logging
type FileOperation struct {
	Path         string // File path as walked
	Replacements int    // Number of replacements made
}

// 🎯 Logger writes user-facing notices to the console and mirrors them to zerolog
type Logger struct {
	console io.Writer
	mu      sync.Mutex
	updated []FileOperation
}

// 🏭 New creates a new logger writing notices to console
func New(console io.Writer) *Logger {
	return &Logger{
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, falling back to stdout
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return New(os.Stdout)
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats the console line for a rewritten file
func formatFileOperation(op FileOperation) string {
	return fmt.Sprintf("%s %s", color.New(color.FgBlue).Sprint("Updated:"), op.Path)
}

// 📝 LogFileOperation prints the notice for a rewritten file
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.updated = append(l.updated, op)

	fmt.Fprintln(l.console, formatFileOperation(op))

	zerolog.Ctx(ctx).Debug().
		Str("file", op.Path).
		Int("replacements", op.Replacements).
		Msg("file updated")
}

// Updated returns the files reported so far, in report order.
func (l *Logger) Updated() []FileOperation {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]FileOperation, len(l.updated))
	copy(out, l.updated)
	return out
}
