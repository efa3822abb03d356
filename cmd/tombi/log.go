// Copyright 2026 The Tombi Authors
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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// logFormat is the --log-format flag's value space.
type logFormat string

const (
	logFormatJSON   logFormat = "json"
	logFormatLogfmt logFormat = "logfmt"
)

// newSlogHandler builds a [slog.Handler] from the --log-level/--log-format
// flag strings, mirroring the teacher sibling MacroPower-x's log package
// handler-selection split almost verbatim.
func newSlogHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	switch logFormat(strings.ToLower(format)) {
	case logFormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}), nil
	case logFormatLogfmt, "":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
