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
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared across every subcommand, mirroring the
// teacher's *cue/cmd.Command wrapper around *cobra.Command.
type app struct {
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	var logLevel, logFormat string
	a := &app{}

	root := &cobra.Command{
		Use:           "tombi",
		Short:         "format and lint TOML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			h, err := newSlogHandler(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return err
			}
			a.logger = slog.New(h)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "logfmt", "log format: logfmt, json")

	root.AddCommand(newFormatCmd(a))
	root.AddCommand(newLintCmd(a))
	return root
}
