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

// Command tombi formats and lints TOML documents from the command line,
// built on top of the tombi-go module's document-tree, schema-store, and
// formatter packages.
package main

import (
	"os"
)

func main() {
	os.Exit(Main())
}

// Main runs the tombi command against the process's real argv/stdio and
// returns its exit code, without calling os.Exit itself -- the shape
// testscript.RunMain needs to register tombi as an in-process subcommand
// for the golden .txtar scripts under testdata/script.
func Main() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
