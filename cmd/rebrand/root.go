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

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rebrand/pkg/log"
	"github.com/walteh/rebrand/pkg/rebrand"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the parsed flags for one invocation
type rootOpts struct {
	debug bool
}

// newRootCmd creates the rebrand command
func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "rebrand [dir]",
		Short: "Rename vlass project identifiers to cosmic-horizons in place",
		Long: `rebrand rewrites every text file under the current directory (or dir),
replacing vlass names with their cosmic-horizons equivalents.
It will:
1. Skip .git, node_modules, .next, dist, out-tsc and .angular directories
2. Skip binary files and the tool itself
3. Print "Updated: <path>" for each file it rewrites`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRebrand(cmd, args)
		},
	}

	addRootFlags(cmd, opts)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging raises the context logger to debug when asked
func setupLogging(cmd *cobra.Command, opts *rootOpts) {
	if !opts.debug {
		return
	}
	logger := zerolog.Ctx(cmd.Context()).Level(zerolog.DebugLevel)
	cmd.SetContext(logger.WithContext(cmd.Context()))
}

func runRebrand(cmd *cobra.Command, args []string) error {
	ctx := log.NewContext(cmd.Context(), log.New(cmd.OutOrStdout()))

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	r, err := rebrand.New(rebrand.Options{
		Self: selfPaths(),
	})
	if err != nil {
		return errors.Errorf("creating rebrander: %w", err)
	}

	if _, err := r.Run(ctx, root); err != nil {
		return errors.Errorf("rebranding %s: %w", root, err)
	}

	return nil
}

// selfPaths lists the files that make up this tool
func selfPaths() []string {
	paths := []string{rebrand.TableSource()}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, exe)
	}
	return paths
}
