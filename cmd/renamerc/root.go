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
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/rules"
	"github.com/walteh/renamerc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const usageMessage = "Need to specify where to apply the script to"

// rootOpts holds the flags of the root command
type rootOpts struct {
	debug     bool
	rulesFile string
	dumpRules bool
}

// newRootCmd creates the renamerc command
func newRootCmd() *cobra.Command {
	o := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "renamerc [flags] <directory>",
		Short: "Rename EJML identifiers to the 0.31 naming convention",
		Long: `renamerc walks a directory tree and applies an ordered list of literal
find/replace rules to every *.java file, rewriting files in place.

Rules run one after another and each sees the output of the ones before it.
Matching is plain text: comments and string literals are rewritten too.
There is no undo, so run it on a clean checkout.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       getVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(o.setupLogging(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}

	cmd.SetVersionTemplate(versionTemplate())
	cmd.Flags().BoolVarP(&o.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().StringVarP(&o.rulesFile, "rules", "r", "", "rule file (.yaml, .yml, .json, .hcl) to use instead of the built-in EJML 0.31 table")
	cmd.Flags().BoolVar(&o.dumpRules, "dump-rules", false, "print the effective rules as YAML and exit")

	return cmd
}

// setupLogging attaches a zerolog logger and a console logger to ctx
func (o *rootOpts) setupLogging(ctx context.Context, stdout, stderr io.Writer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	level := zerolog.InfoLevel
	if o.debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
	ctx = zlog.WithContext(ctx)

	return log.NewContext(ctx, log.New(stdout, level))
}

// loadRules returns the rule table selected by the flags
func (o *rootOpts) loadRules(ctx context.Context) ([]text.ReplacementRule, error) {
	if o.rulesFile == "" {
		return rules.EJML31(), nil
	}

	table, err := config.Load(ctx, o.rulesFile)
	if err != nil {
		return nil, errors.Errorf("loading rules: %w", err)
	}
	return table, nil
}

func (o *rootOpts) run(ctx context.Context, stdout io.Writer, args []string) error {
	logger := log.FromContext(ctx)

	table, err := o.loadRules(ctx)
	if err != nil {
		return err
	}

	if o.dumpRules {
		return config.WriteYAML(stdout, table)
	}

	if len(args) == 0 {
		logger.Usage(usageMessage)
		return nil
	}

	if err := operation.Run(ctx, args[0], table, logger); err != nil {
		return errors.Errorf("renaming: %w", err)
	}
	return nil
}
