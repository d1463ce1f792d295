// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slukits/stest"
	"github.com/slukits/stest/internal/selftest"
)

const (
	envPrefix       = "stest"
	configName      = "stest"
	defaultLogLevel = "warn"

	keyLogLevel       = "loglevel"
	keyAbortOnFailure = "abort_on_failure"
)

// execute runs the self-tests with given command line tokens and
// returns the process's exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	return executeTests(selftest.AllTests, args, stdout, stderr)
}

// executeTests runs given entry point with given command line tokens.
func executeTests(
	tests func(*stest.Runner), args []string, stdout, stderr io.Writer,
) int {
	code := stest.ExitOK
	cmd := rootCmd(viper.New(), tests, &code)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return stest.ExitAbort
	}
	return code
}

// rootCmd leaves flag parsing to stest which has its own
// case-insensitive option syntax.
func rootCmd(
	v *viper.Viper, tests func(*stest.Runner), code *int,
) *cobra.Command {
	return &cobra.Command{
		Use:                "stests [options]",
		Short:              "Run stest's assertions against themselves.",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initConfig(v, cmd.ErrOrStderr())
			l := newLogger(v, cmd.ErrOrStderr())
			oo := []stest.Option{
				stest.WithOutput(cmd.OutOrStdout()),
				stest.WithLogger(l),
			}
			if v.GetBool(keyAbortOnFailure) {
				oo = append(oo, stest.WithAbortOnFailure())
			}
			*code = stest.Main(args, tests, nil, nil, oo...)
			return nil
		},
	}
}

func initConfig(v *viper.Viper, stderr io.Writer) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(stderr, "ignoring config: %v\n", err)
		}
	}

	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyAbortOnFailure, false)
}

// newLogger writes diagnostics with logrus to given writer.  An invalid
// level keeps the default level.
func newLogger(v *viper.Viper, w io.Writer) logr.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	l.SetLevel(logrus.WarnLevel)
	if ll, err := logrus.ParseLevel(v.GetString(keyLogLevel)); err == nil {
		l.SetLevel(ll)
	} else {
		l.WithError(err).Warn("invalid log level")
	}
	return logrusr.New(l)
}
