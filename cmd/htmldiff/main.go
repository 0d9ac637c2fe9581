// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Command htmldiff compares two HTML documents and writes the second one, annotated with the
// differences, to stdout or a file.
//
// Usage:
//
//	htmldiff [flags] resource1 resource2
//
// A resource is a path or a URL. Run htmldiff --help for a list of flags.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"znkr.io/htmldiff"
	"znkr.io/htmldiff/internal/resource"
	"znkr.io/htmldiff/textdiff"
)

func main() {
	if err := run(context.Background(), os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	tags       bool
	stylesheet bool
	simple     bool
	output     string
	test       bool
	text       bool
	tidy       bool
	markdown   bool
	boundaries bool
	verbose    bool
}

func run(ctx context.Context, args []string, fs afero.Fs, stdout, stderr io.Writer) error {
	cmd := newCommand(fs, http.DefaultClient, stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newCommand(fs afero.Fs, client *http.Client, stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "htmldiff [flags] resource1 resource2",
		Short: "Compare two HTML documents",
		Long: `htmldiff compares two HTML documents and outputs the second one with the differences
marked up. Deleted text is shown next to its former position, inserted text is highlighted.

A resource is a path or a URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.test {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if f.verbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
			ctx := logger.WithContext(cmd.Context())

			if f.test {
				return selfTest(ctx, stdout)
			}
			loader := &resource.Loader{FS: fs, Client: client, Markdown: f.markdown}
			return compare(ctx, f, loader, fs, args[0], args[1], stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.BoolVarP(&f.tags, "tags", "t", false, "annotate changed tags")
	fl.BoolVarP(&f.stylesheet, "stylesheet", "s", false, "add a stylesheet for the markers to the output")
	fl.BoolVar(&f.simple, "simplehtml", false, "mark changes with brackets, changed tags are shown verbatim")
	fl.StringVarP(&f.output, "output", "o", "", "write the output to `file` instead of stdout")
	fl.BoolVar(&f.test, "test", false, "run the self-test and exit")
	fl.BoolVar(&f.text, "text", false, "compare the resources line by line")
	fl.BoolVar(&f.tidy, "tidy", false, "normalize both documents before comparing them")
	fl.BoolVar(&f.markdown, "markdown", false, "render both resources from markdown to HTML first")
	fl.BoolVar(&f.boundaries, "boundaries", false, "move changes to tag boundaries, or to indentation boundaries with --text")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func compare(ctx context.Context, f flags, loader *resource.Loader, fs afero.Fs, name1, name2 string, stdout io.Writer) error {
	if f.text && f.tidy {
		return errors.New("--tidy can't be combined with --text")
	}

	x, err := loader.Load(ctx, name1)
	if err != nil {
		return errors.Errorf("loading first resource: %w", err)
	}
	y, err := loader.Load(ctx, name2)
	if err != nil {
		return errors.Errorf("loading second resource: %w", err)
	}

	var opts []htmldiff.Option
	switch {
	case f.simple:
		opts = append(opts, htmldiff.Simple())
	case f.tags:
		opts = append(opts, htmldiff.Tags())
	}
	if f.stylesheet {
		opts = append(opts, htmldiff.Stylesheet())
	}

	var out []byte
	if f.text {
		if f.boundaries {
			opts = append(opts, textdiff.IndentHeuristic())
		}
		out = textdiff.HTML(x, y, opts...)
	} else {
		if f.tidy {
			opts = append(opts, htmldiff.Tidy())
		}
		if f.boundaries {
			opts = append(opts, htmldiff.BoundaryHeuristic())
		}
		out = htmldiff.Diff(x, y, opts...)
	}
	zerolog.Ctx(ctx).Debug().Int("bytes", len(out)).Bool("text", f.text).Msg("compared resources")

	if f.output == "" {
		if _, err := stdout.Write(out); err != nil {
			return errors.Errorf("writing output: %w", err)
		}
		return nil
	}
	if err := afero.WriteFile(fs, f.output, out, 0o644); err != nil {
		return errors.Errorf("writing output: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", f.output).Msg("wrote output")
	return nil
}
