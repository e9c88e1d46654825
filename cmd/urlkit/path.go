package main

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/uri"
)

const delimFlag = "delim"

func makePathCmd(runE func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <url-or-path>...",
		Short: "Resolve dot segments and print path details",
		Long: `Print the decoded path, its absolute form with dot segments resolved,
its segments and extension.

A path that climbs above the root with ".." is reported as an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runE,
	}
	cmd.Flags().String(delimFlag, "/", "segments delimiter")
	return cmd
}

func (k *urlkit) path(cmd *cobra.Command, args []string) error {
	delim, err := cmd.Flags().GetString(delimFlag)
	if err != nil {
		return errtrace.Wrap(err)
	}

	out := cmd.OutOrStdout()
	var errs []error
	for _, raw := range args {
		u, err := uri.Parse(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", raw, err))
			continue
		}

		p := u.Path()
		abs, err := p.Absolute()
		if err != nil {
			k.log.Warn("path resolution failed", "path", p.String(), "error", err)
			errs = append(errs, fmt.Errorf("%q: %w", raw, err))
			continue
		}

		fmt.Fprintf(out, "path:      %s\n", p)
		fmt.Fprintf(out, "encoded:   %s\n", p.Encoded())
		fmt.Fprintf(out, "absolute:  %s\n", abs)
		fmt.Fprintf(out, "segments:  %s\n", strings.Join(p.SegmentsBy(delim), " | "))
		if ext, ok := p.Extension(); ok {
			fmt.Fprintf(out, "extension: %s\n", ext)
		}
		fmt.Fprintln(out)
	}
	return errtrace.Wrap(errorutil.JoinPrefix("cannot resolve paths", errs...))
}
