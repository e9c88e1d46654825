package main

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/uri"
)

func makeMailtoCmd(runE func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "mailto <url>...",
		Short: "Print mailto recipients, subject and body",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runE,
	}
}

func (k *urlkit) mailto(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var errs []error
	for _, raw := range args {
		m, err := uri.ParseMailto(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", raw, err))
			continue
		}
		k.log.Debug("mailto parsed", "url", m.URL())

		fmt.Fprintf(out, "to:      %s\n", strings.Join(m.To(), ", "))
		if cc := m.CC(); len(cc) > 0 {
			fmt.Fprintf(out, "cc:      %s\n", strings.Join(cc, ", "))
		}
		if bcc := m.BCC(); len(bcc) > 0 {
			fmt.Fprintf(out, "bcc:     %s\n", strings.Join(bcc, ", "))
		}
		if s := m.Subject(); s != "" {
			fmt.Fprintf(out, "subject: %s\n", s)
		}
		if b := m.Body(); b != "" {
			fmt.Fprintf(out, "body:    %s\n", b)
		}
		fmt.Fprintln(out)
	}
	return errtrace.Wrap(errorutil.JoinPrefix("cannot parse mailto URLs", errs...))
}
