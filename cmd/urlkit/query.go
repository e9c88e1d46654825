package main

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/log"
	"github.com/ghettovoice/urlkit/uri"
)

const (
	setFlag  = "set"
	delFlag  = "del"
	onlyFlag = "only"
	getFlag  = "get"
)

func makeQueryCmd(runE func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <url>",
		Short: "Read or rewrite URL query params",
		Long: `Read or rewrite top-level query params of the URL.

Without --get the rewritten URL is printed. Flags are applied in order:
--only, --del, then --set.`,
		Example: `  urlkit query 'https://example.com/?a=1&b[x]=2' --get b
  urlkit query 'https://example.com/?a=1&b=2' --only a --set c=3`,
		Args: cobra.ExactArgs(1),
		RunE: runE,
	}
	cmd.Flags().StringArray(setFlag, nil, "set param, key=value")
	cmd.Flags().StringSlice(delFlag, nil, "remove params")
	cmd.Flags().StringSlice(onlyFlag, nil, "keep only these params")
	cmd.Flags().String(getFlag, "", "print param value and exit")
	return cmd
}

func (k *urlkit) query(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	sets, err := flags.GetStringArray(setFlag)
	if err != nil {
		return errtrace.Wrap(err)
	}
	dels, err := flags.GetStringSlice(delFlag)
	if err != nil {
		return errtrace.Wrap(err)
	}
	only, err := flags.GetStringSlice(onlyFlag)
	if err != nil {
		return errtrace.Wrap(err)
	}
	get, err := flags.GetString(getFlag)
	if err != nil {
		return errtrace.Wrap(err)
	}

	u, err := uri.Parse(args[0])
	if err != nil {
		return errtrace.Wrap(err)
	}

	out := cmd.OutOrStdout()
	if flags.Changed(getFlag) {
		v, ok := u.Query().Get(get)
		if !ok {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("query param %q is not set", get))
		}
		fmt.Fprintln(out, v)
		return nil
	}

	if flags.Changed(onlyFlag) {
		u = u.WithOnlyQueryParams(only...)
	}
	if len(dels) > 0 {
		u = u.WithoutQueryParams(dels...)
	}

	var errs []error
	for _, kv := range sets {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			errs = append(errs, errorutil.NewInvalidArgumentError("malformed --%s value %q, want key=value", setFlag, kv))
			continue
		}
		u = u.WithQueryParam(key, val)
	}
	if err := errorutil.JoinPrefix("cannot rewrite query", errs...); err != nil {
		return errtrace.Wrap(err)
	}

	k.log.Debug("query rewritten", "url", u, "params", log.FmtValue(u.Query().All().Keys(), false))
	fmt.Fprintln(out, u)
	return nil
}
