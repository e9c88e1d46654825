package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/log"
	"github.com/ghettovoice/urlkit/uri"
)

const jsonFlag = "json"

func makeParseCmd(runE func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <url>...",
		Short: "Print URL components",
		Long: `Print components of each URL.

The password is never printed, only its presence is reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runE,
	}
	cmd.Flags().Bool(jsonFlag, false, "print components as JSON")
	return cmd
}

type urlInfo struct {
	URL      string         `json:"url"`
	Scheme   string         `json:"scheme,omitempty"`
	User     *string        `json:"user,omitempty"`
	HasPass  bool           `json:"has_pass,omitempty"`
	Host     string         `json:"host,omitempty"`
	ASCII    string         `json:"host_ascii,omitempty"`
	Domain   bool           `json:"domain_name,omitempty"`
	Port     *int           `json:"port,omitempty"`
	Path     string         `json:"path,omitempty"`
	Query    map[string]any `json:"query,omitempty"`
	Fragment string         `json:"fragment,omitempty"`
}

func newURLInfo(u uri.URL) urlInfo {
	info := urlInfo{
		URL:      u.LogValue().String(),
		Scheme:   u.Scheme().String(),
		Host:     u.Host().String(),
		Path:     u.Path().String(),
		Query:    paramsMap(u.Query().All()),
		Fragment: u.Fragment(),
	}
	if usr, ok := u.User(); ok {
		info.User = &usr
	}
	_, info.HasPass = u.Pass()
	if ascii, err := u.Host().ASCII(); err == nil && ascii != info.Host {
		info.ASCII = ascii
	}
	info.Domain = u.Host().IsDomainName()
	if port, ok := u.Port(); ok {
		info.Port = &port
	}
	return info
}

func paramsMap(p *uri.Params) map[string]any {
	if p.Len() == 0 {
		return nil
	}
	m := make(map[string]any, p.Len())
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		switch v.Kind() {
		case uri.StringKind:
			m[k] = v.String()
		case uri.MapKind:
			sub, _ := v.Map()
			m[k] = paramsMap(sub)
		default:
			m[k] = nil
		}
	}
	return m
}

func (k *urlkit) parse(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool(jsonFlag)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var errs []error
	infos := make([]urlInfo, 0, len(args))
	for _, raw := range args {
		u, err := uri.Parse(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", raw, err))
			continue
		}
		k.log.Debug("URL parsed", slog.Any("url", u), slog.Any("params", log.CalcValue(func() any { return u.Query().String() })))
		infos = append(infos, newURLInfo(u))
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		for _, info := range infos {
			if err := enc.Encode(info); err != nil {
				return errtrace.Wrap(err)
			}
		}
	} else {
		for _, info := range infos {
			writeURLInfo(out, info)
		}
	}
	return errtrace.Wrap(errorutil.JoinPrefix("cannot parse URLs", errs...))
}

func writeURLInfo(w io.Writer, info urlInfo) {
	fmt.Fprintf(w, "url:      %s\n", info.URL)
	fmt.Fprintf(w, "scheme:   %s\n", info.Scheme)
	if info.User != nil {
		fmt.Fprintf(w, "user:     %s\n", *info.User)
	}
	if info.HasPass {
		fmt.Fprintln(w, "pass:     (set)")
	}
	fmt.Fprintf(w, "host:     %s\n", info.Host)
	if info.ASCII != "" {
		fmt.Fprintf(w, "ascii:    %s\n", info.ASCII)
	}
	if info.Port != nil {
		fmt.Fprintf(w, "port:     %d\n", *info.Port)
	}
	fmt.Fprintf(w, "path:     %s\n", info.Path)
	if info.Query != nil {
		q, _ := json.Marshal(info.Query)
		fmt.Fprintf(w, "query:    %s\n", q)
	}
	if info.Fragment != "" {
		fmt.Fprintf(w, "fragment: %s\n", info.Fragment)
	}
	fmt.Fprintln(w)
}
