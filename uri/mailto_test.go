package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urlkit/uri"
)

func TestParseMailto(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		raw         string
		wantTo      []string
		wantCC      []string
		wantBCC     []string
		wantSubject string
		wantBody    string
		wantErr     error
	}{
		{
			name:        "full",
			raw:         "mailto:a@example.com,b@example.com?cc=c@example.com&subject=Hello%20World&body=Hi+there",
			wantTo:      []string{"a@example.com", "b@example.com"},
			wantCC:      []string{"c@example.com"},
			wantSubject: "Hello World",
			wantBody:    "Hi there",
		},
		{
			name:    "to param only",
			raw:     "MAILTO:?to=x@example.com,%20y@example.com&BCC=z@example.com",
			wantTo:  []string{"x@example.com", "y@example.com"},
			wantBCC: []string{"z@example.com"},
		},
		{
			name:   "path and to param",
			raw:    "mailto:a@example.com?to=b@example.com",
			wantTo: []string{"a@example.com", "b@example.com"},
		},
		{
			name: "empty to",
			raw:  "mailto:?to=",
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: uri.ErrEmptyInput,
		},
		{
			name:    "other scheme",
			raw:     "https://example.com",
			wantErr: uri.ErrMalformedInput,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			m, err := uri.ParseMailto(c.raw)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.ParseMailto(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.raw, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}

			if diff := cmp.Diff(m.To(), c.wantTo, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("m.To() diff (-got +want):\n%v", diff)
			}
			if diff := cmp.Diff(m.CC(), c.wantCC, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("m.CC() diff (-got +want):\n%v", diff)
			}
			if diff := cmp.Diff(m.BCC(), c.wantBCC, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("m.BCC() diff (-got +want):\n%v", diff)
			}
			if got := m.Subject(); got != c.wantSubject {
				t.Errorf("m.Subject() = %q, want %q", got, c.wantSubject)
			}
			if got := m.Body(); got != c.wantBody {
				t.Errorf("m.Body() = %q, want %q", got, c.wantBody)
			}
		})
	}
}

func TestMailto_RoundTrip(t *testing.T) {
	t.Parallel()

	m := uri.MustParseMailto("mailto:a@example.com?subject=Hello%20World&body=Hi+there")
	if !m.URL().Scheme().Equal("mailto") {
		t.Errorf("m.URL().Scheme() = %q, want %q", m.URL().Scheme(), "mailto")
	}

	m2, err := uri.ParseMailto(m.String())
	if err != nil {
		t.Fatalf("uri.ParseMailto(%q) error = %v, want nil", m.String(), err)
	}
	if diff := cmp.Diff(m2.To(), []string{"a@example.com"}); diff != "" {
		t.Errorf("m2.To() diff (-got +want):\n%v", diff)
	}
	if got, want := m2.Subject(), "Hello World"; got != want {
		t.Errorf("m2.Subject() = %q, want %q", got, want)
	}
	if got, want := m2.String(), m.String(); got != want {
		t.Errorf("m2.String() = %q, want %q", got, want)
	}
}
