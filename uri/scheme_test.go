package uri_test

import (
	"testing"

	"github.com/ghettovoice/urlkit/uri"
)

func TestNewScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want uri.Scheme
	}{
		{"", ""},
		{"HTTPS", "https"},
		{" Mailto ", "mailto"},
	}

	for _, c := range cases {
		s := uri.NewScheme(c.in)
		if s != c.want {
			t.Errorf("uri.NewScheme(%q) = %q, want %q", c.in, s, c.want)
		}
		if got, want := s.IsEmpty(), c.want == ""; got != want {
			t.Errorf("uri.NewScheme(%q).IsEmpty() = %v, want %v", c.in, got, want)
		}
	}
}

func TestScheme_Equal(t *testing.T) {
	t.Parallel()

	s := uri.NewScheme("https")
	other := uri.Scheme("HTTPS")

	cases := []struct {
		val  any
		want bool
	}{
		{"HTTPS", true},
		{other, true},
		{&other, true},
		{(*uri.Scheme)(nil), false},
		{"http", false},
		{1, false},
	}

	for _, c := range cases {
		if got := s.Equal(c.val); got != c.want {
			t.Errorf("s.Equal(%#v) = %v, want %v", c.val, got, c.want)
		}
	}

	if !s.In("http", "HTTPS") {
		t.Error("s.In(\"http\", \"HTTPS\") = false, want true")
	}
	if s.In("ftp") {
		t.Error("s.In(\"ftp\") = true, want false")
	}
}
