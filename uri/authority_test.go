package uri_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urlkit/uri"
)

func TestAuthority_String(t *testing.T) {
	t.Parallel()

	base := uri.NewAuthority("Example.com")

	cases := []struct {
		name string
		auth uri.Authority
		want string
	}{
		{"empty", uri.Authority{}, ""},
		{"host only", base, "example.com"},
		{"host and port", must(base.WithPort(8080)), "example.com:8080"},
		{"zero port", must(base.WithPort(0)), "example.com:0"},
		{"username", base.WithUsername("admin"), "admin@example.com"},
		{
			"username and password",
			must(base.WithUsername("us er").WithPassword("p@ss:w")),
			"us%20er:p%40ss%3Aw@example.com",
		},
		{"empty username", base.WithUsername(""), "example.com"},
		{"empty username with password", must(base.WithUsername("").WithPassword("x")), ":x@example.com"},
		{"empty password", must(base.WithUsername("u").WithPassword("")), "u:@example.com"},
		{"ipv6 with port", must(uri.NewAuthority("::1").WithPort(443)), "[::1]:443"},
		{"port without host", must(uri.Authority{}.WithPort(80)), ":80"},
	}

	for _, c := range cases {
		if got := c.auth.String(); got != c.want {
			t.Errorf("%s: auth.String() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestAuthority_WithoutUsername_DropsPassword(t *testing.T) {
	t.Parallel()

	a := must(uri.NewAuthority("h").WithUsername("u").WithPassword("p"))
	a2 := a.WithoutUsername()

	if _, ok := a2.Password(); ok {
		t.Error("a2.Password() is set, want unset")
	}
	if _, ok := a2.Username(); ok {
		t.Error("a2.Username() is set, want unset")
	}
	if got, want := a2.String(), "h"; got != want {
		t.Errorf("a2.String() = %q, want %q", got, want)
	}
	// source is untouched
	if p, ok := a.Password(); !ok || p != "p" {
		t.Errorf("a.Password() = %q, %v, want %q, true", p, ok, "p")
	}
}

func TestAuthority_WithPassword(t *testing.T) {
	t.Parallel()

	a := uri.NewAuthority("h")
	got, err := a.WithPassword("x")
	if diff := cmp.Diff(err, uri.ErrPasswordWithoutUsername, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("a.WithPassword(\"x\") error = %v, want %v\ndiff (-got +want):\n%v",
			err, uri.ErrPasswordWithoutUsername, diff,
		)
	}
	if !errors.Is(err, uri.ErrInvalidArgument) {
		t.Errorf("a.WithPassword(\"x\") error = %v, want wrapped %v", err, uri.ErrInvalidArgument)
	}
	if !got.Equal(a) {
		t.Errorf("a.WithPassword(\"x\") = %v, want unchanged %v", got, a)
	}

	u := a.WithUsername("u")
	got = must(u.WithPassword("x"))
	if p, ok := got.Password(); !ok || p != "x" {
		t.Errorf("got.Password() = %q, %v, want %q, true", p, ok, "x")
	}
	if got := got.WithoutPassword(); got.String() != "u@h" {
		t.Errorf("got.WithoutPassword().String() = %q, want %q", got.String(), "u@h")
	}
}

func TestAuthority_WithPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		port    int
		wantErr error
	}{
		{-1, uri.ErrInvalidPort},
		{0, nil},
		{80, nil},
		{65535, nil},
		{65536, uri.ErrInvalidPort},
	}

	a := uri.NewAuthority("h")
	for _, c := range cases {
		got, err := a.WithPort(c.port)
		if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("a.WithPort(%d) error = %v, want %v\ndiff (-got +want):\n%v", c.port, err, c.wantErr, diff)
			continue
		}
		if c.wantErr != nil {
			if !errors.Is(err, uri.ErrInvalidArgument) {
				t.Errorf("a.WithPort(%d) error = %v, want wrapped %v", c.port, err, uri.ErrInvalidArgument)
			}
			if _, ok := got.Port(); ok {
				t.Errorf("a.WithPort(%d) returned authority with port", c.port)
			}
			continue
		}
		if p, ok := got.Port(); !ok || p != c.port {
			t.Errorf("a.WithPort(%d).Port() = %d, %v, want %d, true", c.port, p, ok, c.port)
		}
	}

	a = must(a.WithPort(80)).WithoutPort()
	if _, ok := a.Port(); ok {
		t.Error("a.WithoutPort().Port() is set, want unset")
	}
}

func TestAuthority_Host(t *testing.T) {
	t.Parallel()

	a := uri.NewAuthority("a.example").WithUsername("u")
	if got, want := a.WithHost("B.example").String(), "u@b.example"; got != want {
		t.Errorf("a.WithHost(\"B.example\").String() = %q, want %q", got, want)
	}
	if got, want := a.WithoutHost().String(), "u@"; got != want {
		t.Errorf("a.WithoutHost().String() = %q, want %q", got, want)
	}
	if !a.Host().Equal("A.EXAMPLE") {
		t.Errorf("a.Host() = %v, want a.example", a.Host())
	}
}

func TestAuthority_UserInfo(t *testing.T) {
	t.Parallel()

	if _, ok := uri.NewAuthority("h").UserInfo(); ok {
		t.Error("UserInfo() is set for authority without username")
	}
	a := must(uri.NewAuthority("h").WithUsername("a@b").WithPassword("c d"))
	if got, ok := a.UserInfo(); !ok || got != "a%40b:c%20d" {
		t.Errorf("a.UserInfo() = %q, %v, want %q, true", got, ok, "a%40b:c%20d")
	}
	if !a.Equal(&a) {
		t.Error("a.Equal(&a) = false, want true")
	}
	if a.Equal(a.WithoutPassword()) {
		t.Error("a.Equal(a.WithoutPassword()) = true, want false")
	}
}
