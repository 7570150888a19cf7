package domain_test

import (
	"errors"
	"testing"

	"eventdeck/internal/modules/auth/domain"
)

func TestCredentialsValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		creds domain.Credentials
		ok    bool
	}{
		{name: "complete", creds: domain.Credentials{Email: "alex@example.com", Password: "pw"}, ok: true},
		{name: "missing email", creds: domain.Credentials{Password: "pw"}},
		{name: "blank email", creds: domain.Credentials{Email: "  ", Password: "pw"}},
		{name: "missing password", creds: domain.Credentials{Email: "alex@example.com"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.creds.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !tc.ok && !errors.Is(err, domain.ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()
	if got := (domain.Account{Email: "alex.j@example.com"}).DisplayName(); got != "alex.j" {
		t.Fatalf("unexpected display name %q", got)
	}
	if got := (domain.Account{Name: "Alex Johnson", Email: "a@b.c"}).DisplayName(); got != "Alex Johnson" {
		t.Fatalf("unexpected display name %q", got)
	}
}
