package laracasts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/laradl/laradl/log"
	"github.com/laradl/laradl/util"
)

var (
	// ErrNoCredentials is returned by Login when no email or password is configured.
	ErrNoCredentials = errors.New("laracasts email and password are required")
	// ErrLoginFormNotFound means the login page did not carry a CSRF token.
	ErrLoginFormNotFound = errors.New("login form not found")
)

// Login signs the session in. The session cookie is kept in the client's jar.
func (l *Laracasts) Login(ctx context.Context) error {
	if l.credentials.Empty() {
		return ErrNoCredentials
	}

	doc, err := l.document(ctx, l.resolve("/login"))
	if err != nil {
		return fmt.Errorf("open login page: %w", err)
	}

	token, ok := doc.Find("input[name=_token]").First().Attr("value")
	if !ok || token == "" {
		return ErrLoginFormNotFound
	}

	form := url.Values{
		"email":    {l.credentials.Email},
		"password": {l.credentials.Password},
		"_token":   {token},
		"remember": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.resolve("/sessions"), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sign in: %s", resp.Status)
	}

	log.Infof("signed in to %s as %s", l.base.Host, l.credentials.Email)
	return nil
}
