package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/laradl/laradl/auth"
	"github.com/laradl/laradl/icon"
	"github.com/laradl/laradl/key"
	"github.com/laradl/laradl/laracasts"
	"github.com/laradl/laradl/network"
	"github.com/laradl/laradl/util"
	"github.com/spf13/viper"
)

// newClient builds the HTTP client shared by discovery, resolution and transfers of one run.
func newClient() *http.Client {
	return network.New(
		network.WithUserAgent(viper.GetString(key.NetworkUserAgent)),
		network.WithSpoofedTLS(viper.GetBool(key.NetworkSpoofTLS)),
	)
}

// credentials reads the account from the config. The password falls back to the keyring.
func credentials() (laracasts.Credentials, error) {
	creds := laracasts.Credentials{
		Email:    viper.GetString(key.LaracastsEmail),
		Password: viper.GetString(key.LaracastsPassword),
	}

	if creds.Email != "" && creds.Password == "" {
		password, err := auth.GetPassword(creds.Email)
		if err != nil && !errors.Is(err, auth.ErrNoPassword) {
			return creds, fmt.Errorf("read keyring: %w", err)
		}
		creds.Password = password
	}

	return creds, nil
}

// newSession creates a catalog session. With signIn it logs in and fails when no account is configured.
func newSession(ctx context.Context, client *http.Client, signIn bool) (*laracasts.Laracasts, error) {
	base, err := laracasts.ParseBaseURL(viper.GetString(key.LaracastsBaseURL))
	if err != nil {
		return nil, err
	}

	creds, err := credentials()
	if err != nil {
		return nil, err
	}

	session := laracasts.New(creds, laracasts.WithBaseURL(base), laracasts.WithClient(client))
	if !signIn {
		return session, nil
	}

	if creds.Empty() {
		return nil, fmt.Errorf("%w, run \"laradl login\" first", laracasts.ErrNoCredentials)
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Signing in as %s...", icon.Get(icon.Progress), creds.Email))
	err = session.Login(ctx)
	erase()
	if err != nil {
		return nil, err
	}

	return session, nil
}
