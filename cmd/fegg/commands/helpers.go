// Package commands implements the fegg CLI commands.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
	"github.com/frontegg-community/frontegg-go/pkg/fronteggclient"
)

var (
	errNoTerminal = errors.New("secret key not configured and standard input is not a terminal")
	errNoClientID = errors.New("client ID not configured (use --client-id, FRONTEGG_CLIENT_ID, or the config file)")
)

// createClient builds an API client from viper configuration, prompting
// for the secret key when it is not configured and stdin is a terminal.
func createClient(ctx context.Context) (frontegg.Client, error) {
	clientID := viper.GetString("client-id")
	if clientID == "" {
		return nil, errNoClientID
	}

	secretKey := viper.GetString("secret-key")
	if secretKey == "" {
		var err error
		secretKey, err = promptSecret("Secret key: ")
		if err != nil {
			return nil, err
		}
	}

	config := &frontegg.Config{
		ClientID:       clientID,
		SecretKey:      secretKey,
		VendorEndpoint: viper.GetString("endpoint"),
		Debug:          viper.GetBool("verbose"),
	}

	return fronteggclient.New(ctx, config)
}

// promptSecret reads a secret from the terminal without echoing it.
func promptSecret(prompt string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", errNoTerminal
	}

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading secret key: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(v)
}
