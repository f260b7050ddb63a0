package gdrive

import (
	"context"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
)

// Scope is the single authorization scope every Service is bound to: full read/write access to Drive.
const Scope = drive.DriveScope

const serviceAccountType = "service_account"

// CredentialConfig holds the fields of a Google service account key. Each field is read from a
// GOOGLE_CREDENTIALS_* environment variable. Empty fields are left out of the assembled JSON entirely.
type CredentialConfig struct {
	Type                    string `env:"GOOGLE_CREDENTIALS_TYPE" envDefault:"service_account" json:"type,omitempty"`
	ProjectID               string `env:"GOOGLE_CREDENTIALS_PROJECT_ID" json:"project_id,omitempty"`
	PrivateKeyID            string `env:"GOOGLE_CREDENTIALS_PRIVATE_KEY_ID" json:"private_key_id,omitempty"`
	PrivateKey              string `env:"GOOGLE_CREDENTIALS_PRIVATE_KEY" json:"private_key,omitempty"`
	ClientEmail             string `env:"GOOGLE_CREDENTIALS_CLIENT_EMAIL" json:"client_email,omitempty"`
	ClientID                string `env:"GOOGLE_CREDENTIALS_CLIENT_ID" json:"client_id,omitempty"`
	AuthURI                 string `env:"GOOGLE_CREDENTIALS_AUTH_URI" envDefault:"https://accounts.google.com/o/oauth2/auth" json:"auth_uri,omitempty"`
	TokenURI                string `env:"GOOGLE_CREDENTIALS_TOKEN_URI" envDefault:"https://oauth2.googleapis.com/token" json:"token_uri,omitempty"`
	AuthProviderX509CertURL string `env:"GOOGLE_CREDENTIALS_AUTH_PROVIDER_CERT_URL" envDefault:"https://www.googleapis.com/oauth2/v1/certs" json:"auth_provider_x509_cert_url,omitempty"`
	ClientX509CertURL       string `env:"GOOGLE_CREDENTIALS_CLIENT_CERT_URL" json:"client_x509_cert_url,omitempty"`
}

// LoadCredentialConfig reads a CredentialConfig from the process environment. A .env file in the working
// directory is loaded first when present; variables already set in the environment take precedence over it.
func LoadCredentialConfig() (CredentialConfig, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Load()

	return parseCredentialConfig(env.Options{})
}

func parseCredentialConfig(opts env.Options) (CredentialConfig, error) {
	cfg := CredentialConfig{}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return CredentialConfig{}, &CredentialError{Err: err}
	}
	cfg.PrivateKey = NormalizePrivateKey(cfg.PrivateKey)
	return cfg, nil
}

// LoadCredentialConfigFile reads a CredentialConfig from a service account key file as downloaded from the
// Cloud console.
func LoadCredentialConfigFile(path string) (CredentialConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CredentialConfig{}, &CredentialError{Err: wrapIOError("read", path, err)}
	}
	cfg := CredentialConfig{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return CredentialConfig{}, &CredentialError{Err: fmt.Errorf("decode %s: %w", path, err)}
	}
	cfg.PrivateKey = NormalizePrivateKey(cfg.PrivateKey)
	return cfg, nil
}

// NormalizePrivateKey turns literal two character `\n` escapes into real newlines. Keys stored in a single line
// environment variable usually arrive escaped.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// Validate reports whether the config carries every field the JWT signing flow needs.
func (c CredentialConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Type, validation.Required, validation.In(serviceAccountType)),
		validation.Field(&c.PrivateKey, validation.Required),
		validation.Field(&c.ClientEmail, validation.Required),
		validation.Field(&c.TokenURI, validation.Required),
	)
}

// JSON assembles the service account key document. Unset optional fields are omitted, never sent as null
// or empty strings, because the signing library treats field presence as meaningful.
func (c CredentialConfig) JSON() ([]byte, error) {
	c.PrivateKey = NormalizePrivateKey(c.PrivateKey)
	return json.Marshal(c)
}

// NewCredentials builds signed service account credentials scoped to Scope. Nothing partial is returned: any
// rejection is reported as a *CredentialError wrapping the cause.
func NewCredentials(ctx context.Context, cfg CredentialConfig) (*google.Credentials, error) {
	cfg.PrivateKey = NormalizePrivateKey(cfg.PrivateKey)

	if err := cfg.Validate(); err != nil {
		return nil, &CredentialError{Err: fmt.Errorf("%w: %w", ErrIncompleteCredential, err)}
	}
	if err := checkPrivateKey(cfg.PrivateKey); err != nil {
		return nil, &CredentialError{Err: err}
	}

	data, err := cfg.JSON()
	if err != nil {
		return nil, &CredentialError{Err: err}
	}

	creds, err := google.CredentialsFromJSONWithParams(ctx, data, google.CredentialsParams{
		Scopes: []string{Scope},
	})
	if err != nil {
		return nil, &CredentialError{Err: err}
	}
	return creds, nil
}

// checkPrivateKey mirrors the key parsing the JWT flow performs lazily on first token fetch, so a malformed key
// fails here instead of on the first request.
func checkPrivateKey(key string) error {
	block, _ := pem.Decode([]byte(key))
	if block == nil {
		return ErrInvalidPrivateKey
	}
	if _, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return nil
	}
	if _, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return nil
	}
	return ErrInvalidPrivateKey
}
