package vault

import (
	"context"
	"errors"
	"testing"

	vaultapi "github.com/hashicorp/vault/api"
)

type fakeKV struct {
	secrets map[string]*vaultapi.KVSecret
	err     error
}

func (f *fakeKV) Get(_ context.Context, secretPath string) (*vaultapi.KVSecret, error) {
	if f.err != nil {
		return nil, f.err
	}
	secret, ok := f.secrets[secretPath]
	if !ok {
		return nil, errors.New("secret not found")
	}
	return secret, nil
}

func TestSourceResolve(t *testing.T) {
	tests := []struct {
		name         string
		cfg          SourceConfig
		kv           *fakeKV
		expectKey    string
		expectSecret string
		expectErr    error
	}{
		{
			name: "default field names",
			cfg:  SourceConfig{SecretPath: "fivetran-console"},
			kv: &fakeKV{secrets: map[string]*vaultapi.KVSecret{
				"fivetran-console": {Data: map[string]any{
					"api_key":    "my-key",
					"api_secret": "my-secret",
				}},
			}},
			expectKey:    "my-key",
			expectSecret: "my-secret",
		},
		{
			name: "custom field names",
			cfg:  SourceConfig{SecretPath: "creds", KeyField: "username", SecretField: "password"},
			kv: &fakeKV{secrets: map[string]*vaultapi.KVSecret{
				"creds": {Data: map[string]any{
					"username": "k",
					"password": "s",
				}},
			}},
			expectKey:    "k",
			expectSecret: "s",
		},
		{
			name:      "secret missing",
			cfg:       SourceConfig{SecretPath: "nope"},
			kv:        &fakeKV{secrets: map[string]*vaultapi.KVSecret{}},
			expectErr: ErrSecretNotFound,
		},
		{
			name: "field missing",
			cfg:  SourceConfig{SecretPath: "creds"},
			kv: &fakeKV{secrets: map[string]*vaultapi.KVSecret{
				"creds": {Data: map[string]any{"api_key": "k"}},
			}},
			expectErr: ErrKeyNotFound,
		},
		{
			name: "field not a string",
			cfg:  SourceConfig{SecretPath: "creds"},
			kv: &fakeKV{secrets: map[string]*vaultapi.KVSecret{
				"creds": {Data: map[string]any{"api_key": 42, "api_secret": "s"}},
			}},
			expectErr: ErrKeyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if cfg.KeyField == "" {
				cfg.KeyField = "api_key"
			}
			if cfg.SecretField == "" {
				cfg.SecretField = "api_secret"
			}
			source := &Source{kv: tt.kv, cfg: &cfg}

			key, secret, err := source.Resolve(context.Background())

			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected error %v, got %v", tt.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key != tt.expectKey {
				t.Errorf("expected key %q, got %q", tt.expectKey, key)
			}
			if secret != tt.expectSecret {
				t.Errorf("expected secret %q, got %q", tt.expectSecret, secret)
			}
		})
	}
}

func TestNewClientConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		roleID    string
		secretID  string
		mountPath string
		expectErr bool
	}{
		{name: "valid", address: "https://vault:8200", roleID: "r", secretID: "s", mountPath: "apps"},
		{name: "missing address", roleID: "r", secretID: "s", mountPath: "apps", expectErr: true},
		{name: "missing roleID", address: "a", secretID: "s", mountPath: "apps", expectErr: true},
		{name: "missing secretID", address: "a", roleID: "r", mountPath: "apps", expectErr: true},
		{name: "missing mountPath", address: "a", roleID: "r", secretID: "s", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewClientConfig(tt.address, tt.roleID, tt.secretID, tt.mountPath)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Address != tt.address {
				t.Errorf("expected address %q, got %q", tt.address, cfg.Address)
			}
		})
	}
}
