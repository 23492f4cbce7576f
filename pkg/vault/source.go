package vault

import (
	"context"
	"fmt"

	vault "github.com/hashicorp/vault/api"
)

// kvReader is the slice of the Vault KV v2 API the source needs. Satisfied
// by *vault.KVv2; replaced in tests.
type kvReader interface {
	Get(ctx context.Context, secretPath string) (*vault.KVSecret, error)
}

// Source reads the console API key and secret from a Vault KV v2 mount.
// Used for headless deployments; interactive sessions never touch Vault.
type Source struct {
	kv  kvReader
	cfg *SourceConfig
}

// NewSource creates a credential source over an authenticated Vault client.
func NewSource(vc *VaultClient, cfg *SourceConfig) (*Source, error) {
	if cfg.SecretPath == "" {
		return nil, fmt.Errorf("vault secretPath is required")
	}
	if cfg.KeyField == "" {
		cfg.KeyField = "api_key"
	}
	if cfg.SecretField == "" {
		cfg.SecretField = "api_secret"
	}

	return &Source{
		kv:  vc.Client.KVv2(vc.Config.MountPath),
		cfg: cfg,
	}, nil
}

// Resolve fetches the credential pair. The values are handed to the caller
// and never cached here.
func (s *Source) Resolve(ctx context.Context) (apiKey, apiSecret string, err error) {
	secret, err := s.kv.Get(ctx, s.cfg.SecretPath)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrSecretNotFound, s.cfg.SecretPath)
	}
	if secret == nil || secret.Data == nil {
		return "", "", fmt.Errorf("%w: %s", ErrSecretNotFound, s.cfg.SecretPath)
	}

	apiKey, err = stringField(secret, s.cfg.KeyField)
	if err != nil {
		return "", "", err
	}
	apiSecret, err = stringField(secret, s.cfg.SecretField)
	if err != nil {
		return "", "", err
	}

	return apiKey, apiSecret, nil
}

func stringField(secret *vault.KVSecret, field string) (string, error) {
	raw, ok := secret.Data[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, field)
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s is not a non-empty string", ErrKeyNotFound, field)
	}
	return value, nil
}
