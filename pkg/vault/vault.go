package vault

import (
	"context"
	"errors"
	"fmt"

	vault "github.com/hashicorp/vault/api"
	auth "github.com/hashicorp/vault/api/auth/approle"
)

var (
	ErrSecretNotFound = errors.New("secret not found at path")
	ErrKeyNotFound    = errors.New("key not found in vault secret")
)

// NewClient creates a new vault client authenticated via AppRole
func NewClient(cfg *ClientConfig) (*VaultClient, error) {
	config := vault.DefaultConfig()
	config.Address = cfg.Address
	vaultClient, err := vault.NewClient(config)
	if err != nil {
		return nil, err
	}

	appRoleAuth, err := auth.NewAppRoleAuth(
		cfg.RoleID,
		&auth.SecretID{FromString: cfg.SecretID},
	)
	if err != nil {
		return nil, err
	}

	authInfo, err := vaultClient.Auth().Login(context.Background(), appRoleAuth)
	if err != nil {
		return nil, err
	}
	if authInfo == nil {
		return nil, fmt.Errorf("no auth info was returned after login")
	}

	return &VaultClient{Client: vaultClient, Config: cfg}, nil
}

// NewClientConfig creates a new ClientConfig with the provided address and AppRole credentials
func NewClientConfig(address, roleID, secretID, mountPath string) (*ClientConfig, error) {
	if address == "" {
		return nil, errors.New("vault address is required")
	}
	if roleID == "" {
		return nil, errors.New("vault roleID is required")
	}
	if secretID == "" {
		return nil, errors.New("vault secretID is required")
	}
	if mountPath == "" {
		return nil, errors.New("vault mountPath is required")
	}

	clientConfig := &ClientConfig{
		Address:   address,
		RoleID:    roleID,
		SecretID:  secretID,
		MountPath: mountPath,
	}
	return clientConfig, nil
}
