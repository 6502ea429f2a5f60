//go:build darwin

package crypto

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const probeKeyName = "__restaurant_probe__"

type keychain struct{}

func newPlatformKeyring() Keyring {
	return &keychain{}
}

// GetKey returns RESTAURANT_DB_KEY when set, otherwise the keychain entry
func (k *keychain) GetKey() (string, error) {
	if key := os.Getenv(EnvKey); key != "" {
		return key, nil
	}

	key, err := keyring.Get(ServiceName, KeyName)
	if err != nil {
		return "", keychainError("read", err)
	}
	if key == "" {
		return "", errors.New("database key is empty")
	}
	return key, nil
}

func (k *keychain) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(ServiceName, KeyName, password); err != nil {
		return keychainError("store", err)
	}
	return nil
}

func (k *keychain) DeleteKey() error {
	if err := keyring.Delete(ServiceName, KeyName); err != nil {
		return keychainError("delete", err)
	}
	return nil
}

// IsAvailable writes and removes a throwaway entry
func (k *keychain) IsAvailable() bool {
	if err := keyring.Set(ServiceName, probeKeyName, "probe"); err != nil {
		return false
	}
	_ = keyring.Delete(ServiceName, probeKeyName)
	return true
}

func keychainError(op string, err error) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("database key not found in keychain: %w", err)
	}
	return fmt.Errorf("failed to %s database key in keychain: %w", op, err)
}
