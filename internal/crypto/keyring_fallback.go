//go:build !darwin

package crypto

import (
	"errors"
	"fmt"
	"os"
)

type envKeyring struct{}

func newPlatformKeyring() Keyring {
	return &envKeyring{}
}

// GetKey reads the key from the RESTAURANT_DB_KEY environment variable
func (k *envKeyring) GetKey() (string, error) {
	key := os.Getenv(EnvKey)
	if key == "" {
		return "", fmt.Errorf("%s environment variable not set", EnvKey)
	}
	return key, nil
}

// SetKey cannot persist anything; it tells the user which variable to export
func (k *envKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if os.Getenv(EnvKey) == password {
		return nil
	}
	return fmt.Errorf("keyring not available on this platform: export %s (or add it to .env) to keep using this database", EnvKey)
}

func (k *envKeyring) DeleteKey() error {
	return fmt.Errorf("keyring not available on this platform: unset %s manually", EnvKey)
}

func (k *envKeyring) IsAvailable() bool {
	return os.Getenv(EnvKey) != ""
}
