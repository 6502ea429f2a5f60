// Package crypto looks after the key that encrypts the restaurant database.
package crypto

// Keyring stores the database key outside the database file
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	DeleteKey() error
	IsAvailable() bool
}

// Keychain entry used on macOS
const (
	ServiceName = "restaurant"
	KeyName     = "db-encryption-key"
)

// EnvKey holds the database key when no keychain entry is used
const EnvKey = "RESTAURANT_DB_KEY"

// NewKeyring returns the keyring for the current platform
func NewKeyring() Keyring {
	return newPlatformKeyring()
}
