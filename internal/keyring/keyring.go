// Package keyring stores the database connection string in the OS keyring so
// PostgreSQL credentials never live in flags or config files.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/streakmate/streakmate/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are stored in the keyring.
	ErrNotFound = errors.New("credentials not found in keyring")
)

// GetConnectionString retrieves the stored database connection string.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("keyring unavailable: %w", err)
	}
	return connStr, nil
}

// SetConnectionString stores the database connection string.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// IsAvailable reports whether the OS keyring backend is usable by writing and
// removing a probe entry.
func IsAvailable() bool {
	const probe = "availability-probe"
	if err := keyring.Set(constants.AppName, probe, "ok"); err != nil {
		return false
	}
	_ = keyring.Delete(constants.AppName, probe)
	return true
}

// DeleteConnectionString removes the stored database connection string.
func DeleteConnectionString() error {
	if err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}
