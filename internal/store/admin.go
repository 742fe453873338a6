package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
)

type adminStore struct {
	*MYSQLStore
}

// Admin returns an object implementing dependency.Admin interface
func (ms *MYSQLStore) Admin() dependency.Admin {
	return &adminStore{
		MYSQLStore: ms,
	}
}

func (as *adminStore) AddAdmin(ctx context.Context, un, pwHash string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		_, err := rep.DB().ExecContext(ctx, `
		INSERT INTO admins
		(username, password_hash)
		VALUES
		(?, ?)`, un, pwHash)
		if rep.IsErrUniqueViolation(err) {
			return fmt.Errorf("can't add admin user %q: %w: %w", un, gerr.ErrAdminExists, err)
		}
		if err != nil {
			return fmt.Errorf("can't add admin user: %w", err)
		}
		return nil
	})
}

func (as *adminStore) PasswordHashByUsername(ctx context.Context, un string) (string, error) {
	var hash string
	err := as.DB().GetContext(ctx, &hash, `
		SELECT password_hash
		FROM admins
		WHERE username = ?`, un)
	if err != nil {
		return "", fmt.Errorf("can't get password hash: %w", err)
	}
	return hash, nil
}
