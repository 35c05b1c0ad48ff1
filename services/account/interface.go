package account

import (
	"context"

	accountRepo "amora/database/repository/account"
)

// AccountService creates and manages credential records for new users.
type AccountService interface {
	// CreateAccount validates the email and password, refuses duplicates,
	// and persists a new account. Returns the created account's ID.
	CreateAccount(ctx context.Context, email, password string) (string, error)
	// IssueToken signs a JWT for the account and stores its hash.
	IssueToken(ctx context.Context, accountID, email string) (string, error)
	// DeleteAccount removes an account record.
	DeleteAccount(ctx context.Context, accountID string) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo accountRepo.AccountRepository
}
