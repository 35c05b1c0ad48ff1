package account

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"amora/models"
	"amora/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	return nil
}

// CreateAccount validates credentials, checks for duplicates, hashes the
// password and persists a new account record.
func (s *DefaultAccountService) CreateAccount(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("invalid email address")
	}
	if err := VerifyPasswordComplexity(password); err != nil {
		return "", err
	}

	// Check for an existing account (using minimal projection).
	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("CreateAccount: failed to check for existing account", zap.Error(err))
		return "", fmt.Errorf("account creation failed, please try again")
	}
	if existing != nil {
		return "", fmt.Errorf("an account with email %s already exists", email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("CreateAccount: failed to hash password", zap.Error(err))
		return "", fmt.Errorf("account creation failed, please try again")
	}

	acct := models.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.Repo.Create(&acct); err != nil {
		utils.GetLogger().Error("CreateAccount: failed to create account", zap.Error(err))
		return "", fmt.Errorf("account creation failed, please try again")
	}
	return acct.ID, nil
}

// IssueToken signs a JWT for the account and stores its hash on the record.
func (s *DefaultAccountService) IssueToken(ctx context.Context, accountID, email string) (string, error) {
	token, err := utils.GenerateToken(accountID, email, utils.AuthTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate auth token: %w", err)
	}

	acct, err := s.Repo.GetByID(accountID)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve account: %w", err)
	}
	if acct == nil {
		return "", fmt.Errorf("account %s not found", accountID)
	}
	acct.TokenHash = utils.HashToken(token)
	acct.UpdatedAt = time.Now()
	if err := s.Repo.Update(acct); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}
	return token, nil
}

// DeleteAccount removes an account record.
func (s *DefaultAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.Repo.Delete(accountID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
