package account

import (
	"context"
	"errors"
	"testing"

	"amora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) GetByID(id string) (*models.Account, error) {
	args := m.Called(id)
	if a := args.Get(0); a != nil {
		return a.(*models.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Account, error) {
	args := m.Called(email, projection)
	if a := args.Get(0); a != nil {
		return a.(*models.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepo) Create(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepo) Update(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestVerifyPasswordComplexity(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"too short", "Ab1", "password must be at least 8 characters long"},
		{"no uppercase", "sunshine22", "password must include at least one uppercase letter"},
		{"no lowercase", "SUNSHINE22", "password must include at least one lowercase letter"},
		{"no digit", "SunshineDay", "password must include at least one number"},
		{"valid", "Sunshine22", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := VerifyPasswordComplexity(tc.password)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.wantErr)
			}
		})
	}
}

func TestCreateAccount(t *testing.T) {
	repo := new(MockAccountRepo)
	svc := &DefaultAccountService{Repo: repo}

	repo.On("GetByEmailWithProjection", "amara@example.com", mock.Anything).Return(nil, nil)

	var created *models.Account
	repo.On("Create", mock.AnythingOfType("*models.Account")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*models.Account) }).
		Return(nil)

	id, err := svc.CreateAccount(context.Background(), "amara@example.com", "Sunshine22")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, "amara@example.com", created.Email)
	assert.NotEqual(t, "Sunshine22", created.PasswordHash, "the plaintext password must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Sunshine22")))
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	repo := new(MockAccountRepo)
	svc := &DefaultAccountService{Repo: repo}

	repo.On("GetByEmailWithProjection", "taken@example.com", mock.Anything).
		Return(&models.Account{ID: "acct-1"}, nil)

	_, err := svc.CreateAccount(context.Background(), "taken@example.com", "Sunshine22")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateAccountValidatesInput(t *testing.T) {
	repo := new(MockAccountRepo)
	svc := &DefaultAccountService{Repo: repo}

	_, err := svc.CreateAccount(context.Background(), "", "Sunshine22")
	assert.EqualError(t, err, "email and password are required")

	_, err = svc.CreateAccount(context.Background(), "not-an-email", "Sunshine22")
	assert.EqualError(t, err, "invalid email address")

	_, err = svc.CreateAccount(context.Background(), "amara@example.com", "weak")
	assert.Error(t, err)

	repo.AssertNotCalled(t, "GetByEmailWithProjection", mock.Anything, mock.Anything)
}

func TestCreateAccountLookupFailure(t *testing.T) {
	repo := new(MockAccountRepo)
	svc := &DefaultAccountService{Repo: repo}

	repo.On("GetByEmailWithProjection", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	_, err := svc.CreateAccount(context.Background(), "amara@example.com", "Sunshine22")
	assert.EqualError(t, err, "account creation failed, please try again")
}

func TestIssueTokenStoresHash(t *testing.T) {
	repo := new(MockAccountRepo)
	svc := &DefaultAccountService{Repo: repo}

	acct := &models.Account{ID: "acct-1", Email: "amara@example.com"}
	repo.On("GetByID", "acct-1").Return(acct, nil)

	var updated *models.Account
	repo.On("Update", mock.AnythingOfType("*models.Account")).
		Run(func(args mock.Arguments) { updated = args.Get(0).(*models.Account) }).
		Return(nil)

	token, err := svc.IssueToken(context.Background(), "acct-1", "amara@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	require.NotNil(t, updated)
	assert.NotEmpty(t, updated.TokenHash)
	assert.NotEqual(t, token, updated.TokenHash, "only the hash is persisted")
}

func TestIssueTokenUnknownAccount(t *testing.T) {
	repo := new(MockAccountRepo)
	svc := &DefaultAccountService{Repo: repo}

	repo.On("GetByID", "ghost").Return(nil, nil)

	_, err := svc.IssueToken(context.Background(), "ghost", "ghost@example.com")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}
