//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/mocks"
)

func TestInitializeDefaultAdmin(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*mocks.MockUserRepositoryInterface)
		wantError bool
	}{
		{
			name:     "creates admin when none exists",
			email:    "admin@frete.example.com",
			password: "s3cret-admin",
			setupMock: func(m *mocks.MockUserRepositoryInterface) {
				m.On("FindByEmail", mock.Anything, "admin@frete.example.com").Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					if u.Email != "admin@frete.example.com" || u.Role != model.RoleAdmin {
						return false
					}
					if !u.Active || !u.EmailConfirmed {
						return false
					}
					return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret-admin")) == nil
				})).Return(nil).Once()
			},
			wantError: false,
		},
		{
			name:     "skips when admin already exists",
			email:    "admin@frete.example.com",
			password: "s3cret-admin",
			setupMock: func(m *mocks.MockUserRepositoryInterface) {
				existing := &model.User{Email: "admin@frete.example.com", Role: model.RoleAdmin}
				m.On("FindByEmail", mock.Anything, "admin@frete.example.com").Return(existing, nil).Once()
			},
			wantError: false,
		},
		{
			name:      "skips when credentials are not configured",
			email:     "",
			password:  "",
			setupMock: func(m *mocks.MockUserRepositoryInterface) {},
			wantError: false,
		},
		{
			name:     "lookup error",
			email:    "admin@frete.example.com",
			password: "s3cret-admin",
			setupMock: func(m *mocks.MockUserRepositoryInterface) {
				m.On("FindByEmail", mock.Anything, "admin@frete.example.com").Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name:     "create error",
			email:    "admin@frete.example.com",
			password: "s3cret-admin",
			setupMock: func(m *mocks.MockUserRepositoryInterface) {
				m.On("FindByEmail", mock.Anything, "admin@frete.example.com").Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_EMAIL", tt.email)
			t.Setenv("ADMIN_PASSWORD", tt.password)

			mockRepo := new(mocks.MockUserRepositoryInterface)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := initializeDefaultAdmin(mockRepo)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
