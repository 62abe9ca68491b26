package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmafra/gestor/internal/auth"
	authStore "github.com/dmafra/gestor/internal/auth/store"
	"github.com/dmafra/gestor/internal/kv"
)

func TestService_SignUp(t *testing.T) {
	type args struct {
		email    string
		password string
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *auth.MockUserRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{email: "dona@empresa.com", password: "segredo1"},
			setupMock: func(m *auth.MockUserRepository) {
				m.EXPECT().FindByEmail("dona@empresa.com").Return(nil, auth.ErrNotFound)
				m.EXPECT().CreateUser(gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "EmailTaken",
			args: args{email: "dona@empresa.com", password: "segredo1"},
			setupMock: func(m *auth.MockUserRepository) {
				m.EXPECT().FindByEmail("dona@empresa.com").Return(&auth.User{Email: "dona@empresa.com"}, nil)
			},
			wantErr: true,
		},
		{
			name:    "PasswordTooShort",
			args:    args{email: "dona@empresa.com", password: "abc"},
			wantErr: true,
		},
		{
			name:    "EmptyEmail",
			args:    args{email: "", password: "segredo1"},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{email: "dona@empresa.com", password: "segredo1"},
			setupMock: func(m *auth.MockUserRepository) {
				m.EXPECT().FindByEmail("dona@empresa.com").Return(nil, auth.ErrNotFound)
				m.EXPECT().CreateUser(gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockUserRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := auth.NewService(repo, "test-secret", time.Hour)
			got, err := svc.SignUp(tt.args.email, tt.args.password)

			if tt.wantErr {
				// Every failure collapses to the same generic error.
				assert.ErrorIs(t, err, auth.ErrAuthentication)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.NotEqual(t, tt.args.password, got.PasswordHash)
		})
	}
}

func TestService_SignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &auth.User{Email: "dona@empresa.com", PasswordHash: string(hash)}

	type testCase struct {
		name      string
		password  string
		setupMock func(m *auth.MockUserRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:     "Success",
			password: "segredo1",
			setupMock: func(m *auth.MockUserRepository) {
				m.EXPECT().FindByEmail("dona@empresa.com").Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			password: "errado99",
			setupMock: func(m *auth.MockUserRepository) {
				m.EXPECT().FindByEmail("dona@empresa.com").Return(stored, nil)
			},
			wantErr: true,
		},
		{
			name:     "UnknownEmail",
			password: "segredo1",
			setupMock: func(m *auth.MockUserRepository) {
				m.EXPECT().FindByEmail("dona@empresa.com").Return(nil, auth.ErrNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockUserRepository(ctrl)
			tt.setupMock(repo)

			svc := auth.NewService(repo, "test-secret", time.Hour)
			token, err := svc.SignIn("dona@empresa.com", tt.password)

			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrAuthentication)
				assert.Empty(t, token)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

// Full flow against the real kv-backed repository.
func TestService_SessionLifecycle(t *testing.T) {
	repo := authStore.New(kv.NewMemory())
	svc := auth.NewService(repo, "test-secret", time.Hour)

	_, err := svc.SignUp("dona@empresa.com", "segredo1")
	require.NoError(t, err)

	token, err := svc.SignIn("dona@empresa.com", "segredo1")
	require.NoError(t, err)

	user, err := svc.CurrentUser(token)
	require.NoError(t, err)
	assert.Equal(t, "dona@empresa.com", user.Email)

	require.NoError(t, svc.SignOut(token))

	_, err = svc.CurrentUser(token)
	assert.ErrorIs(t, err, auth.ErrAuthentication)
}

func TestService_CurrentUserGarbageToken(t *testing.T) {
	svc := auth.NewService(authStore.New(kv.NewMemory()), "test-secret", time.Hour)

	_, err := svc.CurrentUser("not-a-token")
	assert.ErrorIs(t, err, auth.ErrAuthentication)
}

func TestService_ExpiredToken(t *testing.T) {
	repo := authStore.New(kv.NewMemory())
	svc := auth.NewService(repo, "test-secret", -time.Minute)

	_, err := svc.SignUp("dona@empresa.com", "segredo1")
	require.NoError(t, err)

	token, err := svc.SignIn("dona@empresa.com", "segredo1")
	require.NoError(t, err)

	_, err = svc.CurrentUser(token)
	assert.ErrorIs(t, err, auth.ErrAuthentication)
}
