package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/warbler/internal/crypto"
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/mock"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/internal/validators"
	"github.com/MKhiriev/warbler/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, testStorages, *mock.MockPasswordHasher) {
	t.Helper()
	storages, m := newTestStorages(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash(dummyPassword).Return("dummy-cred", nil)

	return NewUserService(storages, hasher, logger.Nop()), m, hasher
}

func ptr[T any](v T) *T { return &v }

// ── Signup ───────────────────────────────────────────────────────────────────

func TestUserService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, hasher := newTestUserSvc(t, ctrl)
	ctx := testCtx()

	gomock.InOrder(
		hasher.EXPECT().Hash("password1").Return("$2a$hashed", nil),
		expectTx(m.db),
		m.users.EXPECT().CreateUser(gomock.Any(), m.db, gomock.Any()).DoAndReturn(
			func(_ any, _ store.Querier, u models.User) (models.User, error) {
				assert.Equal(t, "user1", u.Username)
				assert.Equal(t, "email1@site.com", u.Email)
				assert.Equal(t, "$2a$hashed", u.Password)
				assert.Equal(t, "img1", u.ImageURL)
				assert.Equal(t, models.DefaultHeaderImageURL, u.HeaderImageURL)
				assert.False(t, u.CreatedAt.IsZero())
				u.ID = 1
				return u, nil
			},
		),
	)

	user, err := svc.Signup(ctx, models.SignupRequest{
		Username: " user1 ",
		Email:    "email1@site.com",
		Password: "password1",
		ImageURL: "img1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "<User #1: user1, email1@site.com>", user.String())
}

func TestUserService_Signup_DefaultImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, hasher := newTestUserSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("cred", nil)
	expectTx(m.db)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, _ store.Querier, u models.User) (models.User, error) {
			return u, nil
		},
	)

	user, err := svc.Signup(testCtx(), models.SignupRequest{Username: "u", Email: "u@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultImageURL, user.ImageURL)
}

func TestUserService_Signup_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		req   models.SignupRequest
		field string
	}{
		{"empty username", models.SignupRequest{Email: "a@b.c", Password: "secret1"}, validators.FieldUsername},
		{"blank username", models.SignupRequest{Username: "   ", Email: "a@b.c", Password: "secret1"}, validators.FieldUsername},
		{"empty email", models.SignupRequest{Username: "u", Password: "secret1"}, validators.FieldEmail},
		{"bad email", models.SignupRequest{Username: "u", Email: "nope", Password: "secret1"}, validators.FieldEmail},
		{"short password", models.SignupRequest{Username: "u", Email: "a@b.c", Password: "12345"}, validators.FieldPassword},
		{"empty password", models.SignupRequest{Username: "u", Email: "a@b.c"}, validators.FieldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestUserSvc(t, ctrl)

			_, err := svc.Signup(testCtx(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var vErr *validators.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestUserService_Signup_PasswordTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestUserSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrInputTooLarge)

	_, err := svc.Signup(testCtx(), models.SignupRequest{Username: "u", Email: "u@x.com", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, crypto.ErrInputTooLarge)
}

func TestUserService_Signup_Duplicate(t *testing.T) {
	for _, dupErr := range []error{store.ErrUsernameAlreadyExists, store.ErrEmailAlreadyExists} {
		t.Run(dupErr.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m, hasher := newTestUserSvc(t, ctrl)

			hasher.EXPECT().Hash(gomock.Any()).Return("cred", nil)
			expectTx(m.db)
			m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, dupErr)

			_, err := svc.Signup(testCtx(), models.SignupRequest{Username: "user1", Email: "e2@x.com", Password: "password2"})
			require.Error(t, err)
			assert.ErrorIs(t, err, dupErr)
			assert.ErrorIs(t, err, store.ErrUniqueViolation)
		})
	}
}

func TestUserService_Signup_StoresOnlyCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages, m := newTestStorages(ctrl)
	hasher, err := crypto.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewUserService(storages, hasher, logger.Nop())

	var stored models.User
	expectTx(m.db)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, _ store.Querier, u models.User) (models.User, error) {
			stored = u
			return u, nil
		},
	)

	_, err = svc.Signup(testCtx(), models.SignupRequest{Username: "u", Email: "u@x.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEqual(t, "password1", stored.Password)
	assert.True(t, hasher.Verify("password1", stored.Password))
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestUserService_Authenticate(t *testing.T) {
	stored := models.User{ID: 7, Username: "user1", Password: "cred"}

	tests := []struct {
		name     string
		setup    func(m testStorages, h *mock.MockPasswordHasher)
		wantUser bool
		wantErr  bool
	}{
		{
			name: "correct password",
			setup: func(m testStorages, h *mock.MockPasswordHasher) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), m.db, "user1").Return(stored, nil)
				h.EXPECT().Verify("password1", "cred").Return(true)
			},
			wantUser: true,
		},
		{
			name: "wrong password",
			setup: func(m testStorages, h *mock.MockPasswordHasher) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), m.db, "user1").Return(stored, nil)
				h.EXPECT().Verify("password1", "cred").Return(false)
			},
		},
		{
			name: "unknown user",
			setup: func(m testStorages, h *mock.MockPasswordHasher) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), m.db, "user1").Return(models.User{}, store.ErrUserNotFound)
				h.EXPECT().Verify("password1", "dummy-cred").Return(false)
			},
		},
		{
			name: "storage failure",
			setup: func(m testStorages, h *mock.MockPasswordHasher) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), m.db, "user1").Return(models.User{}, store.ErrExecutingQuery)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m, hasher := newTestUserSvc(t, ctrl)
			tt.setup(m, hasher)

			user, err := svc.Authenticate(testCtx(), "user1", "password1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			if tt.wantUser {
				require.NotNil(t, user)
				assert.Equal(t, int64(7), user.ID)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

// ── GetUser / GetProfile / SearchUsers ───────────────────────────────────────

func TestUserService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestUserSvc(t, ctrl)

	m.users.EXPECT().GetUserByID(gomock.Any(), m.db, int64(1)).Return(models.User{ID: 1, Username: "user1"}, nil)
	m.users.EXPECT().GetUserByID(gomock.Any(), m.db, int64(2)).Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().GetUserByID(gomock.Any(), m.db, int64(3)).Return(models.User{}, store.ErrScanningRow)

	user, err := svc.GetUser(testCtx(), 1)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user1", user.Username)

	user, err = svc.GetUser(testCtx(), 2)
	require.NoError(t, err)
	assert.Nil(t, user)

	_, err = svc.GetUser(testCtx(), 3)
	assert.ErrorIs(t, err, store.ErrScanningRow)
}

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestUserSvc(t, ctrl)

	profile := models.UserProfile{User: models.User{ID: 1}, MessagesCount: 3, FollowersCount: 2, FollowingCount: 1}
	m.users.EXPECT().GetUserProfile(gomock.Any(), m.db, int64(1)).Return(profile, nil)
	m.users.EXPECT().GetUserProfile(gomock.Any(), m.db, int64(2)).Return(models.UserProfile{}, store.ErrUserNotFound)

	got, err := svc.GetProfile(testCtx(), 1)
	require.NoError(t, err)
	assert.Equal(t, &profile, got)

	got, err = svc.GetProfile(testCtx(), 2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserService_SearchUsers_TrimsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestUserSvc(t, ctrl)

	m.users.EXPECT().SearchUsers(gomock.Any(), m.db, "abc", uint64(10)).Return([]models.User{{ID: 1}}, nil)

	users, err := svc.SearchUsers(testCtx(), "  abc ", 10)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

// ── UpdateProfile ────────────────────────────────────────────────────────────

func TestUserService_UpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, hasher := newTestUserSvc(t, ctrl)

	upd := models.ProfileUpdate{Bio: ptr("hello"), Username: ptr(" new "), Password: "password1"}

	gomock.InOrder(
		expectTx(m.db),
		m.users.EXPECT().GetUserByID(gomock.Any(), m.db, int64(1)).Return(models.User{ID: 1, Password: "cred"}, nil),
		hasher.EXPECT().Verify("password1", "cred").Return(true),
		m.users.EXPECT().UpdateUser(gomock.Any(), m.db, int64(1), gomock.Any()).DoAndReturn(
			func(_ any, _ store.Querier, _ int64, got models.ProfileUpdate) (models.User, error) {
				assert.Equal(t, "new", *got.Username)
				return models.User{ID: 1, Username: "new", Bio: "hello"}, nil
			},
		),
	)

	user, err := svc.UpdateProfile(testCtx(), 1, upd)
	require.NoError(t, err)
	assert.Equal(t, "new", user.Username)
	assert.Equal(t, "hello", user.Bio)
}

func TestUserService_UpdateProfile_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, hasher := newTestUserSvc(t, ctrl)

	expectTx(m.db)
	m.users.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), int64(1)).Return(models.User{ID: 1, Password: "cred"}, nil)
	hasher.EXPECT().Verify("wrong-pass", "cred").Return(false)

	_, err := svc.UpdateProfile(testCtx(), 1, models.ProfileUpdate{Bio: ptr("x"), Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUserService_UpdateProfile_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		callerID int64
		upd      models.ProfileUpdate
		wantErr  error
	}{
		{"anonymous caller", 0, models.ProfileUpdate{Bio: ptr("x"), Password: "p"}, ErrUnauthorized},
		{"nothing to update", 1, models.ProfileUpdate{Password: "password1"}, ErrValidation},
		{"missing current password", 1, models.ProfileUpdate{Bio: ptr("x")}, ErrValidation},
		{"invalid email", 1, models.ProfileUpdate{Email: ptr("bad"), Password: "password1"}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestUserSvc(t, ctrl)

			_, err := svc.UpdateProfile(testCtx(), tt.callerID, tt.upd)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_UpdateProfile_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, hasher := newTestUserSvc(t, ctrl)

	expectTx(m.db)
	m.users.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), int64(1)).Return(models.User{ID: 1, Password: "cred"}, nil)
	hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
	m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.UpdateProfile(testCtx(), 1, models.ProfileUpdate{Username: ptr("taken"), Password: "password1"})
	assert.ErrorIs(t, err, store.ErrUniqueViolation)
}

// ── DeleteUser ───────────────────────────────────────────────────────────────

func TestUserService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestUserSvc(t, ctrl)

	expectTx(m.db)
	m.users.EXPECT().DeleteUser(gomock.Any(), m.db, int64(5)).Return(nil)

	require.NoError(t, svc.DeleteUser(testCtx(), 5, 5))
}

func TestUserService_DeleteUser_OtherUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestUserSvc(t, ctrl)

	assert.ErrorIs(t, svc.DeleteUser(testCtx(), 5, 6), ErrUnauthorized)
	assert.ErrorIs(t, svc.DeleteUser(testCtx(), 0, 0), ErrUnauthorized)
}

func TestUserService_DeleteUser_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestUserSvc(t, ctrl)

	storageErr := errors.New("connection reset")
	expectTx(m.db)
	m.users.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), int64(5)).Return(storageErr)

	assert.ErrorIs(t, svc.DeleteUser(testCtx(), 5, 5), storageErr)
}

// ── IsFollowing / IsFollowedBy ───────────────────────────────────────────────

func TestUserService_FollowPredicatesAgree(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestUserSvc(t, ctrl)

	m.follows.EXPECT().IsFollowing(gomock.Any(), m.db, int64(1), int64(2)).Return(true, nil).Times(2)

	following, err := svc.IsFollowing(testCtx(), 1, 2)
	require.NoError(t, err)
	followedBy, err := svc.IsFollowedBy(testCtx(), 2, 1)
	require.NoError(t, err)

	assert.True(t, following)
	assert.Equal(t, following, followedBy)
}
