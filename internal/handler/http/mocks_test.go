package http

import (
	"context"

	"github.com/MKhiriev/warbler/models"
)

// Function-field mocks of the service interfaces. A nil field makes the
// method return zero values.

type mockUserService struct {
	signupFn        func(ctx context.Context, req models.SignupRequest) (models.User, error)
	authenticateFn  func(ctx context.Context, username, password string) (*models.User, error)
	getUserFn       func(ctx context.Context, id int64) (*models.User, error)
	getProfileFn    func(ctx context.Context, id int64) (*models.UserProfile, error)
	searchUsersFn   func(ctx context.Context, query string, limit uint64) ([]models.User, error)
	updateProfileFn func(ctx context.Context, callerID int64, upd models.ProfileUpdate) (models.User, error)
	deleteUserFn    func(ctx context.Context, callerID, userID int64) error
	isFollowingFn   func(ctx context.Context, userID, otherID int64) (bool, error)
}

func (m *mockUserService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockUserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, username, password)
	}
	return nil, nil
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) GetProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) SearchUsers(ctx context.Context, query string, limit uint64) ([]models.User, error) {
	if m.searchUsersFn != nil {
		return m.searchUsersFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, callerID int64, upd models.ProfileUpdate) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, callerID, upd)
	}
	return models.User{}, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, callerID, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, callerID, userID)
	}
	return nil
}

func (m *mockUserService) IsFollowing(ctx context.Context, userID, otherID int64) (bool, error) {
	if m.isFollowingFn != nil {
		return m.isFollowingFn(ctx, userID, otherID)
	}
	return false, nil
}

func (m *mockUserService) IsFollowedBy(ctx context.Context, userID, otherID int64) (bool, error) {
	return m.IsFollowing(ctx, otherID, userID)
}

type mockFollowService struct {
	followFn    func(ctx context.Context, followerID, followedID int64) error
	unfollowFn  func(ctx context.Context, followerID, followedID int64) error
	followersFn func(ctx context.Context, userID int64) ([]models.User, error)
	followingFn func(ctx context.Context, userID int64) ([]models.User, error)
}

func (m *mockFollowService) Follow(ctx context.Context, followerID, followedID int64) error {
	if m.followFn != nil {
		return m.followFn(ctx, followerID, followedID)
	}
	return nil
}

func (m *mockFollowService) Unfollow(ctx context.Context, followerID, followedID int64) error {
	if m.unfollowFn != nil {
		return m.unfollowFn(ctx, followerID, followedID)
	}
	return nil
}

func (m *mockFollowService) Followers(ctx context.Context, userID int64) ([]models.User, error) {
	if m.followersFn != nil {
		return m.followersFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowService) Following(ctx context.Context, userID int64) ([]models.User, error) {
	if m.followingFn != nil {
		return m.followingFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowService) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	return false, nil
}

func (m *mockFollowService) IsFollowedBy(ctx context.Context, userID, otherID int64) (bool, error) {
	return false, nil
}

type mockMessageService struct {
	postFn          func(ctx context.Context, authorID int64, text string) (models.Message, error)
	deleteFn        func(ctx context.Context, messageID, requesterID int64) error
	getFn           func(ctx context.Context, id int64) (*models.Message, error)
	listForAuthorFn func(ctx context.Context, userID int64, limit uint64) ([]models.Message, error)
	feedFn          func(ctx context.Context, userID int64, limit uint64) ([]models.Message, error)
}

func (m *mockMessageService) Post(ctx context.Context, authorID int64, text string) (models.Message, error) {
	if m.postFn != nil {
		return m.postFn(ctx, authorID, text)
	}
	return models.Message{}, nil
}

func (m *mockMessageService) Delete(ctx context.Context, messageID, requesterID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, messageID, requesterID)
	}
	return nil
}

func (m *mockMessageService) Get(ctx context.Context, id int64) (*models.Message, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMessageService) ListForAuthor(ctx context.Context, userID int64, limit uint64) ([]models.Message, error) {
	if m.listForAuthorFn != nil {
		return m.listForAuthorFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockMessageService) Feed(ctx context.Context, userID int64, limit uint64) ([]models.Message, error) {
	if m.feedFn != nil {
		return m.feedFn(ctx, userID, limit)
	}
	return nil, nil
}

// mockAuthService accepts tokens of the form "valid-<id>" unless
// parseTokenFn is set.
type mockAuthService struct {
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.ID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	switch tokenString {
	case "valid-1":
		return models.Token{UserID: 1}, nil
	case "valid-2":
		return models.Token{UserID: 2}, nil
	default:
		return models.Token{}, errInvalidTestToken
	}
}

type mockAppInfoService struct {
	info models.VersionResponse
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.info.Version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.VersionResponse {
	return m.info
}
