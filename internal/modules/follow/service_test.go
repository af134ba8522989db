package follow

import (
	"context"
	"errors"
	"testing"

	"github.com/pretheevi/skillswapserver/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, followerID, followingID int64) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) ListFollowers(ctx context.Context, userID, viewerID int64, limit, offset int) ([]domain.FollowListEntry, error) {
	args := m.Called(ctx, userID, viewerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FollowListEntry), args.Error(1)
}

func (m *MockFollowRepository) ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]domain.FollowListEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FollowListEntry), args.Error(1)
}

type MockUserGate struct {
	mock.Mock
}

func (m *MockUserGate) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestService_Follow_Success(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockUsers := new(MockUserGate)

	mockUsers.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Name: "bob"}, nil)
	mockFollows.On("Create", mock.Anything, int64(1), int64(2)).Return(nil)

	service := NewService(mockFollows, mockUsers)

	err := service.Follow(context.Background(), 1, 2)

	assert.NoError(t, err)
	mockFollows.AssertExpectations(t)
}

func TestService_Follow_Self(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockUsers := new(MockUserGate)
	service := NewService(mockFollows, mockUsers)

	err := service.Follow(context.Background(), 7, 7)

	assert.ErrorIs(t, err, ErrSelfFollow)
	// nothing should reach storage
	mockFollows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	mockUsers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Follow_TargetMissing(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockUsers := new(MockUserGate)

	mockUsers.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockFollows, mockUsers)

	err := service.Follow(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrNotFound)
	mockFollows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Follow_Duplicate(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockUsers := new(MockUserGate)

	mockUsers.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	mockFollows.On("Create", mock.Anything, int64(1), int64(2)).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "user_follows_follower_id_following_id_key"})

	service := NewService(mockFollows, mockUsers)

	err := service.Follow(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestService_Follow_RepoError(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockUsers := new(MockUserGate)

	boom := errors.New("connection reset")
	mockUsers.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	mockFollows.On("Create", mock.Anything, int64(1), int64(2)).Return(boom)

	service := NewService(mockFollows, mockUsers)

	err := service.Follow(context.Background(), 1, 2)

	assert.ErrorIs(t, err, boom)
}

func TestService_Unfollow_Idempotent(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockUsers := new(MockUserGate)

	// repository reports success even when no row existed
	mockFollows.On("Delete", mock.Anything, int64(1), int64(2)).Return(nil)

	service := NewService(mockFollows, mockUsers)

	assert.NoError(t, service.Unfollow(context.Background(), 1, 2))
	assert.NoError(t, service.Unfollow(context.Background(), 1, 2))
}

func TestService_Counts(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockUsers := new(MockUserGate)

	mockFollows.On("CountFollowers", mock.Anything, int64(5)).Return(int64(3), nil)
	mockFollows.On("CountFollowing", mock.Anything, int64(5)).Return(int64(12), nil)

	service := NewService(mockFollows, mockUsers)

	counts, err := service.Counts(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), counts.Followers)
	assert.Equal(t, int64(12), counts.Following)
}

func TestService_Followers_DefaultsPagination(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockUsers := new(MockUserGate)

	entries := []domain.FollowListEntry{{ID: 2, Name: "bob", IsFollowing: true}}
	mockFollows.On("ListFollowers", mock.Anything, int64(1), int64(9), defaultPageSize, 0).Return(entries, nil)

	service := NewService(mockFollows, mockUsers)

	got, err := service.Followers(context.Background(), 1, 9, 0, -5)

	assert.NoError(t, err)
	assert.Equal(t, entries, got)
	mockFollows.AssertExpectations(t)
}

func TestService_Following_MarksAllFollowed(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockUsers := new(MockUserGate)

	entries := []domain.FollowListEntry{
		{ID: 2, Name: "bob", IsFollowing: true},
		{ID: 3, Name: "carol", IsFollowing: true},
	}
	mockFollows.On("ListFollowing", mock.Anything, int64(1), 10, 0).Return(entries, nil)

	service := NewService(mockFollows, mockUsers)

	got, err := service.Following(context.Background(), 1, 10, 0)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	for _, e := range got {
		assert.True(t, e.IsFollowing)
	}
}
