package comment

import (
	"context"
	"testing"

	"github.com/pretheevi/skillswapserver/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListBySkillID(ctx context.Context, skillID int64) ([]domain.CommentWithAuthor, error) {
	args := m.Called(ctx, skillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommentWithAuthor), args.Error(1)
}

func (m *MockCommentRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.CommentWithSkill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommentWithSkill), args.Error(1)
}

func (m *MockCommentRepository) UpdateText(ctx context.Context, id int64, text string) error {
	args := m.Called(ctx, id, text)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSkillGate struct {
	mock.Mock
}

func (m *MockSkillGate) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	comments := new(MockCommentRepository)
	skills := new(MockSkillGate)

	skills.On("GetByID", mock.Anything, int64(5)).Return(&domain.Skill{ID: 5}, nil)
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.SkillID == 5 && c.UserID == 1 && c.Text == "great session"
	})).Return(nil)

	service := NewService(comments, skills)

	c, err := service.Create(context.Background(), 1, CreateCommentRequest{SkillID: 5, Text: "  great session  "})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), c.ID)
	assert.Equal(t, "great session", c.Text)
}

func TestService_Create_EmptyText(t *testing.T) {
	comments := new(MockCommentRepository)
	skills := new(MockSkillGate)
	service := NewService(comments, skills)

	_, err := service.Create(context.Background(), 1, CreateCommentRequest{SkillID: 5, Text: "   "})

	assert.ErrorIs(t, err, ErrEmptyText)
	skills.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Create_SkillMissing(t *testing.T) {
	comments := new(MockCommentRepository)
	skills := new(MockSkillGate)

	skills.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(comments, skills)

	_, err := service.Create(context.Background(), 1, CreateCommentRequest{SkillID: 404, Text: "hello"})

	assert.ErrorIs(t, err, ErrNotFound)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdateText_OnlyAuthor(t *testing.T) {
	comments := new(MockCommentRepository)
	skills := new(MockSkillGate)

	comments.On("GetByID", mock.Anything, int64(77)).Return(&domain.Comment{ID: 77, UserID: 1}, nil)

	service := NewService(comments, skills)

	err := service.UpdateText(context.Background(), 77, 99, UpdateCommentRequest{Text: "edited"})

	assert.ErrorIs(t, err, ErrForbidden)
	comments.AssertNotCalled(t, "UpdateText", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateText_Success(t *testing.T) {
	comments := new(MockCommentRepository)
	skills := new(MockSkillGate)

	comments.On("GetByID", mock.Anything, int64(77)).Return(&domain.Comment{ID: 77, UserID: 1}, nil)
	comments.On("UpdateText", mock.Anything, int64(77), "edited").Return(nil)

	service := NewService(comments, skills)

	err := service.UpdateText(context.Background(), 77, 1, UpdateCommentRequest{Text: " edited "})

	assert.NoError(t, err)
	comments.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	comments := new(MockCommentRepository)
	skills := new(MockSkillGate)

	comments.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(comments, skills)

	err := service.Delete(context.Background(), 404, 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_Success(t *testing.T) {
	comments := new(MockCommentRepository)
	skills := new(MockSkillGate)

	comments.On("GetByID", mock.Anything, int64(77)).Return(&domain.Comment{ID: 77, UserID: 1}, nil)
	comments.On("Delete", mock.Anything, int64(77)).Return(nil)

	service := NewService(comments, skills)

	assert.NoError(t, service.Delete(context.Background(), 77, 1))
	comments.AssertExpectations(t)
}
