package skill

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pretheevi/skillswapserver/internal/domain"
	"github.com/pretheevi/skillswapserver/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockSkillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) ListAll(ctx context.Context) ([]domain.SkillWithOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SkillWithOwner), args.Error(1)
}

func (m *MockSkillRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.SkillWithOwner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SkillWithOwner), args.Error(1)
}

func (m *MockSkillRepo) Update(ctx context.Context, s *domain.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMediaRepo struct {
	mock.Mock
}

func (m *MockMediaRepo) Create(ctx context.Context, media *domain.SkillMedia) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepo) GetBySkillID(ctx context.Context, skillID int64) (*domain.SkillMedia, error) {
	args := m.Called(ctx, skillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SkillMedia), args.Error(1)
}

func (m *MockMediaRepo) Replace(ctx context.Context, media *domain.SkillMedia) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepo) DeleteBySkillID(ctx context.Context, skillID int64) error {
	args := m.Called(ctx, skillID)
	return args.Error(0)
}

type MockCommentReader struct {
	mock.Mock
}

func (m *MockCommentReader) CountBySkillID(ctx context.Context, skillID int64) (int64, error) {
	args := m.Called(ctx, skillID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentReader) ListBySkillID(ctx context.Context, skillID int64) ([]domain.CommentWithAuthor, error) {
	args := m.Called(ctx, skillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommentWithAuthor), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Upload(ctx context.Context, r io.Reader, filename, contentType string) (*storage.StoredObject, error) {
	args := m.Called(ctx, r, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.StoredObject), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

func newTestService() (*Service, *MockSkillRepo, *MockMediaRepo, *MockCommentReader, *MockStore) {
	skills := new(MockSkillRepo)
	media := new(MockMediaRepo)
	comments := new(MockCommentReader)
	store := new(MockStore)
	return NewService(skills, media, comments, store), skills, media, comments, store
}

func TestService_ListAll_Decorates(t *testing.T) {
	service, skills, media, comments, _ := newTestService()

	rows := []domain.SkillWithOwner{
		{Skill: domain.Skill{ID: 1, Title: "React.js Developer"}, OwnerName: "alice"},
		{Skill: domain.Skill{ID: 2, Title: "UI/UX Designer"}, OwnerName: "bob"},
	}
	skills.On("ListAll", mock.Anything).Return(rows, nil)
	media.On("GetBySkillID", mock.Anything, int64(1)).Return(&domain.SkillMedia{SkillID: 1, MediaURL: "/static/a.png"}, nil)
	media.On("GetBySkillID", mock.Anything, int64(2)).Return(nil, nil)
	comments.On("CountBySkillID", mock.Anything, int64(1)).Return(int64(4), nil)
	comments.On("CountBySkillID", mock.Anything, int64(2)).Return(int64(0), nil)

	out, err := service.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, int64(4), out[0].CommentCount)
	assert.NotNil(t, out[0].Media)
	assert.Nil(t, out[1].Media)
	assert.Equal(t, int64(0), out[1].CommentCount)
}

func TestService_Create_InvalidCategory(t *testing.T) {
	service, skills, _, _, _ := newTestService()

	req := CreateSkillRequest{Title: "Cooking", Category: "cooking", Description: "pasta"}
	_, err := service.Create(context.Background(), 1, req, nil)

	assert.ErrorIs(t, err, ErrInvalidCategory)
	skills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DefaultsLevel(t *testing.T) {
	service, skills, _, _, _ := newTestService()

	skills.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Skill) bool {
		return s.Level == domain.LevelBeginner
	})).Return(nil)

	req := CreateSkillRequest{Title: "React.js Developer", Category: "web", Description: "hooks and suspense"}
	id, err := service.Create(context.Background(), 1, req, nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	skills.AssertExpectations(t)
}

func TestService_Create_WithMedia(t *testing.T) {
	service, skills, media, _, store := newTestService()

	skills.On("Create", mock.Anything, mock.Anything).Return(nil)
	store.On("Upload", mock.Anything, mock.Anything, "demo.png", "image/png").
		Return(&storage.StoredObject{URL: "/static/uploads/demo.png", PublicID: "2026/01/02/demo.png"}, nil)
	media.On("Create", mock.Anything, mock.MatchedBy(func(sm *domain.SkillMedia) bool {
		return sm.SkillID == 42 && sm.MediaType == domain.MediaImage && sm.PublicID == "2026/01/02/demo.png"
	})).Return(nil)

	payload := &MediaPayload{Reader: strings.NewReader("png-bytes"), Filename: "demo.png", ContentType: "image/png"}
	req := CreateSkillRequest{Title: "React.js Developer", Category: "web", Level: "expert", Description: "demo"}

	id, err := service.Create(context.Background(), 1, req, payload)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	media.AssertExpectations(t)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Create_MediaRowFails_CompensatesUpload(t *testing.T) {
	service, skills, media, _, store := newTestService()

	skills.On("Create", mock.Anything, mock.Anything).Return(nil)
	store.On("Upload", mock.Anything, mock.Anything, "demo.mp4", "video/mp4").
		Return(&storage.StoredObject{URL: "/static/uploads/demo.mp4", PublicID: "2026/01/02/demo.mp4"}, nil)
	rowErr := errors.New("insert failed")
	media.On("Create", mock.Anything, mock.Anything).Return(rowErr)
	store.On("Delete", mock.Anything, "2026/01/02/demo.mp4").Return(nil)

	payload := &MediaPayload{Reader: strings.NewReader("mp4-bytes"), Filename: "demo.mp4", ContentType: "video/mp4"}
	req := CreateSkillRequest{Title: "Flutter App Dev", Category: "mobile", Level: "intermediate", Description: "demo"}

	_, err := service.Create(context.Background(), 1, req, payload)

	assert.ErrorIs(t, err, rowErr)
	store.AssertCalled(t, "Delete", mock.Anything, "2026/01/02/demo.mp4")
}

func TestService_Create_UnsupportedMediaType(t *testing.T) {
	service, skills, _, _, store := newTestService()

	payload := &MediaPayload{Reader: strings.NewReader("%PDF"), Filename: "cv.pdf", ContentType: "application/pdf"}
	req := CreateSkillRequest{Title: "English Tutor", Category: "language", Level: "expert", Description: "demo"}

	_, err := service.Create(context.Background(), 1, req, payload)

	assert.ErrorIs(t, err, ErrUnsupportedMedia)
	skills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_Forbidden(t *testing.T) {
	service, skills, _, _, _ := newTestService()

	skills.On("GetByID", mock.Anything, int64(42)).Return(&domain.Skill{ID: 42, UserID: 1}, nil)

	req := UpdateSkillRequest{Title: "Hijacked", Category: "web", Level: "expert", Description: "x"}
	err := service.Update(context.Background(), 42, 99, req, nil)

	assert.ErrorIs(t, err, ErrForbidden)
	skills.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	service, skills, _, _, _ := newTestService()

	skills.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	req := UpdateSkillRequest{Title: "Missing", Category: "web", Level: "expert", Description: "x"}
	err := service.Update(context.Background(), 404, 1, req, nil)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_NoPayloadKeepsMedia(t *testing.T) {
	service, skills, media, _, store := newTestService()

	skills.On("GetByID", mock.Anything, int64(42)).Return(&domain.Skill{ID: 42, UserID: 1}, nil)
	skills.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Skill) bool {
		return s.Title == "Renamed" && s.Level == domain.LevelExpert
	})).Return(nil)

	req := UpdateSkillRequest{Title: "Renamed", Category: "web", Level: "expert", Description: "y"}
	err := service.Update(context.Background(), 42, 1, req, nil)

	assert.NoError(t, err)
	media.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Update_ReplacesMedia_DeletesOldOnce(t *testing.T) {
	service, skills, media, _, store := newTestService()

	skills.On("GetByID", mock.Anything, int64(42)).Return(&domain.Skill{ID: 42, UserID: 1}, nil)
	skills.On("Update", mock.Anything, mock.Anything).Return(nil)
	media.On("GetBySkillID", mock.Anything, int64(42)).
		Return(&domain.SkillMedia{SkillID: 42, PublicID: "old-handle", MediaURL: "/static/old.png"}, nil)
	store.On("Upload", mock.Anything, mock.Anything, "new.png", "image/png").
		Return(&storage.StoredObject{URL: "/static/new.png", PublicID: "new-handle"}, nil)
	media.On("Replace", mock.Anything, mock.MatchedBy(func(sm *domain.SkillMedia) bool {
		return sm.PublicID == "new-handle"
	})).Return(nil)
	store.On("Delete", mock.Anything, "old-handle").Return(nil)

	payload := &MediaPayload{Reader: strings.NewReader("png"), Filename: "new.png", ContentType: "image/png"}
	req := UpdateSkillRequest{Title: "React.js Developer", Category: "web", Level: "expert", Description: "z"}

	err := service.Update(context.Background(), 42, 1, req, payload)

	assert.NoError(t, err)
	store.AssertNumberOfCalls(t, "Delete", 1)
}

func TestService_Update_ReplaceRowFails_KeepsOldMedia(t *testing.T) {
	service, skills, media, _, store := newTestService()

	skills.On("GetByID", mock.Anything, int64(42)).Return(&domain.Skill{ID: 42, UserID: 1}, nil)
	skills.On("Update", mock.Anything, mock.Anything).Return(nil)
	media.On("GetBySkillID", mock.Anything, int64(42)).
		Return(&domain.SkillMedia{SkillID: 42, PublicID: "old-handle"}, nil)
	store.On("Upload", mock.Anything, mock.Anything, "new.png", "image/png").
		Return(&storage.StoredObject{URL: "/static/new.png", PublicID: "new-handle"}, nil)
	rowErr := errors.New("update failed")
	media.On("Replace", mock.Anything, mock.Anything).Return(rowErr)
	store.On("Delete", mock.Anything, "new-handle").Return(nil)

	payload := &MediaPayload{Reader: strings.NewReader("png"), Filename: "new.png", ContentType: "image/png"}
	req := UpdateSkillRequest{Title: "React.js Developer", Category: "web", Level: "expert", Description: "z"}

	err := service.Update(context.Background(), 42, 1, req, payload)

	assert.ErrorIs(t, err, rowErr)
	// the new object is rolled back, the old one survives
	store.AssertCalled(t, "Delete", mock.Anything, "new-handle")
	store.AssertNotCalled(t, "Delete", mock.Anything, "old-handle")
}

func TestService_Delete_RemovesObjectThenRow(t *testing.T) {
	service, skills, media, _, store := newTestService()

	skills.On("GetByID", mock.Anything, int64(42)).Return(&domain.Skill{ID: 42, UserID: 1}, nil)
	media.On("GetBySkillID", mock.Anything, int64(42)).
		Return(&domain.SkillMedia{SkillID: 42, PublicID: "handle"}, nil)
	store.On("Delete", mock.Anything, "handle").Return(nil)
	skills.On("Delete", mock.Anything, int64(42)).Return(nil)

	err := service.Delete(context.Background(), 42, 1)

	assert.NoError(t, err)
	skills.AssertExpectations(t)
}

func TestService_Delete_ObjectDeleteFailureIsNotFatal(t *testing.T) {
	service, skills, media, _, store := newTestService()

	skills.On("GetByID", mock.Anything, int64(42)).Return(&domain.Skill{ID: 42, UserID: 1}, nil)
	media.On("GetBySkillID", mock.Anything, int64(42)).
		Return(&domain.SkillMedia{SkillID: 42, PublicID: "handle"}, nil)
	store.On("Delete", mock.Anything, "handle").Return(errors.New("backend down"))
	skills.On("Delete", mock.Anything, int64(42)).Return(nil)

	err := service.Delete(context.Background(), 42, 1)

	assert.NoError(t, err)
	skills.AssertCalled(t, "Delete", mock.Anything, int64(42))
}

func TestService_GetDetail_NotFound(t *testing.T) {
	service, skills, _, _, _ := newTestService()

	skills.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetDetail(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetDetail_Success(t *testing.T) {
	service, skills, media, comments, _ := newTestService()

	skills.On("GetByID", mock.Anything, int64(1)).Return(&domain.Skill{ID: 1, Title: "Python Data Analyst"}, nil)
	media.On("GetBySkillID", mock.Anything, int64(1)).Return(nil, nil)
	comments.On("CountBySkillID", mock.Anything, int64(1)).Return(int64(2), nil)
	comments.On("ListBySkillID", mock.Anything, int64(1)).Return([]domain.CommentWithAuthor{
		{Comment: domain.Comment{ID: 10, SkillID: 1, Text: "nice"}, UserName: "bob"},
		{Comment: domain.Comment{ID: 11, SkillID: 1, Text: "cool"}, UserName: "carol"},
	}, nil)

	detail, err := service.GetDetail(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), detail.CommentCount)
	assert.Len(t, detail.Comments, 2)
	assert.Nil(t, detail.Media)
}
