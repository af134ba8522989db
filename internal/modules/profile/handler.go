package profile

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pretheevi/skillswapserver/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 * 1024 * 1024 // 5 MB

var (
	errTooLarge = errors.New("avatar file is empty or too large")
	errNotImage = errors.New("avatar must be an image")
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/profile", h.Own)
	protected.GET("/profileById/:id", h.ByID)
	protected.POST("/profile", h.Update)
	protected.DELETE("/profile/avatar", h.DeleteAvatar)
	protected.GET("/users/search", h.Search)
}

func (h *Handler) Own(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) ByID(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	p, err := h.svc.GetByID(c.Request.Context(), userID, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	avatar, cleanup, err := avatarFromForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_MEDIA", err.Error())
		return
	}
	defer cleanup()

	p, err := h.svc.Update(c.Request.Context(), c.GetInt64("user_id"), req, avatar)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) DeleteAvatar(c *gin.Context) {
	if err := h.svc.DeleteAvatar(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		if err == ErrNoAvatar {
			response.Error(c, http.StatusBadRequest, "NO_AVATAR", "No avatar to delete")
			return
		}
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Avatar deleted successfully"})
}

func (h *Handler) Search(c *gin.Context) {
	results, err := h.svc.Search(c.Request.Context(), c.Query("q"), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, results)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if err == ErrNotFound {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
}

// avatarFromForm extracts the optional "avatar" image. Only image MIME
// types are accepted.
func avatarFromForm(c *gin.Context) (*AvatarPayload, func(), error) {
	noop := func() {}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return nil, noop, nil
	}
	if fileHeader.Size == 0 || fileHeader.Size > maxAvatarSize {
		return nil, noop, errTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, noop, err
	}

	buf := make([]byte, 512)
	n, readErr := file.Read(buf)
	if readErr != nil && readErr != io.EOF {
		file.Close()
		return nil, noop, readErr
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, noop, err
	}

	contentType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !strings.HasPrefix(contentType, "image/") {
		file.Close()
		return nil, noop, errNotImage
	}

	payload := &AvatarPayload{
		Reader:      file,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
	}
	return payload, func() { file.Close() }, nil
}
