package skill

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/pretheevi/skillswapserver/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxMediaSize = 50 * 1024 * 1024 // 50 MB

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/skills", h.List)
	protected.GET("/skills/:id", h.Detail)
	protected.GET("/my-skills", h.MySkills)
	protected.POST("/skills", h.Create)
	protected.PUT("/skills/:id", h.Update)
	protected.DELETE("/skills/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	skills, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, skills)
}

func (h *Handler) MySkills(c *gin.Context) {
	skills, err := h.svc.ListByUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, skills)
}

func (h *Handler) Detail(c *gin.Context) {
	skillID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || skillID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid skill ID")
		return
	}

	detail, err := h.svc.GetDetail(c.Request.Context(), skillID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Skill not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	payload, cleanup, err := mediaFromForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_MEDIA", err.Error())
		return
	}
	defer cleanup()

	id, err := h.svc.Create(c.Request.Context(), c.GetInt64("user_id"), req, payload)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) Update(c *gin.Context) {
	skillID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || skillID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid skill ID")
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	payload, cleanup, err := mediaFromForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_MEDIA", err.Error())
		return
	}
	defer cleanup()

	if err := h.svc.Update(c.Request.Context(), skillID, c.GetInt64("user_id"), req, payload); err != nil {
		h.writeMutationError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Skill updated"})
}

func (h *Handler) Delete(c *gin.Context) {
	skillID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || skillID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid skill ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), skillID, c.GetInt64("user_id")); err != nil {
		h.writeMutationError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Skill deleted"})
}

func (h *Handler) writeMutationError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Skill not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
	case ErrInvalidCategory:
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Invalid category selected")
	case ErrInvalidLevel:
		response.Error(c, http.StatusBadRequest, "INVALID_LEVEL", "Invalid level selected")
	case ErrUnsupportedMedia:
		response.Error(c, http.StatusBadRequest, "UNSUPPORTED_MEDIA", "Only image and video media are accepted")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

// mediaFromForm extracts the optional "media" form file. The MIME type is
// sniffed from the first bytes rather than trusted from the client.
func mediaFromForm(c *gin.Context) (*MediaPayload, func(), error) {
	noop := func() {}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		// No file attached.
		return nil, noop, nil
	}
	if fileHeader.Size == 0 || fileHeader.Size > maxMediaSize {
		return nil, noop, errors.New("media file is empty or too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, noop, err
	}

	contentType, err := sniffContentType(file)
	if err != nil {
		file.Close()
		return nil, noop, err
	}

	payload := &MediaPayload{
		Reader:      file,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
	}
	return payload, func() { file.Close() }, nil
}

func sniffContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	contentType := http.DetectContentType(buf[:n])
	return strings.Split(contentType, ";")[0], nil
}
