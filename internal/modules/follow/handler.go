package follow

import (
	"net/http"
	"strconv"

	"github.com/pretheevi/skillswapserver/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/users/:id/follow", h.Follow)
	protected.DELETE("/users/:id/follow", h.Unfollow)
	protected.GET("/profile/followers", h.OwnFollowers)
	protected.GET("/profile/followers/byId/:id", h.FollowersByID)
	protected.GET("/profile/following", h.OwnFollowing)
	protected.GET("/profile/following/byId/:id", h.FollowingByID)
}

func (h *Handler) Follow(c *gin.Context) {
	followerID := c.GetInt64("user_id")
	followingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || followingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	switch err := h.svc.Follow(c.Request.Context(), followerID, followingID); err {
	case nil:
		response.Success(c, http.StatusOK, gin.H{"message": "Followed successfully"})
	case ErrSelfFollow:
		response.Error(c, http.StatusBadRequest, "INVALID_OPERATION", "You cannot follow yourself")
	case ErrAlreadyFollowing:
		response.Error(c, http.StatusConflict, "ALREADY_FOLLOWING", "Already following")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

func (h *Handler) Unfollow(c *gin.Context) {
	followerID := c.GetInt64("user_id")
	followingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || followingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	if err := h.svc.Unfollow(c.Request.Context(), followerID, followingID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}

func (h *Handler) OwnFollowers(c *gin.Context) {
	userID := c.GetInt64("user_id")
	h.listFollowers(c, userID, userID)
}

func (h *Handler) FollowersByID(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}
	h.listFollowers(c, userID, c.GetInt64("user_id"))
}

func (h *Handler) listFollowers(c *gin.Context, userID, viewerID int64) {
	limit, offset := pagination(c)
	followers, err := h.svc.Followers(c.Request.Context(), userID, viewerID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, followers)
}

func (h *Handler) OwnFollowing(c *gin.Context) {
	h.listFollowing(c, c.GetInt64("user_id"))
}

func (h *Handler) FollowingByID(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}
	h.listFollowing(c, userID)
}

func (h *Handler) listFollowing(c *gin.Context, userID int64) {
	limit, offset := pagination(c)
	following, err := h.svc.Following(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, following)
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
