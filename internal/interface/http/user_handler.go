package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/grigorev/user-directory/internal/application"
	"github.com/grigorev/user-directory/internal/domain/entity"
	"github.com/grigorev/user-directory/pkg/response"
)

type UserHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type bulkIDsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Err(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	out := make([]entity.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	c.JSON(http.StatusOK, out)
}

// Block POST /api/users/block
func (h *UserHandler) Block(c *gin.Context) {
	h.bulk(c, h.Svc.Block, "Users blocked successfully", "Failed to block users")
}

// Unblock POST /api/users/unblock
func (h *UserHandler) Unblock(c *gin.Context) {
	h.bulk(c, h.Svc.Unblock, "Users unblocked successfully", "Failed to unblock users")
}

// Delete POST /api/users/delete
func (h *UserHandler) Delete(c *gin.Context) {
	h.bulk(c, h.Svc.Delete, "Users deleted successfully", "Failed to delete users")
}

type bulkOp func(ctx context.Context, ids []int64) (int64, error)

// bulk shares the shape of the three transition endpoints. Unknown ids
// are not reported back; the caller only sees success or failure.
func (h *UserHandler) bulk(c *gin.Context, op bulkOp, okMsg, failMsg string) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "No user IDs provided")
		return
	}
	affected, err := op(c.Request.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, application.ErrNoIDs) {
			response.Err(c, http.StatusBadRequest, "No user IDs provided")
			return
		}
		h.Logger.WithError(err).Error("bulk status update failed")
		response.Err(c, http.StatusInternalServerError, failMsg)
		return
	}
	h.Logger.WithFields(logrus.Fields{"affected": affected}).Debug("bulk status update done")
	response.Message(c, http.StatusOK, okMsg)
}
