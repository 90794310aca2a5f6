package handler

import (
	"habit-agent/internal/adapter/http/dto"
	"habit-agent/internal/core/ports"
	"habit-agent/pkg/apperror"
	"habit-agent/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConnectionHandler reports which providers a wallet has linked.
type ConnectionHandler struct {
	repo ports.ConnectionRepository
}

func NewConnectionHandler(repo ports.ConnectionRepository) *ConnectionHandler {
	return &ConnectionHandler{repo: repo}
}

// GitHubStatus handles GET /api/v1/connections/github/status.
func (h *ConnectionHandler) GitHubStatus(c *gin.Context) {
	var q dto.WalletQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	conn, err := h.repo.GetGitHub(c.Request.Context(), dto.NormalizeWallet(q.WalletAddress))
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if conn == nil {
		response.OK(c, dto.GitHubConnectionResponse{Connected: false})
		return
	}

	response.OK(c, dto.GitHubConnectionResponse{
		Connected:  true,
		Username:   conn.GitHubUsername,
		AvatarURL:  conn.GitHubAvatarURL,
		Repository: conn.Repository,
	})
}
