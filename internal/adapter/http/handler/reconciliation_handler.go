package handler

import (
	"habit-agent/internal/adapter/http/dto"
	"habit-agent/internal/core/ports"
	"habit-agent/pkg/apperror"
	"habit-agent/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultOrphanLimit = 100

// ReconciliationHandler exposes the orphaned-transaction journal to operators.
// Entries are listed newest first; resolving them is out of scope here.
type ReconciliationHandler struct {
	journal ports.ReconciliationJournal
}

func NewReconciliationHandler(journal ports.ReconciliationJournal) *ReconciliationHandler {
	return &ReconciliationHandler{journal: journal}
}

// List handles GET /api/v1/admin/reconciliation.
func (h *ReconciliationHandler) List(c *gin.Context) {
	var q dto.ReconciliationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultOrphanLimit
	}

	orphans, err := h.journal.List(c.Request.Context(), q.Limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.ReconciliationResponse{Orphans: orphans, Count: len(orphans)})
}
