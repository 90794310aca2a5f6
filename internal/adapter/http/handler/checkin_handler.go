package handler

import (
	"strconv"

	"habit-agent/internal/adapter/http/dto"
	"habit-agent/internal/adapter/http/middleware"
	"habit-agent/internal/core/domain"
	"habit-agent/internal/core/ports"
	"habit-agent/pkg/apperror"
	"habit-agent/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 30

// CheckInHandler serves the check-in endpoints for every verification source.
type CheckInHandler struct {
	svc ports.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler.
func NewCheckInHandler(svc ports.CheckInService) *CheckInHandler {
	return &CheckInHandler{svc: svc}
}

// GitHub handles GET /api/v1/checkins/github.
func (h *CheckInHandler) GitHub(c *gin.Context) {
	h.activity(c, domain.SourceCommitActivity)
}

// Strava handles GET /api/v1/checkins/strava.
func (h *CheckInHandler) Strava(c *gin.Context) {
	h.activity(c, domain.SourceRunActivity)
}

func (h *CheckInHandler) activity(c *gin.Context, kind domain.SourceKind) {
	var q dto.CheckInQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.checkIn(c, ports.CheckInRequest{
		Wallet:      dto.NormalizeWallet(q.WalletAddress),
		Source:      kind,
		ChallengeID: q.ChallengeID,
	})
}

// Reading handles POST /api/v1/checkins/reading.
func (h *CheckInHandler) Reading(c *gin.Context) {
	var req dto.ReadingCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	h.checkIn(c, ports.CheckInRequest{
		Wallet:       dto.NormalizeWallet(req.WalletAddress),
		Source:       domain.SourceGradedNote,
		ChallengeID:  req.ChallengeID,
		ProofContent: req.Content,
	})
}

func (h *CheckInHandler) checkIn(c *gin.Context, req ports.CheckInRequest) {
	c.Set(middleware.CtxWallet, req.Wallet)
	if req.ChallengeID != nil {
		c.Set(middleware.CtxChallenge, strconv.FormatInt(*req.ChallengeID, 10))
	}

	res, err := h.svc.CheckIn(c.Request.Context(), req)
	if err != nil {
		c.Set(middleware.CtxOutcome, apperror.CodeOf(err))
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxOutcome, string(res.Outcome))
	response.OK(c, dto.NewCheckInResponse(res))
}

// ReadingStatus handles GET /api/v1/checkins/reading/status.
func (h *CheckInHandler) ReadingStatus(c *gin.Context) {
	var q dto.ReadingStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	status, err := h.svc.TodayStatus(c.Request.Context(), dto.NormalizeWallet(q.WalletAddress), *q.ChallengeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TodayStatusResponse{Date: status.Date, CheckedIn: status.CheckedIn})
}

// History handles GET /api/v1/checkins.
func (h *CheckInHandler) History(c *gin.Context) {
	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultHistoryLimit
	}

	wallet := dto.NormalizeWallet(q.WalletAddress)
	recs, err := h.svc.History(c.Request.Context(), wallet, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewHistoryResponse(wallet, recs))
}
