package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recruitly/talentflow/pkg/model"
	"github.com/recruitly/talentflow/pkg/response"
)

const dateLayout = "2006-01-02"

func (h *Handler) ScheduleInterview(c *gin.Context) {
	var req model.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	iv, err := h.Engine.Schedule(c.Request.Context(), claims.UserID, claims.Email, req)
	if err != nil {
		h.Logger.Sugar().Warnw("schedule interview failed", "candidate_id", req.CandidateID, "job_id", req.JobID, "err", err)
		response.FromError(c, err)
		return
	}

	response.Created(c, iv)
}

func (h *Handler) UpdateInterview(c *gin.Context) {
	var req model.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	iv, err := h.Engine.Update(c.Request.Context(), req)
	if err != nil {
		h.Logger.Sugar().Warnw("update interview failed", "candidate_id", req.CandidateID, "job_id", req.JobID, "err", err)
		response.FromError(c, err)
		return
	}

	response.OK(c, iv)
}

func (h *Handler) DeleteInterview(c *gin.Context) {
	candidateID := c.Param("candidate_id")
	jobID := c.Param("job_id")

	if err := h.Engine.Delete(c.Request.Context(), candidateID, jobID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, "interview deleted successfully")
}

func (h *Handler) GetInterview(c *gin.Context) {
	iv, err := h.Engine.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, iv)
}

func (h *Handler) ListInterviews(c *gin.Context) {
	ivs, err := h.Engine.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, ivs)
}

func (h *Handler) ListByCandidate(c *gin.Context) {
	ivs, err := h.Engine.ListByCandidate(c.Request.Context(), c.Param("candidate_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, ivs)
}

func (h *Handler) ListByUser(c *gin.Context) {
	ivs, err := h.Engine.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, ivs)
}

func (h *Handler) GetByCandidateAndJob(c *gin.Context) {
	iv, err := h.Engine.GetByCandidateAndJob(c.Request.Context(), c.Param("candidate_id"), c.Param("job_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, iv)
}

func (h *Handler) GetInterviewStatus(c *gin.Context) {
	status, err := h.Engine.CurrentStatus(c.Request.Context(), c.Param("candidate_id"), c.Param("job_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (h *Handler) ListByDateRange(c *gin.Context) {
	var q model.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	start, err := time.Parse(dateLayout, q.StartDate)
	if err != nil {
		response.BadRequest(c, "start_date must be in YYYY-MM-DD format")
		return
	}
	end, err := time.Parse(dateLayout, q.EndDate)
	if err != nil {
		response.BadRequest(c, "end_date must be in YYYY-MM-DD format")
		return
	}

	ivs, err := h.Engine.ListByDateRange(c.Request.Context(), start, end, q.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, ivs)
}
