package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yashwanthgowda1/backend-server/internal/apperror"
	"github.com/Yashwanthgowda1/backend-server/internal/repository"
)

type AttendanceHandler struct {
	Repo *repository.AttendanceRepository
}

func NewAttendanceHandler(repo *repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{Repo: repo}
}

type UpsertAttendanceRequest struct {
	EmpID          string `json:"emp_id"`
	EmpName        string `json:"emp_name"`
	AttendanceType string `json:"attendance_type"`
	Date           string `json:"date"`
}

func (h *AttendanceHandler) Upsert(c *gin.Context) {
	var req UpsertAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	id, err := h.Repo.Upsert(c.Request.Context(), req.EmpID, req.EmpName, req.AttendanceType, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "attendance recorded",
		"id":      id,
	})
}

func (h *AttendanceHandler) ListByEmployee(c *gin.Context) {
	records, err := h.Repo.ListByEmployee(c.Request.Context(), c.Param("emp_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) ListFiltered(c *gin.Context) {
	filter := repository.Filter{
		StartDate: strings.TrimSpace(c.Query("start_date")),
		EndDate:   strings.TrimSpace(c.Query("end_date")),
		Type:      strings.TrimSpace(c.Query("attendance_type")),
	}

	records, err := h.Repo.ListFiltered(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) ListRange(c *gin.Context) {
	records, err := h.Repo.ListRange(
		c.Request.Context(),
		c.Param("emp_id"),
		c.Param("start_date"),
		c.Param("end_date"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	idStr := strings.TrimSpace(c.Param("id"))
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id64 == 0 {
		respondError(c, apperror.New(apperror.CodeValidation, "id must be a positive integer"))
		return
	}

	if err := h.Repo.DeleteByID(c.Request.Context(), uint(id64)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "attendance record deleted"})
}
