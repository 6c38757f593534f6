package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yashwanthgowda1/backend-server/internal/repository"
)

type EmployeeHandler struct {
	Repo *repository.EmployeeRepository
}

func NewEmployeeHandler(repo *repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{Repo: repo}
}

type UpsertEmployeeRequest struct {
	EmpID string `json:"emp_id"`
	Name  string `json:"name"`
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Upsert(c *gin.Context) {
	var req UpsertEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	empID, err := h.Repo.Upsert(c.Request.Context(), req.EmpID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "employee saved",
		"emp_id":  empID,
	})
}
