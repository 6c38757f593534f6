package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yashwanthgowda1/backend-server/internal/repository"
)

type StatsHandler struct {
	Repo *repository.StatsRepository
}

func NewStatsHandler(repo *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{Repo: repo}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.Repo.Compute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
