package api

import (
	"net/http"
	"time"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status    string             `json:"status"`
	Timestamp string             `json:"timestamp"`
	Total     int                `json:"total"`
	Counts    map[rules.Kind]int `json:"counts"`
}

func (s *Service) getHealth(ctx *gin.Context) {
	counts := s.catalog.Stats()

	total := 0
	for _, n := range counts {
		total += n
	}

	ctx.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Total:     total,
		Counts:    counts,
	})
}
