package api

import (
	"net/http"
	"time"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/TJurijs/5esrd-api/token"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type reloadResponse struct {
	Total      int                `json:"total"`
	Counts     map[rules.Kind]int `json:"counts"`
	ReloadedBy string             `json:"reloaded_by"`
	ReloadedAt time.Time          `json:"reloaded_at"`
}

// reloadDataset swaps in a freshly loaded dataset and drops every cached response.
// An empty reload is refused so a broken data source cannot blank the service.
func (s *Service) reloadDataset(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if s.source == nil {
		ctx.JSON(http.StatusServiceUnavailable, NewErrorResponse(ErrReloadDisabled))
		return
	}

	ds, err := s.source.LoadDataset(ctx)
	if err != nil {
		log.Error().Err(err).Msg("cannot reload dataset")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	total := ds.Total()
	if total == 0 {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrEmptyReload))
		return
	}

	s.catalog.Replace(ds)

	if err := s.cache.Flush(ctx); err != nil {
		log.Warn().Err(err).Msg("cannot flush response cache after reload")
	}

	log.Info().
		Str("subject", authPayload.Subject).
		Int("total", total).
		Msg("dataset reloaded")

	ctx.JSON(http.StatusOK, reloadResponse{
		Total:      total,
		Counts:     ds.Counts(),
		ReloadedBy: authPayload.Subject,
		ReloadedAt: time.Now().UTC(),
	})
}
