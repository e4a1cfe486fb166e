package api

import (
	"net/http"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/gin-gonic/gin"
)

// backgrounds and races are searchable by name and source only
type searchByNameRequest struct {
	pageRequest
	Name   string `form:"name" json:"name"`
	Source string `form:"source" json:"source"`
}

func (r searchByNameRequest) filter() catalog.NameFilter {
	return catalog.NameFilter{Name: r.Name, Source: r.Source}
}

func (s *Service) searchBackgrounds(ctx *gin.Context) {
	var req searchByNameRequest
	if !bindQuery(ctx, &req) {
		return
	}

	ctx.JSON(http.StatusOK, s.catalog.SearchBackgrounds(req.filter(), req.page()))
}

func (s *Service) getBackground(ctx *gin.Context) {
	name := nameParam(ctx)
	background, ok := s.catalog.Background(name)
	respondEntity(s, ctx, rules.KindBackground, name, background, ok)
}

func (s *Service) searchRaces(ctx *gin.Context) {
	var req searchByNameRequest
	if !bindQuery(ctx, &req) {
		return
	}

	ctx.JSON(http.StatusOK, s.catalog.SearchRaces(req.filter(), req.page()))
}

func (s *Service) getRace(ctx *gin.Context) {
	name := nameParam(ctx)
	race, ok := s.catalog.Race(name)
	respondEntity(s, ctx, rules.KindRace, name, race, ok)
}
