package api

import (
	"net/http"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/gin-gonic/gin"
)

type searchSpellsRequest struct {
	pageRequest
	Name   string `form:"name" json:"name"`
	Level  *int   `form:"level" json:"level" binding:"omitempty,min=0,max=9"`
	School string `form:"school" json:"school"`
	Class  string `form:"class" json:"class"`
	Source string `form:"source" json:"source"`
}

func (s *Service) searchSpells(ctx *gin.Context) {
	var req searchSpellsRequest
	if !bindQuery(ctx, &req) {
		return
	}

	filter := catalog.SpellFilter{
		Name:   req.Name,
		Level:  req.Level,
		School: req.School,
		Class:  req.Class,
		Source: req.Source,
	}

	ctx.JSON(http.StatusOK, s.catalog.SearchSpells(filter, req.page()))
}

func (s *Service) getSpell(ctx *gin.Context) {
	name := nameParam(ctx)
	spell, ok := s.catalog.Spell(name)
	respondEntity(s, ctx, rules.KindSpell, name, spell, ok)
}
