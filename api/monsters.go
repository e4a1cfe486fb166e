package api

import (
	"net/http"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/gin-gonic/gin"
)

type searchMonstersRequest struct {
	pageRequest
	Name   string `form:"name" json:"name"`
	CR     string `form:"cr" json:"cr" binding:"omitempty,cr"`
	Type   string `form:"type" json:"type"`
	Size   string `form:"size" json:"size"`
	Source string `form:"source" json:"source"`
}

func (s *Service) searchMonsters(ctx *gin.Context) {
	var req searchMonstersRequest
	if !bindQuery(ctx, &req) {
		return
	}

	filter := catalog.MonsterFilter{
		Name:   req.Name,
		CR:     req.CR,
		Type:   req.Type,
		Size:   req.Size,
		Source: req.Source,
	}

	ctx.JSON(http.StatusOK, s.catalog.SearchMonsters(filter, req.page()))
}

func (s *Service) getMonster(ctx *gin.Context) {
	name := nameParam(ctx)
	monster, ok := s.catalog.Monster(name)
	respondEntity(s, ctx, rules.KindMonster, name, monster, ok)
}
