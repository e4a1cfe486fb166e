package api

import (
	"net/http"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/gin-gonic/gin"
)

type searchFeatsRequest struct {
	pageRequest
	Name     string `form:"name" json:"name"`
	Category string `form:"category" json:"category"`
	Source   string `form:"source" json:"source"`
}

func (s *Service) searchFeats(ctx *gin.Context) {
	var req searchFeatsRequest
	if !bindQuery(ctx, &req) {
		return
	}

	filter := catalog.FeatFilter{
		Name:     req.Name,
		Category: req.Category,
		Source:   req.Source,
	}

	ctx.JSON(http.StatusOK, s.catalog.SearchFeats(filter, req.page()))
}

func (s *Service) getFeat(ctx *gin.Context) {
	name := nameParam(ctx)
	feat, ok := s.catalog.Feat(name)
	respondEntity(s, ctx, rules.KindFeat, name, feat, ok)
}
