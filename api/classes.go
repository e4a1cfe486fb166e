package api

import (
	"net/http"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/gin-gonic/gin"
)

type subclassesResponse struct {
	Data []rules.Subclass `json:"data"`
}

func (s *Service) listClasses(ctx *gin.Context) {
	var req pageRequest
	if !bindQuery(ctx, &req) {
		return
	}

	ctx.JSON(http.StatusOK, s.catalog.ListClasses(req.page()))
}

func (s *Service) getClass(ctx *gin.Context) {
	name := nameParam(ctx)
	class, ok := s.catalog.Class(name)
	respondEntity(s, ctx, rules.KindClass, name, class, ok)
}

// getSubclasses answers an unknown class with an empty list, not a 404.
func (s *Service) getSubclasses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, subclassesResponse{Data: s.catalog.Subclasses(nameParam(ctx))})
}
