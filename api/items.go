package api

import (
	"net/http"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/gin-gonic/gin"
)

type searchItemsRequest struct {
	pageRequest
	Name       string `form:"name" json:"name"`
	Type       string `form:"type" json:"type"`
	Rarity     string `form:"rarity" json:"rarity" binding:"omitempty,rarity"`
	Attunement *bool  `form:"attunement" json:"attunement"`
	Source     string `form:"source" json:"source"`
}

func (s *Service) searchItems(ctx *gin.Context) {
	var req searchItemsRequest
	if !bindQuery(ctx, &req) {
		return
	}

	filter := catalog.ItemFilter{
		Name:       req.Name,
		Type:       req.Type,
		Rarity:     req.Rarity,
		Attunement: req.Attunement,
		Source:     req.Source,
	}

	ctx.JSON(http.StatusOK, s.catalog.SearchItems(filter, req.page()))
}

func (s *Service) getItem(ctx *gin.Context) {
	name := nameParam(ctx)
	item, ok := s.catalog.Item(name)
	respondEntity(s, ctx, rules.KindItem, name, item, ok)
}
