package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/gin-gonic/gin"
)

// how many "did you mean" names a 404 carries
const suggestionCount = 5

// pageRequest holds the pagination params shared by all search routes.
// Out-of-range values are clamped, not rejected.
type pageRequest struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

func (r pageRequest) page() catalog.Page {
	return catalog.Page{Page: r.Page, Limit: r.Limit}
}

// bindQuery binds the query string into req, answering 400 on failure.
func bindQuery(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindQuery(req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrorResponse(err, "query"))
		return false
	}
	return true
}

// nameParam returns the trimmed :name path param.
func nameParam(ctx *gin.Context) string {
	return strings.TrimSpace(ctx.Param("name"))
}

func (s *Service) respondNotFound(ctx *gin.Context, kind rules.Kind, name string) {
	resp := NewErrorResponse(errors.New(rules.NotFoundMessage(kind, name)))
	resp.Suggestions = s.catalog.Suggest(kind, name, suggestionCount)
	ctx.JSON(http.StatusNotFound, resp)
}

// respondEntity writes entity, or a 404 with suggestions when it was not found.
func respondEntity[T any](s *Service, ctx *gin.Context, kind rules.Kind, name string, entity T, ok bool) {
	if !ok {
		s.respondNotFound(ctx, kind, name)
		return
	}
	ctx.JSON(http.StatusOK, entity)
}
