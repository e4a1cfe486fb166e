package api

import (
	"net/http"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/gin-gonic/gin"
)

// Conditions, skills and languages are short reference lists served whole.

func (s *Service) listConditions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.All(s.catalog.ListConditions()))
}

func (s *Service) getCondition(ctx *gin.Context) {
	name := nameParam(ctx)
	condition, ok := s.catalog.Condition(name)
	respondEntity(s, ctx, rules.KindCondition, name, condition, ok)
}

func (s *Service) listSkills(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.All(s.catalog.ListSkills()))
}

func (s *Service) getSkill(ctx *gin.Context) {
	name := nameParam(ctx)
	skill, ok := s.catalog.Skill(name)
	respondEntity(s, ctx, rules.KindSkill, name, skill, ok)
}

func (s *Service) listLanguages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.All(s.catalog.ListLanguages()))
}

func (s *Service) getLanguage(ctx *gin.Context) {
	name := nameParam(ctx)
	language, ok := s.catalog.Language(name)
	respondEntity(s, ctx, rules.KindLanguage, name, language, ok)
}
