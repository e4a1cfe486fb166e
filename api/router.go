package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// api routes
	HealthURL = "/health"
	APIPrefix = "/api/v1"

	SpellsURL      = "/spells"
	MonstersURL    = "/monsters"
	ItemsURL       = "/items"
	ClassesURL     = "/classes"
	FeatsURL       = "/feats"
	BackgroundsURL = "/backgrounds"
	RacesURL       = "/races"
	ConditionsURL  = "/conditions"
	SkillsURL      = "/skills"
	LanguagesURL   = "/languages"
	ExpandURL      = "/expand"
	ExpandWSURL    = "/expand/ws"
	AdminReloadURL = "/admin/reload"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	// gin.Default would log to stdout, which the MCP transport owns
	router := gin.New()

	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		loggerMiddleware(),
		service.corsMiddleware(),
	)

	router.GET(HealthURL, service.getHealth)

	v1 := router.Group(APIPrefix)

	// list and search responses depend only on the request URI and the dataset
	cached := v1.Group("/", service.cacheMiddleware())
	cached.GET(SpellsURL, service.searchSpells)
	cached.GET(MonstersURL, service.searchMonsters)
	cached.GET(ItemsURL, service.searchItems)
	cached.GET(ClassesURL, service.listClasses)
	cached.GET(FeatsURL, service.searchFeats)
	cached.GET(BackgroundsURL, service.searchBackgrounds)
	cached.GET(RacesURL, service.searchRaces)
	cached.GET(ConditionsURL, service.listConditions)
	cached.GET(SkillsURL, service.listSkills)
	cached.GET(LanguagesURL, service.listLanguages)

	v1.GET(SpellsURL+"/:name", service.getSpell)
	v1.GET(MonstersURL+"/:name", service.getMonster)
	v1.GET(ItemsURL+"/:name", service.getItem)
	v1.GET(ClassesURL+"/:name", service.getClass)
	v1.GET(ClassesURL+"/:name/subclasses", service.getSubclasses)
	v1.GET(FeatsURL+"/:name", service.getFeat)
	v1.GET(BackgroundsURL+"/:name", service.getBackground)
	v1.GET(RacesURL+"/:name", service.getRace)
	v1.GET(ConditionsURL+"/:name", service.getCondition)
	v1.GET(SkillsURL+"/:name", service.getSkill)
	v1.GET(LanguagesURL+"/:name", service.getLanguage)

	v1.POST(ExpandURL, service.expandText)
	v1.GET(ExpandWSURL, service.expandStream)

	// protected routes
	adminGroup := v1.Group("/", authMiddleware(service.tokenMaker), requireRole(adminRole))
	adminGroup.POST(AdminReloadURL, service.reloadDataset)

	server.Handler = router
	service.router = router
}
