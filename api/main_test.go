package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/TJurijs/5esrd-api/tmpstore"
	"github.com/TJurijs/5esrd-api/token"
	"github.com/TJurijs/5esrd-api/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := RegisterValidators(v); err != nil {
			panic(err)
		}
	}

	zerolog.SetGlobalLevel(zerolog.Disabled)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	HTTPServerAddress:  "0.0.0.0:3000",
	TokenSymmetricKey:  util.RandomString(32),
	AdminTokenDuration: time.Minute,
	AllowedOrigins:     []string{"*"},
	CacheTTL:           time.Minute,
}

func testDataset() *rules.Dataset {
	walk := 30

	return &rules.Dataset{
		Spells: []rules.Spell{
			{Meta: rules.Meta{Name: "Fireball", Source: "XPHB", SRD52: true}, Level: 3, School: "Evocation", Classes: []string{"Sorcerer", "Wizard"}},
			{Meta: rules.Meta{Name: "Cure Wounds", Source: "XPHB", SRD52: true}, Level: 1, School: "Abjuration", Classes: []string{"Cleric"}},
			{Meta: rules.Meta{Name: "Fire Bolt", Source: "XPHB", SRD52: true}, Level: 0, School: "Evocation", Classes: []string{"Wizard"}},
		},
		Monsters: []rules.Monster{
			{Meta: rules.Meta{Name: "Goblin Warrior", Source: "XMM", SRD52: true}, CR: "1/4", Type: "fey", Size: []string{"Small"}, HP: rules.HitPoints{Average: 10}, Speed: rules.MonsterSpeed{Walk: &walk}},
			{Meta: rules.Meta{Name: "Adult Red Dragon", Source: "XMM", SRD52: true}, CR: "17", Type: "dragon", Size: []string{"Huge"}, HP: rules.HitPoints{Average: 256}},
		},
		Items: []rules.Item{
			{Meta: rules.Meta{Name: "Potion of Healing", Source: "XDMG"}, Type: "Potion", Rarity: "common"},
			{Meta: rules.Meta{Name: "Wand of Magic Missiles", Source: "XDMG"}, Type: "Wand", Rarity: "uncommon", Attunement: "required"},
		},
		Classes: []rules.Class{
			{Meta: rules.Meta{Name: "Fighter", Source: "XPHB"}, HitDie: 10, Subclasses: []rules.Subclass{{Name: "Champion", Source: "XPHB", ShortName: "Champion"}}},
			{Meta: rules.Meta{Name: "Wizard", Source: "XPHB"}, HitDie: 6},
		},
		Feats: []rules.Feat{
			{Meta: rules.Meta{Name: "Alert", Source: "XPHB"}, Category: "Origin"},
			{Meta: rules.Meta{Name: "Grappler", Source: "XPHB"}, Category: "General"},
		},
		Backgrounds: []rules.Background{{Meta: rules.Meta{Name: "Acolyte", Source: "XPHB"}}},
		Races:       []rules.Race{{Meta: rules.Meta{Name: "Dwarf", Source: "XPHB"}, Speed: 30}},
		Conditions: []rules.Condition{
			{Meta: rules.Meta{Name: "Blinded", Source: "XPHB"}},
			{Meta: rules.Meta{Name: "Prone", Source: "XPHB"}},
		},
		Skills:    []rules.Skill{{Meta: rules.Meta{Name: "Stealth", Source: "XPHB"}, Ability: "Dexterity"}},
		Languages: []rules.Language{{Meta: rules.Meta{Name: "Common", Source: "XPHB"}, Type: "Standard"}},
	}
}

func newTestCatalog() *catalog.Catalog {
	return catalog.New(testDataset())
}

func newTestService(
	t *testing.T,
	cache tmpstore.Store,
	tokenMaker token.Maker,
	source DatasetSource,
) *Service {

	service, err := NewService(testConfig, newTestCatalog(), cache, tokenMaker, source)
	require.NoError(t, err)
	return service
}

func setAuthorizationHeader(t *testing.T, tokenMaker token.Maker, authorizationType string, role string, duration time.Duration, request *http.Request) {
	accessToken, payload, err := tokenMaker.CreateToken("tester", role, duration)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	authorizationToken := fmt.Sprintf("%s %s", authorizationType, accessToken)
	request.Header.Set(authorizationheaderKey, authorizationToken)
}

func serve(t *testing.T, service *Service, method, url string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	service.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var got T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	return got
}

func requireErrorField(t *testing.T, recorder *httptest.ResponseRecorder, field string) {
	t.Helper()

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	resp, err := extractErrorFromBuffer(recorder.Body)
	require.NoError(t, err)
	require.Equal(t, ErrInvalidParams.Error(), resp.Error)
	require.NotEmpty(t, resp.Fields)
	require.Equal(t, field, resp.Fields[0].FieldName)
}
