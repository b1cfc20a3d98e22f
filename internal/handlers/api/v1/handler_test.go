package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
	v1 "github.com/spiritwiki/loadout-api/internal/handlers/api/v1"
	"github.com/spiritwiki/loadout-api/internal/registry"
	"github.com/spiritwiki/loadout-api/internal/services/loadout"
	loadoutmock "github.com/spiritwiki/loadout-api/internal/services/loadout/mock"
	"github.com/spiritwiki/loadout-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *loadoutmock.MockService
	dataServer  *httptest.Server
	echo        *echo.Echo
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = loadoutmock.NewMockService(s.ctrl)

	s.dataServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 101, "name": "Ember Fox", "type": "fire"},
			{"id": 102, "name": "Gale Crane", "type": "wind"}
		]`))
	}))

	reg, err := registry.New(&registry.Config{BaseURL: s.dataServer.URL})
	s.Require().NoError(err)
	s.Require().NoError(reg.Register("spirits", &registry.SourceConfig{
		File:    "spirits.json",
		Label:   "Spirits",
		Kind:    registry.KindArray,
		IDField: "id",
		Display: registry.DisplayConfig{
			Primary:   "name",
			Secondary: "type",
		},
	}))

	handler, err := v1.New(&v1.Config{
		LoadoutService: s.mockService,
		Registry:       reg,
	})
	s.Require().NoError(err)

	s.echo = echo.New()
	handler.Register(s.echo)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.dataServer.Close()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestSaveLoadout() {
	s.mockService.EXPECT().
		SaveLoadout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *loadout.SaveLoadoutInput) (*loadout.SaveLoadoutOutput, error) {
			s.Equal("user-1", input.OwnerID)
			s.Equal("Raid Setup", input.Loadout.Name)
			input.Loadout.ID = "loadout-1"
			return &loadout.SaveLoadoutOutput{Loadout: input.Loadout}, nil
		})

	rec := s.request(http.MethodPost, "/v1/loadouts",
		`{"ownerId": "user-1", "loadout": {"name": "Raid Setup"}}`)

	s.Equal(http.StatusOK, rec.Code)
	var got game.Loadout
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("loadout-1", got.ID)
}

func (s *HandlerTestSuite) TestSaveLoadout_MalformedBody() {
	rec := s.request(http.MethodPost, "/v1/loadouts", `{"ownerId": `)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "INVALID_ARGUMENT")
}

func (s *HandlerTestSuite) TestSaveLoadout_ValidationErrorMapsTo400() {
	s.mockService.EXPECT().
		SaveLoadout(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("loadout.name: is required"))

	rec := s.request(http.MethodPost, "/v1/loadouts",
		`{"ownerId": "user-1", "loadout": {}}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestResolveLoadout_NotFoundMapsTo404() {
	s.mockService.EXPECT().
		ResolveLoadout(gomock.Any(), &loadout.ResolveLoadoutInput{Identifier: "loadout-missing"}).
		Return(nil, errors.NotFound("loadout not found"))

	rec := s.request(http.MethodGet, "/v1/loadouts/loadout-missing", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "NOT_FOUND")
}

func (s *HandlerTestSuite) TestResolveLoadout() {
	s.mockService.EXPECT().
		ResolveLoadout(gomock.Any(), &loadout.ResolveLoadoutInput{Identifier: "loadout-1"}).
		Return(&loadout.ResolveLoadoutOutput{Loadout: testutils.SampleLoadout()}, nil)

	rec := s.request(http.MethodGet, "/v1/loadouts/loadout-1", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"Raid Setup"`)
}

func (s *HandlerTestSuite) TestShareLoadout() {
	s.mockService.EXPECT().
		ShareLoadout(gomock.Any(), &loadout.ShareLoadoutInput{LoadoutID: "loadout-1"}).
		Return(&loadout.ShareLoadoutOutput{Payload: "abc123", URL: "https://wiki.example.com?loadout=abc123"}, nil)

	rec := s.request(http.MethodPost, "/v1/loadouts/loadout-1/share", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"payload":"abc123"`)
}

func (s *HandlerTestSuite) TestListSkillBuilds() {
	s.mockService.EXPECT().
		ListSkillBuilds(gomock.Any(), &loadout.ListSkillBuildsInput{OwnerID: "user-1"}).
		Return(&loadout.ListSkillBuildsOutput{
			Builds: []*game.SkillBuild{testutils.SampleSkillBuild()},
		}, nil)

	rec := s.request(http.MethodGet, "/v1/builds/skill?owner_id=user-1", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"Boss Rotation"`)
}

func (s *HandlerTestSuite) TestDeleteSpiritBuild() {
	s.mockService.EXPECT().
		DeleteSpiritBuild(gomock.Any(), &loadout.DeleteSpiritBuildInput{BuildID: "build-1"}).
		Return(&loadout.DeleteSpiritBuildOutput{Message: "spirit build build-1 deleted"}, nil)

	rec := s.request(http.MethodDelete, "/v1/builds/spirit/build-1", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "deleted")
}

func (s *HandlerTestSuite) TestUpsertMySpirit() {
	s.mockService.EXPECT().
		UpsertMySpirit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *loadout.UpsertMySpiritInput) (*loadout.UpsertMySpiritOutput, error) {
			s.Equal(int64(101), input.Spirit.SpiritID)
			input.Spirit.ID = "myspirit-1"
			return &loadout.UpsertMySpiritOutput{Spirit: input.Spirit}, nil
		})

	rec := s.request(http.MethodPost, "/v1/collection",
		`{"ownerId": "user-1", "spirit": {"spiritId": 101, "level": 10}}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "myspirit-1")
}

func (s *HandlerTestSuite) TestRegistrySources() {
	rec := s.request(http.MethodGet, "/v1/registry/sources", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"spirits"`)
	s.Contains(rec.Body.String(), `"Spirits"`)
}

func (s *HandlerTestSuite) TestRegistrySearchItems() {
	rec := s.request(http.MethodGet, "/v1/registry/spirits/items?q=fox", "")

	s.Equal(http.StatusOK, rec.Code)
	var records []map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &records))
	s.Require().Len(records, 1)
	s.Equal("Ember Fox", records[0]["name"])
}

func (s *HandlerTestSuite) TestRegistryFetchAllWhenQueryEmpty() {
	rec := s.request(http.MethodGet, "/v1/registry/spirits/items", "")

	s.Equal(http.StatusOK, rec.Code)
	var records []map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &records))
	s.Len(records, 2)
}

func (s *HandlerTestSuite) TestRegistryGetItem() {
	rec := s.request(http.MethodGet, "/v1/registry/spirits/items/101", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"Ember Fox"`)
	s.Contains(rec.Body.String(), `"primary":"Ember Fox"`)
}

func (s *HandlerTestSuite) TestRegistryUnknownSource() {
	rec := s.request(http.MethodGet, "/v1/registry/nope/items", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
