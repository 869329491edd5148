package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caiismith/videogame-api/internal/model"
	"github.com/Caiismith/videogame-api/internal/service"
	"github.com/Caiismith/videogame-api/internal/store"
	"github.com/Caiismith/videogame-api/pkg/logger"
)

type fixture struct {
	router http.Handler
	games  *store.MemoryGameStore
	devs   *store.MemoryDeveloperStore
}

func newFixture(t *testing.T, developers ...model.Developer) *fixture {
	t.Helper()
	games := store.NewMemoryGameStore()
	devs := store.NewMemoryDeveloperStore()
	for i := range developers {
		require.NoError(t, devs.Insert(context.Background(), &developers[i]))
	}

	svc := service.NewGameService(logger.NewNop(), games, devs)
	return &fixture{
		router: NewHandler(svc, logger.NewNop()).Routes(),
		games:  games,
		devs:   devs,
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

const zeldaBody = `{"title":"Zelda","developer":"nintendo","genres":["action"],"release_date":"2019-01-01"}`

func TestCreateApprovedDeveloperScenario(t *testing.T) {
	f := newFixture(t, model.Developer{Name: "Nintendo", Headquarters: "Japan"})

	rec := f.do(t, http.MethodPost, "/games", zeldaBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp model.GameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "nintendo", resp.Developer, "body echoes the posted casing")
	assert.Equal(t, "Zelda", resp.Title)
	assert.Equal(t, "2019-01-01", resp.ReleaseDate.String())

	// A second create with an unapproved developer is rejected.
	rec = f.do(t, http.MethodPost, "/games", `{"title":"Sonic","developer":"Sega","genres":["platformer"],"release_date":"1991-06-23"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCreateMalformedBody(t *testing.T) {
	f := newFixture(t, model.Developer{Name: "Nintendo"})

	rec := f.do(t, http.MethodPost, "/games", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAll(t *testing.T) {
	f := newFixture(t, model.Developer{Name: "Nintendo"})

	rec := f.do(t, http.MethodGet, "/games", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "empty store returns 404")

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/games", zeldaBody).Code)
	}

	rec = f.do(t, http.MethodGet, "/games", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list model.GameListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 3, list.ItemsPerPage)
	assert.Equal(t, 3, list.TotalResults)
	assert.Equal(t, 0, list.StartIndex)
	assert.Len(t, list.Items, 3)
}

func TestGetOne(t *testing.T) {
	f := newFixture(t, model.Developer{Name: "Nintendo"})

	created := f.do(t, http.MethodPost, "/games", zeldaBody)
	require.Equal(t, http.StatusCreated, created.Code)
	var resp model.GameResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	rec := f.do(t, http.MethodGet, "/games/"+resp.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.GameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, resp.ID, got.ID)

	rec = f.do(t, http.MethodGet, "/games/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t, model.Developer{Name: "Nintendo"})

	created := f.do(t, http.MethodPost, "/games", zeldaBody)
	require.Equal(t, http.StatusCreated, created.Code)
	var resp model.GameResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	replacement := `{"title":"Zelda 2","developer":"nintendo","genres":["rpg"],"release_date":"2021-03-04"}`

	rec := f.do(t, http.MethodPut, "/games/developer/NINTENDO/"+resp.ID, replacement)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	stored, err := f.games.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zelda 2", stored.Title)

	rec = f.do(t, http.MethodPut, "/games/developer/Sega/"+resp.ID, replacement)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPut, "/games/developer/nintendo/no-such-id", replacement)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete(t *testing.T) {
	f := newFixture(t, model.Developer{Name: "Nintendo"})

	created := f.do(t, http.MethodPost, "/games", zeldaBody)
	require.Equal(t, http.StatusCreated, created.Code)
	var resp model.GameResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	rec := f.do(t, http.MethodDelete, "/games/developer/Sega/"+resp.ID, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodDelete, "/games/developer/nintendo/"+resp.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodDelete, "/games/developer/nintendo/"+resp.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStoreFailureRendersBadRequestWithoutDetail(t *testing.T) {
	f := newFixture(t, model.Developer{Name: "Nintendo"})
	f.games.FailWith = errors.New("mongo: topology is closed")

	rec := f.do(t, http.MethodGet, "/games", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Body.String(), "store detail never leaks to the caller")
}

func TestRequestIDMiddleware(t *testing.T) {
	var captured string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	RequestIDMiddleware(inner).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "req-42", captured)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	RequestIDMiddleware(inner).ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEmpty(t, captured, "generated when the header is absent")
}
