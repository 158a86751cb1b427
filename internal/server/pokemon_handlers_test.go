package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"pokedex/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestPokemonLifecycle(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)

	user := models.User{Name: "Ash"}
	require.NoError(t, db.Create(&user).Error)

	// Create a pokemon by favoriting it
	resp := postJSON(t, app, "/favorito/pokemon/1",
		`{"name":"Bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"}`)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		User models.UserSummary `json:"user"`
	}
	require.NoError(t, decodeBody(resp, &created))
	assert.Equal(t, "Ash", created.User.Name)
	require.Len(t, created.User.Favoritos, 1)
	assert.Equal(t, "Bulbasaur", created.User.Favoritos[0].PokemonName)

	// List
	req := httptest.NewRequest(http.MethodGet, "/pokemon", nil)
	listResp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = listResp.Body.Close() }()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var pokemons []models.Pokemon
	require.NoError(t, decodeBody(listResp, &pokemons))
	require.Len(t, pokemons, 1)
	assert.Equal(t, "Bulbasaur", pokemons[0].Name)

	// Fetch by id
	req = httptest.NewRequest(http.MethodGet, "/pokemon/1", nil)
	getResp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = getResp.Body.Close() }()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var pokemon models.Pokemon
	require.NoError(t, decodeBody(getResp, &pokemon))
	assert.Equal(t, "Bulbasaur", pokemon.Name)
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon/1/", pokemon.URL)

	// Partial update: name only, the url must survive
	putReq := httptest.NewRequest(http.MethodPut, "/pokemonput/1",
		bytes.NewReader([]byte(`{"name":"Ivysaur"}`)))
	putReq.Header.Set("Content-Type", "application/json")
	putResp, err := app.Test(putReq)
	require.NoError(t, err)
	defer func() { _ = putResp.Body.Close() }()
	require.Equal(t, http.StatusOK, putResp.StatusCode)

	var updated models.Pokemon
	require.NoError(t, decodeBody(putResp, &updated))
	assert.Equal(t, "Ivysaur", updated.Name)
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon/1/", updated.URL)

	// Delete removes the pokemon and its favorite links
	delReq := httptest.NewRequest(http.MethodDelete, "/delete/1", nil)
	delResp, err := app.Test(delReq)
	require.NoError(t, err)
	defer func() { _ = delResp.Body.Close() }()
	require.Equal(t, http.StatusOK, delResp.StatusCode)

	var msg map[string]string
	require.NoError(t, decodeBody(delResp, &msg))
	assert.Equal(t, "Pokemon deleted", msg["message"])

	var favoriteCount int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&favoriteCount).Error)
	assert.Equal(t, int64(0), favoriteCount)

	// Subsequent fetch is a 404
	req = httptest.NewRequest(http.MethodGet, "/pokemon/1", nil)
	goneResp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = goneResp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, goneResp.StatusCode)
}

func TestUpdatePokemon_RenameAllowsRefavoritingOldName(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)

	user := models.User{Name: "Ash"}
	require.NoError(t, db.Create(&user).Error)

	resp := postJSON(t, app, "/favorito/pokemon/1",
		`{"name":"Bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"}`)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	putReq := httptest.NewRequest(http.MethodPut, "/pokemonput/1",
		bytes.NewReader([]byte(`{"name":"Ivysaur"}`)))
	putReq.Header.Set("Content-Type", "application/json")
	putResp, err := app.Test(putReq)
	require.NoError(t, err)
	_ = putResp.Body.Close()
	require.Equal(t, http.StatusOK, putResp.StatusCode)

	// No current favorite is named Bulbasaur anymore, so this must succeed
	resp = postJSON(t, app, "/favorito/pokemon/1",
		`{"name":"Bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1b/"}`)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestGetPokemon_NotFound(t *testing.T) {
	t.Parallel()

	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/pokemon/999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, decodeBody(resp, &body))
	assert.Equal(t, models.CodeNotFound, body.Code)
}

func TestGetPokemon_InvalidID(t *testing.T) {
	t.Parallel()

	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/pokemon/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePokemon_NotFound(t *testing.T) {
	t.Parallel()

	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodPut, "/pokemonput/42",
		bytes.NewReader([]byte(`{"name":"Mewtwo"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePokemon_NotFound(t *testing.T) {
	t.Parallel()

	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/delete/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
