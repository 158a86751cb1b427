package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pokedex/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPokemon(t *testing.T, db *gorm.DB, name, url string) models.Pokemon {
	t.Helper()
	p := models.Pokemon{Name: name, URL: url}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestCreateUsers_WithFavorites(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)

	seedPokemon(t, db, "Pikachu", "https://pokeapi.co/api/v2/pokemon/25/")
	seedPokemon(t, db, "Charmander", "https://pokeapi.co/api/v2/pokemon/4/")

	resp := postJSON(t, app, "/createusers",
		`[{"name":"Misty","favoritos":[1,2]},{"name":"Brock","favoritos":[]}]`)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var users []models.UserSummary
	require.NoError(t, decodeBody(resp, &users))
	require.Len(t, users, 2)

	assert.Equal(t, "Misty", users[0].Name)
	require.Len(t, users[0].Favoritos, 2)
	assert.Equal(t, "Pikachu", users[0].Favoritos[0].PokemonName)
	assert.Equal(t, "Charmander", users[0].Favoritos[1].PokemonName)

	assert.Equal(t, "Brock", users[1].Name)
	assert.Empty(t, users[1].Favoritos)
}

func TestCreateUsers_DuplicateNameRollsBack(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)

	resp := postJSON(t, app, "/createusers", `[{"name":"Misty","favoritos":[]}]`)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Second batch reuses the name; the whole batch must be rolled back,
	// including the user that would have succeeded.
	resp = postJSON(t, app, "/createusers",
		`[{"name":"Gary","favoritos":[]},{"name":"Misty","favoritos":[]}]`)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, decodeBody(resp, &body))
	assert.Equal(t, models.CodeConflict, body.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var gary int64
	require.NoError(t, db.Model(&models.User{}).Where("name = ?", "Gary").Count(&gary).Error)
	assert.Equal(t, int64(0), gary)
}

func TestCreateUsers_UnknownPokemonRollsBack(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)

	resp := postJSON(t, app, "/createusers", `[{"name":"Misty","favoritos":[99]}]`)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, decodeBody(resp, &body))
	assert.Contains(t, body.Error, "unknown pokemon ID 99")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateUsers_RejectsNonListPayload(t *testing.T) {
	t.Parallel()

	app, _ := setupTestApp(t)

	// An empty list is rejected the same as a missing one
	for _, payload := range []string{`{"name":"Misty","favoritos":[]}`, `[]`, `null`, `not json`} {
		resp := postJSON(t, app, "/createusers", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, decodeBody(resp, &body))
		assert.Equal(t, "Missing or invalid data, expected a list", body.Error)
		_ = resp.Body.Close()
	}
}

func TestCreateUsers_RejectsMissingFields(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)

	for _, payload := range []string{
		`[{"name":"Misty"}]`,
		`[{"favoritos":[]}]`,
		`[{"name":"Misty","favoritos":[]},{"name":"Brock"}]`,
	} {
		resp := postJSON(t, app, "/createusers", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, decodeBody(resp, &body))
		assert.Equal(t, "Missing name or favoritos in one of the users", body.Error)
		_ = resp.Body.Close()
	}

	// Validation happens before any write
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetAllUsers(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)

	pikachu := seedPokemon(t, db, "Pikachu", "https://pokeapi.co/api/v2/pokemon/25/")
	user := models.User{Name: "Ash"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Favorite{
		UserID:    user.ID,
		PokemonID: &pikachu.ID,
		NameKey:   "pikachu",
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.UserSummary
	require.NoError(t, decodeBody(resp, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Ash", users[0].Name)
	require.Len(t, users[0].Favoritos, 1)
	assert.Equal(t, "Pikachu", users[0].Favoritos[0].PokemonName)
}

func TestGetAllUsers_Empty(t *testing.T) {
	t.Parallel()

	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.UserSummary
	require.NoError(t, decodeBody(resp, &users))
	assert.Empty(t, users)
}
