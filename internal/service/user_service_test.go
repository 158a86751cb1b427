package service

import (
	"context"
	"testing"

	"pokedex/internal/models"
	"pokedex/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(db, repository.NewUserRepository(db))
}

func TestBulkCreateUsers(t *testing.T) {
	t.Parallel()

	db := setupServiceTestDB(t)
	svc := newUserService(db)

	pikachu := models.Pokemon{Name: "Pikachu", URL: "https://pokeapi.co/api/v2/pokemon/25/"}
	eevee := models.Pokemon{Name: "Eevee", URL: "https://pokeapi.co/api/v2/pokemon/133/"}
	require.NoError(t, db.Create(&pikachu).Error)
	require.NoError(t, db.Create(&eevee).Error)

	users, err := svc.BulkCreateUsers(context.Background(), []BulkUserInput{
		{Name: "Misty", Favoritos: []uint{pikachu.ID, eevee.ID}},
		{Name: "Brock", Favoritos: nil},
	})
	require.NoError(t, err)

	require.Len(t, users, 2)
	assert.Equal(t, "Misty", users[0].Name)
	require.Len(t, users[0].Favoritos, 2)
	assert.Equal(t, "Pikachu", users[0].Favoritos[0].EntityName())
	assert.Equal(t, "pikachu", users[0].Favoritos[0].NameKey)
	assert.Empty(t, users[1].Favoritos)
}

func TestBulkCreateUsers_DuplicateNameFailsWholeBatch(t *testing.T) {
	t.Parallel()

	db := setupServiceTestDB(t)
	svc := newUserService(db)

	_, err := svc.BulkCreateUsers(context.Background(), []BulkUserInput{{Name: "Misty"}})
	require.NoError(t, err)

	_, err = svc.BulkCreateUsers(context.Background(), []BulkUserInput{
		{Name: "Gary"},
		{Name: "Misty"},
	})
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeConflict, appErr.Code)

	// Gary was rolled back along with the duplicate
	assert.Equal(t, int64(1), countRows(t, db, &models.User{}))
}

func TestBulkCreateUsers_UnknownPokemonFailsWholeBatch(t *testing.T) {
	t.Parallel()

	db := setupServiceTestDB(t)
	svc := newUserService(db)

	_, err := svc.BulkCreateUsers(context.Background(), []BulkUserInput{
		{Name: "Misty", Favoritos: []uint{42}},
	})
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "unknown pokemon ID 42")

	assert.Equal(t, int64(0), countRows(t, db, &models.User{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.Favorite{}))
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	db := setupServiceTestDB(t)
	svc := newUserService(db)

	require.NoError(t, db.Create(&models.User{Name: "Ash"}).Error)
	require.NoError(t, db.Create(&models.User{Name: "Misty"}).Error)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestGetUserByID_NotFound(t *testing.T) {
	t.Parallel()

	db := setupServiceTestDB(t)
	svc := newUserService(db)

	_, err := svc.GetUserByID(context.Background(), 7)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
