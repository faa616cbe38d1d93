package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chocodealers/backend/internal/domain/identity"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/chocodealers/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeActorRepo struct {
	actors map[int64]*identity.Actor
}

func (f *fakeActorRepo) Create(ctx context.Context, actor *identity.Actor) error { return nil }
func (f *fakeActorRepo) Update(ctx context.Context, actor *identity.Actor) error { return nil }

func (f *fakeActorRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.Actor, error) {
	return nil, shared.ErrNotFound
}

func (f *fakeActorRepo) FindByExternalID(ctx context.Context, externalID int64) (*identity.Actor, error) {
	if actor, ok := f.actors[externalID]; ok {
		return actor, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakeActorRepo) FindAll(ctx context.Context) ([]*identity.Actor, error) {
	return nil, nil
}

func newActorRouter(t *testing.T, repo identity.Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(ResolveActor(repo, zaptest.NewLogger(t)))
	engine.GET("/whoami", func(c *gin.Context) {
		actor := GetActor(c)
		require.NotNil(t, actor)
		c.JSON(http.StatusOK, dto.NewSuccessResponse(actor.DisplayName))
	})
	return engine
}

func TestResolveActor(t *testing.T) {
	staff, err := identity.NewActor(100500, "Vera", identity.RoleStaff)
	require.NoError(t, err)
	former, err := identity.NewActor(200600, "Gone", identity.RoleStaff)
	require.NoError(t, err)
	former.Deactivate()

	repo := &fakeActorRepo{actors: map[int64]*identity.Actor{
		100500: staff,
		200600: former,
	}}
	engine := newActorRouter(t, repo)

	t.Run("resolves a known active actor", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(ActorHeader, "100500")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Vera", resp.Data)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(ActorHeader, "not-a-number")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an unknown actor", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(ActorHeader, "999999")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
	})

	t.Run("rejects a deactivated actor", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(ActorHeader, "200600")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
