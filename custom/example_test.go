package custom

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/api"
	"storefront/cron"
	"storefront/cron/jobs"
	gqlregistry "storefront/graphql/registry"
)

func TestCustomPingRoute(t *testing.T) {
	e := echo.New()
	api.ApplyRoutes(e, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/custom/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"pong":"ok"}`, rec.Body.String())
}

func TestCustomGraphQLExtension(t *testing.T) {
	out, err := gqlregistry.Resolve(context.Background(), "ping", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"pong": "ok"}, out)
}

func TestCustomCronJobRegistered(t *testing.T) {
	j, ok := cron.Jobs()["customping"]
	require.True(t, ok)
	assert.Equal(t, "@every 1m", j.Schedule)
	assert.NoError(t, j.Run(context.Background(), jobs.Env{}))
}
