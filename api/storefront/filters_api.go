package storefront

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/service/storefront"
	"storefront/store/filter"
)

// FilterPatch is the PUT /filters body; absent fields are left alone.
type FilterPatch = filter.Patch

func registerFilterRoutes(g *echo.Group, sf *storefront.Storefront) {
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, sf.Filters())
	})

	g.PUT("", func(c echo.Context) error {
		var patch FilterPatch
		if err := c.Bind(&patch); err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		apply, err := patch.Compile()
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		return c.JSON(http.StatusOK, sf.UpdateFilters(apply))
	})

	g.DELETE("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, sf.ResetFilters())
	})
}
