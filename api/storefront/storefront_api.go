package storefront

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/api"
	"storefront/core/money"
	"storefront/service/storefront"
)

func init() {
	api.RegisterModule(RegisterStorefrontRoutes)
}

func errorJSON(c echo.Context, status int, err error) error {
	return c.JSON(status, echo.Map{"error": err.Error()})
}

// RegisterStorefrontRoutes mounts the catalog, filter and cart endpoints on
// the /api group.
func RegisterStorefrontRoutes(apiGroup *echo.Group, sf *storefront.Storefront) {
	f := money.NewFormatter(sf.Locale())

	// GET /api/products – visible page for the current search, filters and page
	apiGroup.GET("/products", func(c echo.Context) error {
		return c.JSON(http.StatusOK, toPage(f, sf.Page(), sf.Catalog(), sf.Filters()))
	})

	apiGroup.GET("/products/:id", func(c echo.Context) error {
		p, err := sf.Product(c.Param("id"))
		if errors.Is(err, storefront.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product Not Found"})
		}
		if err != nil {
			return errorJSON(c, http.StatusInternalServerError, err)
		}
		return c.JSON(http.StatusOK, toProduct(f, p))
	})

	registerCatalogRoutes(apiGroup.Group("/catalog"), sf)
	registerFilterRoutes(apiGroup.Group("/filters"), sf)
	registerCartRoutes(apiGroup.Group("/cart"), sf, f)
}

func registerCatalogRoutes(g *echo.Group, sf *storefront.Storefront) {
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, toCatalog(sf.Catalog()))
	})

	// POST /api/catalog/fetch[?wait=true] – 202 when started in the background
	g.POST("/fetch", func(c echo.Context) error {
		if c.QueryParam("wait") == "true" {
			err := sf.Fetch(c.Request().Context())
			switch {
			case errors.Is(err, storefront.ErrFetchInFlight), errors.Is(err, storefront.ErrAlreadyFetched):
				return errorJSON(c, http.StatusConflict, err)
			case err != nil:
				return c.JSON(http.StatusBadGateway, toCatalog(sf.Catalog()))
			}
			return c.JSON(http.StatusOK, toCatalog(sf.Catalog()))
		}
		if err := sf.RequestFetch(); err != nil {
			return errorJSON(c, http.StatusConflict, err)
		}
		return c.JSON(http.StatusAccepted, toCatalog(sf.Catalog()))
	})

	bindQuery := func(c echo.Context) (string, error) {
		var body struct {
			Query string `json:"query"`
		}
		if err := c.Bind(&body); err != nil {
			return "", err
		}
		return body.Query, nil
	}

	g.PUT("/search", func(c echo.Context) error {
		q, err := bindQuery(c)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		return c.JSON(http.StatusOK, toCatalog(sf.SetSearchQuery(q)))
	})

	g.PUT("/brand-search", func(c echo.Context) error {
		q, err := bindQuery(c)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		return c.JSON(http.StatusOK, toCatalog(sf.SetBrandSearchQuery(q)))
	})

	g.PUT("/model-search", func(c echo.Context) error {
		q, err := bindQuery(c)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		return c.JSON(http.StatusOK, toCatalog(sf.SetModelSearchQuery(q)))
	})

	g.PUT("/page", func(c echo.Context) error {
		var body struct {
			Page int `json:"page"`
		}
		if err := c.Bind(&body); err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		return c.JSON(http.StatusOK, toCatalog(sf.SetCurrentPage(body.Page)))
	})
}
