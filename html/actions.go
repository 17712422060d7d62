package html

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/service/storefront"
	"storefront/store/filter"
)

// back returns to the page the form was posted from, or the listing.
func back(c echo.Context) error {
	to := c.Request().Referer()
	if to == "" {
		to = "/"
	}
	return c.Redirect(http.StatusSeeOther, to)
}

// cartResult logs a failed save; the cart change itself stands.
func cartResult(c echo.Context, sf *storefront.Storefront, err error) error {
	if errors.Is(err, storefront.ErrProductNotFound) {
		return c.Render(http.StatusNotFound, "not_found.html", baseData(sf, "Product Not Found"))
	}
	if err != nil {
		sf.Logger().Error("cart update not saved", zap.String("path", c.Path()), zap.Error(err))
	}
	return back(c)
}

func registerActions(e *echo.Echo, sf *storefront.Storefront) {
	e.POST("/search", func(c echo.Context) error {
		sf.SetSearchQuery(c.FormValue("q"))
		return c.Redirect(http.StatusSeeOther, "/")
	})

	e.POST("/page/:n", func(c echo.Context) error {
		n, err := strconv.Atoi(c.Param("n"))
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid page")
		}
		sf.SetCurrentPage(n)
		return c.Redirect(http.StatusSeeOther, "/")
	})

	e.POST("/filters", func(c echo.Context) error {
		preset := c.FormValue("preset")
		if preset != "" {
			if _, ok := filter.PresetByName(preset); !ok {
				return c.String(http.StatusBadRequest, "Invalid sort")
			}
		}
		sf.UpdateFilters(func(f *filter.State) {
			f.SetBrand(c.FormValue("brand"))
			f.SetModel(c.FormValue("model"))
			if preset != "" {
				_ = f.ApplyPreset(preset)
			}
		})
		return c.Redirect(http.StatusSeeOther, "/")
	})

	e.POST("/filters/reset", func(c echo.Context) error {
		sf.ResetFilters()
		return c.Redirect(http.StatusSeeOther, "/")
	})

	e.POST("/cart/add/:id", func(c echo.Context) error {
		_, err := sf.AddToCart(c.Request().Context(), c.Param("id"))
		return cartResult(c, sf, err)
	})

	e.POST("/cart/update/:id", func(c echo.Context) error {
		q, err := strconv.Atoi(c.FormValue("quantity"))
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid quantity")
		}
		_, err = sf.UpdateQuantity(c.Request().Context(), c.Param("id"), q)
		return cartResult(c, sf, err)
	})

	e.POST("/cart/remove/:id", func(c echo.Context) error {
		_, err := sf.RemoveFromCart(c.Request().Context(), c.Param("id"))
		return cartResult(c, sf, err)
	})
}
