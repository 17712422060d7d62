package storefront

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/core/money"
	"storefront/service/storefront"
	"storefront/store/cart"
)

func registerCartRoutes(g *echo.Group, sf *storefront.Storefront, f *money.Formatter) {
	// respond reports a failed save as 500 with the cart that stands in memory.
	respond := func(c echo.Context, state cart.State, err error) error {
		switch {
		case errors.Is(err, storefront.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product Not Found"})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "cart": toCart(f, state)})
		}
		return c.JSON(http.StatusOK, toCart(f, state))
	}

	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, toCart(f, sf.Cart()))
	})

	// POST /api/cart/items {"productId": "..."} – adds one unit
	g.POST("/items", func(c echo.Context) error {
		var body struct {
			ProductID string `json:"productId"`
		}
		if err := c.Bind(&body); err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		if body.ProductID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "productId is required"})
		}
		state, err := sf.AddToCart(c.Request().Context(), body.ProductID)
		return respond(c, state, err)
	})

	g.PATCH("/items/:id", func(c echo.Context) error {
		var body struct {
			Quantity *int `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		if body.Quantity == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity is required"})
		}
		state, err := sf.UpdateQuantity(c.Request().Context(), c.Param("id"), *body.Quantity)
		return respond(c, state, err)
	})

	g.DELETE("/items/:id", func(c echo.Context) error {
		state, err := sf.RemoveFromCart(c.Request().Context(), c.Param("id"))
		return respond(c, state, err)
	})

	g.DELETE("", func(c echo.Context) error {
		state, err := sf.ClearCart(c.Request().Context())
		return respond(c, state, err)
	})
}
