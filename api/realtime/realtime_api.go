package realtime

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"storefront/api"
	"storefront/core/money"
	"storefront/service/storefront"
)

func init() {
	api.RegisterModule(RegisterRealtimeRoutes)
}

// QuoteResponse is the price of one product next to what the cart holds of it.
type QuoteResponse struct {
	ID             string  `json:"id"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`
	InCart         int     `json:"inCart"`
	CartTotal      float64 `json:"cartTotal"`
}

// RegisterRealtimeRoutes sets up the lightweight quote endpoints used for polling.
func RegisterRealtimeRoutes(apiGroup *echo.Group, sf *storefront.Storefront) {
	g := apiGroup.Group("/realtime")
	f := money.NewFormatter(sf.Locale())

	// GET /api/realtime/quote?id=XXX
	g.GET("/quote", func(c echo.Context) error {
		start := time.Now()

		id := c.QueryParam("id")
		if id == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
		}

		var (
			resp      = QuoteResponse{ID: id}
			productOK bool
		)

		eg := new(errgroup.Group)
		eg.Go(func() error {
			p, err := sf.Product(id)
			if errors.Is(err, storefront.ErrProductNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			resp.Price, resp.FormattedPrice, productOK = p.Price, f.Price(p.Price), true
			return nil
		})
		eg.Go(func() error {
			cs := sf.Cart()
			if l, ok := cs.Line(id); ok {
				resp.InCart = l.Quantity
			}
			resp.CartTotal = cs.Total
			return nil
		})
		err := eg.Wait()

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))

		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if !productOK && resp.InCart == 0 {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":               "Product Not Found",
				"request_duration_ms": duration,
			})
		}
		return c.JSON(http.StatusOK, resp)
	})

	// GET /api/realtime/cart-count
	g.GET("/cart-count", func(c echo.Context) error {
		cs := sf.Cart()
		return c.JSON(http.StatusOK, echo.Map{
			"count":          cs.Count(),
			"total":          cs.Total,
			"formattedTotal": f.Price(cs.Total),
		})
	})

	// GET /api/realtime/status
	g.GET("/status", func(c echo.Context) error {
		cat := sf.Catalog()
		return c.JSON(http.StatusOK, echo.Map{
			"status":       cat.Status,
			"error":        cat.Error,
			"productCount": len(cat.Items),
		})
	})
}
