package html

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/api"
	"storefront/config"
	"storefront/core/money"
	cartEntity "storefront/model/entity/cart"
	parts "storefront/html/parts"
	"storefront/service/storefront"
	"storefront/store/filter"
)

func init() {
	api.RegisterHTMLModule(RegisterStorefrontHTMLRoutes)
}

type cartView struct {
	Items []cartEntity.Line
	Total float64
	Count int
}

func baseData(sf *storefront.Storefront, title string) map[string]interface{} {
	c := sf.Cart()
	appName := "Storefront"
	if config.AppConfig != nil && config.AppConfig.AppName != "" {
		appName = config.AppConfig.AppName
	}
	return map[string]interface{}{
		"Title":       title + " - " + appName,
		"AppName":     appName,
		"CriticalCSS": parts.GetCriticalCSS(),
		"Cart":        cartView{Items: c.Items, Total: c.Total, Count: c.Count()},
	}
}

// RegisterStorefrontHTMLRoutes registers the listing at / and the detail page
// at /product/:id, plus the form actions they post to.
func RegisterStorefrontHTMLRoutes(e *echo.Echo, sf *storefront.Storefront) {
	if e.Renderer == nil {
		t, err := NewTemplate(money.NewFormatter(sf.Locale()))
		if err != nil {
			panic("html templates: " + err.Error())
		}
		e.Renderer = t
	}

	e.GET("/", func(c echo.Context) error {
		sf.EnsureFetched()
		f := sf.Filters()
		active := ""
		if p, ok := f.ActivePreset(); ok {
			active = p.Name
		}
		data := baseData(sf, "Products")
		data["Catalog"] = sf.Catalog()
		data["Filters"] = f
		data["Page"] = sf.Page()
		data["Presets"] = filter.Presets
		data["ActivePreset"] = active
		return c.Render(http.StatusOK, "listing.html", data)
	})

	e.GET("/product/:id", func(c echo.Context) error {
		sf.EnsureFetched()
		p, err := sf.Product(c.Param("id"))
		if errors.Is(err, storefront.ErrProductNotFound) {
			return c.Render(http.StatusNotFound, "not_found.html", baseData(sf, "Product Not Found"))
		}
		if err != nil {
			sf.Logger().Error("product lookup failed", zap.String("product_id", c.Param("id")), zap.Error(err))
			return c.String(http.StatusInternalServerError, "Error fetching product")
		}
		data := baseData(sf, p.Name)
		data["Product"] = p
		return c.Render(http.StatusOK, "product.html", data)
	})

	registerActions(e, sf)
}
