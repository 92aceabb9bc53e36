package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photo-sanitizer/internal/pkg/httputil"
)

type CatalogHandler struct {
	catalogSvc CatalogService
}

func NewCatalogHandler(catalogSvc CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// Cities godoc
//
//	@Summary		List cities
//	@Description	Cities known to the local catalog, keyed by name
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	map[string]response.CityResponse
//	@Failure		500	{object}	httputil.ErrorResponse
//	@Router			/cities [get]
func (h *CatalogHandler) Cities(c *gin.Context) {
	cities, err := h.catalogSvc.ListCities(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.CitiesFromEntities(cities))
}

// Devices godoc
//
//	@Summary		List devices
//	@Description	Camera profiles that can be forged into photos
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		response.DeviceResponse
//	@Failure		500	{object}	httputil.ErrorResponse
//	@Router			/devices [get]
func (h *CatalogHandler) Devices(c *gin.Context) {
	devices, err := h.catalogSvc.ListDevices(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.DevicesFromEntities(devices))
}
