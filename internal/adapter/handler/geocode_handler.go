package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photo-sanitizer/internal/pkg/httputil"
)

type GeocodeHandler struct {
	geocodeSvc GeocodeService
}

func NewGeocodeHandler(geocodeSvc GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{geocodeSvc: geocodeSvc}
}

// Geocode godoc
//
//	@Summary		Resolve a location
//	@Description	Resolve an address (falling back to its city) or a city to coordinates
//	@Tags			geocode
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			address	formData	string	false	"Street address"
//	@Param			city	formData	string	false	"City name"
//	@Success		200		{object}	response.LocationResponse
//	@Failure		400		{object}	httputil.ErrorResponse	"Neither address nor city"
//	@Failure		404		{object}	httputil.ErrorResponse
//	@Router			/geocode [post]
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	var req request.GeocodeRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	loc, err := h.geocodeSvc.Geocode(c.Request.Context(), req.Address, req.City)
	if err != nil {
		httputil.HandleError(c, toAppError(err))
		return
	}

	httputil.OK(c, response.LocationFromValue(loc))
}
