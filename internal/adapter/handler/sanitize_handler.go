package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/pkg/httputil"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/geocode"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/sanitize"
)

const (
	HeaderProcessed  = "X-GMB-Processed"
	HeaderTotal      = "X-GMB-Total"
	HeaderErrors     = "X-GMB-Errors"
	HeaderArchiveURL = "X-GMB-Archive-URL"
)

type SanitizeHandler struct {
	sanitizeSvc   SanitizeService
	maxUploadSize int64
	errorLimit    int
}

func NewSanitizeHandler(sanitizeSvc SanitizeService, maxUploadSize int64, errorLimit int) *SanitizeHandler {
	return &SanitizeHandler{
		sanitizeSvc:   sanitizeSvc,
		maxUploadSize: maxUploadSize,
		errorLimit:    errorLimit,
	}
}

// Sanitize godoc
//
//	@Summary		Sanitize photos
//	@Description	Strip, uniquify and re-tag a batch of photos. Returns a zip with the photos and a report.
//	@Tags			sanitize
//	@Accept			multipart/form-data
//	@Produce		application/zip
//	@Param			files					formData	file	true	"Photos (repeat the field)"
//	@Param			city					formData	string	false	"City name"
//	@Param			address					formData	string	false	"Street address"
//	@Param			manual_lat				formData	number	false	"Manual latitude"
//	@Param			manual_lon				formData	number	false	"Manual longitude"
//	@Param			manual_alt				formData	number	false	"Manual altitude in meters"
//	@Param			postal_code				formData	string	false	"Postal code for manual coordinates"
//	@Param			device_id				formData	string	false	"Catalog device id or random"
//	@Param			random_device_per_photo	formData	string	false	"true to draw a device per photo"
//	@Param			intensity				formData	string	false	"low, medium or high"
//	@Param			jitter_radius			formData	number	false	"GPS jitter radius in meters"
//	@Param			date_from				formData	string	false	"YYYY-MM-DD"
//	@Param			date_to					formData	string	false	"YYYY-MM-DD"
//	@Param			keyword					formData	string	false	"Keyword for names and descriptions"
//	@Success		200						{file}		binary
//	@Header			200						{string}	X-GMB-Processed	"Photos processed"
//	@Header			200						{string}	X-GMB-Total		"Photos received"
//	@Header			200						{string}	X-GMB-Errors	"First failures"
//	@Failure		400						{object}	httputil.ErrorResponse
//	@Failure		413						{object}	httputil.ErrorResponse
//	@Router			/sanitize [post]
func (h *SanitizeHandler) Sanitize(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			httputil.HandleError(c, toAppError(err))
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	var req request.SanitizeRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	files := make([]sanitize.File, 0, len(form.File["files"])+len(form.File["files[]"]))
	for _, field := range []string{"files", "files[]"} {
		for _, fh := range form.File[field] {
			files = append(files, sanitize.File{Name: fh.Filename, Data: readPart(fh)})
		}
	}

	lat, lon, alt := req.ManualCoordinates()
	result, err := h.sanitizeSvc.Sanitize(c.Request.Context(), sanitize.Input{
		Files: files,
		Location: geocode.ResolveInput{
			ManualLat:  lat,
			ManualLon:  lon,
			ManualAlt:  alt,
			PostalCode: req.PostalCode,
			Address:    req.Address,
			City:       req.City,
		},
		DeviceID:             req.Device(),
		RandomDevicePerPhoto: req.RandomPerPhoto(),
		Intensity:            req.Intensity,
		JitterRadius:         req.Radius(),
		DateFrom:             req.DateFrom,
		DateTo:               req.DateTo,
		Keyword:              req.Keyword,
	})
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "LOCATION_NOT_FOUND", "location could not be resolved")
			return
		}
		httputil.HandleError(c, toAppError(err))
		return
	}

	c.Header(HeaderProcessed, strconv.Itoa(result.Report.Processed))
	c.Header(HeaderTotal, strconv.Itoa(result.Report.Total))
	c.Header(HeaderErrors, result.Report.ErrorSummary(h.errorLimit))
	if result.ArchiveURL != "" {
		c.Header(HeaderArchiveURL, result.ArchiveURL)
	}

	httputil.Attachment(c, result.Filename, "application/zip", result.Archive)
}

// readPart returns nil for unreadable parts; the pipeline then reports the
// file as empty instead of failing the batch.
func readPart(fh *multipart.FileHeader) []byte {
	f, err := fh.Open()
	if err != nil {
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil
	}
	return data
}
