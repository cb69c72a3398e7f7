// Package httpapi exposes the sighting service over HTTP. Routing is built
// on chi; responses are the serialize package's filtered payloads and the
// apierror envelope for failures.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/birdlog/internal/common"
	"github.com/dmitrijs2005/birdlog/internal/logging"
	"github.com/dmitrijs2005/birdlog/internal/server/apierror"
	"github.com/dmitrijs2005/birdlog/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const sightingID = "sightingID"

type HTTP struct {
	service   *services.SightingService
	logger    logging.Logger
	validator *validator.Validate
}

func NewHTTP(service *services.SightingService, logger logging.Logger) *HTTP {
	return &HTTP{
		service:   service,
		logger:    logger,
		validator: validator.New(),
	}
}

// GET /api/v1/ping
func (h *HTTP) Ping(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// GET /api/v1/sightings
func (h *HTTP) ReadAll(w http.ResponseWriter, r *http.Request) {
	payloads, err := h.service.List(r.Context())
	if err != nil {
		h.renderServiceError(w, r, "", err)
		return
	}
	renderJSON(w, http.StatusOK, payloads)
}

// GET /api/v1/sightings/{sightingID}
func (h *HTTP) Read(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, sightingID)
	id, apiErr := parseSightingID(raw)
	if apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}

	payload, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, raw, err)
		return
	}
	renderJSON(w, http.StatusOK, payload)
}

// POST /api/v1/sightings
func (h *HTTP) Create(w http.ResponseWriter, r *http.Request) {
	var params CreateParams
	if apiErr := decode(r, &params); apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}
	if err := h.validator.Struct(params); err != nil {
		h.renderError(w, r, apierror.FormValidationFailed(err))
		return
	}

	payload, err := h.service.Create(r.Context(), params.Name, params.Species)
	if err != nil {
		h.renderServiceError(w, r, "", err)
		return
	}
	renderJSON(w, http.StatusCreated, payload)
}

// PUT /api/v1/sightings/{sightingID}
func (h *HTTP) Update(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, sightingID)
	id, apiErr := parseSightingID(raw)
	if apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}

	var params UpdateParams
	if apiErr := decode(r, &params); apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}
	if err := h.validator.Struct(params); err != nil {
		h.renderError(w, r, apierror.FormValidationFailed(err))
		return
	}

	payload, err := h.service.Update(r.Context(), id, params.Name, params.Species)
	if err != nil {
		h.renderServiceError(w, r, raw, err)
		return
	}
	renderJSON(w, http.StatusOK, payload)
}

// DELETE /api/v1/sightings/{sightingID}
func (h *HTTP) Delete(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, sightingID)
	id, apiErr := parseSightingID(raw)
	if apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, raw, err)
		return
	}
	renderJSON(w, http.StatusOK, deleted)
}

func parseSightingID(raw string) (int64, apierror.Error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.FormInvalidParameterValue(sightingID, raw)
	}
	return id, nil
}

// renderServiceError translates repository sentinels into API errors.
// The raw id is echoed back on 404s.
func (h *HTTP) renderServiceError(w http.ResponseWriter, r *http.Request, rawID string, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		h.renderError(w, r, apierror.SightingNotFound(rawID))
		return
	}
	h.renderError(w, r, apierror.Unexpected(err))
}

func (h *HTTP) renderError(w http.ResponseWriter, r *http.Request, apiErr apierror.Error) {
	if apierror.IsInternal(apiErr) {
		h.logger.Error(r.Context(), "request failed", "error", apiErr.Error())
	}
	renderJSON(w, apiErr.HTTPCode(), apierror.ToResponse(apiErr))
}
