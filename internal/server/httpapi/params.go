package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/birdlog/internal/server/apierror"
)

// CreateParams is the request body of POST /api/v1/sightings.
type CreateParams struct {
	Name    string `json:"name" validate:"required,max=255"`
	Species string `json:"species" validate:"required,max=255"`
}

// UpdateParams is the request body of PUT /api/v1/sightings/{sightingID}.
type UpdateParams struct {
	Name    string `json:"name" validate:"required,max=255"`
	Species string `json:"species" validate:"required,max=255"`
}

func decode(r *http.Request, v any) apierror.Error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierror.InvalidRequestBody(err)
	}
	return nil
}
