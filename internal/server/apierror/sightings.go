package apierror

import (
	"fmt"
	"net/http"
)

// SightingNotFound signals that an id does not resolve to any record.
func SightingNotFound(id string) Error {
	return New(
		http.StatusNotFound,
		"resource_not_found",
		"Sighting not found",
		fmt.Sprintf("No sighting was found with id %s.", id),
	)
}

// InvalidRequestBody covers malformed JSON request bodies.
func InvalidRequestBody(cause error) Error {
	return &apiError{
		httpCode:     http.StatusBadRequest,
		code:         "request_body_invalid",
		shortMessage: "Invalid request body",
		longMessage:  "The request body could not be parsed as JSON.",
		cause:        cause,
	}
}

// FormInvalidParameterValue covers URL or query parameters that fail to parse.
func FormInvalidParameterValue(name, value string) Error {
	return New(
		http.StatusBadRequest,
		"form_param_value_invalid",
		fmt.Sprintf("Invalid value for %s", name),
		fmt.Sprintf("%q is not a valid value for the %s parameter.", value, name),
	)
}

// FormValidationFailed covers request payloads that parse but fail
// validation.
func FormValidationFailed(cause error) Error {
	return &apiError{
		httpCode:     http.StatusUnprocessableEntity,
		code:         "form_validation_failed",
		shortMessage: "Validation failed",
		longMessage:  "One or more fields did not pass validation.",
		cause:        cause,
	}
}
