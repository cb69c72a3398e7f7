package apierror

// Response is the JSON envelope of a collection of errors.
type Response struct {
	Errors []ErrorResponse `json:"errors"`
}

// ErrorResponse is the JSON representation of a single error.
type ErrorResponse struct {
	ShortMessage string `json:"message"`
	LongMessage  string `json:"long_message"`
	Code         string `json:"code"`
}

// ToResponse converts an Error to its response envelope.
func ToResponse(e Error) Response {
	return Response{
		Errors: []ErrorResponse{
			{
				ShortMessage: e.ShortMessage(),
				LongMessage:  e.LongMessage(),
				Code:         e.Code(),
			},
		},
	}
}
