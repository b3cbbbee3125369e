package dto

import (
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// StatusSuccess is the status field of every successful response
const StatusSuccess = "success"

// StatusResponse is the body of operations that return nothing else
type StatusResponse struct {
	Status string `json:"status"`
}

// Success returns a StatusResponse with StatusSuccess
func Success() StatusResponse {
	return StatusResponse{Status: StatusSuccess}
}

// NewErrorResponse builds the body for err. Internal errors get a generic
// message.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Code:    errs.ErrorCode(err),
		Kind:    string(errs.KindOf(err)),
		Message: errs.PublicMessage(err),
	}
}
