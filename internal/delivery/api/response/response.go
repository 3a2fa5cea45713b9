// Package response renders the envelopes every gateway route answers with.
package response

import (
	"net/http"

	deliverycontext "mutant-admin/internal/delivery/context"
	"mutant-admin/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderDataSource marks responses whose figures are not real.
const HeaderDataSource = "X-Data-Source"

// SuccessResponse defines the structure for single-record and mutation responses
type SuccessResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
	Meta    *MetaInfo `json:"meta,omitempty"`
}

// ListResponse defines the structure for server-paginated lists.
// Data is always an array, never null.
type ListResponse[T any] struct {
	Success    bool      `json:"success"`
	Data       []T       `json:"data"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
	Meta       *MetaInfo `json:"meta,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a single record
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	})
}

// Message returns a mutation result with an optional record
func Message(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// List returns one page, trusting the reported totalPages.
func List[T any](c echo.Context, page *entity.Page[T]) error {
	if page == nil {
		page = &entity.Page[T]{}
	}
	items := page.Items
	if items == nil {
		items = []T{}
	}

	return c.JSON(http.StatusOK, ListResponse[T]{
		Success:    true,
		Data:       items,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPagesOrDerived(),
		Meta:       meta(c),
	})
}

// Collection returns an unpaginated array
func Collection[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	return c.JSON(http.StatusOK, ListResponse[T]{
		Success: true,
		Data:    items,
		Total:   len(items),
		Meta:    meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
