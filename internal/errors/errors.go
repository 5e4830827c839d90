package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already exists")
	// ErrHandleTaken is returned when a profile update collides with an existing handle.
	ErrHandleTaken = errors.New("handle already exists")
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRecipeNotFound is returned when a recipe does not exist or is not
	// owned by the acting user. The two cases are deliberately not
	// distinguished: ownership-scoped queries report only affected rows.
	ErrRecipeNotFound = errors.New("recipe not found or not yours")
	// ErrShareNotFound is returned when a publication does not exist or was
	// not created by the acting user.
	ErrShareNotFound = errors.New("shared recipe not found or not yours")
	// ErrFavoriteNotFound is returned when a favorite does not exist for the acting user.
	ErrFavoriteNotFound = errors.New("recipe not found in favorites")
	// ErrAlreadyShared is returned when a recipe has already been published by the user.
	ErrAlreadyShared = errors.New("recipe already shared")
	// ErrAlreadyFavorited is returned when a favorite pair already exists.
	ErrAlreadyFavorited = errors.New("recipe already favorited")
	// ErrNoFavorites is returned when the global favorites listing is empty.
	ErrNoFavorites = errors.New("no favorite recipes found")
	// ErrInvalidSource is returned for an unknown recipe-detail source.
	ErrInvalidSource = errors.New("invalid source")
	// ErrHandleSpaceExhausted is returned when handle generation gives up.
	ErrHandleSpaceExhausted = errors.New("could not allocate a unique handle")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Store failures fall
// through to a generic 500 so internals never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrHandleTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "HANDLE_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrRecipeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECIPE_NOT_FOUND")
	case errors.Is(err, ErrShareNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SHARE_NOT_FOUND")
	case errors.Is(err, ErrFavoriteNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "FAVORITE_NOT_FOUND")
	case errors.Is(err, ErrAlreadyShared):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_SHARED")
	case errors.Is(err, ErrAlreadyFavorited):
		// The original API reported duplicate favorites as a client error.
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_FAVORITED")
	case errors.Is(err, ErrNoFavorites):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_FAVORITES")
	case errors.Is(err, ErrInvalidSource):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SOURCE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
