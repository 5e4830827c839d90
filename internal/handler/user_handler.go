package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resepku/internal/errors"
	"resepku/internal/service"
	"resepku/internal/storage"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
	store       *storage.LocalStore
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, store *storage.LocalStore) *UserHandler {
	return &UserHandler{userService: userService, store: store}
}

// UpdateProfileRequest represents a partial profile update. Absent fields
// are left unchanged.
type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Handle   *string `json:"id_cookpad"`
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("get profile %d: %v", userID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user.Summary())
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), userID, service.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		Handle:   req.Handle,
	})
	if err != nil {
		c.Logger().Errorf("update profile %d: %v", userID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"user":    user.Summary(),
	})
}

// UploadProfilePicture godoc
// @Summary Upload a profile picture
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param profilePicture formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /upload-profile-picture [post]
func (h *UserHandler) UploadProfilePicture(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("profilePicture")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}

	filePath, err := h.store.Save(fh, "")
	if err != nil {
		return mapUploadError(c, err)
	}

	if err := h.userService.SetProfilePicture(c.Request().Context(), userID, filePath); err != nil {
		c.Logger().Errorf("save profile picture %d: %v", userID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":  "Profile picture uploaded successfully",
		"filePath": filePath,
	})
}

// mapUploadError converts storage errors into client responses; anything
// unexpected is logged and reported as a generic 500.
func mapUploadError(c echo.Context, err error) error {
	switch err {
	case storage.ErrFileTooLarge:
		return echo.NewHTTPError(http.StatusBadRequest, "file too large")
	case storage.ErrUnsupportedType:
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported file type")
	default:
		c.Logger().Errorf("store upload: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store file")
	}
}
