package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"resepku/internal/auth"
)

// currentUserID returns the acting user's id from the verified token claims.
// Identity is always derived from the token, never from request payloads.
func currentUserID(c echo.Context) (uint, error) {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
