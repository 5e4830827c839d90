package auth

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// EchoJWTConfig builds the echo-jwt configuration for bearer-token routes.
// A missing Authorization header and a rejected token map to different
// statuses so clients can tell "no credentials" from "bad credentials";
// the internal cause is only logged, never returned.
func EchoJWTConfig(secret string) echojwt.Config {
	return echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusForbidden, "No token provided")
			}
			c.Logger().Warnf("token rejected: %v", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		},
	}
}

// CurrentUser returns the verified claims attached by the JWT middleware.
func CurrentUser(c echo.Context) (*Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return claims, nil
}
