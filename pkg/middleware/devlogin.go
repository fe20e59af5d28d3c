package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DevLogin identifies the caller by the TRIP_UID cookie, minting one from the
// uid query param (or a fixed dev default) when absent. Every handler can then
// rely on c.Get("uid") being a non-empty string.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie("TRIP_UID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
				}
				c.SetCookie(&http.Cookie{Name: "TRIP_UID", Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

// RequireUser rejects requests that somehow reach a handler without an
// identity. With strict=false it passes through for development setups.
func RequireUser(strict bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strict {
				return next(c)
			}
			if uid, _ := c.Get("uid").(string); uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing identity"})
			}
			return next(c)
		}
	}
}
