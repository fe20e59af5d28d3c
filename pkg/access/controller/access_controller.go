package controller

import "github.com/labstack/echo/v4"

type AccessController interface {
	Invite(c echo.Context) error
	Accept(c echo.Context) error
	List(c echo.Context) error
}
