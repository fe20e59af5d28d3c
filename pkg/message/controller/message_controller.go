package controller

import "github.com/labstack/echo/v4"

type MessageController interface {
	List(c echo.Context) error
	Append(c echo.Context) error
}
