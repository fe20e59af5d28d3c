package controller

import "github.com/labstack/echo/v4"

type TripController interface {
	Plan(c echo.Context) error
	ListMine(c echo.Context) error
	Latest(c echo.Context) error
	Versions(c echo.Context) error
	Version(c echo.Context) error
	Delete(c echo.Context) error
}
