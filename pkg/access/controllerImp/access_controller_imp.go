package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tripmind/pkg/access/service"
)

type AccessCtrl struct{ svc service.AccessService }

func New(svc service.AccessService) *AccessCtrl { return &AccessCtrl{svc: svc} }

func (h *AccessCtrl) Invite(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Invitee    string `json:"invitee"`
		Permission string `json:"permission"`
	}
	if err := c.Bind(&body); err != nil || body.Invitee == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invitee required"})
	}
	_, err := h.svc.Invite(c.Param("id"), uid, body.Invitee, body.Permission)
	switch {
	case errors.Is(err, service.ErrDenied):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "invited"})
}

func (h *AccessCtrl) Accept(c echo.Context) error {
	uid := c.Get("uid").(string)
	_, err := h.svc.Accept(c.Param("id"), uid)
	switch {
	case errors.Is(err, service.ErrDenied):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "accepted"})
}

func (h *AccessCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	grants, err := h.svc.ListGrants(c.Param("id"), uid)
	switch {
	case errors.Is(err, service.ErrDenied):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, grants)
}
