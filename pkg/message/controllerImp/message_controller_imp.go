package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	accessSvc "tripmind/pkg/access/service"
	"tripmind/entities"
	"tripmind/pkg/message/service"
)

type MsgCtrl struct{ svc service.MessageService }

func New(svc service.MessageService) *MsgCtrl { return &MsgCtrl{svc: svc} }

func (h *MsgCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	msgs, err := h.svc.List(c.Param("id"), uid)
	if errors.Is(err, accessSvc.ErrDenied) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *MsgCtrl) Append(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Content string `json:"content"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.Content) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content required"})
	}
	m, err := h.svc.Append(c.Param("id"), uid, entities.RoleUser, body.Content, nil)
	if errors.Is(err, accessSvc.ErrDenied) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}
