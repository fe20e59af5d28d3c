package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tripmind/entities"
	"tripmind/pkg/profile/repository"
)

type ProfileCtrl struct{ repo repository.UserRepository }

func New(repo repository.UserRepository) *ProfileCtrl { return &ProfileCtrl{repo: repo} }

func (h *ProfileCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	u, err := h.repo.FindByUserID(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *ProfileCtrl) Put(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Name           string   `json:"name"`
		Email          string   `json:"email"`
		Phone          string   `json:"phone"`
		Country        string   `json:"country"`
		HomeCity       string   `json:"home_city"`
		DietPreference []string `json:"diet_preference"`
		DefaultBudget  *float64 `json:"default_budget"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u := &entities.User{
		UserID:         uid,
		Name:           body.Name,
		Email:          body.Email,
		Phone:          body.Phone,
		Country:        body.Country,
		HomeCity:       body.HomeCity,
		DietPreference: strings.Join(body.DietPreference, ","),
		DefaultBudget:  body.DefaultBudget,
	}
	if err := h.repo.Upsert(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}
