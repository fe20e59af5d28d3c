package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	accessSvc "tripmind/pkg/access/service"
	"tripmind/pkg/pipeline"
	"tripmind/pkg/plan/types"
	"tripmind/pkg/trip/repository"
	"tripmind/pkg/trip/service"
)

type TripCtrl struct{ svc service.TripService }

func NewTripCtrl(svc service.TripService) *TripCtrl { return &TripCtrl{svc: svc} }

func (h *TripCtrl) Plan(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		TripID            string   `json:"trip_id"`
		Prompt            string   `json:"prompt"`
		Destination       string   `json:"destination"`
		StartDate         string   `json:"start_date"`
		DurationDays      int      `json:"duration_days"`
		Travelers         int      `json:"travelers"`
		BudgetUSD         float64  `json:"budget_usd"`
		SelectedOptionIDs []string `json:"selected_option_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req := types.PlanRequest{
		TripID:            body.TripID,
		UserID:            uid,
		Prompt:            body.Prompt,
		Destination:       body.Destination,
		StartDate:         body.StartDate,
		DurationDays:      body.DurationDays,
		Travelers:         body.Travelers,
		BudgetUSD:         body.BudgetUSD,
		SelectedOptionIDs: body.SelectedOptionIDs,
	}
	plan, version, err := h.svc.Plan(c.Request().Context(), req)
	if err != nil {
		return planError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"trip_id": plan.TripID,
		"version": version,
		"plan":    plan,
	})
}

func planError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, accessSvc.ErrDenied):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, pipeline.ErrAborted):
		return c.JSON(http.StatusGatewayTimeout, map[string]string{"error": "planning aborted"})
	case errors.Is(err, pipeline.ErrFatal):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *TripCtrl) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)
	trips, err := h.svc.ListMine(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, trips)
}

func (h *TripCtrl) Latest(c echo.Context) error {
	uid := c.Get("uid").(string)
	plan, err := h.svc.Latest(c.Param("id"), uid)
	if err != nil {
		return planError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *TripCtrl) Versions(c echo.Context) error {
	uid := c.Get("uid").(string)
	versions, err := h.svc.ListVersions(c.Param("id"), uid)
	if err != nil {
		return planError(c, err)
	}
	type item struct {
		Version    int    `json:"version"`
		ModifiedBy string `json:"modified_by"`
		CreatedAt  string `json:"created_at"`
	}
	out := make([]item, 0, len(versions))
	for _, v := range versions {
		out = append(out, item{
			Version:    v.VersionNumber,
			ModifiedBy: v.ModifiedBy,
			CreatedAt:  v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TripCtrl) Version(c echo.Context) error {
	uid := c.Get("uid").(string)
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad version number"})
	}
	plan, err := h.svc.Version(c.Param("id"), uid, n)
	if err != nil {
		return planError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *TripCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.Delete(c.Param("id"), uid); err != nil {
		return planError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
