package router

import (
	"github.com/labstack/echo/v4"

	"tripmind/pkg/middleware"
)

func New(
	e *echo.Echo,
	tripCtrl interface {
		Plan(echo.Context) error
		ListMine(echo.Context) error
		Latest(echo.Context) error
		Versions(echo.Context) error
		Version(echo.Context) error
		Delete(echo.Context) error
	},
	accessCtrl interface {
		Invite(echo.Context) error
		Accept(echo.Context) error
		List(echo.Context) error
	},
	msgCtrl interface {
		List(echo.Context) error
		Append(echo.Context) error
	},
	profileCtrl interface {
		Get(echo.Context) error
		Put(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	// Knowledge base
	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)

	// Planning and version history
	api.POST("/trips/plan", tripCtrl.Plan)
	api.GET("/trips", tripCtrl.ListMine)
	api.GET("/trips/:id", tripCtrl.Latest)
	api.GET("/trips/:id/versions", tripCtrl.Versions)
	api.GET("/trips/:id/versions/:n", tripCtrl.Version)
	api.DELETE("/trips/:id", tripCtrl.Delete)

	// Collaboration
	api.POST("/trips/:id/invite", accessCtrl.Invite)
	api.POST("/trips/:id/accept", accessCtrl.Accept)
	api.GET("/trips/:id/grants", accessCtrl.List)

	// Conversation log
	api.GET("/trips/:id/messages", msgCtrl.List)
	api.POST("/trips/:id/messages", msgCtrl.Append)

	// Traveler profile
	api.GET("/profile", profileCtrl.Get)
	api.PUT("/profile", profileCtrl.Put)

	return e
}
