// Package app wires the HTTP surface of the screens onto the router.
package app

import (
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/expense-share/app/controllers"
	"github.com/km-arc/expense-share/framework/container"
	"github.com/km-arc/expense-share/routing"
	"github.com/km-arc/expense-share/screens"
)

// Routes registers every application route on r. It plays the part of
// routes/web.php and routes/api.php.
func Routes(r *routing.Router, store *screens.Store, logger *log.Logger) {
	base := controllers.Controller{Log: logger}
	landing := &controllers.LandingController{Controller: base}
	auth := &controllers.AuthController{Controller: base}
	scr := &controllers.ScreenController{Controller: base, Store: store}

	r.Get("/", landing.Index)

	r.Prefix("/api/v1", func(api *routing.Router) {
		// Bodies are JSON or HTML form posts; anything else is a 415.
		api.Middleware(middleware.AllowContentType(
			"application/json",
			"application/x-www-form-urlencoded",
			"multipart/form-data",
		))

		api.Post("/login", auth.Login)
		api.Post("/login/magic-link", auth.MagicLink)
		api.Post("/signup", auth.SignUp)

		api.Prefix("/screens", func(s *routing.Router) {
			s.Post("/", scr.Mount)
			s.Get("/{id}", scr.Show)
			s.Delete("/{id}", scr.Unmount)
			s.Put("/{id}/fields/{field}", scr.SetField)

			s.Group(func(g *routing.Router) {
				g.Middleware(middleware.NoCache)
				g.Post("/{id}/submit", scr.Submit)
				g.Post("/{id}/magic-link", scr.MagicLink)
				g.Post("/{id}/forgot-password", scr.ForgotPassword)
				g.Post("/{id}/navigate/{action}", scr.Navigate)
			})
		})
	})
}

// RouteServiceProvider registers the application routes once the router,
// screen store and logger are bound.
//
// Laravel equivalent:
//
//	// App\Providers\RouteServiceProvider::boot()
//	Route::middleware('api')->prefix('api')->group(base_path('routes/api.php'));
type RouteServiceProvider struct{}

func (p *RouteServiceProvider) Register(_ *container.Container) {}

func (p *RouteServiceProvider) Boot(c *container.Container) {
	logger := container.Resolve[*log.Logger](c, "log")
	Routes(
		container.Resolve[*routing.Router](c, "router"),
		container.Resolve[*screens.Store](c, "screens"),
		logger.WithPrefix("controllers"),
	)
}
