package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmafra/gestor/internal/auth"
	authhttp "github.com/dmafra/gestor/internal/http/auth"
	"github.com/dmafra/gestor/internal/http/campaign"
	"github.com/dmafra/gestor/internal/http/cashflow"
	"github.com/dmafra/gestor/internal/http/client"
	"github.com/dmafra/gestor/internal/http/crm"
	"github.com/dmafra/gestor/internal/http/deadline"
	"github.com/dmafra/gestor/internal/http/export"
	"github.com/dmafra/gestor/internal/http/importcsv"
	"github.com/dmafra/gestor/internal/http/prefs"
	"github.com/dmafra/gestor/internal/http/task"
)

func New(
	authSvc *auth.Service,
	allowedOrigins []string,
	authV1 *authhttp.Handler,
	transactionsV1 *cashflow.Handler,
	tasksV1 *task.Handler,
	clientsV1 *client.Handler,
	deadlinesV1 *deadline.Handler,
	campaignsV1 *campaign.Handler,
	crmV1 *crm.Handler,
	prefsV1 *prefs.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", authV1.Routes)

		// Everything except the auth endpoints requires a session.
		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware)

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				transactionsV1.Routes(r)
			})

			r.Route("/tasks", tasksV1.Routes)
			r.Route("/clients", clientsV1.Routes)
			r.Route("/deadlines", deadlinesV1.Routes)
			r.Route("/campaigns", campaignsV1.Routes)
			r.Route("/crm", crmV1.Routes)
			r.Route("/prefs", prefsV1.Routes)
			r.Route("/import", importV1.Routes)
			r.Route("/export", exportV1.Routes)
		})
	})

	return router
}
