package handler

import (
	"net/http"

	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/middleware"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// referenceRoutes is satisfied by every ReferenceHandler instantiation.
type referenceRoutes interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Bulk(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// Handlers groups every resource handler mounted under /api.
type Handlers struct {
	Users         *UserHandler
	Organizations *OrganizationHandler
	Maintainers   *MaintainerHandler
	Freelancers   *FreelancerHandler
	Trainings     *TrainingHandler
	Categories    referenceRoutes
	Locations     referenceRoutes
	Stacks        referenceRoutes
	ActionLogs    *ActionLogHandler
}

var (
	admin        = middleware.RequireRole(model.RoleAdmin)
	staff        = middleware.RequireRole(model.RoleAdmin, model.RoleMaintainer)
	organization = middleware.RequireRole(model.RoleOrganization)
	freelancer   = middleware.RequireRole(model.RoleFreelancer)
	orgOrAdmin   = middleware.RequireRole(model.RoleAdmin, model.RoleOrganization)
	anyStaffOrg  = middleware.RequireRole(model.RoleAdmin, model.RoleMaintainer, model.RoleOrganization)
)

// Mount registers the authenticated API on r. Every route requires a bearer
// token; the role gates below are coarse and the services narrow them
// further by ownership.
func Mount(r chi.Router, tokens *auth.TokenManager, users middleware.UserLookup, h Handlers) {
	r.Group(func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))
		r.Use(middleware.AuthMiddleware(tokens, users))

		r.Route("/users", func(r chi.Router) {
			r.Use(admin)
			r.Get("/", h.Users.List)
			r.Post("/", h.Users.Create)
			r.Patch("/", h.Users.Bulk)
			r.Delete("/", h.Users.Delete)
			r.Get("/{id}", h.Users.Get)
			r.Put("/{id}", h.Users.Update)
		})

		r.Route("/organizations", func(r chi.Router) {
			r.With(staff).Get("/", h.Organizations.List)
			r.With(admin).Post("/", h.Organizations.Create)
			r.With(staff).Patch("/", h.Organizations.Bulk)
			r.With(admin).Delete("/", h.Organizations.Delete)
			r.With(organization).Get("/me", h.Organizations.Me)
			r.With(anyStaffOrg).Get("/{id}", h.Organizations.Get)
			r.With(orgOrAdmin).Put("/{id}", h.Organizations.Update)
		})

		r.Route("/maintainers", func(r chi.Router) {
			r.Use(admin)
			r.Get("/", h.Maintainers.List)
			r.Patch("/", h.Maintainers.Bulk)
			r.Put("/{id}", h.Maintainers.Update)
		})

		r.Route("/freelancers", func(r chi.Router) {
			r.With(staff).Get("/", h.Freelancers.List)
			r.With(staff).Patch("/", h.Freelancers.Bulk)
			r.With(freelancer).Get("/me", h.Freelancers.Me)
			r.With(freelancer).Put("/me", h.Freelancers.UpdateMe)
			r.With(staff).Get("/{id}", h.Freelancers.Get)
		})

		r.Route("/trainings", func(r chi.Router) {
			r.Get("/", h.Trainings.List)
			r.With(orgOrAdmin).Post("/", h.Trainings.Create)
			r.With(anyStaffOrg).Patch("/", h.Trainings.Bulk)
			r.With(orgOrAdmin).Delete("/", h.Trainings.Delete)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Trainings.Get)
				r.With(orgOrAdmin).Put("/", h.Trainings.Update)
				r.With(freelancer).Post("/applications", h.Trainings.Apply)
				r.With(orgOrAdmin).Get("/applications", h.Trainings.ListApplications)
				r.With(organization).Put("/applications/{applicationId}", h.Trainings.DecideApplication)
				r.With(organization).Post("/feedback", h.Trainings.AddFeedback)
				r.Get("/feedback", h.Trainings.ListFeedback)
			})
		})

		mountReference(r, "/training-categories", h.Categories)
		mountReference(r, "/training-locations", h.Locations)
		mountReference(r, "/stacks", h.Stacks)

		r.With(admin).Get("/action-logs", h.ActionLogs.List)
	})
}

func mountReference(r chi.Router, path string, h referenceRoutes) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/", h.Create)
			r.Patch("/", h.Bulk)
			r.Delete("/", h.Delete)
			r.Put("/{id}", h.Update)
		})
	})
}
