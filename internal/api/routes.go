package api

import (
	"github.com/campusdesk/registry-api/internal/store"
	"github.com/go-chi/chi/v5"
)

type API struct {
	router *chi.Mux
	store  *store.Store
}

func NewAPI(s *store.Store) *API {
	api := &API{router: chi.NewRouter(), store: s}
	api.routes()
	return api
}

func (a *API) Routes() *chi.Mux {
	return a.router
}

func (a *API) routes() {
	courseH := NewCourseHandler(a.store)
	studentH := NewStudentHandler(a.store)
	dashH := NewDashboardHandler(a.store)

	r := a.router
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", courseH.ListCourses)
		r.Post("/", courseH.CreateCourse)
		r.Get("/{id}", courseH.GetCourse)
		r.Put("/{id}", courseH.UpdateCourse)
		r.Delete("/{id}", courseH.DeleteCourse)
	})

	r.Route("/students", func(r chi.Router) {
		r.Get("/", studentH.ListStudents)
		r.Post("/", studentH.CreateStudent)
		r.Get("/{id}", studentH.GetStudent)
		r.Put("/{id}", studentH.UpdateStudent)
		r.Delete("/{id}", studentH.DeleteStudent)
	})

	r.Get("/dashboard/stats", dashH.GetStats)
}
