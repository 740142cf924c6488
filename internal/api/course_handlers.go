package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/campusdesk/registry-api/internal/models"
	"github.com/campusdesk/registry-api/internal/store"
	"github.com/go-chi/chi/v5"
)

type CourseHandler struct {
	store *store.Store
}

func NewCourseHandler(s *store.Store) *CourseHandler {
	return &CourseHandler{store: s}
}

// GET /api/courses
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.store.ListCourses(r.Context())
	if err != nil {
		writeStoreError(w, err, "Course not found")
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

// POST /api/courses
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var c models.Course
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// server-generated fields are never taken from the client
	c.ID = ""
	c.CreatedAt = time.Time{}
	c.UpdatedAt = time.Time{}
	if err := h.store.CreateCourse(r.Context(), &c); err != nil {
		writeStoreError(w, err, "Course not found")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// GET /api/courses/{id}
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.GetCourseByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err, "Course not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// PUT /api/courses/{id}
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Duration    *int    `json:"duration"`
		Status      *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updates := map[string]interface{}{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Duration != nil {
		updates["duration"] = *payload.Duration
	}
	if payload.Status != nil {
		updates["status"] = *payload.Status
	}
	c, err := h.store.UpdateCourseFields(r.Context(), chi.URLParam(r, "id"), updates)
	if err != nil {
		writeStoreError(w, err, "Course not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DELETE /api/courses/{id}
//
// Reports success even when nothing matched; see DESIGN.md for why the
// always-200 contract is kept.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCourse(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err, "Course not found")
		return
	}
	writeMessage(w, http.StatusOK, "Course deleted successfully")
}
