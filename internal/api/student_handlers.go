package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/campusdesk/registry-api/internal/models"
	"github.com/campusdesk/registry-api/internal/store"
	"github.com/go-chi/chi/v5"
)

type StudentHandler struct {
	store *store.Store
}

func NewStudentHandler(s *store.Store) *StudentHandler {
	return &StudentHandler{store: s}
}

// GET /api/students
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.store.ListStudents(r.Context())
	if err != nil {
		writeStoreError(w, err, "Student not found")
		return
	}
	writeJSON(w, http.StatusOK, students)
}

// POST /api/students
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var st models.Student
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	st.ID = ""
	st.CreatedAt = time.Time{}
	st.UpdatedAt = time.Time{}
	if err := h.store.CreateStudent(r.Context(), &st); err != nil {
		writeStoreError(w, err, "Student not found")
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

// GET /api/students/{id}
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	st, err := h.store.GetStudentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err, "Student not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// PUT /api/students/{id}
func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name           *string      `json:"name"`
		Email          *string      `json:"email"`
		Course         *string      `json:"course"`
		EnrollmentDate *models.Date `json:"enrollmentDate"`
		Status         *string      `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updates := map[string]interface{}{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Course != nil {
		updates["course"] = *payload.Course
	}
	if payload.EnrollmentDate != nil {
		updates["enrollment_date"] = *payload.EnrollmentDate
	}
	if payload.Status != nil {
		updates["status"] = *payload.Status
	}
	st, err := h.store.UpdateStudentFields(r.Context(), chi.URLParam(r, "id"), updates)
	if err != nil {
		writeStoreError(w, err, "Student not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// DELETE /api/students/{id}
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteStudent(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err, "Student not found")
		return
	}
	writeMessage(w, http.StatusOK, "Student deleted successfully")
}
