// Package mockbackend is an in-memory stand-in for the course and
// participant REST backend. It is used by the end-to-end tests and by the
// mock-backend command.
package mockbackend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"coursectl/internal/api"
	"coursectl/pkg/logging"

	"github.com/gorilla/mux"
)

const subsystem = "MockBackend"

// Server serves the REST surface over a Store.
type Server struct {
	store  *Store
	router *mux.Router
}

// NewServer wires the routes for store.
func NewServer(store *Store) *Server {
	s := &Server{store: store, router: mux.NewRouter()}

	r := s.router.PathPrefix("/api").Subrouter()
	r.Use(logRequests)

	r.HandleFunc("/courses", s.listCourses).Methods(http.MethodGet)
	r.HandleFunc("/courses", s.createCourse).Methods(http.MethodPost)
	r.HandleFunc("/courses/{id}", s.getCourse).Methods(http.MethodGet)
	r.HandleFunc("/courses/{id}", s.deleteCourse).Methods(http.MethodDelete)

	r.HandleFunc("/participants", s.listParticipants).Methods(http.MethodGet)
	r.HandleFunc("/participants", s.createParticipant).Methods(http.MethodPost)
	r.HandleFunc("/participants/{id}", s.getParticipant).Methods(http.MethodGet)
	r.HandleFunc("/participants/{id}", s.deleteParticipant).Methods(http.MethodDelete)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("No route for %s", r.URL.Path))
	})
	return s
}

// Store returns the backing store.
func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.Debug(subsystem, "%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Courses())
}

func (s *Server) createCourse(w http.ResponseWriter, r *http.Request) {
	var payload api.CoursePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		writeMessage(w, http.StatusBadRequest, "Title is required")
		return
	}
	if payload.Credits < 0 {
		writeMessage(w, http.StatusBadRequest, "Credits must not be negative")
		return
	}

	course := s.store.AddCourse(payload)
	logging.Info(subsystem, "Created course %s (%s)", course.ID, course.Title)
	w.Header().Set("Location", fmt.Sprintf("%s/%s", r.URL.Path, course.ID))
	writeJSON(w, http.StatusCreated, course)
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	course, ok := s.store.Course(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("Course %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (s *Server) deleteCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !s.store.DeleteCourse(id) {
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("Course %s not found", id))
		return
	}
	logging.Info(subsystem, "Deleted course %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listParticipants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Participants())
}

func (s *Server) createParticipant(w http.ResponseWriter, r *http.Request) {
	var payload api.ParticipantPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Email) == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	participant := s.store.AddParticipant(payload)
	logging.Info(subsystem, "Created participant %s (%s)", participant.ID, participant.Email)
	w.Header().Set("Location", fmt.Sprintf("%s/%s", r.URL.Path, participant.ID))
	writeJSON(w, http.StatusCreated, participant)
}

func (s *Server) getParticipant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	participant, ok := s.store.Participant(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("Participant %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, participant)
}

func (s *Server) deleteParticipant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !s.store.DeleteParticipant(id) {
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("Participant %s not found", id))
		return
	}
	logging.Info(subsystem, "Deleted participant %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "max-age=0")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error(subsystem, err, "Failed to encode response")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
