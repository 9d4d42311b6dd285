package mockbackend

import (
	"sync"

	"coursectl/internal/api"

	"github.com/google/uuid"
)

// Store keeps courses and participants in memory, newest last.
type Store struct {
	mu           sync.RWMutex
	courses      []api.Course
	participants []api.Participant
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) Courses() []api.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]api.Course{}, s.courses...)
}

func (s *Store) AddCourse(p api.CoursePayload) api.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := api.Course{
		ID:          uuid.NewString(),
		Title:       p.Title,
		Description: p.Description,
		Credits:     p.Credits,
	}
	s.courses = append(s.courses, c)
	return c
}

func (s *Store) Course(id string) (api.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return api.Course{}, false
}

// DeleteCourse reports whether a course with id existed.
func (s *Store) DeleteCourse(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.courses {
		if c.ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Participants() []api.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]api.Participant{}, s.participants...)
}

func (s *Store) AddParticipant(p api.ParticipantPayload) api.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	pt := api.Participant{
		ID:        uuid.NewString(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
	s.participants = append(s.participants, pt)
	return pt
}

func (s *Store) Participant(id string) (api.Participant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.participants {
		if p.ID == id {
			return p, true
		}
	}
	return api.Participant{}, false
}

// DeleteParticipant reports whether a participant with id existed.
func (s *Store) DeleteParticipant(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.participants {
		if p.ID == id {
			s.participants = append(s.participants[:i], s.participants[i+1:]...)
			return true
		}
	}
	return false
}
