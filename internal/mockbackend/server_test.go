package mockbackend

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursectl/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	return rr
}

func message(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["message"]
}

func TestServer_CourseLifecycle(t *testing.T) {
	s := NewServer(NewStore())

	rr := do(t, s, http.MethodGet, "/api/courses", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())

	rr = do(t, s, http.MethodPost, "/api/courses", api.CoursePayload{Title: "SQL 101", Description: "Intro", Credits: 5})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created api.Course
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "SQL 101", created.Title)
	assert.Equal(t, 5, created.Credits)
	assert.Equal(t, "/api/courses/"+created.ID, rr.Header().Get("Location"))

	rr = do(t, s, http.MethodGet, "/api/courses/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, s, http.MethodDelete, "/api/courses/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = do(t, s, http.MethodGet, "/api/courses/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, message(t, rr), "not found")
}

func TestServer_Errors(t *testing.T) {
	s := NewServer(NewStore())

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
		wantMsg    string
	}{
		{"blank title", http.MethodPost, "/api/courses", api.CoursePayload{Title: "  "}, http.StatusBadRequest, "Title is required"},
		{"negative credits", http.MethodPost, "/api/courses", api.CoursePayload{Title: "x", Credits: -1}, http.StatusBadRequest, "Credits must not be negative"},
		{"blank email", http.MethodPost, "/api/participants", api.ParticipantPayload{FirstName: "Ada"}, http.StatusBadRequest, "Email is required"},
		{"unknown course", http.MethodGet, "/api/courses/not-a-real-id", nil, http.StatusNotFound, "Course not-a-real-id not found"},
		{"unknown participant delete", http.MethodDelete, "/api/participants/nope", nil, http.StatusNotFound, "Participant nope not found"},
		{"unknown route", http.MethodGet, "/api/grades", nil, http.StatusNotFound, "No route for /api/grades"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, message(t, rr))
		})
	}
}

func TestServer_MalformedJSON(t *testing.T) {
	s := NewServer(NewStore())

	req := httptest.NewRequest(http.MethodPost, "/api/participants", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request payload", message(t, rr))
}

func TestServer_ParticipantsThroughClient(t *testing.T) {
	srv := httptest.NewServer(NewServer(NewStore()))
	defer srv.Close()

	endpoint := api.NewParticipantEndpoint(api.NewClient(srv.URL))
	ctx := t.Context()

	created, err := endpoint.Create(ctx, api.ParticipantPayload{FirstName: "Ada", LastName: "Lovelace", Email: "a@b.com"})
	require.NoError(t, err)

	got, err := endpoint.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := endpoint.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []api.Participant{created}, list)

	require.NoError(t, endpoint.Delete(ctx, created.ID))
	err = endpoint.Delete(ctx, created.ID)
	assert.True(t, api.IsNotFound(err))
}

func TestStore_ReturnsCopies(t *testing.T) {
	st := NewStore()
	st.AddCourse(api.CoursePayload{Title: "A"})

	list := st.Courses()
	list[0].Title = "changed"

	assert.Equal(t, "A", st.Courses()[0].Title)
	assert.False(t, st.DeleteCourse("missing"))
}
