package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coursectl/internal/api"
	"coursectl/internal/mockbackend"
	"coursectl/internal/tui/model"
	"coursectl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t     *testing.T
	m     *model.Model
	store *mockbackend.Store
}

// newHarness starts the mock backend and mounts tab against it with the
// initial load already applied.
func newHarness(t *testing.T, tab model.Tab) *harness {
	t.Helper()
	store := mockbackend.NewStore()
	return startHarness(t, tab, store, mockbackend.NewServer(store))
}

func startHarness(t *testing.T, tab model.Tab, store *mockbackend.Store, handler http.Handler) *harness {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := model.InitializeModel(model.TUIConfig{
		Client:     api.NewClient(srv.URL),
		DefaultTab: tab,
	}, nil)
	h := &harness{t: t, m: m, store: store}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 50})
	h.complete(m.Panel.Load())
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	m, cmd := Update(msg, h.m)
	h.m = m
	return cmd
}

func (h *harness) key(k string) tea.Cmd {
	switch k {
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return h.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		return h.send(tea.KeyMsg{Type: tea.KeyTab})
	}
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// complete runs a panel request synchronously and feeds its completion
// back through Update.
func (h *harness) complete(cmd tea.Cmd) {
	h.t.Helper()
	require.NotNil(h.t, cmd, "expected a request to be issued")
	msg := cmd()
	_, ok := msg.(model.PanelMsg)
	require.True(h.t, ok, "expected a panel completion, got %T", msg)
	h.send(msg)
}

func (h *harness) view() string {
	return view.Render(h.m)
}

func TestScenario_CreateCourse(t *testing.T) {
	h := newHarness(t, model.TabCourses)
	assert.Contains(t, h.view(), "No courses yet")

	h.key("n")
	require.True(t, h.m.Panel.FieldFocused(0))
	h.typeText("SQL 101")
	h.key("tab")
	h.typeText("Intro")
	h.key("tab")
	require.True(t, h.m.Panel.FieldFocused(2))
	assert.Equal(t, "5", h.m.Panel.Draft()["credits"], "credits default to 5")

	h.complete(h.key("enter"))

	require.Equal(t, 1, h.m.Panel.Len())
	stored := h.store.Courses()
	require.Len(t, stored, 1)
	assert.Equal(t, "SQL 101", stored[0].Title)
	assert.Equal(t, "Intro", stored[0].Description)
	assert.Equal(t, 5, stored[0].Credits)
	assert.NotEmpty(t, stored[0].ID)

	assert.Equal(t, "", h.m.Panel.Draft()["title"])
	assert.Equal(t, "5", h.m.Panel.Draft()["credits"])
	assert.Equal(t, "Created course SQL 101", h.m.StatusBarMessage)
	assert.Empty(t, h.m.ErrorMessage)

	h.key("esc")
	assert.Equal(t, stored[0].ID, h.m.Panel.SelectedID())

	out := h.view()
	assert.Contains(t, out, "SQL 101")
	assert.Contains(t, out, stored[0].ID)
	assert.NotContains(t, out, "No courses yet")
}

func TestScenario_RemoveParticipant(t *testing.T) {
	h := newHarness(t, model.TabParticipants)

	h.key("n")
	h.key("tab")
	h.key("tab")
	h.typeText("a@b.com")
	h.complete(h.key("enter"))
	require.Equal(t, 1, h.m.Panel.Len())

	h.key("esc")
	id := h.m.Panel.SelectedID()
	require.NotEmpty(t, id)

	h.complete(h.key("d"))

	assert.Equal(t, 0, h.m.Panel.Len())
	assert.Empty(t, h.store.Participants())
	assert.Contains(t, h.view(), "No participants yet. Create one above.")
	assert.Equal(t, "Deleted participant "+id, h.m.StatusBarMessage)
}

func TestScenario_LookupNotFound(t *testing.T) {
	h := newHarness(t, model.TabCourses)
	created := h.store.AddCourse(api.CoursePayload{Title: "SQL 101", Credits: 5})

	h.key("/")
	require.True(t, h.m.Panel.LookupFocused())
	h.typeText(created.ID)
	h.complete(h.key("enter"))
	_, ok := h.m.Panel.LookupJSON()
	require.True(t, ok)
	assert.Contains(t, h.view(), `"title": "SQL 101"`)

	h.m.Panel.SetLookupDraft("not-a-real-id")
	h.complete(h.key("enter"))

	assert.Equal(t, "Course not-a-real-id not found", h.m.ErrorMessage)
	_, ok = h.m.Panel.LookupJSON()
	assert.False(t, ok)

	out := h.view()
	assert.Contains(t, out, "Error: Course not-a-real-id not found")
	assert.NotContains(t, out, `"title": "SQL 101"`)
	assert.Contains(t, out, "Demonstrates GET /api/courses/{id}")
}

func TestScenario_BlankTitleNotSubmitted(t *testing.T) {
	h := newHarness(t, model.TabCourses)

	h.key("n")
	h.typeText("   ")
	assert.Nil(t, h.key("enter"), "blank title cannot be submitted")
	assert.Empty(t, h.store.Courses())
	assert.Empty(t, h.m.ErrorMessage)
}

func TestScenario_TabSwitchDropsStaleLoad(t *testing.T) {
	h := newHarness(t, model.TabCourses)
	h.store.AddCourse(api.CoursePayload{Title: "SQL 101"})
	h.store.AddParticipant(api.ParticipantPayload{Email: "a@b.com"})

	stale := h.key("r")
	require.NotNil(t, stale)

	load := h.key("2")
	require.NotNil(t, load)
	assert.Equal(t, model.TabParticipants, h.m.ActiveTab)

	h.complete(stale)
	assert.Equal(t, 0, h.m.Panel.Len(), "the courses result is not applied to participants")

	h.complete(load)
	assert.Equal(t, 1, h.m.Panel.Len())

	assert.Nil(t, h.key("2"), "reselecting the active tab does nothing")

	h.complete(h.key("1"))
	assert.Equal(t, model.TabCourses, h.m.ActiveTab)
	assert.Equal(t, 1, h.m.Panel.Len())
}

func TestScenario_FailureAfterTabSwitchReachesBanner(t *testing.T) {
	store := mockbackend.NewStore()
	store.AddParticipant(api.ParticipantPayload{Email: "a@b.com"})
	backend := mockbackend.NewServer(store)
	h := startHarness(t, model.TabCourses, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == api.CoursesPath {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"db down"}`))
			return
		}
		backend.ServeHTTP(w, r)
	}))

	h.key("n")
	h.typeText("SQL 101")
	create := h.key("enter")
	require.NotNil(t, create)
	h.key("esc")

	load := h.key("2")
	require.NotNil(t, load)
	h.complete(load)
	require.Equal(t, 1, h.m.Panel.Len())

	h.complete(create)

	assert.Equal(t, "db down", h.m.ErrorMessage)
	assert.Equal(t, model.TabParticipants, h.m.ActiveTab)
	assert.Equal(t, 1, h.m.Panel.Len(), "the participants list is untouched")
	assert.False(t, h.m.Panel.Loading())
	assert.Contains(t, h.view(), "Error: db down")
}

func TestScenario_BackendDown(t *testing.T) {
	store := mockbackend.NewStore()
	srv := httptest.NewServer(mockbackend.NewServer(store))
	srv.Close()

	m := model.InitializeModel(model.TUIConfig{Client: api.NewClient(srv.URL)}, nil)
	h := &harness{t: t, m: m, store: store}
	h.complete(m.Panel.Load())

	assert.NotEmpty(t, h.m.ErrorMessage)
	assert.False(t, h.m.Panel.Loading())
	assert.True(t, h.m.Panel.CanRefresh())

	h.key("esc")
	assert.Empty(t, h.m.ErrorMessage)
}
