package api

import (
	"context"
	"net/http"
	"net/url"
)

// Endpoint is a typed view of one resource collection on the backend.
type Endpoint[T Record] struct {
	client *Client
	path   string
}

// NewEndpoint returns an endpoint for the collection at path.
func NewEndpoint[T Record](client *Client, path string) *Endpoint[T] {
	return &Endpoint[T]{client: client, path: path}
}

// NewCourseEndpoint returns the /api/courses endpoint.
func NewCourseEndpoint(client *Client) *Endpoint[Course] {
	return NewEndpoint[Course](client, CoursesPath)
}

// NewParticipantEndpoint returns the /api/participants endpoint.
func NewParticipantEndpoint(client *Client) *Endpoint[Participant] {
	return NewEndpoint[Participant](client, ParticipantsPath)
}

func (e *Endpoint[T]) itemPath(id string) string {
	return e.path + "/" + url.PathEscape(id)
}

// List fetches the whole collection. A null body yields an empty slice.
func (e *Endpoint[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := e.client.Do(ctx, http.MethodGet, e.path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create posts payload and returns the record echoed by the backend.
func (e *Endpoint[T]) Create(ctx context.Context, payload interface{}) (T, error) {
	var created T
	if err := e.client.Do(ctx, http.MethodPost, e.path, payload, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Get fetches a single record by id.
func (e *Endpoint[T]) Get(ctx context.Context, id string) (T, error) {
	var found T
	if err := e.client.Do(ctx, http.MethodGet, e.itemPath(id), nil, &found); err != nil {
		var zero T
		return zero, err
	}
	return found, nil
}

// Delete removes a record by id. The backend answers without a body.
func (e *Endpoint[T]) Delete(ctx context.Context, id string) error {
	return e.client.Do(ctx, http.MethodDelete, e.itemPath(id), nil, nil)
}
