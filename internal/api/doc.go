// Package api is the HTTP client for the courses/participants backend.
//
// The package has two layers:
//
//  1. Client - issues a single request against the configured base URL,
//     decodes a JSON response and turns non-2xx statuses into *APIError.
//
//  2. Endpoint[T] - a typed collection wrapper (List, Create, Get, Delete)
//     over one resource path such as /api/courses.
//
// The client has no retries, timeouts or caching. Callers bound requests
// through the context they pass in.
//
// Example Usage:
//
//	client := api.NewClient("http://localhost:5000")
//	courses := api.NewCourseEndpoint(client)
//
//	created, err := courses.Create(ctx, api.CoursePayload{Title: "SQL 101", Credits: 5})
//	if err != nil {
//	    var apiErr *api.APIError
//	    if errors.As(err, &apiErr) {
//	        fmt.Println(apiErr.StatusCode, apiErr.Message)
//	    }
//	    return err
//	}
//	fmt.Println(created.ID)
package api
