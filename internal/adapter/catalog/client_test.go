package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_ListCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "fullname": "Biology 101", "summary": "Intro biology"},
			{"id": 2, "summary": "No name on this one"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	courses, err := client.ListCourses(context.Background())

	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, int64(1), courses[0].ID)
	assert.Equal(t, "Biology 101", courses[0].FullName)
	// Missing fields arrive as zero values; defaulting is the caller's job.
	assert.Equal(t, "", courses[1].FullName)
}

func TestClient_ListCourses_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.ListCourses(context.Background())

	assert.Error(t, err)
}

func TestClient_GetCourseContents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/42/contents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"summary": "Section one",
				"modules": [
					{"name": "Cells", "description": "All about cells", "modname": "page"},
					{"name": "Photosynthesis", "modname": "page"}
				]
			},
			{"summary": "Empty section", "modules": []}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	sections, err := client.GetCourseContents(context.Background(), 42)

	assert.NoError(t, err)
	assert.Len(t, sections, 2)
	assert.Len(t, sections[0].Modules, 2)
	assert.Equal(t, "Cells", sections[0].Modules[0].Name)
	assert.Equal(t, "", sections[0].Modules[1].Description)
	assert.Empty(t, sections[1].Modules)
}
