package domain

import "context"

// RemoteCourse is the transient representation of a course in the external
// catalog. Fields may arrive partially populated.
type RemoteCourse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullname"`
	Summary  string `json:"summary"`
}

// RemoteModule is one content item inside a remote section.
type RemoteModule struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ModName     string `json:"modname"`
}

// RemoteSection is one section of a remote course's content listing.
type RemoteSection struct {
	Summary string         `json:"summary"`
	Modules []RemoteModule `json:"modules"`
}

// CatalogClient is the port to the external LMS catalog. Both operations are
// read-only HTTP fetches.
type CatalogClient interface {
	ListCourses(ctx context.Context) ([]RemoteCourse, error)
	GetCourseContents(ctx context.Context, remoteCourseID int64) ([]RemoteSection, error)
}
