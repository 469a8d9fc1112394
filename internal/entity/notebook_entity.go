package entity

import (
	"path/filepath"
	"strings"
	"time"
)

// Notebook is a catalog record describing a shared analysis artifact:
// either a stored .ipynb file or an external link. It deliberately carries
// the owner id only, never a User back-reference; callers that need the
// owner resolve it with a second lookup.
type Notebook struct {
	Id          uint
	Title       string
	Description string
	Filename    string
	FilePath    string // empty when hosted externally
	ExternalURL string
	AuthorName  string // display attribution, distinct from the owning user
	Tags        string // comma-separated, stored verbatim
	IsPublic    bool
	UserId      uint
	Views       int
	Likes       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StorageName is the unique on-disk name under the upload directory, or
// "" for externally hosted notebooks.
func (n *Notebook) StorageName() string {
	if n.FilePath == "" {
		return ""
	}
	return filepath.Base(n.FilePath)
}

// TagList splits the verbatim tag string on commas. An empty tag string
// yields an empty (non-nil) slice.
func (n *Notebook) TagList() []string {
	if n.Tags == "" {
		return []string{}
	}
	return strings.Split(n.Tags, ",")
}
