package dto

// UploadRequest carries the non-file fields of the upload form. The file
// itself travels separately as a stream.
type UploadRequest struct {
	Tags     string `form:"tags"`
	IsPublic bool   `form:"is_public"`
}

// NotebookSummaryResponse is the public-facing projection served by
// GET /api/notebooks.
type NotebookSummaryResponse struct {
	Id          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
	CreatedAt   string   `json:"created_at"`
}
