// Package ipynb reads Jupyter notebook files far enough for cataloging and
// display: the optional top-level title/description metadata and the cell
// list. Notebooks are plain JSON; nothing else about the format matters
// here.
package ipynb

import (
	"encoding/json"
	"io"
	"os"
	"strings"
)

const (
	CellTypeMarkdown = "markdown"
	CellTypeCode     = "code"
	CellTypeRaw      = "raw"
)

type Notebook struct {
	Metadata Metadata `json:"metadata"`
	Cells    []Cell   `json:"cells"`
	Format   int      `json:"nbformat"`
}

type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Cell struct {
	CellType string     `json:"cell_type"`
	Source   SourceText `json:"source"`
}

// SourceText absorbs both encodings nbformat allows for cell source: a
// single string or a list of line strings.
type SourceText string

func (s *SourceText) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = SourceText(single)
		return nil
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	*s = SourceText(strings.Join(lines, ""))
	return nil
}

func (s SourceText) String() string {
	return string(s)
}

func Parse(r io.Reader) (*Notebook, error) {
	var nb Notebook
	if err := json.NewDecoder(r).Decode(&nb); err != nil {
		return nil, err
	}
	return &nb, nil
}

func ParseFile(path string) (*Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
