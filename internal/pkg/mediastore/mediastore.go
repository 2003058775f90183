// Package mediastore wraps the external media host behind a small
// interface so services stay independent of the concrete provider.
package mediastore

import (
	"context"
	"io"
)

// Upload folders, one per marksheet group plus company logos
const (
	FolderTenth        = "placements/tenth"
	FolderTwelfth      = "placements/twelfth"
	FolderSemesters    = "placements/semesters"
	FolderCompanyLogos = "placements/company_logos"
)

// Uploader stores file bytes under a folder and returns a public URL
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}
