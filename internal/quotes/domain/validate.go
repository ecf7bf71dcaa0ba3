package domain

import (
	"path/filepath"
	"strings"
)

// allowedImageExts is the attachment extension allow-list. The artifact
// store re-checks it independently before writing.
var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// AllowedImageExt reports whether the filename carries an accepted image
// extension, case-insensitive.
func AllowedImageExt(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// ValidateSubmission checks a raw submission and returns its normalized
// form (trimmed fields) or a ValidationError. Pure: no side effects.
func ValidateSubmission(s Submission) (Submission, error) {
	s.UserName = strings.TrimSpace(s.UserName)
	s.ProjectDetails = strings.TrimSpace(s.ProjectDetails)

	if s.UserName == "" {
		return Submission{}, &ValidationError{Field: "user_name", Reason: "must not be empty"}
	}
	if s.ProjectDetails == "" {
		return Submission{}, &ValidationError{Field: "project_details", Reason: "must not be empty"}
	}
	if s.Attachment != nil && !AllowedImageExt(s.Attachment.Filename) {
		return Submission{}, &ValidationError{Field: "image", Reason: "file type must be png, jpg or jpeg"}
	}

	return s, nil
}
