package domain

import "time"

// Submission is the raw input for one quote request. It is transient:
// validation turns it into a Project, it is never stored as-is.
type Submission struct {
	UserName       string
	ProjectDetails string
	Attachment     *Attachment
}

// Attachment is an uploaded photo tied to a submission.
type Attachment struct {
	Filename string
	Data     []byte
}

// Project is the durable record created from a validated submission.
// It is immutable once created; the id is assigned exactly once by the
// repository and never reused.
type Project struct {
	ID             int64     `json:"id"`
	UserName       string    `json:"user_name"`
	ProjectDetails string    `json:"project_details"`
	ImageURL       *string   `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
}

// GeneratedQuote is the AI-produced itemized quote for one project.
// It is response-only and never persisted or cached.
type GeneratedQuote struct {
	ProjectID int64
	Text      string
}
