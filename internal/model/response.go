package model

import "time"

// Response is the flat persisted questionnaire record, keyed by user.
// Answers holds scalars as strings, multi-select sets as string arrays
// and the two structured question types as arrays of records.
type Response struct {
	UserID       string         `json:"userId" bson:"_id"`
	SubmissionID string         `json:"submissionId" bson:"submissionId"`
	Email        string         `json:"email" bson:"email"`
	Name         string         `json:"name" bson:"name"`
	Answers      map[string]any `json:"answers" bson:"answers"`
	SubmittedAt  time.Time      `json:"submittedAt" bson:"submittedAt"`
}

// WebhookPayload is sent to the processing webhook after a successful save.
type WebhookPayload struct {
	UserID       string         `json:"userId"`
	UserEmail    string         `json:"userEmail"`
	UserName     string         `json:"userName"`
	SubmissionID string         `json:"submissionId"`
	FormData     map[string]any `json:"formData"`
}

// SubmitResult is returned to the client after a successful submission.
type SubmitResult struct {
	SubmissionID string    `json:"submissionId"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
