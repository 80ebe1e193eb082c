package models

// Text fields are pointers so that a missing key and an empty string can be
// told apart: the key is required, the value may be empty.

type EligibilityRequest struct {
	ResumeText     *string `json:"resume_text" validate:"required"`
	JobDescription *string `json:"job_description" validate:"required"`
}

type RecommendationRequest struct {
	ResumeText *string `json:"resume_text" validate:"required"`
}

