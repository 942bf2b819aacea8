package entity

import "time"

// ContactInfo holds the contact fields extracted from a resume.
// All fields default to the empty string; the editor layer binds them
// directly, so absence is never represented as a null.
type ContactInfo struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LinkedInURL string `json:"linkedin_url"`
	WebsiteURL  string `json:"website_url"`
	Summary     string `json:"summary"`
}

// WorkExperience is one entry in the work history.
// Current == true implies EndDate == nil.
type WorkExperience struct {
	ID              int        `json:"id"`
	JobTitle        string     `json:"job_title"`
	Employer        string     `json:"employer"`
	Location        string     `json:"location"`
	Remote          bool       `json:"remote"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Current         bool       `json:"current"`
	Accomplishments string     `json:"accomplishments"` // newline-joined bullet lines
}

// IsEmpty reports whether the entry carries no extracted content at all.
func (w WorkExperience) IsEmpty() bool {
	return w.JobTitle == "" && w.Employer == "" && w.Location == "" && w.Accomplishments == ""
}

// Education holds the education fields extracted from a resume.
type Education struct {
	School    string `json:"school"`
	Location  string `json:"location"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	GradYear  string `json:"grad_year"`
	GradMonth string `json:"grad_month"`
}

// ParsedResumeData is the top-level record handed to the editor layer.
// WorkExperiences always contains at least one entry (an all-empty
// placeholder when extraction found nothing); Skills is deduplicated
// case-insensitively.
type ParsedResumeData struct {
	Contact         ContactInfo      `json:"contact"`
	WorkExperiences []WorkExperience `json:"work_experiences"`
	Education       Education        `json:"education"`
	Skills          []string         `json:"skills"`
	Summary         string           `json:"summary"`
	RawText         string           `json:"raw_text"` // kept for audit/debugging
}
