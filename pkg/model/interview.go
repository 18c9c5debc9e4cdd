package model

import (
	"encoding/json"
	"time"
)

// Interview levels, normalized to lowercase at the boundary.
const (
	LevelInternal = "internal"
	LevelExternal = "external"
)

// Interview is the central record. Contact fields are a snapshot taken
// at scheduling time, not a live reference to the candidate record.
type Interview struct {
	InterviewID              string          `json:"interview_id" db:"interview_id"`
	CandidateID              string          `json:"candidate_id" db:"candidate_id"`
	JobID                    string          `json:"job_id" db:"job_id"`
	UserID                   string          `json:"user_id" db:"user_id"`
	ClientID                 string          `json:"client_id" db:"client_id"`
	ClientName               string          `json:"client_name" db:"client_name"`
	InterviewDateTime        time.Time       `json:"interview_date_time" db:"interview_date_time"`
	Duration                 string          `json:"duration" db:"duration"`
	InterviewLevel           string          `json:"interview_level" db:"interview_level"`
	ZoomLink                 string          `json:"zoom_link" db:"zoom_link"`
	ExternalInterviewDetails string          `json:"external_interview_details" db:"external_interview_details"`
	ClientEmail              string          `json:"client_email" db:"client_email"`
	CandidateEmail           string          `json:"candidate_email_id" db:"candidate_email_id"`
	UserEmail                string          `json:"user_email" db:"user_email"`
	ContactNumber            string          `json:"contact_number" db:"contact_number"`
	FullName                 string          `json:"full_name" db:"full_name"`
	StatusHistory            json.RawMessage `json:"status_history" db:"status_history"`
	IsPlaced                 bool            `json:"is_placed" db:"is_placed"`
	LastModified             time.Time       `json:"last_modified" db:"last_modified"`
}

// CandidateContact is the snapshot copied onto an interview when it is
// scheduled.
type CandidateContact struct {
	FullName      string `json:"full_name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"candidate_email_id"`
}

type ScheduleInterviewRequest struct {
	CandidateID              string    `json:"candidate_id" binding:"required"`
	JobID                    string    `json:"job_id" binding:"required"`
	ClientName               string    `json:"client_name" binding:"required"`
	InterviewDateTime        time.Time `json:"interview_date_time" binding:"required"`
	Duration                 string    `json:"duration"`
	InterviewLevel           string    `json:"interview_level"`
	ZoomLink                 string    `json:"zoom_link"`
	ExternalInterviewDetails string    `json:"external_interview_details"`
	ClientEmail              string    `json:"client_email"`
}

// UpdateInterviewRequest carries partial-update semantics: empty fields
// are left untouched, except that the internal/external re-evaluation
// may clear client_email and zoom_link.
type UpdateInterviewRequest struct {
	CandidateID              string     `json:"candidate_id" binding:"required"`
	JobID                    string     `json:"job_id" binding:"required"`
	NewStatus                string     `json:"new_status"`
	InterviewDateTime        *time.Time `json:"interview_date_time"`
	Duration                 string     `json:"duration"`
	InterviewLevel           string     `json:"interview_level"`
	ZoomLink                 string     `json:"zoom_link"`
	ExternalInterviewDetails string     `json:"external_interview_details"`
	ClientEmail              string     `json:"client_email"`
}

type DateRangeQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	UserID    string `form:"user_id"`
}
