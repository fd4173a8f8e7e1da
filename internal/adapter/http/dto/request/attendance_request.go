package request

import (
	"strings"

	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase"
)

// ScheduleRequest confirms date, time and location for the visit.
type ScheduleRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// ResolveLocation maps the wire value onto a schedule location; empty means
// invalid.
func (r ScheduleRequest) ResolveLocation() entities.ScheduleLocation {
	switch strings.ToLower(strings.TrimSpace(r.Location)) {
	case "clinic":
		return entities.LocationClinic
	case "home":
		return entities.LocationHome
	}
	return ""
}

type CancelAttendanceRequest struct {
	Reason string `json:"reason"`
}

type StepRequest struct {
	Step string `json:"step" binding:"required"`
}

// TriageRequest is a shallow-merge patch; absent fields keep their value.
type TriageRequest struct {
	Weight      *string `json:"weight"`
	Temperature *string `json:"temperature"`
	HeartRate   *string `json:"heart_rate"`
	Notes       *string `json:"notes"`
}

func (r TriageRequest) ToPatch() usecase.TriagePatch {
	return usecase.TriagePatch{
		Weight:      r.Weight,
		Temperature: r.Temperature,
		HeartRate:   r.HeartRate,
		Notes:       r.Notes,
	}
}

// AnamnesisRequest is a shallow-merge patch; absent fields keep their value.
type AnamnesisRequest struct {
	ChiefComplaint       *string   `json:"chief_complaint"`
	History              *string   `json:"history"`
	Weight               *string   `json:"weight"`
	Temperature          *string   `json:"temperature"`
	HeartRate            *string   `json:"heart_rate"`
	SystemReview         *[]string `json:"system_review"`
	DiagnosticHypothesis *string   `json:"diagnostic_hypothesis"`
	Attachments          *[]string `json:"attachments"`
}

func (r AnamnesisRequest) ToPatch() usecase.AnamnesisPatch {
	return usecase.AnamnesisPatch{
		ChiefComplaint:       r.ChiefComplaint,
		History:              r.History,
		Weight:               r.Weight,
		Temperature:          r.Temperature,
		HeartRate:            r.HeartRate,
		SystemReview:         r.SystemReview,
		DiagnosticHypothesis: r.DiagnosticHypothesis,
		Attachments:          r.Attachments,
	}
}

// PrescriptionRequest creates a prescription item; the id is assigned by the
// use case.
type PrescriptionRequest struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
	Notes     string `json:"notes"`
}

func (r PrescriptionRequest) ToItem() entities.PrescriptionItem {
	return entities.PrescriptionItem{
		Name:      strings.TrimSpace(r.Name),
		Dosage:    r.Dosage,
		Frequency: r.Frequency,
		Duration:  r.Duration,
		Notes:     r.Notes,
	}
}

// PrescriptionPatchRequest edits an existing item in place.
type PrescriptionPatchRequest struct {
	Name      *string `json:"name"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
	Duration  *string `json:"duration"`
	Notes     *string `json:"notes"`
}

func (r PrescriptionPatchRequest) ToPatch() usecase.PrescriptionPatch {
	return usecase.PrescriptionPatch{
		Name:      r.Name,
		Dosage:    r.Dosage,
		Frequency: r.Frequency,
		Duration:  r.Duration,
		Notes:     r.Notes,
	}
}
