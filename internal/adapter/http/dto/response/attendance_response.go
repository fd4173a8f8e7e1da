package response

import (
	"time"

	"vetdesk/internal/domain/entities"
)

type ScheduleResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

type TriageResponse struct {
	Weight      string `json:"weight,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	HeartRate   string `json:"heart_rate,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type AnamnesisResponse struct {
	ChiefComplaint       string   `json:"chief_complaint,omitempty"`
	History              string   `json:"history,omitempty"`
	Weight               string   `json:"weight,omitempty"`
	Temperature          string   `json:"temperature,omitempty"`
	HeartRate            string   `json:"heart_rate,omitempty"`
	SystemReview         []string `json:"system_review,omitempty"`
	DiagnosticHypothesis string   `json:"diagnostic_hypothesis,omitempty"`
	Attachments          []string `json:"attachments,omitempty"`
}

type PrescriptionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
	Notes     string `json:"notes,omitempty"`
}

// AttendanceResponse is the full aggregate read model. CanFinalize is derived
// on every read, never stored.
type AttendanceResponse struct {
	ID              string                 `json:"id"`
	PatientID       string                 `json:"patient_id"`
	GuardianID      string                 `json:"guardian_id"`
	Status          string                 `json:"status"`
	Step            string                 `json:"step"`
	BudgetGenerated bool                   `json:"budget_generated"`
	CanFinalize     bool                   `json:"can_finalize"`
	Triage          TriageResponse         `json:"triage"`
	Anamnesis       AnamnesisResponse      `json:"anamnesis"`
	Cart            CartResponse           `json:"cart"`
	Prescriptions   []PrescriptionResponse `json:"prescriptions"`
	Schedule        *ScheduleResponse      `json:"schedule,omitempty"`
	CancelReason    string                 `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func FromAttendance(a entities.Attendance) AttendanceResponse {
	out := AttendanceResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		GuardianID:      a.GuardianID,
		Status:          string(a.Status),
		Step:            string(a.Step),
		BudgetGenerated: a.BudgetGenerated,
		CanFinalize:     a.CanFinalize(),
		Triage: TriageResponse{
			Weight:      a.Triage.Weight,
			Temperature: a.Triage.Temperature,
			HeartRate:   a.Triage.HeartRate,
			Notes:       a.Triage.Notes,
		},
		Anamnesis: AnamnesisResponse{
			ChiefComplaint:       a.Anamnesis.ChiefComplaint,
			History:              a.Anamnesis.History,
			Weight:               a.Anamnesis.Vitals.Weight,
			Temperature:          a.Anamnesis.Vitals.Temperature,
			HeartRate:            a.Anamnesis.Vitals.HeartRate,
			SystemReview:         a.Anamnesis.SystemReview,
			DiagnosticHypothesis: a.Anamnesis.DiagnosticHypothesis,
			Attachments:          a.Anamnesis.Attachments,
		},
		Cart:         FromCart(a.Cart, a.Cart.Totals()),
		CancelReason: a.CancelReason,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	out.Prescriptions = make([]PrescriptionResponse, 0, len(a.Prescriptions))
	for _, p := range a.Prescriptions {
		out.Prescriptions = append(out.Prescriptions, PrescriptionResponse{
			ID:        p.ID,
			Name:      p.Name,
			Dosage:    p.Dosage,
			Frequency: p.Frequency,
			Duration:  p.Duration,
			Notes:     p.Notes,
		})
	}
	if a.Schedule != nil {
		out.Schedule = &ScheduleResponse{
			Date:     a.Schedule.Date,
			Time:     a.Schedule.Time,
			Location: string(a.Schedule.Location),
		}
	}
	return out
}
