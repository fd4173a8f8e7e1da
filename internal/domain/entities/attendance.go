package entities

import "time"

// AttendanceStatus represents the lifecycle of a clinical attendance.
//
// Domain notes:
//   - initiated -> scheduled -> in_progress -> finished
//   - cancelled is reachable from any non-terminal status.
//   - Budget generation is tracked separately (Attendance.BudgetGenerated)
//     and does not gate transitions.
type AttendanceStatus string

const (
	StatusInitiated  AttendanceStatus = "initiated"
	StatusScheduled  AttendanceStatus = "scheduled"
	StatusInProgress AttendanceStatus = "in_progress"
	StatusFinished   AttendanceStatus = "finished"
	StatusCancelled  AttendanceStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s AttendanceStatus) Terminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

// AttendanceStep is the wizard cursor. It is orthogonal to status and freely
// navigable; services is declared first even though new attendances open on
// anamnesis.
type AttendanceStep string

const (
	StepServices     AttendanceStep = "services"
	StepAnamnesis    AttendanceStep = "anamnesis"
	StepPrescription AttendanceStep = "prescription"
	StepSummary      AttendanceStep = "summary"
)

// ValidStep reports whether s is one of the known wizard steps.
func ValidStep(s AttendanceStep) bool {
	switch s {
	case StepServices, StepAnamnesis, StepPrescription, StepSummary:
		return true
	}
	return false
}

// ScheduleLocation is where the attendance happens.
type ScheduleLocation string

const (
	LocationClinic ScheduleLocation = "clinic"
	LocationHome   ScheduleLocation = "home"
)

// ScheduleInfo holds the confirmed scheduling data.
type ScheduleInfo struct {
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Location ScheduleLocation `json:"location"`
}

// TriageData is the free-form vitals capture taken at check-in.
type TriageData struct {
	Weight      string `json:"weight,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	HeartRate   string `json:"heart_rate,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// AnamnesisVitals are the vitals re-captured during the clinical interview.
type AnamnesisVitals struct {
	Weight      string `json:"weight,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	HeartRate   string `json:"heart_rate,omitempty"`
}

// AnamnesisData is the clinical interview record.
type AnamnesisData struct {
	ChiefComplaint       string          `json:"chief_complaint,omitempty"`
	History              string          `json:"history,omitempty"`
	Vitals               AnamnesisVitals `json:"vitals"`
	SystemReview         []string        `json:"system_review,omitempty"`
	DiagnosticHypothesis string          `json:"diagnostic_hypothesis,omitempty"`
	Attachments          []string        `json:"attachments,omitempty"`
}

// PrescriptionItem is one prescribed medication/instruction.
type PrescriptionItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
	Notes     string `json:"notes,omitempty"`
}

// Attendance is the aggregate root of one clinical visit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - The full aggregate is serialized into a single payload attribute;
//     the persistence contract is key-value save/load/remove.
type Attendance struct {
	ID              string             `json:"id"`
	PatientID       string             `json:"patient_id"`
	GuardianID      string             `json:"guardian_id"`
	Status          AttendanceStatus   `json:"status"`
	BudgetGenerated bool               `json:"budget_generated"`
	Step            AttendanceStep     `json:"step"`
	Triage          TriageData         `json:"triage"`
	Anamnesis       AnamnesisData      `json:"anamnesis"`
	Cart            Cart               `json:"cart"`
	Prescriptions   []PrescriptionItem `json:"prescriptions"`
	Schedule        *ScheduleInfo      `json:"schedule,omitempty"`
	CancelReason    string             `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// Weight returns the first recorded weight, preferring triage over the
// anamnesis vitals. Empty string means no weight was captured yet.
func (a Attendance) Weight() string {
	if a.Triage.Weight != "" {
		return a.Triage.Weight
	}
	return a.Anamnesis.Vitals.Weight
}

// CanFinalize derives whether the attendance may be finished: non-empty cart,
// chief complaint present, a weight recorded (triage or anamnesis) and
// scheduling confirmed. Never stored; recomputed on every read.
func (a Attendance) CanFinalize() bool {
	return len(a.Cart) > 0 &&
		a.Anamnesis.ChiefComplaint != "" &&
		a.Weight() != "" &&
		a.Schedule != nil
}
