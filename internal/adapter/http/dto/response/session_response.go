package response

import (
	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase"
)

type GuardianResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Phone string `json:"phone"`
}

type PatientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`
	PlanID  string `json:"plan_id,omitempty"`
}

// SessionResponse is the whole-session read model the front desk renders
// from. SaveWarning signals degraded draft persistence; it never blocks.
type SessionResponse struct {
	Flow               string              `json:"flow"`
	Guardian           *GuardianResponse   `json:"guardian,omitempty"`
	Patients           []PatientResponse   `json:"patients,omitempty"`
	AccountStatus      string              `json:"account_status,omitempty"`
	ActivePatientID    string              `json:"active_patient_id,omitempty"`
	DelinquencyBlocked bool                `json:"delinquency_blocked"`
	BudgetSaved        bool                `json:"budget_saved"`
	FinalizeFeePaid    bool                `json:"finalize_fee_paid"`
	UnlockedServiceIDs []string            `json:"unlocked_service_ids,omitempty"`
	Attendance         *AttendanceResponse `json:"attendance,omitempty"`
	SaveWarning        bool                `json:"save_warning"`
}

func FromSessionSnapshot(snap usecase.SessionSnapshot) SessionResponse {
	out := SessionResponse{
		Flow:               string(snap.Flow),
		AccountStatus:      string(snap.AccountStatus),
		ActivePatientID:    snap.ActivePatientID,
		DelinquencyBlocked: snap.DelinquencyBlocked,
		BudgetSaved:        snap.BudgetSaved,
		FinalizeFeePaid:    snap.FinalizeFeePaid,
		UnlockedServiceIDs: snap.UnlockedServiceIDs,
		SaveWarning:        snap.SaveWarning,
	}
	if snap.Guardian != nil {
		out.Guardian = &GuardianResponse{
			ID:    snap.Guardian.ID,
			Name:  snap.Guardian.Name,
			TaxID: snap.Guardian.TaxID,
			Phone: snap.Guardian.Phone,
		}
	}
	for _, p := range snap.Patients {
		out.Patients = append(out.Patients, fromPatient(p))
	}
	if snap.Attendance != nil {
		a := FromAttendance(*snap.Attendance)
		out.Attendance = &a
	}
	return out
}

func fromPatient(p entities.Patient) PatientResponse {
	return PatientResponse{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
		Breed:   p.Breed,
		PlanID:  p.PlanID,
	}
}
