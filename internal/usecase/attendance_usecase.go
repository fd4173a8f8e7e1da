package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoActiveAttendance = errors.New("no active attendance")
	ErrAttendanceActive   = errors.New("attendance already active")
	ErrInvalidPatientRef  = errors.New("invalid patient reference")
	ErrInvalidStep        = errors.New("invalid step")
	ErrInvalidSchedule    = errors.New("invalid schedule info")
	ErrCannotFinalize     = errors.New("attendance cannot be finalized")
)

// DraftKey is the fixed persistence key for the session's attendance draft.
const DraftKey = "attendance-draft"

// TriagePatch is a shallow-merge update for the triage vitals. Nil fields are
// left untouched.
type TriagePatch struct {
	Weight      *string `json:"weight,omitempty"`
	Temperature *string `json:"temperature,omitempty"`
	HeartRate   *string `json:"heart_rate,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AnamnesisPatch is a shallow-merge update for the clinical interview data.
type AnamnesisPatch struct {
	ChiefComplaint       *string   `json:"chief_complaint,omitempty"`
	History              *string   `json:"history,omitempty"`
	Weight               *string   `json:"weight,omitempty"`
	Temperature          *string   `json:"temperature,omitempty"`
	HeartRate            *string   `json:"heart_rate,omitempty"`
	SystemReview         *[]string `json:"system_review,omitempty"`
	DiagnosticHypothesis *string   `json:"diagnostic_hypothesis,omitempty"`
	Attachments          *[]string `json:"attachments,omitempty"`
}

// PrescriptionPatch edits a prescription item in place. Nil fields are left
// untouched.
type PrescriptionPatch struct {
	Name      *string `json:"name,omitempty"`
	Dosage    *string `json:"dosage,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
	Duration  *string `json:"duration,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// IAttendanceUseCase owns the single active attendance and its state machine.
//
// Guard semantics: precondition-not-met is a silent no-op that returns the
// unchanged aggregate, never an error. The two exceptions are Start
// (single-aggregate invariant, rejected explicitly) and Finish
// (hard-enforced finalize predicate).
type IAttendanceUseCase interface {
	Start(ctx context.Context, patientID, guardianID string) (entities.Attendance, error)
	Current(ctx context.Context) (entities.Attendance, bool)
	Schedule(ctx context.Context, date, timeOfDay string, location entities.ScheduleLocation) (entities.Attendance, error)
	BeginMedical(ctx context.Context) (entities.Attendance, error)
	Finish(ctx context.Context) (entities.Attendance, error)
	Cancel(ctx context.Context, reason string) (entities.Attendance, error)
	Discard(ctx context.Context) error
	SetStep(ctx context.Context, step entities.AttendanceStep) (entities.Attendance, error)
	UpdateTriage(ctx context.Context, patch TriagePatch) (entities.Attendance, error)
	UpdateAnamnesis(ctx context.Context, patch AnamnesisPatch) (entities.Attendance, error)
	SetServices(ctx context.Context, cart entities.Cart) (entities.Attendance, error)
	AddPrescription(ctx context.Context, item entities.PrescriptionItem) (entities.Attendance, error)
	UpdatePrescription(ctx context.Context, itemID string, patch PrescriptionPatch) (entities.Attendance, error)
	RemovePrescription(ctx context.Context, itemID string) (entities.Attendance, error)
	RecordBudgetGeneration(ctx context.Context) (entities.Attendance, error)
	RestoreDraft(ctx context.Context)
	PersistenceDegraded() bool
}

type AttendanceUseCase struct {
	repo   interfaces.IAttendanceRepository
	events interfaces.IEventPublisher

	mu          sync.Mutex
	current     *entities.Attendance
	lastSaveErr error
}

var _ IAttendanceUseCase = (*AttendanceUseCase)(nil)

func NewAttendanceUseCase(repo interfaces.IAttendanceRepository, events interfaces.IEventPublisher) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo, events: events}
}

// RestoreDraft loads a previously persisted draft, if any. Absence and
// corruption are both treated as a fresh session.
func (u *AttendanceUseCase) RestoreDraft(ctx context.Context) {
	if u.repo == nil {
		return
	}
	draft, err := u.repo.Load(ctx, DraftKey)
	if err != nil {
		log.Warn().Err(err).Msg("[attendance][usecase] draft load failed; starting fresh")
		return
	}
	if draft == nil {
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.current = draft
	log.Info().Str("attendance_id", draft.ID).Str("status", string(draft.Status)).
		Msg("[attendance][usecase] draft restored")
}

func (u *AttendanceUseCase) Start(ctx context.Context, patientID, guardianID string) (entities.Attendance, error) {
	patientID = strings.TrimSpace(patientID)
	guardianID = strings.TrimSpace(guardianID)
	if patientID == "" || guardianID == "" {
		return entities.Attendance{}, ErrInvalidPatientRef
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current != nil {
		log.Warn().Str("attendance_id", u.current.ID).
			Msg("[attendance][usecase] start rejected: attendance already active")
		return entities.Attendance{}, ErrAttendanceActive
	}

	now := time.Now().UTC()
	a := entities.Attendance{
		ID:         uuid.NewString(),
		PatientID:  patientID,
		GuardianID: guardianID,
		Status:     entities.StatusInitiated,
		// New attendances open on the anamnesis step even though services is
		// declared first; the front desk fills the interview before pricing.
		Step:      entities.StepAnamnesis,
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.current = &a
	u.persist(ctx)
	u.publish(ctx, interfaces.EventAttendanceStarted, map[string]string{
		"attendance_id": a.ID,
		"patient_id":    patientID,
	})
	log.Info().Str("attendance_id", a.ID).Str("patient_id", patientID).
		Msg("[attendance][usecase] started")
	return a, nil
}

func (u *AttendanceUseCase) Current(ctx context.Context) (entities.Attendance, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, false
	}
	return *u.current, true
}

func (u *AttendanceUseCase) Schedule(ctx context.Context, date, timeOfDay string, location entities.ScheduleLocation) (entities.Attendance, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	if date == "" || timeOfDay == "" {
		return entities.Attendance{}, ErrInvalidSchedule
	}
	if location != entities.LocationClinic && location != entities.LocationHome {
		return entities.Attendance{}, ErrInvalidSchedule
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}
	if u.current.Status.Terminal() {
		log.Debug().Str("status", string(u.current.Status)).
			Msg("[attendance][usecase] schedule ignored on terminal status")
		return *u.current, nil
	}

	u.current.Status = entities.StatusScheduled
	u.current.Schedule = &entities.ScheduleInfo{Date: date, Time: timeOfDay, Location: location}
	u.touch()
	u.persist(ctx)
	u.publish(ctx, interfaces.EventScheduleConfirmed, map[string]string{
		"date": date,
		"time": timeOfDay,
	})
	log.Info().Str("attendance_id", u.current.ID).Str("date", date).Str("time", timeOfDay).
		Str("location", string(location)).Msg("[attendance][usecase] scheduled")
	return *u.current, nil
}

// BeginMedical moves a scheduled attendance into progress. Any other current
// status leaves the aggregate unchanged.
func (u *AttendanceUseCase) BeginMedical(ctx context.Context) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}
	if u.current.Status != entities.StatusScheduled {
		log.Debug().Str("status", string(u.current.Status)).
			Msg("[attendance][usecase] begin-medical ignored: not scheduled")
		return *u.current, nil
	}

	u.current.Status = entities.StatusInProgress
	u.touch()
	u.persist(ctx)
	log.Info().Str("attendance_id", u.current.ID).Msg("[attendance][usecase] medical attendance started")
	return *u.current, nil
}

func (u *AttendanceUseCase) Finish(ctx context.Context) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}
	if !u.current.CanFinalize() {
		log.Warn().Str("attendance_id", u.current.ID).
			Msg("[attendance][usecase] finish rejected: finalize predicate not satisfied")
		return entities.Attendance{}, ErrCannotFinalize
	}

	u.current.Status = entities.StatusFinished
	u.touch()
	u.persist(ctx)
	u.publish(ctx, interfaces.EventAttendanceFinished, map[string]string{
		"attendance_id": u.current.ID,
	})
	log.Info().Str("attendance_id", u.current.ID).Msg("[attendance][usecase] finished")
	return *u.current, nil
}

// Cancel marks the attendance cancelled, discards it from the session and
// returns the final snapshot for consumers that want history.
func (u *AttendanceUseCase) Cancel(ctx context.Context, reason string) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}
	if u.current.Status.Terminal() {
		log.Debug().Str("status", string(u.current.Status)).
			Msg("[attendance][usecase] cancel ignored on terminal status")
		return *u.current, nil
	}

	u.current.Status = entities.StatusCancelled
	u.current.CancelReason = strings.TrimSpace(reason)
	u.touch()
	snapshot := *u.current

	u.current = nil
	u.removeDraft(ctx)
	u.publish(ctx, interfaces.EventAttendanceCancelled, map[string]string{
		"attendance_id": snapshot.ID,
		"reason":        snapshot.CancelReason,
	})
	log.Info().Str("attendance_id", snapshot.ID).Str("reason", snapshot.CancelReason).
		Msg("[attendance][usecase] cancelled and discarded")
	return snapshot, nil
}

// Discard silently drops the active attendance without recording a
// cancellation; this is the go-home path, distinct from Cancel.
func (u *AttendanceUseCase) Discard(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return nil
	}

	id := u.current.ID
	u.current = nil
	u.removeDraft(ctx)
	log.Info().Str("attendance_id", id).Msg("[attendance][usecase] silently discarded")
	return nil
}

// SetStep moves the wizard cursor. Steps are freely navigable at any status.
func (u *AttendanceUseCase) SetStep(ctx context.Context, step entities.AttendanceStep) (entities.Attendance, error) {
	if !entities.ValidStep(step) {
		return entities.Attendance{}, ErrInvalidStep
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}

	u.current.Step = step
	u.touch()
	u.persist(ctx)
	u.publish(ctx, interfaces.EventStepChanged, map[string]string{"step": string(step)})
	return *u.current, nil
}

func (u *AttendanceUseCase) UpdateTriage(ctx context.Context, patch TriagePatch) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}

	tr := &u.current.Triage
	applyString(&tr.Weight, patch.Weight)
	applyString(&tr.Temperature, patch.Temperature)
	applyString(&tr.HeartRate, patch.HeartRate)
	applyString(&tr.Notes, patch.Notes)
	u.touch()
	u.persist(ctx)
	return *u.current, nil
}

func (u *AttendanceUseCase) UpdateAnamnesis(ctx context.Context, patch AnamnesisPatch) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}

	an := &u.current.Anamnesis
	applyString(&an.ChiefComplaint, patch.ChiefComplaint)
	applyString(&an.History, patch.History)
	applyString(&an.Vitals.Weight, patch.Weight)
	applyString(&an.Vitals.Temperature, patch.Temperature)
	applyString(&an.Vitals.HeartRate, patch.HeartRate)
	applyString(&an.DiagnosticHypothesis, patch.DiagnosticHypothesis)
	if patch.SystemReview != nil {
		an.SystemReview = append([]string(nil), *patch.SystemReview...)
	}
	if patch.Attachments != nil {
		an.Attachments = append([]string(nil), *patch.Attachments...)
	}
	u.touch()
	u.persist(ctx)
	return *u.current, nil
}

// SetServices replaces the cart wholesale; cart mutations go through the cart
// engine in the session use case and land here.
func (u *AttendanceUseCase) SetServices(ctx context.Context, cart entities.Cart) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}

	u.current.Cart = cart
	u.touch()
	u.persist(ctx)
	u.publish(ctx, interfaces.EventCartChanged, map[string]string{
		"attendance_id": u.current.ID,
	})
	return *u.current, nil
}

func (u *AttendanceUseCase) AddPrescription(ctx context.Context, item entities.PrescriptionItem) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}

	item.ID = uuid.NewString()
	u.current.Prescriptions = append(u.current.Prescriptions, item)
	u.touch()
	u.persist(ctx)
	return *u.current, nil
}

func (u *AttendanceUseCase) UpdatePrescription(ctx context.Context, itemID string, patch PrescriptionPatch) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}

	for i := range u.current.Prescriptions {
		if u.current.Prescriptions[i].ID != itemID {
			continue
		}
		p := &u.current.Prescriptions[i]
		applyString(&p.Name, patch.Name)
		applyString(&p.Dosage, patch.Dosage)
		applyString(&p.Frequency, patch.Frequency)
		applyString(&p.Duration, patch.Duration)
		applyString(&p.Notes, patch.Notes)
		u.touch()
		u.persist(ctx)
		break
	}
	// Unknown item id is a silent no-op.
	return *u.current, nil
}

func (u *AttendanceUseCase) RemovePrescription(ctx context.Context, itemID string) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}

	kept := u.current.Prescriptions[:0]
	removed := false
	for _, p := range u.current.Prescriptions {
		if p.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	u.current.Prescriptions = kept
	if removed {
		u.touch()
		u.persist(ctx)
	}
	return *u.current, nil
}

func (u *AttendanceUseCase) RecordBudgetGeneration(ctx context.Context) (entities.Attendance, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return entities.Attendance{}, ErrNoActiveAttendance
	}

	u.current.BudgetGenerated = true
	u.touch()
	u.persist(ctx)
	log.Info().Str("attendance_id", u.current.ID).Msg("[attendance][usecase] budget generated")
	return *u.current, nil
}

// PersistenceDegraded reports whether the most recent draft write failed. The
// in-memory aggregate stays authoritative; callers surface this as a
// non-blocking warning because the draft may be lost on reload.
func (u *AttendanceUseCase) PersistenceDegraded() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastSaveErr != nil
}

func (u *AttendanceUseCase) touch() {
	u.current.UpdatedAt = time.Now().UTC()
}

// persist writes the aggregate through to the draft store. Failures are
// logged and remembered but never abort the mutation that triggered them.
func (u *AttendanceUseCase) persist(ctx context.Context) {
	if u.repo == nil || u.current == nil {
		return
	}
	if err := u.repo.Save(ctx, DraftKey, *u.current); err != nil {
		u.lastSaveErr = err
		log.Error().Err(err).Str("attendance_id", u.current.ID).
			Msg("[attendance][usecase] draft save failed; in-memory state remains authoritative")
		return
	}
	u.lastSaveErr = nil
}

func (u *AttendanceUseCase) removeDraft(ctx context.Context) {
	if u.repo == nil {
		return
	}
	if err := u.repo.Remove(ctx, DraftKey); err != nil {
		log.Error().Err(err).Msg("[attendance][usecase] draft remove failed")
	}
}

func (u *AttendanceUseCase) publish(ctx context.Context, eventType string, fields map[string]string) {
	if u.events == nil {
		return
	}
	u.events.Publish(ctx, interfaces.UIEvent{Type: eventType, Fields: fields})
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
