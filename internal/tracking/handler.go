package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/Olii83/gym-tracker/internal/auth"
	"github.com/Olii83/gym-tracker/internal/telemetry/metrics"
	"github.com/Olii83/gym-tracker/internal/telemetry/tracing"
	"github.com/Olii83/gym-tracker/internal/trainings"
	"github.com/Olii83/gym-tracker/internal/units"
	"github.com/Olii83/gym-tracker/pkg"
)

type StartSessionRequest struct {
	TrainingID int `json:"trainingId"`
}

type CompleteSetRequest struct {
	TrainingExerciseID int     `json:"trainingExerciseId"`
	Ref                SetRef  `json:"ref"`
	Reps               int     `json:"reps"`
	Weight             float64 `json:"weight"`
}

type UncompleteSetRequest struct {
	TrainingExerciseID int    `json:"trainingExerciseId"`
	Ref                SetRef `json:"ref"`
}

type ExtraSetRequest struct {
	TrainingExerciseID int `json:"trainingExerciseId"`
}

type ReorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type OverrideUnitRequest struct {
	TrainingExerciseID int    `json:"trainingExerciseId"`
	Unit               string `json:"unit"`
}

type CancelResponse struct {
	DiscardedLogs int `json:"discardedLogs"`
}

// SetStatus is one set of a slot as shown to the client: planned
// sets first, extras after, numbered contiguously.
type SetStatus struct {
	Ref       SetRef               `json:"ref"`
	Number    int                  `json:"number"`
	Completed bool                 `json:"completed"`
	Planned   *trainings.PlannedSet `json:"planned,omitempty"`
	Suggested *SetValues           `json:"suggested,omitempty"`
}

type SlotStatus struct {
	ExerciseSlot
	Unit          units.Unit  `json:"unit"`
	Sets          []SetStatus `json:"sets"`
	CompletedSets int         `json:"completedSets"`
	TotalSets     int         `json:"totalSets"`
}

type SessionStatus struct {
	Training     trainings.Training `json:"training"`
	State        State              `json:"state"`
	StartedAt    time.Time          `json:"startedAt"`
	Slots        []SlotStatus       `json:"slots"`
	PendingLogs  int                `json:"pendingLogs"`
	AllCompleted bool               `json:"allCompleted"`
}

type Handler struct {
	manager *Manager
	metrics *metrics.Manager
}

func NewHandler(manager *Manager, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		manager: manager,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var startReq StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&startReq); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}
	if startReq.TrainingID == 0 {
		http.Error(w, "error, training id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.manager.Start(ctx, userID, startReq.TrainingID)
	if err != nil {
		if errors.Is(err, ErrSessionAlreadyActive) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, trainings.ErrTrainingNotFound) {
			http.Error(w, "training not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to start session for training %d: %s", startReq.TrainingID, err)
		http.Error(w, "start session failed", http.StatusInternalServerError)
		return
	}

	handler.writeStatus(w, session, http.StatusCreated)
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.status")
	defer span.End()

	session, ok := handler.session(ctx, w)
	if !ok {
		return
	}

	handler.writeStatus(w, session, http.StatusOK)
}

func (handler *Handler) HandleCompleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.completeset")
	defer span.End()

	session, ok := handler.session(ctx, w)
	if !ok {
		return
	}

	var completeReq CompleteSetRequest
	if err := json.NewDecoder(r.Body).Decode(&completeReq); err != nil {
		log.Tracef("complete set, unmarshal json params: %s", err)
		http.Error(w, "complete set failed", http.StatusBadRequest)
		return
	}

	if err := session.CompleteSet(
		completeReq.TrainingExerciseID,
		completeReq.Ref,
		completeReq.Reps,
		completeReq.Weight,
	); err != nil {
		handler.writeSessionError(w, "complete set failed", err)
		return
	}

	handler.writeStatus(w, session, http.StatusOK)
}

func (handler *Handler) HandleUncompleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.uncompleteset")
	defer span.End()

	session, ok := handler.session(ctx, w)
	if !ok {
		return
	}

	var uncompleteReq UncompleteSetRequest
	if err := json.NewDecoder(r.Body).Decode(&uncompleteReq); err != nil {
		log.Tracef("uncomplete set, unmarshal json params: %s", err)
		http.Error(w, "uncomplete set failed", http.StatusBadRequest)
		return
	}

	if err := session.UncompleteSet(uncompleteReq.TrainingExerciseID, uncompleteReq.Ref); err != nil {
		handler.writeSessionError(w, "uncomplete set failed", err)
		return
	}

	handler.writeStatus(w, session, http.StatusOK)
}

func (handler *Handler) HandleAddExtraSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.addextraset")
	defer span.End()

	session, ok := handler.session(ctx, w)
	if !ok {
		return
	}

	var extraReq ExtraSetRequest
	if err := json.NewDecoder(r.Body).Decode(&extraReq); err != nil {
		log.Tracef("add extra set, unmarshal json params: %s", err)
		http.Error(w, "add extra set failed", http.StatusBadRequest)
		return
	}

	extraSet, err := session.AddExtraSet(extraReq.TrainingExerciseID)
	if err != nil {
		handler.writeSessionError(w, "add extra set failed", err)
		return
	}

	extraJson, err := json.Marshal(extraSet)
	if err != nil {
		log.Errorf("failed to marshal extra set: %s", err)
		http.Error(w, "add extra set failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, extraJson, http.StatusCreated)
}

func (handler *Handler) HandleRemoveExtraSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.removeextraset")
	defer span.End()

	session, ok := handler.session(ctx, w)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	teID, err := strconv.Atoi(vars["teId"])
	if err != nil {
		http.Error(w, "error, training exercise id invalid", http.StatusBadRequest)
		return
	}
	extraID := vars["extraId"]

	if err := session.RemoveExtraSet(teID, extraID); err != nil {
		handler.writeSessionError(w, "remove extra set failed", err)
		return
	}

	handler.writeStatus(w, session, http.StatusOK)
}

func (handler *Handler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.reorder")
	defer span.End()

	session, ok := handler.session(ctx, w)
	if !ok {
		return
	}

	var reorderReq ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&reorderReq); err != nil {
		log.Tracef("reorder, unmarshal json params: %s", err)
		http.Error(w, "reorder failed", http.StatusBadRequest)
		return
	}

	if err := session.Reorder(ctx, reorderReq.From, reorderReq.To); err != nil {
		if errors.Is(err, ErrBadPosition) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to reorder session exercises: %s", err)
		handler.writeSessionError(w, "reorder failed", err)
		return
	}

	handler.writeStatus(w, session, http.StatusOK)
}

func (handler *Handler) HandleOverrideUnit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.overrideunit")
	defer span.End()

	session, ok := handler.session(ctx, w)
	if !ok {
		return
	}

	var unitReq OverrideUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&unitReq); err != nil {
		log.Tracef("override unit, unmarshal json params: %s", err)
		http.Error(w, "override unit failed", http.StatusBadRequest)
		return
	}

	unit, err := units.Parse(unitReq.Unit)
	if err != nil {
		http.Error(w, "error, invalid unit", http.StatusBadRequest)
		return
	}

	if err := session.OverrideUnit(unitReq.TrainingExerciseID, unit); err != nil {
		handler.writeSessionError(w, "override unit failed", err)
		return
	}

	handler.writeStatus(w, session, http.StatusOK)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.finish")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	session, err := handler.manager.Get(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	report, err := session.Finish(ctx)
	reportJson, marshalErr := json.Marshal(report)
	if marshalErr != nil {
		log.Errorf("failed to marshal flush report: %s", marshalErr)
		http.Error(w, "finish session failed", http.StatusInternalServerError)
		return
	}

	if err != nil {
		if errors.Is(err, ErrSessionNotActive) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		// partial failure: session stays active, client can retry
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, reportJson, http.StatusInternalServerError)
		return
	}

	handler.manager.Stop(userID)
	if handler.metrics != nil {
		handler.metrics.CounterSessionsFinished.Inc()
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, reportJson, http.StatusOK)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.cancel")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	session, err := handler.manager.Get(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	discarded := session.Cancel()
	handler.manager.Stop(userID)
	if handler.metrics != nil {
		handler.metrics.CounterSessionsCancelled.Inc()
	}

	respJson, err := json.Marshal(CancelResponse{DiscardedLogs: discarded})
	if err != nil {
		log.Errorf("failed to marshal cancel response: %s", err)
		http.Error(w, "cancel session failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) session(ctx context.Context, w http.ResponseWriter) (*Session, bool) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}
	session, err := handler.manager.Get(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return session, true
}

func (handler *Handler) writeSessionError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotActive):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrSlotNotFound),
		errors.Is(err, ErrUnknownSet),
		errors.Is(err, ErrExtraSetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidSetValues):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

func (handler *Handler) writeStatus(w http.ResponseWriter, session *Session, statusCode int) {
	status := buildStatus(session)

	statusJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("failed to marshal session status: %s", err)
		http.Error(w, "failed to get session status", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, statusCode)
}

func buildStatus(session *Session) SessionStatus {
	slots := session.Slots()
	status := SessionStatus{
		Training:     session.Training(),
		State:        session.State(),
		StartedAt:    session.StartedAt(),
		Slots:        make([]SlotStatus, 0, len(slots)),
		PendingLogs:  session.PendingLogs(),
		AllCompleted: session.AllSetsCompleted(),
	}

	for _, slot := range slots {
		teID := slot.TrainingExercise.ID
		extraSets := session.ExtraSets(teID)

		slotStatus := SlotStatus{
			ExerciseSlot: slot,
			TotalSets:    len(slot.PlannedSets) + len(extraSets),
			Sets:         make([]SetStatus, 0, len(slot.PlannedSets)+len(extraSets)),
		}
		if unit, err := session.UnitFor(teID); err == nil {
			slotStatus.Unit = unit
		}

		for i := range slot.PlannedSets {
			plannedSet := slot.PlannedSets[i]
			ref := PlannedSetRef(plannedSet.ID)
			setStatus := SetStatus{
				Ref:       ref,
				Number:    plannedSet.SetNumber,
				Completed: session.IsCompleted(teID, ref),
				Planned:   &plannedSet,
			}
			if suggested, err := session.SuggestedSetValues(teID, plannedSet.SetNumber); err == nil {
				setStatus.Suggested = suggested
			}
			slotStatus.Sets = append(slotStatus.Sets, setStatus)
		}
		for _, extraSet := range extraSets {
			ref := ExtraSetRef(extraSet.ID)
			setStatus := SetStatus{
				Ref:       ref,
				Number:    extraSet.Number,
				Completed: session.IsCompleted(teID, ref),
			}
			if suggested, err := session.SuggestedSetValues(teID, extraSet.Number); err == nil {
				setStatus.Suggested = suggested
			}
			slotStatus.Sets = append(slotStatus.Sets, setStatus)
		}

		for _, setStatus := range slotStatus.Sets {
			if setStatus.Completed {
				slotStatus.CompletedSets++
			}
		}

		status.Slots = append(status.Slots, slotStatus)
	}

	return status
}
