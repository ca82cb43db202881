package workoutlog

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
	"github.com/Olii83/gym-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workoutlog_mocks_test.go -package=workoutlog_test

type logsRepo interface {
	Add(ctx context.Context, workoutLog Log) (*Log, error)
	List(ctx context.Context, params ListParams) ([]Log, error)
	Update(ctx context.Context, userID string, workoutLog Log) error
	Delete(ctx context.Context, userID string, id int) error
}

type UpdateLogRequest struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type DeleteLogResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Logs []Log `json:"logs"`
}

type Handler struct {
	repo     logsRepo
	analyzer *Analyzer
	metrics  *metrics.Manager
}

func NewHandler(repo logsRepo, analyzer *Analyzer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: analyzer,
		metrics:  metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.new")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workoutLog Log
	if err := json.NewDecoder(r.Body).Decode(&workoutLog); err != nil {
		log.Tracef("new workout log, unmarshal json params: %s", err)
		http.Error(w, "add workout log failed", http.StatusBadRequest)
		return
	}

	if workoutLog.ExerciseID == 0 || workoutLog.Reps <= 0 || workoutLog.Weight < 0 {
		http.Error(w, "error, invalid workout log", http.StatusBadRequest)
		return
	}

	workoutLog.UserID = userID
	if workoutLog.CreatedAt.IsZero() {
		workoutLog.CreatedAt = time.Now()
	}

	addedLog, err := handler.repo.Add(ctx, workoutLog)
	if err != nil {
		log.Errorf("failed to add new workout log [exercise %d]: %s", workoutLog.ExerciseID, err)
		http.Error(w, "error, failed to add new workout log", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterWorkoutLogs.Inc()
	}
	handler.analyzer.InvalidateHistory(userID, addedLog.ExerciseID)

	logJson, err := json.Marshal(addedLog)
	if err != nil {
		log.Errorf("failed to marshal new workout log: %s", err)
		http.Error(w, "error, failed to add new workout log", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := ListParams{UserID: userID}
	if exIDStr := r.URL.Query().Get("exercise"); exIDStr != "" {
		exID, err := strconv.Atoi(exIDStr)
		if err != nil {
			http.Error(w, "error, exercise id invalid", http.StatusBadRequest)
			return
		}
		params.ExerciseID = exID
	}

	logs, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("failed to list workout logs: %s", err)
		http.Error(w, "failed to list workout logs", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []Log{}
	}

	respJson, err := json.Marshal(ListResponse{Logs: logs})
	if err != nil {
		log.Errorf("failed to marshal workout logs: %s", err)
		http.Error(w, "failed to list workout logs", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout log id invalid", http.StatusBadRequest)
		return
	}

	var updateReq UpdateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		log.Tracef("update workout log, unmarshal json params: %s", err)
		http.Error(w, "update workout log failed", http.StatusBadRequest)
		return
	}
	if updateReq.Reps <= 0 || updateReq.Weight < 0 {
		http.Error(w, "error, invalid workout log", http.StatusBadRequest)
		return
	}

	workoutLog := Log{ID: id, Reps: updateReq.Reps, Weight: updateReq.Weight}
	if err := handler.repo.Update(ctx, userID, workoutLog); err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "workout log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update workout log %d: %s", id, err)
		http.Error(w, "update workout log failed", http.StatusInternalServerError)
		return
	}

	// stats for this log's exercise are stale now, drop them all
	handler.analyzer.InvalidateAllHistory()

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout log id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "workout log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout log %d: %s", id, err)
		http.Error(w, "delete workout log failed", http.StatusInternalServerError)
		return
	}

	handler.analyzer.InvalidateAllHistory()

	respJson, err := json.Marshal(DeleteLogResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete workout log response: %s", err)
		http.Error(w, "delete workout log failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	exerciseID, err := strconv.Atoi(vars["exerciseId"])
	if err != nil {
		http.Error(w, "error, exercise id invalid", http.StatusBadRequest)
		return
	}

	history, err := handler.analyzer.ExerciseHistory(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("failed to get exercise history %d: %s", exerciseID, err)
		http.Error(w, "failed to get exercise history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("failed to marshal exercise history: %s", err)
		http.Error(w, "failed to get exercise history", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}

func (handler *Handler) HandlePersonalRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.pr")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	exerciseID, err := strconv.Atoi(vars["exerciseId"])
	if err != nil {
		http.Error(w, "error, exercise id invalid", http.StatusBadRequest)
		return
	}

	record, err := handler.analyzer.PersonalRecord(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("failed to get personal record %d: %s", exerciseID, err)
		http.Error(w, "failed to get personal record", http.StatusInternalServerError)
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("failed to marshal personal record: %s", err)
		http.Error(w, "failed to get personal record", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusOK)
}
