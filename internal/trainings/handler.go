package trainings

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
	"github.com/Olii83/gym-tracker/internal/telemetry/tracing"
	"github.com/Olii83/gym-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=trainings_mocks_test.go -package=trainings_test

type trainingsRepo interface {
	Add(ctx context.Context, training Training) (*Training, error)
	Get(ctx context.Context, userID string, id int) (*Training, error)
	List(ctx context.Context, userID string) ([]Training, error)
	Delete(ctx context.Context, userID string, id int) error
	AddExercise(ctx context.Context, te TrainingExercise) (*TrainingExercise, error)
	ListExercises(ctx context.Context, trainingID int) ([]TrainingExercise, error)
	RemoveExercise(ctx context.Context, trainingID, trainingExerciseID int) error
	UpdateExerciseOrder(ctx context.Context, trainingID, trainingExerciseID, orderNum int) error
	SetPlannedSets(ctx context.Context, trainingID, trainingExerciseID int, sets []PlannedSet) error
	ListPlannedSets(ctx context.Context, trainingExerciseID int) ([]PlannedSet, error)
}

// TrainingDetails is a training with its exercise slots and their
// planned sets, as shown on the training screen.
type TrainingDetails struct {
	Training  Training               `json:"training"`
	Exercises []TrainingExerciseInfo `json:"exercises"`
}

type TrainingExerciseInfo struct {
	TrainingExercise
	Sets []PlannedSet `json:"sets"`
}

type DeleteTrainingResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo trainingsRepo
}

func NewHandler(repo trainingsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.new")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var training Training
	if err := json.NewDecoder(r.Body).Decode(&training); err != nil {
		log.Tracef("new training, unmarshal json params: %s", err)
		http.Error(w, "add training failed", http.StatusBadRequest)
		return
	}

	if training.Name == "" {
		http.Error(w, "error, training name empty", http.StatusBadRequest)
		return
	}

	training.UserID = userID
	if training.CreatedAt.IsZero() {
		training.CreatedAt = time.Now()
	}

	addedTraining, err := handler.repo.Add(ctx, training)
	if err != nil {
		log.Errorf("failed to add new training [%s]: %s", training.Name, err)
		http.Error(w, "error, failed to add new training", http.StatusInternalServerError)
		return
	}

	trainingJson, err := json.Marshal(addedTraining)
	if err != nil {
		log.Errorf("failed to marshal new training: %s", err)
		http.Error(w, "error, failed to add new training", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainingJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	trainingsList, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("failed to list trainings: %s", err)
		http.Error(w, "failed to list trainings", http.StatusInternalServerError)
		return
	}
	if trainingsList == nil {
		trainingsList = []Training{}
	}

	respJson, err := json.Marshal(trainingsList)
	if err != nil {
		log.Errorf("failed to marshal trainings list: %s", err)
		http.Error(w, "failed to list trainings", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleGet returns the training together with its exercise slots
// and planned sets.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, training id invalid", http.StatusBadRequest)
		return
	}

	training, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrTrainingNotFound) {
			http.Error(w, "training not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get training %d: %s", id, err)
		http.Error(w, "failed to get training", http.StatusInternalServerError)
		return
	}

	tes, err := handler.repo.ListExercises(ctx, training.ID)
	if err != nil {
		log.Errorf("failed to list exercises of training %d: %s", id, err)
		http.Error(w, "failed to get training", http.StatusInternalServerError)
		return
	}

	details := TrainingDetails{
		Training:  *training,
		Exercises: make([]TrainingExerciseInfo, 0, len(tes)),
	}
	for _, te := range tes {
		sets, err := handler.repo.ListPlannedSets(ctx, te.ID)
		if err != nil {
			log.Errorf("failed to list planned sets of training exercise %d: %s", te.ID, err)
			http.Error(w, "failed to get training", http.StatusInternalServerError)
			return
		}
		if sets == nil {
			sets = []PlannedSet{}
		}
		details.Exercises = append(details.Exercises, TrainingExerciseInfo{
			TrainingExercise: te,
			Sets:             sets,
		})
	}

	detailsJson, err := json.Marshal(details)
	if err != nil {
		log.Errorf("failed to marshal training %d: %s", id, err)
		http.Error(w, "failed to get training", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, detailsJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, training id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrTrainingNotFound) {
			http.Error(w, "training not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete training %d: %s", id, err)
		http.Error(w, "delete training failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteTrainingResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete training response: %s", err)
		http.Error(w, "delete training failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.addexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	trainingID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, training id invalid", http.StatusBadRequest)
		return
	}

	// ownership check
	if _, err := handler.repo.Get(ctx, userID, trainingID); err != nil {
		if errors.Is(err, ErrTrainingNotFound) {
			http.Error(w, "training not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get training %d: %s", trainingID, err)
		http.Error(w, "add training exercise failed", http.StatusInternalServerError)
		return
	}

	var te TrainingExercise
	if err := json.NewDecoder(r.Body).Decode(&te); err != nil {
		log.Tracef("add training exercise, unmarshal json params: %s", err)
		http.Error(w, "add training exercise failed", http.StatusBadRequest)
		return
	}

	if te.ExerciseID == 0 {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	te.TrainingID = trainingID
	if te.CreatedAt.IsZero() {
		te.CreatedAt = time.Now()
	}

	addedTe, err := handler.repo.AddExercise(ctx, te)
	if err != nil {
		log.Errorf("failed to add exercise to training %d: %s", trainingID, err)
		http.Error(w, "add training exercise failed", http.StatusInternalServerError)
		return
	}

	teJson, err := json.Marshal(addedTe)
	if err != nil {
		log.Errorf("failed to marshal training exercise: %s", err)
		http.Error(w, "add training exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, teJson, http.StatusCreated)
}

func (handler *Handler) HandleSetPlannedSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.setplannedsets")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	trainingID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, training id invalid", http.StatusBadRequest)
		return
	}
	teID, err := strconv.Atoi(vars["teId"])
	if err != nil {
		http.Error(w, "error, training exercise id invalid", http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.Get(ctx, userID, trainingID); err != nil {
		if errors.Is(err, ErrTrainingNotFound) {
			http.Error(w, "training not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get training %d: %s", trainingID, err)
		http.Error(w, "set planned sets failed", http.StatusInternalServerError)
		return
	}

	var sets []PlannedSet
	if err := json.NewDecoder(r.Body).Decode(&sets); err != nil {
		log.Tracef("set planned sets, unmarshal json params: %s", err)
		http.Error(w, "set planned sets failed", http.StatusBadRequest)
		return
	}

	for _, set := range sets {
		if set.PlannedUnit != nil && !set.PlannedUnit.Valid() {
			http.Error(w, "error, invalid planned unit", http.StatusBadRequest)
			return
		}
	}

	if err := handler.repo.SetPlannedSets(ctx, trainingID, teID, sets); err != nil {
		if errors.Is(err, ErrTrainingExerciseNotFound) {
			http.Error(w, "training exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to set planned sets of training exercise %d: %s", teID, err)
		http.Error(w, "set planned sets failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.removeexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	trainingID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, training id invalid", http.StatusBadRequest)
		return
	}
	teID, err := strconv.Atoi(vars["teId"])
	if err != nil {
		http.Error(w, "error, training exercise id invalid", http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.Get(ctx, userID, trainingID); err != nil {
		if errors.Is(err, ErrTrainingNotFound) {
			http.Error(w, "training not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get training %d: %s", trainingID, err)
		http.Error(w, "remove training exercise failed", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.RemoveExercise(ctx, trainingID, teID); err != nil {
		if errors.Is(err, ErrTrainingExerciseNotFound) {
			http.Error(w, "training exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to remove training exercise %d: %s", teID, err)
		http.Error(w, "remove training exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "removed")
}

type UpdateExerciseOrderRequest struct {
	OrderNum int `json:"orderNum"`
}

func (handler *Handler) HandleUpdateExerciseOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.updateorder")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	trainingID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, training id invalid", http.StatusBadRequest)
		return
	}
	teID, err := strconv.Atoi(vars["teId"])
	if err != nil {
		http.Error(w, "error, training exercise id invalid", http.StatusBadRequest)
		return
	}

	var orderReq UpdateExerciseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&orderReq); err != nil {
		log.Tracef("update exercise order, unmarshal json params: %s", err)
		http.Error(w, "update exercise order failed", http.StatusBadRequest)
		return
	}
	if orderReq.OrderNum < 0 {
		http.Error(w, "error, order number invalid", http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.Get(ctx, userID, trainingID); err != nil {
		if errors.Is(err, ErrTrainingNotFound) {
			http.Error(w, "training not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get training %d: %s", trainingID, err)
		http.Error(w, "update exercise order failed", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.UpdateExerciseOrder(ctx, trainingID, teID, orderReq.OrderNum); err != nil {
		if errors.Is(err, ErrTrainingExerciseNotFound) {
			http.Error(w, "training exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update order of training exercise %d: %s", teID, err)
		http.Error(w, "update exercise order failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}
