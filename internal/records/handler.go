package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/programtracker/internal/telemetry/tracing"
	"github.com/2beens/programtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=records_test

type recordsService interface {
	LogSets(ctx context.Context, sessionID string, sets []LoggedSet) ([]PersonalRecord, error)
	RecordsFor(ctx context.Context, exerciseID string) ([]PersonalRecord, error)
	AggregateVolume(ctx context.Context, windowDays int) ([]ExerciseVolume, error)
	ExerciseVolume(ctx context.Context, windowDays int, exerciseID string) (float64, error)
}

type LogSetsRequest struct {
	Sets []LoggedSet `json:"sets"`
}

type LogSetsResponse struct {
	Logged     int              `json:"logged"`
	NewRecords []PersonalRecord `json:"newRecords"`
}

type Handler struct {
	service recordsService
}

func NewHandler(service recordsService) *Handler {
	return &Handler{
		service: service,
	}
}

func writeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrInvalidSet) || errors.Is(err, ErrInvalidWindow) {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("%s: %s", op, err)
	pkg.WriteJSONError(w, op+" failed", http.StatusInternalServerError)
}

func windowDays(r *http.Request) (int, bool) {
	days, err := strconv.Atoi(mux.Vars(r)["days"])
	if err != nil || days < 1 {
		return 0, false
	}
	return days, true
}

func (h *Handler) HandleLogSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.log-sets")
	defer span.End()

	var req LogSetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("log sets, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Sets) == 0 {
		pkg.WriteJSONError(w, "no sets", http.StatusBadRequest)
		return
	}

	newRecords, err := h.service.LogSets(ctx, mux.Vars(r)["sessionId"], req.Sets)
	if err != nil {
		writeError(w, "log sets", err)
		return
	}
	if newRecords == nil {
		newRecords = []PersonalRecord{}
	}
	pkg.WriteJSON(w, LogSetsResponse{Logged: len(req.Sets), NewRecords: newRecords}, http.StatusCreated)
}

func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.get")
	defer span.End()

	current, err := h.service.RecordsFor(ctx, mux.Vars(r)["exerciseId"])
	if err != nil {
		writeError(w, "get records", err)
		return
	}
	if current == nil {
		current = []PersonalRecord{}
	}
	pkg.WriteJSON(w, current, http.StatusOK)
}

func (h *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.volume")
	defer span.End()

	days, ok := windowDays(r)
	if !ok {
		pkg.WriteJSONError(w, "window must be a positive number of days", http.StatusBadRequest)
		return
	}

	volumes, err := h.service.AggregateVolume(ctx, days)
	if err != nil {
		writeError(w, "aggregate volume", err)
		return
	}
	pkg.WriteJSON(w, volumes, http.StatusOK)
}

func (h *Handler) HandleExerciseVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.exercise-volume")
	defer span.End()

	days, ok := windowDays(r)
	if !ok {
		pkg.WriteJSONError(w, "window must be a positive number of days", http.StatusBadRequest)
		return
	}
	exerciseID := mux.Vars(r)["exerciseId"]

	total, err := h.service.ExerciseVolume(ctx, days, exerciseID)
	if err != nil {
		writeError(w, "exercise volume", err)
		return
	}
	pkg.WriteJSON(w, ExerciseVolume{ExerciseID: exerciseID, Total: total}, http.StatusOK)
}
