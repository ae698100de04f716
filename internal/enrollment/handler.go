package enrollment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/programtracker/internal/program"
	"github.com/2beens/programtracker/internal/telemetry/tracing"
	"github.com/2beens/programtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=enrollment_test

type enrollmentService interface {
	Enroll(ctx context.Context, programID, userID string) (*Enrollment, error)
	Get(ctx context.Context, id int64) (*Enrollment, error)
	ActiveForUser(ctx context.Context, userID string) (*Enrollment, error)
	History(ctx context.Context, id int64) ([]DayCompletion, error)
	StartDay(ctx context.Context, id int64) (*program.ProgramDay, error)
	CompleteCurrentDay(ctx context.Context, id int64, sessionID, notes string) (*Enrollment, error)
	SkipCurrentDay(ctx context.Context, id int64, reason string) (*Enrollment, error)
	RecordPartialDay(ctx context.Context, id int64, sessionID, notes string) (*Enrollment, error)
	Pause(ctx context.Context, id int64) (*Enrollment, error)
	Resume(ctx context.Context, id int64) (*Enrollment, error)
	Cancel(ctx context.Context, id int64) (*Enrollment, error)
	Purge(ctx context.Context, id int64) error
	CurrentWorkout(ctx context.Context, id int64) (*Workout, error)
}

type EnrollRequest struct {
	ProgramID string `json:"programId"`
	UserID    string `json:"userId"`
}

// DayResolutionRequest is the optional body of complete, skip and partial.
type DayResolutionRequest struct {
	SessionID string `json:"sessionId"`
	Notes     string `json:"notes"`
	Reason    string `json:"reason"`
}

type Handler struct {
	service enrollmentService
}

func NewHandler(service enrollmentService) *Handler {
	return &Handler{
		service: service,
	}
}

// StatusForError maps engine errors onto HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrEnrollmentNotFound),
		errors.Is(err, program.ErrProgramNotFound),
		errors.Is(err, program.ErrDayNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidStateTransition),
		errors.Is(err, ErrInvariantViolation),
		errors.Is(err, ErrNoCurrentDay),
		errors.Is(err, ErrEnrollmentChanged):
		return http.StatusConflict
	case errors.Is(err, ErrProgramExhausted):
		return http.StatusGone
	case errors.Is(err, program.ErrInvalidDayNumber):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, op string, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, op+" failed", status)
		return
	}
	log.Debugf("%s: %s", op, err)
	pkg.WriteJSONError(w, err.Error(), status)
}

func enrollmentID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.enrollment.enroll")
	defer span.End()

	var req EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("enroll, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProgramID == "" || req.UserID == "" {
		pkg.WriteJSONError(w, "programId and userId are required", http.StatusBadRequest)
		return
	}

	created, err := h.service.Enroll(ctx, req.ProgramID, req.UserID)
	if err != nil {
		writeError(w, "enroll", err)
		return
	}
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.enrollment.get")
	defer span.End()

	id, ok := enrollmentID(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid enrollment id", http.StatusBadRequest)
		return
	}

	e, err := h.service.Get(ctx, id)
	if err != nil {
		writeError(w, "get enrollment", err)
		return
	}
	pkg.WriteJSON(w, e, http.StatusOK)
}

func (h *Handler) HandleActiveForUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.enrollment.active")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	e, err := h.service.ActiveForUser(ctx, userID)
	if err != nil {
		writeError(w, "get active enrollment", err)
		return
	}
	pkg.WriteJSON(w, e, http.StatusOK)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.enrollment.history")
	defer span.End()

	id, ok := enrollmentID(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid enrollment id", http.StatusBadRequest)
		return
	}

	history, err := h.service.History(ctx, id)
	if err != nil {
		writeError(w, "get history", err)
		return
	}
	if history == nil {
		history = []DayCompletion{}
	}
	pkg.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) HandleStartDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.enrollment.start-day")
	defer span.End()

	id, ok := enrollmentID(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid enrollment id", http.StatusBadRequest)
		return
	}

	day, err := h.service.StartDay(ctx, id)
	if err != nil {
		writeError(w, "start day", err)
		return
	}
	pkg.WriteJSON(w, day, http.StatusOK)
}

// decodeResolution accepts an empty body.
func decodeResolution(r *http.Request) (DayResolutionRequest, error) {
	var req DayResolutionRequest
	if r.Body == nil {
		return req, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

func (h *Handler) handleResolution(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	resolve func(ctx context.Context, id int64, req DayResolutionRequest) (*Enrollment, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.enrollment."+op)
	defer span.End()

	id, ok := enrollmentID(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid enrollment id", http.StatusBadRequest)
		return
	}
	req, err := decodeResolution(r)
	if err != nil {
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := resolve(ctx, id, req)
	if err != nil {
		writeError(w, op, err)
		return
	}
	pkg.WriteJSON(w, e, http.StatusOK)
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.handleResolution(w, r, "complete", func(ctx context.Context, id int64, req DayResolutionRequest) (*Enrollment, error) {
		return h.service.CompleteCurrentDay(ctx, id, req.SessionID, req.Notes)
	})
}

func (h *Handler) HandleSkip(w http.ResponseWriter, r *http.Request) {
	h.handleResolution(w, r, "skip", func(ctx context.Context, id int64, req DayResolutionRequest) (*Enrollment, error) {
		return h.service.SkipCurrentDay(ctx, id, req.Reason)
	})
}

func (h *Handler) HandlePartial(w http.ResponseWriter, r *http.Request) {
	h.handleResolution(w, r, "partial", func(ctx context.Context, id int64, req DayResolutionRequest) (*Enrollment, error) {
		return h.service.RecordPartialDay(ctx, id, req.SessionID, req.Notes)
	})
}

func (h *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	h.handleResolution(w, r, "pause", func(ctx context.Context, id int64, _ DayResolutionRequest) (*Enrollment, error) {
		return h.service.Pause(ctx, id)
	})
}

func (h *Handler) HandleResume(w http.ResponseWriter, r *http.Request) {
	h.handleResolution(w, r, "resume", func(ctx context.Context, id int64, _ DayResolutionRequest) (*Enrollment, error) {
		return h.service.Resume(ctx, id)
	})
}

func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.handleResolution(w, r, "cancel", func(ctx context.Context, id int64, _ DayResolutionRequest) (*Enrollment, error) {
		return h.service.Cancel(ctx, id)
	})
}

func (h *Handler) HandlePurge(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.enrollment.purge")
	defer span.End()

	id, ok := enrollmentID(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid enrollment id", http.StatusBadRequest)
		return
	}

	if err := h.service.Purge(ctx, id); err != nil {
		writeError(w, "purge", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.enrollment.workout")
	defer span.End()

	id, ok := enrollmentID(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid enrollment id", http.StatusBadRequest)
		return
	}

	workout, err := h.service.CurrentWorkout(ctx, id)
	if err != nil {
		writeError(w, "current workout", err)
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}
