package program

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

type programLister interface {
	Programs() []Program
}

type dayGetter interface {
	GetByProgramAndDay(ctx context.Context, programID string, dayNumber int) (*ProgramDay, error)
}

type dayResolver interface {
	ResolveDay(ctx context.Context, programID string, dayNumber int) (*ResolvedDay, error)
}

type substitutionManager interface {
	Set(ctx context.Context, dayNumber int, originalID, substituteID string) (*Substitution, error)
	Clear(ctx context.Context, dayNumber int, originalID string) error
	ForDay(ctx context.Context, dayNumber int) (map[string]string, error)
}

// DayResponse pairs the authored day with where it sits in the schedule.
type DayResponse struct {
	Day      ProgramDay  `json:"day"`
	Schedule ResolvedDay `json:"schedule"`
}

type SubstitutionRequest struct {
	SubstituteExerciseID string `json:"substituteExerciseId"`
}

type Handler struct {
	programs      programLister
	days          dayGetter
	scheduler     dayResolver
	substitutions substitutionManager
}

func NewHandler(
	programs programLister,
	days dayGetter,
	scheduler dayResolver,
	substitutions substitutionManager,
) *Handler {
	return &Handler{
		programs:      programs,
		days:          days,
		scheduler:     scheduler,
		substitutions: substitutions,
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrProgramNotFound),
		errors.Is(err, ErrDayNotFound),
		errors.Is(err, ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidDayNumber),
		errors.Is(err, ErrInvalidSubstitution):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, op string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, op+" failed", status)
		return
	}
	pkg.WriteJSONError(w, err.Error(), status)
}

func dayNumber(r *http.Request) (int, bool) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil || day < 1 {
		return 0, false
	}
	return day, true
}

func (h *Handler) HandleList(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, h.programs.Programs(), http.StatusOK)
}

func (h *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.day")
	defer span.End()

	programID := mux.Vars(r)["programId"]
	day, ok := dayNumber(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid day number", http.StatusBadRequest)
		return
	}

	authored, err := h.days.GetByProgramAndDay(ctx, programID, day)
	if err != nil {
		writeError(w, "get program day", err)
		return
	}
	resolved, err := h.scheduler.ResolveDay(ctx, programID, day)
	if err != nil {
		writeError(w, "resolve program day", err)
		return
	}

	pkg.WriteJSON(w, DayResponse{Day: *authored, Schedule: *resolved}, http.StatusOK)
}

func (h *Handler) HandleGetSubstitutions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.substitutions.get")
	defer span.End()

	day, ok := dayNumber(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid day number", http.StatusBadRequest)
		return
	}

	subs, err := h.substitutions.ForDay(ctx, day)
	if err != nil {
		writeError(w, "get substitutions", err)
		return
	}
	if subs == nil {
		subs = map[string]string{}
	}
	pkg.WriteJSON(w, subs, http.StatusOK)
}

func (h *Handler) HandleSetSubstitution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.substitutions.set")
	defer span.End()

	day, ok := dayNumber(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid day number", http.StatusBadRequest)
		return
	}

	var req SubstitutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sub, err := h.substitutions.Set(ctx, day, mux.Vars(r)["exerciseId"], req.SubstituteExerciseID)
	if err != nil {
		writeError(w, "set substitution", err)
		return
	}
	pkg.WriteJSON(w, sub, http.StatusOK)
}

func (h *Handler) HandleClearSubstitution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.substitutions.clear")
	defer span.End()

	day, ok := dayNumber(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid day number", http.StatusBadRequest)
		return
	}

	if err := h.substitutions.Clear(ctx, day, mux.Vars(r)["exerciseId"]); err != nil {
		writeError(w, "clear substitution", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
