package records

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/programtracker/internal/telemetry/tracing"
	"github.com/2beens/programtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type workingWeightGetter interface {
	ForExercise(ctx context.Context, exerciseID string) (*ProgressionRecord, error)
}

type ProgressionHandler struct {
	progression workingWeightGetter
}

func NewProgressionHandler(progression workingWeightGetter) *ProgressionHandler {
	return &ProgressionHandler{
		progression: progression,
	}
}

func (h *ProgressionHandler) HandleWorkingWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.get")
	defer span.End()

	exerciseID := mux.Vars(r)["exerciseId"]
	record, err := h.progression.ForExercise(ctx, exerciseID)
	if errors.Is(err, ErrProgressionNotFound) {
		pkg.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get working weight of %s: %s", exerciseID, err)
		pkg.WriteJSONError(w, "get working weight failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, record, http.StatusOK)
}
