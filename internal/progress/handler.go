package progress

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/programtracker/internal/enrollment"
	"github.com/2beens/programtracker/internal/telemetry/tracing"
	"github.com/2beens/programtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type summarizer interface {
	Summarize(ctx context.Context, enrollmentID int64) (*Summary, error)
}

type Handler struct {
	aggregator summarizer
}

func NewHandler(aggregator summarizer) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "invalid enrollment id", http.StatusBadRequest)
		return
	}

	summary, err := h.aggregator.Summarize(ctx, id)
	if errors.Is(err, enrollment.ErrEnrollmentNotFound) {
		pkg.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("summarize enrollment %d: %s", id, err)
		pkg.WriteJSONError(w, "summary failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, summary, http.StatusOK)
}
