package program_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/programtracker/internal/clock"
	"github.com/2beens/programtracker/internal/program"
	"github.com/2beens/programtracker/internal/storage/memory"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProgramRouter(t *testing.T) *mux.Router {
	t.Helper()
	catalog := testCatalog(t)
	days := memory.NewProgramDayRepo()
	require.NoError(t, catalog.Seed(context.Background(), days))

	subStore := memory.NewSubstitutionRepo()
	subs := program.NewSubstitutions(subStore, clock.NewFixed(time.Date(2024, 2, 1, 7, 0, 0, 0, time.UTC)))
	scheduler := program.NewScheduler(catalog, catalog, subStore)
	h := program.NewHandler(catalog, days, scheduler, subs)

	r := mux.NewRouter()
	r.HandleFunc("/programs", h.HandleList).Methods("GET")
	r.HandleFunc("/programs/{programId}/days/{day}", h.HandleGetDay).Methods("GET")
	r.HandleFunc("/substitutions/{day}", h.HandleGetSubstitutions).Methods("GET")
	r.HandleFunc("/substitutions/{day}/{exerciseId}", h.HandleSetSubstitution).Methods("PUT")
	r.HandleFunc("/substitutions/{day}/{exerciseId}", h.HandleClearSubstitution).Methods("DELETE")
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandler_List(t *testing.T) {
	r := newTestProgramRouter(t)

	rr := doRequest(r, "GET", "/programs", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var programs []program.Program
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &programs))
	require.Len(t, programs, 2)
	assert.Equal(t, "custom-2", programs[0].ID)
}

func TestHandler_GetDay(t *testing.T) {
	r := newTestProgramRouter(t)

	rr := doRequest(r, "GET", "/programs/hybrid-12/days/8", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp program.DayResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Day.DayNumber)
	assert.Equal(t, "push", resp.Day.TemplateKey)
	assert.Equal(t, 2, resp.Schedule.WeekNumber)
	assert.Equal(t, "foundation", resp.Schedule.Phase)

	assert.Equal(t, http.StatusNotFound, doRequest(r, "GET", "/programs/nope/days/1", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, "GET", "/programs/hybrid-12/days/85", "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, "GET", "/programs/hybrid-12/days/0", "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, "GET", "/programs/hybrid-12/days/x", "").Code)
}

func TestHandler_Substitutions(t *testing.T) {
	r := newTestProgramRouter(t)

	rr := doRequest(r, "GET", "/substitutions/3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())

	rr = doRequest(r, "PUT", "/substitutions/3/bench_press", `{"substituteExerciseId":"db_press"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var sub program.Substitution
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sub))
	assert.Equal(t, "db_press", sub.SubstituteExerciseID)
	assert.Equal(t, 3, sub.ProgramDay)

	rr = doRequest(r, "GET", "/substitutions/3", "")
	assert.JSONEq(t, `{"bench_press":"db_press"}`, rr.Body.String())

	assert.Equal(t, http.StatusBadRequest,
		doRequest(r, "PUT", "/substitutions/3/bench_press", `{"substituteExerciseId":"bench_press"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		doRequest(r, "PUT", "/substitutions/3/bench_press", `{"substituteExerciseId":""}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		doRequest(r, "PUT", "/substitutions/3/bench_press", `nope`).Code)

	assert.Equal(t, http.StatusNoContent, doRequest(r, "DELETE", "/substitutions/3/bench_press", "").Code)
	rr = doRequest(r, "GET", "/substitutions/3", "")
	assert.JSONEq(t, `{}`, rr.Body.String())
}
