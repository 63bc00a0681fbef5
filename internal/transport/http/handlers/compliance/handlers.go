package compliance

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"payguard/internal/domain/punch"
	"payguard/internal/domain/results"
	"payguard/internal/domain/runs"
	"payguard/internal/transport/http/api"
	"payguard/internal/transport/http/middleware"
)

type Handler struct {
	Runs      *runs.Service
	ReportDir string
	MaxBody   int64
}

func NewHandler(runsSvc *runs.Service, reportDir string, maxBody int64) *Handler {
	return &Handler{Runs: runsSvc, ReportDir: reportDir, MaxBody: maxBody}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/process", h.HandleProcess)
	r.Post("/process/upload", h.HandleProcessUpload)
	r.Post("/runs", h.HandleCreateRun)
	r.Get("/runs", h.HandleListRuns)
	r.Get("/runs/{runID}", h.HandleGetRun)
	r.Get("/runs/{runID}/report.pdf", h.HandleRunReportPDF)
}

// HandleProcess runs a pay period synchronously and returns the full report.
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	req, ok := h.decodeRequest(w, r, reqID)
	if !ok {
		return
	}

	outcome, _, err := h.Runs.ProcessSync(r.Context(), req)
	if err != nil {
		h.failProcessing(w, err, reqID)
		return
	}

	api.Success(w, outcome, reqID)
}

// HandleCreateRun queues a pay period for background processing.
func (h *Handler) HandleCreateRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	req, ok := h.decodeRequest(w, r, reqID)
	if !ok {
		return
	}

	run, err := h.Runs.StartAsync(r.Context(), req)
	if err != nil {
		h.failProcessing(w, err, reqID)
		return
	}

	api.Accepted(w, run, reqID)
}

func (h *Handler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := h.Runs.ListRuns(r.Context(), r.URL.Query().Get("client_id"), limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "could not list runs", reqID)
		return
	}
	if list == nil {
		list = []runs.Run{}
	}
	api.Success(w, list, reqID)
}

func (h *Handler) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	run, err := h.Runs.GetRun(r.Context(), chi.URLParam(r, "runID"))
	if errors.Is(err, runs.ErrRunNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "run not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lookup_failed", "could not load run", reqID)
		return
	}
	api.Success(w, run, reqID)
}

func (h *Handler) HandleRunReportPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	runID := chi.URLParam(r, "runID")

	run, err := h.Runs.GetRun(r.Context(), runID)
	if errors.Is(err, runs.ErrRunNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "run not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lookup_failed", "could not load run", reqID)
		return
	}
	if run.Status != runs.StatusCompleted {
		api.Fail(w, http.StatusConflict, "run_incomplete", "run has not completed", reqID)
		return
	}

	report, err := h.Runs.GetRunReport(r.Context(), runID)
	if err != nil || report == nil {
		api.Fail(w, http.StatusInternalServerError, "report_missing", "run report is unavailable", reqID)
		return
	}

	filePath, err := results.GenerateSummaryPDF(report, h.ReportDir, run.ClientID, run.ID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "could not generate report", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+run.ID+".pdf")
	http.ServeFile(w, r, filePath)
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, reqID string) (runs.Request, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBody)

	var req runs.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return runs.Request{}, false
	}
	return req, true
}

func (h *Handler) failProcessing(w http.ResponseWriter, err error, reqID string) {
	var schemaErr *punch.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		api.Fail(w, http.StatusUnprocessableEntity, "missing_columns", schemaErr.Error(), reqID)
	case errors.Is(err, runs.ErrMissingClientID),
		errors.Is(err, runs.ErrNoPunchData),
		errors.Is(err, runs.ErrBadFirstDate):
		api.Fail(w, http.StatusBadRequest, "invalid_request", err.Error(), reqID)
	case errors.Is(err, runs.ErrQueueFull):
		api.Fail(w, http.StatusServiceUnavailable, "queue_full", err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "processing_failed", "processing failed", reqID)
	}
}
