package compliance

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"payguard/internal/domain/register"
	"payguard/internal/domain/rules"
	"payguard/internal/domain/runs"
	"payguard/internal/domain/waiver"
	"payguard/internal/ingest"
	"payguard/internal/transport/http/api"
	"payguard/internal/transport/http/middleware"
)

// HandleProcessUpload accepts the three workbooks as multipart files and runs
// the pay period synchronously. Form parts:
//
//	ta      punch detail workbook (required)
//	wfn     payroll register workbook (optional)
//	waiver  meal waiver roster workbook (optional)
//
// client_id and first_date come as ordinary form fields; params and
// location_params as JSON-encoded fields.
func (h *Handler) HandleProcessUpload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBody)
	if err := r.ParseMultipartForm(h.MaxBody); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid multipart payload", reqID)
		return
	}

	req := runs.Request{
		ClientID:  r.FormValue("client_id"),
		FirstDate: r.FormValue("first_date"),
	}

	taRecords, err := h.readSheet(r, "ta")
	if err != nil {
		api.Fail(w, http.StatusUnprocessableEntity, "invalid_workbook", "ta workbook could not be read", reqID)
		return
	}
	req.TA = taRecords

	if wfnRecords, err := h.readSheet(r, "wfn"); err == nil && wfnRecords != nil {
		req.WFN = register.ParseRecords(wfnRecords)
	} else if err != nil {
		api.Fail(w, http.StatusUnprocessableEntity, "invalid_workbook", "wfn workbook could not be read", reqID)
		return
	}

	if waiverRecords, err := h.readSheet(r, "waiver"); err == nil && waiverRecords != nil {
		req.Waiver = waiver.RecordsFrom(waiverRecords)
	} else if err != nil {
		api.Fail(w, http.StatusUnprocessableEntity, "invalid_workbook", "waiver workbook could not be read", reqID)
		return
	}

	if raw := r.FormValue("params"); raw != "" {
		var globals rules.Globals
		if err := json.Unmarshal([]byte(raw), &globals); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_params", "params field is not valid JSON", reqID)
			return
		}
		req.Params = &globals
	}
	if raw := r.FormValue("location_params"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Locations); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_params", "location_params field is not valid JSON", reqID)
			return
		}
	}

	outcome, _, err := h.Runs.ProcessSync(r.Context(), req)
	if err != nil {
		h.failProcessing(w, err, reqID)
		return
	}

	api.Success(w, outcome, reqID)
}

// readSheet returns nil records without error when the part is absent.
func (h *Handler) readSheet(r *http.Request, field string) ([]map[string]string, error) {
	file, _, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	return ingest.ReadWorkbook(file)
}
