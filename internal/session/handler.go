package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"colorsync/internal/picker"
)

// EditRequest is the JSON body of POST /api/edit: the edited group and the
// raw contents of all of its fields.
type EditRequest struct {
	Group  string                `json:"group"`
	Fields map[string]FieldValue `json:"fields"`
}

// FieldValue is the raw text of one input field. It decodes from a JSON
// string as typed, from a number as its integer part in decimal, and from
// null as empty. Any other JSON value keeps its literal text, which reads
// as 0.
type FieldValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FieldValue(s)
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*v = FieldValue(data)
			return nil
		}
		*v = FieldValue(strconv.FormatFloat(math.Trunc(f), 'f', -1, 64))
	}
	return nil
}

// raw flattens the request fields for picker.ParseEdit.
func (r EditRequest) raw() map[string]string {
	fields := make(map[string]string, len(r.Fields))
	for name, v := range r.Fields {
		fields[name] = string(v)
	}
	return fields
}

// UpdateResponse is returned by /api/state and /api/edit.
type UpdateResponse struct {
	Source   string                    `json:"source"`
	Preview  string                    `json:"preview"`
	State    picker.State              `json:"state"`
	Views    map[string]map[string]int `json:"views"`
	Adjusted int                       `json:"adjusted"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string       `json:"error"`
	State picker.State `json:"state"`
}

// NewUpdateResponse flattens an update for JSON.
func NewUpdateResponse(u picker.Update) UpdateResponse {
	views := make(map[string]map[string]int)
	for g, fields := range u.Views() {
		views[g.String()] = fields
	}
	return UpdateResponse{
		Source:   u.Source.String(),
		Preview:  u.Preview().CSS(),
		State:    u.State,
		Views:    views,
		Adjusted: u.Adjusted,
	}
}

// Handler serves the session API and prometheus metrics.
type Handler struct {
	session       *Session
	allowedOrigin string
	limiter       *RateLimiter
	mux           *http.ServeMux
}

// NewHandler wires the API routes for s.
func NewHandler(s *Session, allowedOrigin string) *Handler {
	h := &Handler{session: s, allowedOrigin: allowedOrigin, mux: http.NewServeMux()}
	h.mux.HandleFunc("/api/state", h.handleState)
	h.mux.HandleFunc("/api/edit", h.handleEdit)
	h.mux.HandleFunc("/api/reset", h.handleReset)
	h.mux.Handle("/metrics", promhttp.Handler())
	return h
}

// SetEditRate limits each client to perMinute edits and resets per minute.
// Zero or less removes the limit.
func (h *Handler) SetEditRate(perMinute int) {
	if perMinute <= 0 {
		h.limiter = nil
		return
	}
	h.limiter = NewRateLimiter(perMinute)
}

// allow applies the edit rate limit and answers 429 when it is exceeded.
func (h *Handler) allow(w http.ResponseWriter, r *http.Request) bool {
	if h.limiter == nil || h.limiter.Allow(clientKey(r)) {
		return true
	}
	MetricRateLimited.Inc()
	w.Header().Set("Retry-After", "1")
	h.writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
	return false
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// preflight sets CORS headers and answers OPTIONS. It reports whether the
// request still needs handling.
func (h *Handler) preflight(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", h.allowedOrigin)
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return false
	}
	return true
}

// handleState handles GET /api/state
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	if !h.preflight(w, r, "GET") {
		return
	}
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	json.NewEncoder(w).Encode(NewUpdateResponse(h.session.Last()))
}

// handleEdit handles POST /api/edit
func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	if !h.preflight(w, r, "POST") {
		return
	}
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.allow(w, r) {
		return
	}

	var req EditRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	u, err := h.session.Edit(req.Group, req.raw())
	switch {
	case errors.Is(err, picker.ErrUnknownGroup):
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, picker.ErrInvalidHex):
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	json.NewEncoder(w).Encode(NewUpdateResponse(u))
}

// handleReset handles POST /api/reset
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if !h.preflight(w, r, "POST") {
		return
	}
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.allow(w, r) {
		return
	}
	json.NewEncoder(w).Encode(NewUpdateResponse(h.session.Reset()))
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg, State: h.session.State()})
}
