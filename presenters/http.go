package presenters

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"margin-system/application"
	"margin-system/domain/request_params"
	utils_errors "margin-system/utils/errors"
)

var (
	httpReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "margin_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "margin_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"method", "endpoint"})
)

type Handler struct {
	app    *application.MarginApplication
	logger *zap.Logger
}

func NewHandler(app *application.MarginApplication, logger *zap.Logger) *Handler {
	return &Handler{app: app, logger: logger}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	admin := r.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/merchants/{id}/margin/refund", h.PreviewRefund).Methods("GET")
	admin.HandleFunc("/merchants/{id}/margin/refund", h.ApplyRefund).Methods("POST")
	admin.HandleFunc("/merchants/{id}/margin/records", h.ListRecords).Methods("GET")
	admin.HandleFunc("/merchants/{id}/margin/bills", h.ListLedger).Methods("GET")
	admin.HandleFunc("/margin/records/{id}/audit", h.AuditRecord).Methods("POST")

	return r
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) PreviewRefund(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("GET", "/margin/refund"))
	defer timer.ObserveDuration()

	merchantId := mux.Vars(r)["id"]

	plan, err := h.app.PreviewRefund(r.Context(), merchantId)
	if err != nil {
		h.respondDomainError(w, err, "GET", "/margin/refund")
		return
	}

	httpReqTotal.WithLabelValues("GET", "/margin/refund", "200").Inc()
	respondWithJSON(w, http.StatusOK, plan)
}

func (h *Handler) ApplyRefund(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("POST", "/margin/refund"))
	defer timer.ObserveDuration()

	var req request_params.ApplyRefundReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpReqTotal.WithLabelValues("POST", "/margin/refund", "400").Inc()
		respondWithError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	req.MerchantId = mux.Vars(r)["id"]

	if req.AdminId == "" {
		httpReqTotal.WithLabelValues("POST", "/margin/refund", "400").Inc()
		respondWithError(w, http.StatusBadRequest, "admin_id is required")
		return
	}

	result, err := h.app.ApplyRefund(r.Context(), req)
	if err != nil {
		h.respondDomainError(w, err, "POST", "/margin/refund")
		return
	}

	httpReqTotal.WithLabelValues("POST", "/margin/refund", "201").Inc()
	respondWithJSON(w, http.StatusCreated, result)
}

func (h *Handler) AuditRecord(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("POST", "/margin/audit"))
	defer timer.ObserveDuration()

	var req request_params.AuditRefundReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpReqTotal.WithLabelValues("POST", "/margin/audit", "400").Inc()
		respondWithError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	req.RecordId = mux.Vars(r)["id"]

	if req.Decision != request_params.DECISION_APPROVE && req.Decision != request_params.DECISION_REJECT {
		httpReqTotal.WithLabelValues("POST", "/margin/audit", "400").Inc()
		respondWithError(w, http.StatusBadRequest, "decision must be APPROVE or REJECT")
		return
	}

	result, err := h.app.Audit(r.Context(), req)
	if err != nil {
		h.respondDomainError(w, err, "POST", "/margin/audit")
		return
	}

	httpReqTotal.WithLabelValues("POST", "/margin/audit", "200").Inc()
	respondWithJSON(w, http.StatusOK, result)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	merchantId := mux.Vars(r)["id"]
	onlyPending := cast.ToBool(r.URL.Query().Get("pending"))

	records, err := h.app.ListRecords(r.Context(), merchantId, onlyPending)
	if err != nil {
		h.respondDomainError(w, err, "GET", "/margin/records")
		return
	}

	httpReqTotal.WithLabelValues("GET", "/margin/records", "200").Inc()
	respondWithJSON(w, http.StatusOK, records)
}

func (h *Handler) ListLedger(w http.ResponseWriter, r *http.Request) {
	merchantId := mux.Vars(r)["id"]
	limit := cast.ToInt64(r.URL.Query().Get("limit"))

	entries, err := h.app.ListLedger(r.Context(), merchantId, limit)
	if err != nil {
		h.respondDomainError(w, err, "GET", "/margin/bills")
		return
	}

	httpReqTotal.WithLabelValues("GET", "/margin/bills", "200").Inc()
	respondWithJSON(w, http.StatusOK, entries)
}

func (h *Handler) respondDomainError(w http.ResponseWriter, err error, method, endpoint string) {
	status := http.StatusInternalServerError

	switch {
	case err == utils_errors.ErrMerchantNotFound || err == utils_errors.ErrRecordNotFound:
		status = http.StatusNotFound
	case utils_errors.IsPrecondition(err):
		status = http.StatusUnprocessableEntity
	case err == utils_errors.ErrAlreadyAudited:
		status = http.StatusConflict
	case utils_errors.IsTerminal(err):
		// Terminal for the record, no retry will change the answer.
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		h.logger.With(zap.Error(err)).Error("admin_api_error")
	}

	httpReqTotal.WithLabelValues(method, endpoint, cast.ToString(status)).Inc()
	respondWithError(w, status, err.Error())
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
