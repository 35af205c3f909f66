// Package transport serves the dashboard's read-only JSON API.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/noosphere-labs/compute-agent/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	defaultActivityLimit uint64 = 50
	maxActivityLimit     uint64 = 500
)

// Store is the read surface the API projects.
type Store interface {
	EventStats(ctx context.Context) (model.EventStats, error)
	ContainerStats(ctx context.Context) ([]model.ContainerStats, error)
	SubscriptionStats(ctx context.Context) ([]model.SubscriptionStats, error)
	PrepareTxStats(ctx context.Context) (model.PrepareTxStats, error)
	RecentActivity(ctx context.Context, limit uint64) ([]model.ActivityEntry, error)
	RequestEvent(ctx context.Context, requestID string) (model.RequestEvent, bool, error)
}

// Handler exposes the agent's state over HTTP. All endpoints are pure
// projections; nothing mutates.
type Handler struct {
	store  Store
	logger *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Router builds the HTTP handler: the JSON API, the Prometheus endpoint and
// permissive CORS for the dashboard.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /api/stats", h.stats)
	mux.HandleFunc("GET /api/stats/containers", h.containerStats)
	mux.HandleFunc("GET /api/stats/subscriptions", h.subscriptionStats)
	mux.HandleFunc("GET /api/activity", h.activity)
	mux.HandleFunc("GET /api/events/{requestId}", h.event)
	mux.Handle("GET /metrics", promhttp.Handler())
	return cors.Default().Handler(mux)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statsResponse struct {
	Events              model.EventStats     `json:"events"`
	PrepareTransactions model.PrepareTxStats `json:"prepare_transactions"`
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.EventStats(r.Context())
	if err != nil {
		h.writeError(w, "load event stats", err)
		return
	}
	prepares, err := h.store.PrepareTxStats(r.Context())
	if err != nil {
		h.writeError(w, "load prepare tx stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponse{Events: events, PrepareTransactions: prepares})
}

func (h *Handler) containerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.ContainerStats(r.Context())
	if err != nil {
		h.writeError(w, "load container stats", err)
		return
	}
	if stats == nil {
		stats = []model.ContainerStats{}
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) subscriptionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.SubscriptionStats(r.Context())
	if err != nil {
		h.writeError(w, "load subscription stats", err)
		return
	}
	if stats == nil {
		stats = []model.SubscriptionStats{}
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) activity(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	entries, err := h.store.RecentActivity(r.Context(), limit)
	if err != nil {
		h.writeError(w, "load recent activity", err)
		return
	}
	if entries == nil {
		entries = []model.ActivityEntry{}
	}
	h.writeJSON(w, http.StatusOK, entries)
}

type eventResponse struct {
	RequestID      string    `json:"request_id"`
	SubscriptionID uint64    `json:"subscription_id"`
	Interval       uint32    `json:"interval"`
	BlockNumber    uint64    `json:"block_number"`
	BlockTime      time.Time `json:"block_time"`
	ContainerID    string    `json:"container_id"`
	Redundancy     uint16    `json:"redundancy"`
	FeeAmount      string    `json:"fee_amount"`
	FeeToken       string    `json:"fee_token"`
	Verifier       string    `json:"verifier,omitempty"`
	WalletAddress  string    `json:"wallet_address"`
	Status         string    `json:"status"`

	TransactionHash string `json:"transaction_hash,omitempty"`
	GasUsed         uint64 `json:"gas_used,omitempty"`
	GasCost         string `json:"gas_cost,omitempty"`
	Output          string `json:"output,omitempty"`
	Input           string `json:"input,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) event(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("requestId")

	ev, found, err := h.store.RequestEvent(r.Context(), requestID)
	if err != nil {
		h.writeError(w, "load request event", err)
		return
	}
	if !found {
		http.Error(w, "request not found", http.StatusNotFound)
		return
	}

	resp := eventResponse{
		RequestID:       ev.RequestID,
		SubscriptionID:  ev.SubscriptionID,
		Interval:        ev.Interval,
		BlockNumber:     ev.BlockNumber,
		BlockTime:       ev.BlockTime,
		ContainerID:     ev.ContainerID,
		Redundancy:      ev.Redundancy,
		FeeToken:        ev.FeeToken,
		Verifier:        ev.Verifier,
		WalletAddress:   ev.WalletAddress,
		Status:          string(ev.Status),
		TransactionHash: ev.TransactionHash,
		GasUsed:         ev.GasUsed,
		Output:          ev.Output,
		Input:           ev.Input,
		ErrorMessage:    ev.ErrorMessage,
		CreatedAt:       ev.CreatedAt,
		UpdatedAt:       ev.UpdatedAt,
	}
	if ev.FeeAmount != nil {
		resp.FeeAmount = ev.FeeAmount.String()
	}
	if ev.GasCost != nil && ev.GasCost.Sign() > 0 {
		resp.GasCost = ev.GasCost.String()
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write response failed", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("request failed", zap.String("op", op), zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
