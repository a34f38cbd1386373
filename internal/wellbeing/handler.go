package wellbeing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/azavisha/trailstats/internal/telemetry/metrics"
	"github.com/azavisha/trailstats/internal/telemetry/tracing"
	"github.com/azavisha/trailstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=wellbeing_mocks_test.go -package=wellbeing_test

type wellbeingRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	ListAll(ctx context.Context, userID string) ([]Entry, error)
	Delete(ctx context.Context, id int) error
}

type DeleteEntryResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type Handler struct {
	repo    wellbeingRepo
	metrics *metrics.Manager
}

func NewHandler(repo wellbeingRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/wellbeing", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-wellbeing-entry")
	r.HandleFunc("/wellbeing/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-wellbeing-entry")
	r.HandleFunc("/wellbeing/list", handler.HandleList).Methods("GET", "OPTIONS").Name("list-wellbeing-entries")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellbeing.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("new wellbeing entry, unmarshal json params: %s", err)
		http.Error(w, "add wellbeing entry failed", http.StatusBadRequest)
		return
	}

	if entry.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if !entry.ScoreValid() {
		http.Error(w, "error, score out of range", http.StatusBadRequest)
		return
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	addedEntry, err := handler.repo.Add(ctx, entry)
	if err != nil {
		log.Errorf("failed to add wellbeing entry for user [%s]: %s", entry.UserID, err)
		http.Error(w, "error, failed to add wellbeing entry", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWellbeingEntries.Inc()

	addedJson, err := json.Marshal(addedEntry)
	if err != nil {
		log.Errorf("failed to marshal wellbeing entry: %s", err)
		http.Error(w, "error, failed to add wellbeing entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellbeing.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "wellbeing entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete wellbeing entry %d: %s", id, err)
		http.Error(w, "wellbeing entry not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteEntryResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellbeing.list")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	found, err := handler.repo.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("list wellbeing entries error: %s", err)
		http.Error(w, "failed to get wellbeing entries", http.StatusInternalServerError)
		return
	}

	listResponse := ListResponse{
		Entries: found,
		Total:   len(found),
	}

	listResponseJson, err := json.Marshal(listResponse)
	if err != nil {
		log.Errorf("marshal wellbeing entries error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}
