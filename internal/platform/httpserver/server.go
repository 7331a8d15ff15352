package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	marketplace "playmaker/contexts/training-content/marketplace"
	marketplaceerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	marketplacehttp "playmaker/contexts/training-content/marketplace/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "playmaker/internal/platform/httpserver/docs"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	marketplace marketplace.Module
}

func New(marketplaceModule marketplace.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		marketplace: marketplaceModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /marketplace", s.handleSearchItems)
	s.mux.HandleFunc("GET /marketplace/mine", s.handleListMyItems)
	s.mux.HandleFunc("GET /marketplace/items/{item_id}", s.handleGetItem)
	s.mux.HandleFunc("POST /marketplace/publish", s.handlePublishItem)
	s.mux.HandleFunc("POST /marketplace/items/{item_id}/download", s.handleDownloadItem)
	s.mux.HandleFunc("POST /marketplace/items/{item_id}/rate", s.handleRateItem)
}

func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := marketplacehttp.SearchItemsRequest{
		Sport:      query.Get("sport"),
		Type:       query.Get("type"),
		Filter:     query.Get("filter"),
		SearchTerm: query.Get("search_term"),
	}

	if pageRaw := query.Get("page"); pageRaw != "" {
		page, err := strconv.Atoi(pageRaw)
		if err != nil {
			writeMarketplaceError(w, http.StatusBadRequest, "invalid_page", "page must be an integer")
			return
		}
		req.Page = page
	}
	if sizeRaw := query.Get("page_size"); sizeRaw != "" {
		size, err := strconv.Atoi(sizeRaw)
		if err != nil {
			writeMarketplaceError(w, http.StatusBadRequest, "invalid_page_size", "page_size must be an integer")
			return
		}
		req.PageSize = size
	}

	resp, err := s.marketplace.Handler.SearchItemsHandler(r.Context(), req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("item_id")
	resp, err := s.marketplace.Handler.GetItemHandler(r.Context(), itemID)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMyItems(w http.ResponseWriter, r *http.Request) {
	subscriptionID := r.Header.Get("X-Subscription-Id")
	if subscriptionID == "" {
		writeMarketplaceError(w, http.StatusUnauthorized, "missing_subscription", "X-Subscription-Id header is required")
		return
	}

	resp, err := s.marketplace.Handler.ListMyItemsHandler(r.Context(), subscriptionID)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePublishItem(w http.ResponseWriter, r *http.Request) {
	subscriptionID := r.Header.Get("X-Subscription-Id")
	if subscriptionID == "" {
		writeMarketplaceError(w, http.StatusUnauthorized, "missing_subscription", "X-Subscription-Id header is required")
		return
	}

	var req marketplacehttp.PublishItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.marketplace.Handler.PublishItemHandler(
		r.Context(),
		subscriptionID,
		r.Header.Get("X-User-Id"),
		req,
	)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleDownloadItem(w http.ResponseWriter, r *http.Request) {
	subscriptionID := r.Header.Get("X-Subscription-Id")
	if subscriptionID == "" {
		writeMarketplaceError(w, http.StatusUnauthorized, "missing_subscription", "X-Subscription-Id header is required")
		return
	}

	itemID := r.PathValue("item_id")
	resp, err := s.marketplace.Handler.DownloadItemHandler(
		r.Context(),
		subscriptionID,
		r.Header.Get("X-User-Id"),
		itemID,
	)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRateItem(w http.ResponseWriter, r *http.Request) {
	subscriptionID := r.Header.Get("X-Subscription-Id")
	if subscriptionID == "" {
		writeMarketplaceError(w, http.StatusUnauthorized, "missing_subscription", "X-Subscription-Id header is required")
		return
	}

	var req marketplacehttp.RateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	itemID := r.PathValue("item_id")
	if err := s.marketplace.Handler.RateItemHandler(r.Context(), subscriptionID, itemID, req); err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeMarketplaceDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, marketplaceerrors.ErrMissingCaller):
		writeMarketplaceError(w, http.StatusUnauthorized, "missing_subscription", err.Error())
	case errors.Is(err, marketplaceerrors.ErrNotContentOwner):
		writeMarketplaceError(w, http.StatusForbidden, "not_content_owner", err.Error())
	case errors.Is(err, marketplaceerrors.ErrItemNotFound):
		writeMarketplaceError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, marketplaceerrors.ErrContentNotFound):
		writeMarketplaceError(w, http.StatusNotFound, "source_not_found", err.Error())
	case errors.Is(err, marketplaceerrors.ErrInvalidStars):
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_stars", err.Error())
	case errors.Is(err, marketplaceerrors.ErrInvalidSearchFilter):
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_search_filter", err.Error())
	case errors.Is(err, marketplaceerrors.ErrInvalidPublishRequest):
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_publish_request", err.Error())
	default:
		writeMarketplaceError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeMarketplaceError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, marketplacehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
