package http

import (
	"net/http"
	"strconv"

	"github.com/rxdocs/rxdocs"
)

// healthResponse reports readiness for load balancers and agents. The store
// counts as ready once at least one section is indexed.
type healthResponse struct {
	Status        string        `json:"status"`
	DatabaseReady bool          `json:"database_ready"`
	Stats         *rxdocs.Stats `json:"stats,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Stats.Stats(r.Context())
	if err != nil {
		s.Logger.Error("health check failed", "error", err)
		s.writeJSON(w, http.StatusOK, healthResponse{Status: "error"})
		return
	}

	ready := stats.Sections > 0
	status := "healthy"
	if !ready {
		status = "no_data"
	}
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:        status,
		DatabaseReady: ready,
		Stats:         stats,
	})
}

// searchResponse wraps ranked search hits with the echoed query.
type searchResponse struct {
	Query   string                 `json:"query"`
	Results []*rxdocs.SearchResult `json:"results"`
	Count   int                    `json:"count"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if !r.URL.Query().Has("query") {
		s.writeError(w, r, rxdocs.Errorf(rxdocs.EINVALID, "query parameter required"))
		return
	}

	limit := rxdocs.DefaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, r, rxdocs.Errorf(rxdocs.EINVALID, "limit must be an integer"))
			return
		}
		limit = parsed
	}

	results, err := s.Search.SearchSections(r.Context(), query, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, searchResponse{
		Query:   query,
		Results: results,
		Count:   len(results),
	})
}

func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	page, err := s.Sections.FindPage(r.Context(), slug)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, page)
}

// componentsResponse wraps the component listing with the echoed filter.
type componentsResponse struct {
	Category   string              `json:"category,omitempty"`
	Components []*rxdocs.Component `json:"components"`
	Count      int                 `json:"count"`
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	var filter rxdocs.ComponentFilter
	category := r.URL.Query().Get("category")
	if category != "" {
		filter.Category = &category
	}

	components, err := s.Components.FindComponents(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if components == nil {
		components = []*rxdocs.Component{}
	}

	s.writeJSON(w, http.StatusOK, componentsResponse{
		Category:   category,
		Components: components,
		Count:      len(components),
	})
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	component, err := s.Components.FindComponentByName(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, component)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Stats.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, stats)
}
