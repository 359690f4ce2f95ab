package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/manifest"
	"github.com/seatforge/seatforge/pkg/pipeline"
	"github.com/seatforge/seatforge/pkg/place"
	"github.com/seatforge/seatforge/pkg/placeid"
)

// generateResponse is the pipeline result plus the delta against the
// previously stored manifest, when one existed.
type generateResponse struct {
	*pipeline.Result
	Diff *manifest.Diff `json:"diff,omitempty"`
}

// handleGenerate runs the pipeline, persists the manifest, and publishes
// the delta against the previous version.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decodeJSON(r, &opts); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := generateResponse{Result: res}
	if res.Manifest != nil && s.store != nil {
		previous, err := s.store.Load(r.Context(), res.Manifest.EventID)
		if err != nil && !errors.Is(err, errors.ErrCodeManifestNotFound) {
			writeError(w, err)
			return
		}

		if err := s.store.Save(r.Context(), res.Manifest); err != nil {
			writeError(w, err)
			return
		}

		if previous != nil {
			resp.Diff = manifest.Compare(previous, res.Manifest)
			if err := s.publisher.PublishChanged(r.Context(), resp.Diff); err != nil {
				// The manifest is saved; a lost notification is not worth
				// failing the request over.
				s.logger.Error("publishing manifest delta failed",
					"event", res.Manifest.EventID, "err", err)
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type diffRequest struct {
	Old *manifest.Manifest `json:"old"`
	New *manifest.Manifest `json:"new"`
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Old == nil || req.New == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "diff requires both old and new manifests"))
		return
	}
	writeJSON(w, http.StatusOK, manifest.Compare(req.Old, req.New))
}

func (s *Server) handleGetManifest(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "manifest store not configured"))
		return
	}

	eventID := chi.URLParam(r, "eventID")
	if err := errors.ValidateEventID(eventID); err != nil {
		writeError(w, err)
		return
	}

	m, err := s.store.Load(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleListManifests(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "manifest store not configured"))
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	summaries, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

type parseRequest struct {
	PlaceID string `json:"place_id"`
}

type parseResponse struct {
	PlaceID string `json:"place_id"`
	Section string `json:"section"`
	Seat    string `json:"seat"`
}

// handleParsePlace runs the best-effort identifier parser for externally
// sourced identifiers lacking coordinates.
func (s *Server) handleParsePlace(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidatePlaceID(req.PlaceID); err != nil {
		writeError(w, err)
		return
	}

	parsed := placeid.Parse(req.PlaceID)
	writeJSON(w, http.StatusOK, parseResponse{
		PlaceID: req.PlaceID,
		Section: parsed.Section,
		Seat:    parsed.Seat,
	})
}

type groupRequest struct {
	Places    []place.Place `json:"places"`
	Normalize bool          `json:"normalize,omitempty"`
}

// handleGroupPlaces buckets places by section, optionally normalizing
// coordinates into the fixed [0, 1000] scale first.
func (s *Server) handleGroupPlaces(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	places := req.Places
	if req.Normalize {
		places = place.NormalizeCoordinates(places)
	}
	writeJSON(w, http.StatusOK, place.GroupBySection(places))
}
