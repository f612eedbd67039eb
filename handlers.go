package transportwatcher

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
)

// handleOptimalRoute answers GET /api/v1/routes/optimal.
//
// Query parameters:
//
//	start_coords=(lat,lon)  required
//	end_coords=(lat,lon)    required
//	use_weighted=bool       optional; absent means weighted-if-available
func (s *Server) handleOptimalRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := ParseCoordinates(q.Get("start_coords"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("start_coords: %v", err))
		return
	}
	end, err := ParseCoordinates(q.Get("end_coords"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("end_coords: %v", err))
		return
	}

	var useWeighted *bool
	if raw := q.Get("use_weighted"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("use_weighted: invalid boolean %q", raw))
			return
		}
		useWeighted = &v
	}

	res, err := s.svc.FindOptimalRoute(start, end, useWeighted)
	if err != nil {
		writeError(w, routeErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func routeErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoStationInRange), errors.Is(err, ErrNoRoute):
		return http.StatusNotFound
	case errors.Is(err, ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleGraphInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Info())
}

// handleUpdateWeights triggers an immediate weighted-graph rebuild outside
// the scheduled cycle.
func (s *Server) handleUpdateWeights(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.UpdateWeightedGraph(r.Context()); err != nil {
		log.Printf("update weights: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Info())
}
