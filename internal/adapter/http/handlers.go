package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/crimewatch/report-service/internal/domain"
)

const (
	dateLayout = "2006-01-02"

	// maxEvidenceSize caps uploaded evidence at 16 MiB.
	maxEvidenceSize = 16 << 20
)

// submitPayload is the JSON body for POST /api/reports. The multipart
// branch reads the same fields from the form directly. Coordinates are
// pointers so an omitted field stays distinguishable from an explicit 0.
type submitPayload struct {
	OccurredDate string   `json:"occurred_date"`
	OccurredTime string   `json:"occurred_time"`
	CrimeType    string   `json:"crime_type"`
	Area         string   `json:"area"`
	Description  string   `json:"description"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	var candidate domain.Candidate
	var err error
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		candidate, err = decodeJSONSubmission(r)
	case strings.HasPrefix(contentType, "multipart/form-data"):
		candidate, err = decodeMultipartSubmission(r)
	default:
		writeJSON(w, http.StatusUnsupportedMediaType, errorResponse{Error: "unsupported content type"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	report, err := s.svc.Submit(r.Context(), candidate)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	filter, err := decodeFilter(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	reports, err := s.svc.Search(r.Context(), filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleAreaStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.AreaStatistics(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleHourlyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.HourlyStatistics(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.MonthlyStatistics(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleWeekdayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.WeekdayStatistics(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Summary(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleMapPoints(w http.ResponseWriter, r *http.Request) {
	points, err := s.svc.MapPoints(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// writeError maps domain failures to HTTP statuses. Validation failures are
// the caller's to correct; everything else is a server-side fault.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Reason.Error(), Fields: verr.Fields})
		return
	}

	s.logger.Error("request failed", "error", err)
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrStoreUnavailable) {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, errorResponse{Error: "internal error"})
}

func decodeJSONSubmission(r *http.Request) (domain.Candidate, error) {
	var p submitPayload
	if err := decodeJSONBody(r, &p); err != nil {
		return domain.Candidate{}, err
	}
	return buildCandidate(p)
}

func decodeMultipartSubmission(r *http.Request) (domain.Candidate, error) {
	if err := r.ParseMultipartForm(maxEvidenceSize); err != nil {
		return domain.Candidate{}, fmt.Errorf("parse multipart form: %w", err)
	}

	p := submitPayload{
		OccurredDate: r.FormValue("occurred_date"),
		OccurredTime: r.FormValue("occurred_time"),
		CrimeType:    r.FormValue("crime_type"),
		Area:         r.FormValue("area"),
		Description:  r.FormValue("description"),
	}

	if v := r.FormValue("latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Candidate{}, fmt.Errorf("invalid latitude")
		}
		p.Latitude = &lat
	}
	if v := r.FormValue("longitude"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Candidate{}, fmt.Errorf("invalid longitude")
		}
		p.Longitude = &lon
	}

	candidate, err := buildCandidate(p)
	if err != nil {
		return domain.Candidate{}, err
	}

	file, header, err := r.FormFile("evidence")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(io.LimitReader(file, maxEvidenceSize))
		if readErr != nil {
			return domain.Candidate{}, fmt.Errorf("read evidence: %w", readErr)
		}
		candidate.Evidence = &domain.EvidenceFile{Name: header.Filename, Data: data}
	} else if !errors.Is(err, http.ErrMissingFile) {
		return domain.Candidate{}, fmt.Errorf("evidence upload: %w", err)
	}

	return candidate, nil
}

// buildCandidate converts wire fields to a Candidate. Malformed values are
// rejected here; missing required fields are left zero for the core's
// validation to report.
func buildCandidate(p submitPayload) (domain.Candidate, error) {
	candidate := domain.Candidate{
		CrimeType:   domain.CrimeType(p.CrimeType),
		Area:        domain.Area(p.Area),
		Description: p.Description,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
	}

	if p.OccurredDate != "" {
		date, err := time.Parse(dateLayout, p.OccurredDate)
		if err != nil {
			return domain.Candidate{}, fmt.Errorf("invalid occurred_date: want YYYY-MM-DD")
		}
		candidate.OccurredDate = date
	}
	if p.OccurredTime != "" {
		tod, err := domain.ParseTimeOfDay(p.OccurredTime)
		if err != nil {
			return domain.Candidate{}, fmt.Errorf("invalid occurred_time: want HH:MM or HH:MM:SS")
		}
		candidate.OccurredTime = tod
	}
	return candidate, nil
}

func decodeFilter(r *http.Request) (domain.Filter, error) {
	q := r.URL.Query()

	filter := domain.Filter{
		Area:      domain.Area(q.Get("area")),
		CrimeType: domain.CrimeType(q.Get("crime_type")),
	}

	if v := q.Get("from"); v != "" {
		date, err := time.Parse(dateLayout, v)
		if err != nil {
			return domain.Filter{}, fmt.Errorf("invalid from date: want YYYY-MM-DD")
		}
		filter.DateFrom = date
	}
	if v := q.Get("to"); v != "" {
		date, err := time.Parse(dateLayout, v)
		if err != nil {
			return domain.Filter{}, fmt.Errorf("invalid to date: want YYYY-MM-DD")
		}
		filter.DateTo = date
	}
	return filter, nil
}

func decodeJSONBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}
