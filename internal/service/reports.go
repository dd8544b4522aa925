// Package service orchestrates the report core: submission, search, and
// statistics over a report store, with evidence storage and geocoding as
// optional collaborators.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crimewatch/report-service/internal/domain"
	"github.com/crimewatch/report-service/internal/observability"
)

// ReportStore is the durable report collection the service reads and appends to.
type ReportStore interface {
	Insert(ctx context.Context, report *domain.Report) error
	All(ctx context.Context) ([]domain.Report, error)
	Search(ctx context.Context, filter domain.Filter) ([]domain.Report, error)
	Ping(ctx context.Context) error
}

// EvidenceStorage persists uploaded media and returns a stable reference.
type EvidenceStorage interface {
	Save(name string, data []byte) (string, error)
}

// Service exposes the report core to the presentation layer. Every
// aggregation is synchronous and recomputed from the current store snapshot
// on each call; results are "as of" the moment the read executed.
type Service struct {
	store    ReportStore
	evidence EvidenceStorage // may be nil: submissions with attachments are then rejected
	geocoder domain.Geocoder // may be nil: addresses stay unresolved
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Service. evidence and geocoder are optional collaborators.
func New(store ReportStore, evidence EvidenceStorage, geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		store:    store,
		evidence: evidence,
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
	}
}

// CheckReadiness reports whether the service can reach its store.
func (s *Service) CheckReadiness(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Submit validates the candidate and persists it as a Report. This is the
// sole write path; no update or delete path exists.
//
// Ordering invariant: evidence is written before the row insert, so a failed
// upload never yields a report with a dangling file reference. Reverse
// geocoding runs before the insert too, but is best-effort and never blocks
// the submission.
func (s *Service) Submit(ctx context.Context, candidate domain.Candidate) (domain.Report, error) {
	if err := candidate.Validate(); err != nil {
		s.countValidationFailure(err)
		return domain.Report{}, err
	}

	report := domain.BuildReport(candidate)

	if candidate.Evidence != nil {
		if s.evidence == nil {
			return domain.Report{}, fmt.Errorf("%w: no evidence storage configured", domain.ErrEvidenceStorage)
		}
		path, err := s.evidence.Save(candidate.Evidence.Name, candidate.Evidence.Data)
		if err != nil {
			return domain.Report{}, fmt.Errorf("%w: %v", domain.ErrEvidenceStorage, err)
		}
		report.EvidencePath = path
	}

	report = s.resolveAddress(ctx, report)

	if err := s.store.Insert(ctx, &report); err != nil {
		return domain.Report{}, err
	}

	s.metrics.ReportsSubmitted.Inc()
	s.logger.Info("report submitted",
		"id", report.ID,
		"area", report.Area,
		"crime_type", report.CrimeType,
		"occurred_date", report.OccurredDate.Format("2006-01-02"),
	)
	return report, nil
}

// Search returns reports matching the filter. The filter is validated here,
// at the core's boundary; the store assumes validated input.
func (s *Service) Search(ctx context.Context, filter domain.Filter) ([]domain.Report, error) {
	if err := filter.Validate(); err != nil {
		s.countValidationFailure(err)
		return nil, err
	}

	reports, err := s.store.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.metrics.SearchesTotal.Inc()
	return reports, nil
}

// AreaStatistics computes per-(area, month) incident counts with risk tiers.
func (s *Service) AreaStatistics(ctx context.Context) ([]domain.AreaStatistic, error) {
	reports, err := s.snapshot(ctx, "areas")
	if err != nil {
		return nil, err
	}
	return domain.AggregateByArea(reports), nil
}

// HourlyStatistics computes incident counts per rounded hour bucket.
func (s *Service) HourlyStatistics(ctx context.Context) ([]domain.HourBucketStatistic, error) {
	reports, err := s.snapshot(ctx, "hourly")
	if err != nil {
		return nil, err
	}
	return domain.AggregateHourly(reports), nil
}

// MonthlyStatistics computes incident counts per month.
func (s *Service) MonthlyStatistics(ctx context.Context) ([]domain.MonthStatistic, error) {
	reports, err := s.snapshot(ctx, "monthly")
	if err != nil {
		return nil, err
	}
	return domain.AggregateMonthly(reports), nil
}

// WeekdayStatistics computes incident counts per weekday, Monday first.
func (s *Service) WeekdayStatistics(ctx context.Context) ([]domain.DayOfWeekStatistic, error) {
	reports, err := s.snapshot(ctx, "weekdays")
	if err != nil {
		return nil, err
	}
	return domain.AggregateByDayOfWeek(reports), nil
}

// Summary computes the dashboard headline metrics.
func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	reports, err := s.snapshot(ctx, "summary")
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(reports), nil
}

// MapPoints returns per-report coordinates annotated with area risk for the
// map view.
func (s *Service) MapPoints(ctx context.Context) ([]domain.MapPoint, error) {
	reports, err := s.snapshot(ctx, "map")
	if err != nil {
		return nil, err
	}
	return domain.MapPoints(reports), nil
}

// snapshot reads the full report collection for an aggregation.
func (s *Service) snapshot(ctx context.Context, kind string) ([]domain.Report, error) {
	reports, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.StatsRequests.WithLabelValues(kind).Inc()
	return reports, nil
}

// resolveAddress runs best-effort reverse geocoding and records the outcome.
func (s *Service) resolveAddress(ctx context.Context, report domain.Report) domain.Report {
	if s.geocoder == nil {
		return report
	}

	enriched := domain.EnrichWithAddress(ctx, report, s.geocoder, s.logger)
	if enriched.Address != "" {
		s.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	} else {
		// EnrichWithAddress swallows provider errors; an empty address
		// means failure or no result, and the submission proceeds.
		s.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
	}
	return enriched
}

func (s *Service) countValidationFailure(err error) {
	reason := "incomplete"
	switch {
	case errors.Is(err, domain.ErrInvalidCoordinate):
		reason = "coordinate"
	case errors.Is(err, domain.ErrInvalidFilter):
		reason = "filter"
	case errors.Is(err, domain.ErrInvalidDateRange):
		reason = "date_range"
	}
	s.metrics.ValidationFailures.WithLabelValues(reason).Inc()
}
