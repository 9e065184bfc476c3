package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sgaglani/ethiscan/internal/application"
	domain "github.com/sgaglani/ethiscan/internal/domain/analysis"
	"github.com/sgaglani/ethiscan/internal/domain/extract"
)

// persistTimeout bounds each detached store write so a dead store cannot
// leak goroutines forever.
const persistTimeout = 30 * time.Second

// Service implements the analyze use-case: extract page text, run the
// ethics analysis, and persist the result without blocking the caller.
// Safe for concurrent use.
type Service struct {
	Extractor extract.Extractor
	Analyzer  domain.Client
	Reports   domain.Repository
	Artifacts domain.ArtifactStore // optional, nil disables archiving
	Clock     application.Clock
}

// Analyze runs the synchronous pipeline stages and schedules persistence.
// The returned record is either the parsed assessment or its Error variant;
// a non-nil error only ever means extraction failed, in which case neither
// the analyzer nor the sink ran.
func (s *Service) Analyze(ctx context.Context, url string) (domain.Record, error) {
	pageText, err := s.Extractor.Extract(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScrapeFailed, err)
	}

	record := s.Analyzer.Analyze(ctx, pageText)

	s.persistDetached(record, url, pageText)

	return record, nil
}

// Latest returns the most recently persisted reports, newest first.
func (s *Service) Latest(ctx context.Context, limit int) ([]*domain.Report, error) {
	return s.Reports.Latest(ctx, limit)
}

// persistDetached appends the report to the store from a detached goroutine
// using context.Background(), so it survives the request ending and its
// faults never reach the response path. Store errors are logged and dropped.
func (s *Service) persistDetached(record domain.Record, url, pageText string) {
	record = record.Clone()
	now := s.Clock.Now()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		report := &domain.Report{
			ID:        domain.ReportID(uuid.New().String()),
			URL:       url,
			Timestamp: epochSeconds(now),
			Record:    record,
		}

		if err := s.Reports.Save(ctx, report); err != nil {
			log.Printf("report save failed: url=%s err=%v", url, err)
		} else {
			log.Printf("report saved: id=%s url=%s", report.ID, url)
		}

		s.archive(ctx, report, pageText)
	}()
}

// archive uploads the raw inputs/outputs of an analysis, best effort.
func (s *Service) archive(ctx context.Context, report *domain.Report, pageText string) {
	if s.Artifacts == nil {
		return
	}

	prefix := fmt.Sprintf("%s/%s", time.Unix(int64(report.Timestamp), 0).UTC().Format("2006-01-02"), report.ID)

	if _, err := s.Artifacts.PutText(ctx, prefix+"/page.txt", pageText, "text/plain"); err != nil {
		log.Printf("artifact upload failed: key=%s/page.txt err=%v", prefix, err)
	}

	raw, err := json.Marshal(report.Record)
	if err != nil {
		log.Printf("artifact marshal failed: id=%s err=%v", report.ID, err)
		return
	}
	if _, err := s.Artifacts.PutText(ctx, prefix+"/response.json", string(raw), "application/json"); err != nil {
		log.Printf("artifact upload failed: key=%s/response.json err=%v", prefix, err)
	}
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
