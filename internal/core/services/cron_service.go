package services

import (
	"context"
	"database/sql"
	"log"
	"time"

	"library-management/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// dbStatsSpec is how often pool gauges are refreshed
const dbStatsSpec = "@every 15s"

// OverdueCounter is what the overdue sweep needs from the borrowing service
type OverdueCounter interface {
	CountOverdue(ctx context.Context) (int64, error)
}

// CronService runs scheduled background jobs
type CronService struct {
	cron    *cron.Cron
	overdue OverdueCounter
	spec    string
	sqlDB   *sql.DB
	timeout time.Duration
}

// NewCronService creates a new cron service. sqlDB may be nil to skip pool metrics.
func NewCronService(overdue OverdueCounter, spec string, sqlDB *sql.DB) *CronService {
	return &CronService{
		cron:    cron.New(),
		overdue: overdue,
		spec:    spec,
		sqlDB:   sqlDB,
		timeout: 30 * time.Second,
	}
}

// Start registers the jobs, runs the overdue sweep once and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.SweepOverdue); err != nil {
		return err
	}

	if s.sqlDB != nil {
		if _, err := s.cron.AddFunc(dbStatsSpec, func() { metrics.RecordDBPoolMetrics(s.sqlDB) }); err != nil {
			return err
		}
		metrics.RecordDBPoolMetrics(s.sqlDB)
	}

	go s.SweepOverdue()

	s.cron.Start()
	log.Printf("⏰ Cron service started (overdue sweep: %s)", s.spec)
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 Cron service stopped")
}

// SweepOverdue counts overdue borrowings and publishes the gauge
func (s *CronService) SweepOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	count, err := s.overdue.CountOverdue(ctx)
	if err != nil {
		log.Printf("❌ Overdue sweep failed: %v", err)
		return
	}

	metrics.OverdueBorrowings.Set(float64(count))
	if count > 0 {
		log.Printf("⚠️ %d borrowings are overdue", count)
	}
}
