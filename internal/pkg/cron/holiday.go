package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// HolidaySeeder pre-creates Holiday attendance rows for a calendar year.
type HolidaySeeder interface {
	SeedHolidays(ctx context.Context, year int) (int, error)
}

type HolidayJobs struct {
	seeder HolidaySeeder
}

func NewHolidayJobs(seeder HolidaySeeder) *HolidayJobs {
	return &HolidayJobs{seeder: seeder}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("seed_public_holidays", 24*time.Hour, j.SeedCurrentYearHolidays)
}

// SeedCurrentYearHolidays fills in Holiday rows for every employee for
// the current year. Existing rows are left untouched, so re-running is
// safe and new hires get their holiday rows on the next run.
func (j *HolidayJobs) SeedCurrentYearHolidays(ctx context.Context) error {
	year := time.Now().UTC().Year()

	slog.Info("Cron: Seeding public holidays", "year", year)

	created, err := j.seeder.SeedHolidays(ctx, year)
	if err != nil {
		return fmt.Errorf("failed to seed holidays for %d: %w", year, err)
	}

	slog.Info("Cron: Public holidays seeded", "year", year, "created", created)
	return nil
}
