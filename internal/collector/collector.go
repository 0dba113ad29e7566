// Package collector turns messaging API insight responses into analytics hits.
package collector

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/and161185/line-insight/internal/errs"
	"github.com/and161185/line-insight/internal/lineapi"
	"github.com/and161185/line-insight/model"
	"go.uber.org/zap"
)

// Zone is the fixed UTC+9 offset the insight API reports in.
var Zone = time.FixedZone("UTC+9", 9*60*60)

const (
	dateLayout = "20060102"
	hourLayout = "2006010215"
)

// Collector queries the insight endpoints for one bot.
type Collector struct {
	logger     *zap.SugaredLogger
	windowDays int
	now        func() time.Time
}

// New creates a Collector covering windowDays trailing dates. A nil now uses time.Now.
func New(logger *zap.SugaredLogger, windowDays int, now func() time.Time) *Collector {
	if now == nil {
		now = time.Now
	}
	if windowDays < 1 {
		windowDays = 1
	}
	return &Collector{logger: logger, windowDays: windowDays, now: now}
}

// Dates returns today and the preceding days in UTC+9, newest first, formatted YYYYMMDD.
func Dates(now time.Time, days int) []string {
	local := now.In(Zone)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Zone)

	out := make([]string, 0, days)
	for d := 0; d < days; d++ {
		out = append(out, today.AddDate(0, 0, -d).Format(dateLayout))
	}
	return out
}

// HourLabel formats the current UTC+9 hour as YYYYMMDDHH.
func HourLabel(now time.Time) string {
	return now.In(Zone).Format(hourLayout)
}

type task struct {
	kind  string
	label string
	run   func(ctx context.Context) ([]model.Hit, error)
}

// Collect runs every insight query for the bot concurrently and returns all hits.
// A failed or not-ready query is logged and contributes nothing.
func (c *Collector) Collect(ctx context.Context, api lineapi.InsightAPI) []model.Hit {
	now := c.now()
	dates := Dates(now, c.windowDays)

	tasks := make([]task, 0, 2*len(dates)+1)
	for _, date := range dates {
		tasks = append(tasks, task{"messageDelivery", date, func(ctx context.Context) ([]model.Hit, error) {
			d, err := api.GetNumberOfMessageDeliveries(ctx, date)
			if err != nil {
				return nil, err
			}
			return DeliveryHits(date, d)
		}})
	}
	for _, date := range dates {
		tasks = append(tasks, task{"followers", date, func(ctx context.Context) ([]model.Hit, error) {
			f, err := api.GetNumberOfFollowers(ctx, date)
			if err != nil {
				return nil, err
			}
			return FollowerHits(date, f)
		}})
	}
	hour := HourLabel(now)
	tasks = append(tasks, task{"demographic", hour, func(ctx context.Context) ([]model.Hit, error) {
		d, err := api.GetFriendDemographics(ctx)
		if err != nil {
			return nil, err
		}
		return DemographicHits(hour, d)
	}})

	results := make([][]model.Hit, len(tasks))
	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = c.runTask(ctx, t)
		}()
	}
	wg.Wait()

	var hits []model.Hit
	for _, r := range results {
		hits = append(hits, r...)
	}
	return hits
}

func (c *Collector) runTask(ctx context.Context, t task) (hits []model.Hit) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorw("insight query panicked", "kind", t.kind, "label", t.label, "panic", r)
			hits = nil
		}
	}()

	hits, err := t.run(ctx)
	switch {
	case errors.Is(err, errs.ErrNotReady):
		c.logger.Infow("insight not ready", "kind", t.kind, "label", t.label)
		return nil
	case err != nil:
		c.logger.Errorw("insight query failed", "kind", t.kind, "label", t.label, "err", err)
		return nil
	}
	return hits
}

// DeliveryHits maps a ready message delivery response to hits labelled with date.
func DeliveryHits(date string, d *lineapi.MessageDeliveries) ([]model.Hit, error) {
	if d == nil || d.Status != lineapi.StatusReady {
		status := ""
		if d != nil {
			status = d.Status
		}
		return nil, notReady(status)
	}
	var hits []model.Hit
	for _, f := range deliveryFields {
		if v := f.value(d); v != nil {
			hits = append(hits, model.Hit{Action: "messageDelivery-" + f.name, Label: date, Value: *v})
		}
	}
	return hits, nil
}

// FollowerHits maps a ready followers response to hits labelled with date.
func FollowerHits(date string, f *lineapi.Followers) ([]model.Hit, error) {
	if f == nil || f.Status != lineapi.StatusReady {
		status := ""
		if f != nil {
			status = f.Status
		}
		return nil, notReady(status)
	}
	var hits []model.Hit
	for _, field := range followerFields {
		if v := field.value(f); v != nil {
			hits = append(hits, model.Hit{Action: "followers-" + field.name, Label: date, Value: *v})
		}
	}
	return hits, nil
}

// DemographicHits maps an available demographics response to hits labelled with hour.
// Values are percentages in tenths of a percent.
func DemographicHits(hour string, d *lineapi.Demographics) ([]model.Hit, error) {
	if d == nil || !d.Available {
		return nil, fmt.Errorf("%w: demographics unavailable", errs.ErrNotReady)
	}
	var hits []model.Hit
	for _, dim := range demographicDimensions {
		for _, t := range dim.tiles(d) {
			hits = append(hits, model.Hit{
				Action: "demographic-" + dim.name + "-" + t.key,
				Label:  hour,
				Value:  PermilleValue(t.percentage),
			})
		}
	}
	return hits, nil
}

func notReady(status string) error {
	return fmt.Errorf("%w: status %q", errs.ErrNotReady, status)
}
