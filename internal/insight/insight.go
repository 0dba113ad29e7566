// Package insight runs one reporting pass over every bot in the roster.
package insight

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/and161185/line-insight/internal/client"
	"github.com/and161185/line-insight/internal/collector"
	"github.com/and161185/line-insight/internal/config"
	"github.com/and161185/line-insight/internal/ga"
	"github.com/and161185/line-insight/internal/lineapi"
	"github.com/and161185/line-insight/internal/roster"
	"github.com/and161185/line-insight/model"
	"go.uber.org/zap"
)

type rosterLoader interface {
	Load(ctx context.Context, url string) []model.Bot
}

type hitCollector interface {
	Collect(ctx context.Context, api lineapi.InsightAPI) []model.Hit
}

type hitForwarder interface {
	Send(ctx context.Context, bot model.Bot, hits []model.Hit) ga.Result
}

// APIFactory builds an insight API client scoped to one access token.
type APIFactory func(token string) (lineapi.InsightAPI, error)

// Report summarizes a run. It is informational only.
type Report struct {
	Bots         int
	Failed       int
	Hits         int
	Payloads     int
	Chunks       int
	FailedChunks int
}

// Runner processes bots one after another, isolating failures per bot.
type Runner struct {
	rosterURL string
	roster    rosterLoader
	newAPI    APIFactory
	collector hitCollector
	forwarder hitForwarder
	logger    *zap.SugaredLogger
}

// Option customizes a Runner built by NewRunner.
type Option func(*runnerOptions)

type runnerOptions struct {
	now func() time.Time
}

// WithClock makes the collector read the current time from now.
func WithClock(now func() time.Time) Option {
	return func(o *runnerOptions) { o.now = now }
}

// NewRunner wires the production components from cfg.
func NewRunner(cfg *config.InsightConfig, opts ...Option) *Runner {
	var o runnerOptions
	for _, opt := range opts {
		opt(&o)
	}

	hc := client.NewHTTPClient(cfg)
	return &Runner{
		rosterURL: cfg.BotsCSV,
		roster:    roster.NewLoader(hc, cfg.Logger),
		newAPI:    NewAPIFactory(hc, cfg.LineAPIBase),
		collector: collector.New(cfg.Logger, cfg.WindowDays, o.now),
		forwarder: ga.NewForwarder(hc, cfg.BatchEndpoint, cfg.BatchLimit, cfg.Logger),
		logger:    cfg.Logger,
	}
}

// NewAPIFactory returns a factory of messaging API clients sharing hc.
func NewAPIFactory(hc *http.Client, baseURL string) APIFactory {
	return func(token string) (lineapi.InsightAPI, error) {
		return lineapi.NewClient(hc, baseURL, token)
	}
}

// Run loads the roster once and reports on each bot in order.
func (r *Runner) Run(ctx context.Context) Report {
	bots := r.roster.Load(ctx, r.rosterURL)
	r.logger.Infow("roster loaded", "bots", len(bots))

	var rep Report
	for i, bot := range bots {
		if ctx.Err() != nil {
			r.logger.Warnw("run interrupted", "processed", i, "bots", len(bots), "err", ctx.Err())
			break
		}
		rep.Bots++

		hits, res, err := r.processBot(ctx, bot)
		if err != nil {
			rep.Failed++
			r.logger.Errorw("bot failed", "bot", bot.Name, "row", i+1, "err", err)
			continue
		}

		rep.Hits += hits
		rep.Payloads += res.Payloads
		rep.Chunks += res.Chunks
		rep.FailedChunks += res.FailedChunks
		r.logger.Infow("bot reported", "bot", bot.Name, "hits", hits,
			"chunks", res.Chunks, "failed_chunks", res.FailedChunks)
	}
	return rep
}

func (r *Runner) processBot(ctx context.Context, bot model.Bot) (hits int, res ga.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	api, err := r.newAPI(bot.AccessToken)
	if err != nil {
		return 0, ga.Result{}, fmt.Errorf("create api client: %w", err)
	}

	collected := r.collector.Collect(ctx, api)
	res = r.forwarder.Send(ctx, bot, collected)
	return len(collected), res, nil
}
