// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/eventscout/internal/config"
	"github.com/tomtom215/eventscout/internal/insight"
	"github.com/tomtom215/eventscout/internal/logging"
	"github.com/tomtom215/eventscout/internal/metrics"
	"github.com/tomtom215/eventscout/internal/models"
	"github.com/tomtom215/eventscout/internal/opportunity"
	"github.com/tomtom215/eventscout/internal/recommend"
	"github.com/tomtom215/eventscout/internal/significance"
	"github.com/tomtom215/eventscout/internal/topics"
)

// Pipeline runs scoring batches against a fixed configuration. It is safe
// for concurrent use; all per-batch state lives on the stack of Run.
type Pipeline struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// New validates the configuration and returns a ready pipeline.
func New(cfg *config.Config) (*Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("pipeline: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: invalid config: %w", err)
	}
	return &Pipeline{
		cfg:    cfg,
		logger: logging.With().Str("component", "pipeline").Logger(),
	}, nil
}

// Run executes one full scoring batch. The returned response is complete
// even when individual events were skipped; the only error conditions are a
// nil request and context cancellation mid-batch.
func (p *Pipeline) Run(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("pipeline: nil request")
	}

	start := time.Now()
	batchID := uuid.New()
	log := p.logger.With().Str("batch_id", batchID.String()).Logger()
	log.Info().
		Int("events", len(req.Events)).
		Int("candidate_topics", len(req.CandidateTopics)).
		Msg("starting scoring batch")

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	validated := topics.Validate(req.CandidateTopics, req.Events)
	metrics.TopicsValidated.WithLabelValues("accepted").Add(float64(len(validated)))
	metrics.TopicsValidated.WithLabelValues("rejected").Add(float64(len(req.CandidateTopics) - len(validated)))

	trends, sigByTopic := p.assessTrends(validated, req.PeriodCounts, log)

	override := weightsOverride(p.cfg, req.Weights)

	scored, err := p.scoreEvents(ctx, req, override, validated, sigByTopic, now, log)
	if err != nil {
		metrics.ObserveBatch("error", time.Since(start))
		return nil, err
	}

	results := make([]EventResult, 0, len(scored))
	recs := make([]recommend.Recommendation, 0, len(scored))
	skipped := 0
	for i, r := range scored {
		if r == nil {
			skipped++
			continue
		}
		results = append(results, *r)
		if rec, ok := eventRecommendation(&req.Events[i], r, p.cfg.Pipeline.MinOpportunityScore); ok {
			recs = append(recs, rec)
		}
	}
	recs = append(recs, trendRecommendations(validated, sigByTopic)...)

	recs = recommend.Rank(recs)
	if len(recs) > p.cfg.Pipeline.MaxRecommendations {
		recs = recs[:p.cfg.Pipeline.MaxRecommendations]
	}
	for i := range recs {
		metrics.RecommendationsProduced.WithLabelValues(string(recs[i].Type)).Inc()
	}

	elapsed := time.Since(start)
	metrics.ObserveBatch("ok", elapsed)
	log.Info().
		Int("scored", len(results)).
		Int("skipped", skipped).
		Int("recommendations", len(recs)).
		Dur("elapsed", elapsed).
		Msg("batch complete")

	return &Response{
		BatchID:         batchID,
		GeneratedAt:     now,
		Recommendations: recs,
		Topics:          validated,
		Trends:          trends,
		Events:          results,
		Metadata: Metadata{
			EventsIn:       len(req.Events),
			EventsScored:   len(results),
			EventsSkipped:  skipped,
			TopicsProposed: len(req.CandidateTopics),
			TopicsValid:    len(validated),
			DurationMS:     elapsed.Milliseconds(),
			Weights:        insight.Resolve(override),
		},
	}, nil
}

// assessTrends runs the period-change test for each validated topic that has
// period counts. Topics without counts, or whose sample is too small, stay
// unassessed. The returned map holds assessed results keyed by lowercased
// topic name for event association.
func (p *Pipeline) assessTrends(validated []models.ValidatedTopic, counts []TopicPeriodCounts, log zerolog.Logger) ([]TrendAssessment, map[string]*significance.Result) {
	byTopic := make(map[string]TopicPeriodCounts, len(counts))
	for _, c := range counts {
		byTopic[strings.ToLower(strings.TrimSpace(c.Topic))] = c
	}

	trends := make([]TrendAssessment, 0, len(validated))
	assessed := make(map[string]*significance.Result)
	for i := range validated {
		t := TrendAssessment{Topic: validated[i].Topic}
		key := strings.ToLower(strings.TrimSpace(validated[i].Topic))

		c, ok := byTopic[key]
		if !ok {
			metrics.SignificanceTests.WithLabelValues("skipped").Inc()
			trends = append(trends, t)
			continue
		}

		res, err := significance.TestPeriodChange(
			c.CurrentCount, c.PreviousCount, c.CurrentTotal, c.PreviousTotal,
			p.cfg.Pipeline.ConfidenceLevel,
		)
		if err != nil {
			log.Warn().Err(err).Str("topic", validated[i].Topic).Msg("trend test rejected period counts")
			metrics.SignificanceTests.WithLabelValues("skipped").Inc()
			trends = append(trends, t)
			continue
		}
		if res == nil {
			metrics.SignificanceTests.WithLabelValues("skipped").Inc()
			trends = append(trends, t)
			continue
		}

		t.Assessed = true
		t.Result = res
		assessed[key] = res
		metrics.SignificanceTests.WithLabelValues(string(res.Strength)).Inc()
		trends = append(trends, t)
	}
	return trends, assessed
}

// scoreEvents fans per-event scoring out over a bounded worker pool. The
// returned slice is indexed by input position; nil entries mark skipped
// events. Cancellation stops dispatch and returns the context error after
// in-flight workers drain.
func (p *Pipeline) scoreEvents(
	ctx context.Context,
	req *Request,
	override *insight.Weights,
	validated []models.ValidatedTopic,
	sigByTopic map[string]*significance.Result,
	now time.Time,
	log zerolog.Logger,
) ([]*EventResult, error) {
	n := len(req.Events)
	scored := make([]*EventResult, n)
	if n == 0 {
		return scored, nil
	}

	workers := p.cfg.Pipeline.Workers
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scored[i] = p.scoreOne(&req.Events[i], req, override, validated, sigByTopic, now, log)
			}
		}()
	}

dispatch:
	for i := 0; i < n; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: batch canceled: %w", err)
	}
	return scored, nil
}

// scoreOne runs opportunity and insight scoring for a single event. Events
// with no identifying fields are skipped with a warning rather than failing
// the batch.
func (p *Pipeline) scoreOne(
	event *models.Event,
	req *Request,
	override *insight.Weights,
	validated []models.ValidatedTopic,
	sigByTopic map[string]*significance.Result,
	now time.Time,
	log zerolog.Logger,
) *EventResult {
	if !event.HasIdentity() {
		metrics.EventsSkipped.Inc()
		log.Warn().Str("event_id", event.ID).Msg("skipping event without identifying fields")
		return nil
	}

	cohort := req.Cohort
	if len(cohort) == 0 {
		cohort = opportunity.BuildCohort(event, req.Events, now)
	}

	opp := opportunity.ScoreEvent(event, req.Profile, cohort, now)

	ins, err := insight.ScoreEvent(insight.Input{
		Event:             event,
		Opportunity:       &opp,
		Significance:      significanceFor(event, validated, sigByTopic),
		Profile:           req.Profile,
		GenericConfidence: req.GenericConfidence,
		Weights:           override,
		Now:               now,
	})
	if err != nil {
		metrics.EventsSkipped.Inc()
		log.Error().Err(err).Str("event_id", event.ID).Msg("insight scoring failed")
		return nil
	}

	metrics.EventsScored.Inc()
	return &EventResult{
		EventID:     event.ID,
		Title:       event.Title,
		Opportunity: &opp,
		Insight:     ins,
	}
}

// significanceFor ties an event to the first validated topic, in validation
// order, whose name the event literally mentions and whose trend was
// assessed. Events matching no assessed topic get no test, which the insight
// scorer treats as "no statistical backing" rather than zero.
func significanceFor(event *models.Event, validated []models.ValidatedTopic, sigByTopic map[string]*significance.Result) *significance.Result {
	if len(sigByTopic) == 0 {
		return nil
	}
	text := event.SearchText()
	for i := range validated {
		key := strings.ToLower(strings.TrimSpace(validated[i].Topic))
		res, ok := sigByTopic[key]
		if ok && strings.Contains(text, key) {
			return res
		}
	}
	return nil
}

// weightsOverride picks the factor-weight override for a batch: the request
// override wins, then any non-zero configured weights, then nil for the
// defaults.
func weightsOverride(cfg *config.Config, reqWeights *insight.Weights) *insight.Weights {
	if reqWeights != nil {
		return reqWeights
	}
	w := cfg.Weights
	if w.Relevance > 0 || w.Impact > 0 || w.Urgency > 0 || w.Confidence > 0 {
		return &insight.Weights{
			Relevance:  w.Relevance,
			Impact:     w.Impact,
			Urgency:    w.Urgency,
			Confidence: w.Confidence,
		}
	}
	return nil
}
