package cards

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/healthkernel/healthkernel-api/extract"
	"github.com/healthkernel/healthkernel-api/kernel"
	"github.com/healthkernel/healthkernel-api/schema"
	"github.com/healthkernel/healthkernel-api/utils"
)

// Build assembles one card envelope. Store failures are the only error
// path; data absence is encoded in the envelope itself.
func (b *Builder) Build(req Request) (*schema.CardEnvelope, error) {
	granularity, ok := GranularityForCardType(req.CardType)
	if !ok {
		return nil, ErrUnknownCardType
	}
	loc := req.Loc
	if loc == nil {
		loc = time.UTC
	}
	today := civilDay(req.Now, loc)
	periodDays := len(dayKeys(req.Start, req.End))

	useIntraday := ""
	if !today.Before(req.Start) && !today.After(req.End) {
		useIntraday = dayKey(today)
	}

	rows, err := b.health.FetchDailyRows(dayKey(req.Start), dayKey(req.End.AddDate(0, 0, 1)), req.DeviceID, useIntraday)
	if err != nil {
		return nil, err
	}

	priorWindow := kernel.BaselineWindowDays(granularity)
	priorRows, err := b.health.FetchDailyRows(dayKey(req.Start.AddDate(0, 0, -priorWindow)), dayKey(req.Start), req.DeviceID, "")
	if err != nil {
		return nil, err
	}

	historyRows, trackingStart, trackingKnown, err := b.fetchHistory(req.DeviceID, today, loc)
	if err != nil {
		return nil, err
	}

	series := extract.Series(rows)
	priorSeries := extract.Series(priorRows)
	historySeries := extract.Series(historyRows)

	envelope := &schema.CardEnvelope{
		ID:            uuid.New().String(),
		SchemaVersion: envelopeSchemaVersion,
		CardType:      req.CardType,
		Granularity:   granularity,
		TimeRange: schema.TimeRange{
			Start:    req.Start,
			End:      req.End.AddDate(0, 0, 1),
			Timezone: loc.String(),
		},
		GeneratedAt: req.Now.UTC(),
		Evidence:    buildEvidence(rows),
		Coverage:    kernel.ComputeCoverage(schema.ListSignals(), series, rows, periodDays),
		Drilldowns:  buildDrilldowns(),
	}

	var evaluations *evaluationSet
	if len(rows) > 0 {
		evaluations = b.evaluate(historySeries, historyRows, today, trackingStart, trackingKnown)
		envelope.PrioritySummary = kernel.AssemblePrioritySummary(
			evaluations.tracking, evaluations.calories, evaluations.steps.Result)
	}

	envelope.Signals = b.buildSignals(series, priorSeries, periodDays, evaluations)
	if evaluations != nil {
		envelope.Signals = append(envelope.Signals, trackingSignal(evaluations))
	}

	localizer := localize(utils.NewLocalizer("en"))
	envelope.Warnings = buildWarnings(localizer, req.Start, today, len(rows), envelope.Signals)
	envelope.Summary = buildSummary(localizer, envelope.PrioritySummary)

	log.WithField("prefix", "cards").WithField("card_type", req.CardType).
		WithField("rows", len(rows)).Debug("card envelope built")
	return envelope, nil
}

// fetchHistory pulls the long per-day history that feeds the tracking and
// step evaluators. The fetch reaches back to the tracking start so the
// step baseline anchors on the earliest recorded days, with a fallback
// bound when no tracking start exists yet.
func (b *Builder) fetchHistory(deviceID string, today time.Time, loc *time.Location) ([]schema.DailyRecord, time.Time, bool, error) {
	historyStart := today.AddDate(0, 0, -(historyFetchDays - 1))
	trackingStart := today
	trackingKnown := false

	startKey, found, err := b.tracking.TrackingStartDate(deviceID)
	if err != nil {
		return nil, time.Time{}, false, err
	}
	if found {
		if parsed, perr := utils.ParseDay(startKey, loc); perr == nil {
			trackingStart = parsed
			trackingKnown = true
			if parsed.Before(historyStart) {
				historyStart = parsed
			}
		}
	}

	rows, err := b.health.FetchDailyRows(dayKey(historyStart), dayKey(today.AddDate(0, 0, 1)), deviceID, dayKey(today))
	if err != nil {
		return nil, time.Time{}, false, err
	}
	return rows, trackingStart, trackingKnown, nil
}

// evaluationSet bundles the three evaluator outputs plus the coverage
// vector the tracking signal surfaces.
type evaluationSet struct {
	vector   schema.CoverageVector
	tracking schema.EvaluationResult
	calories schema.EvaluationResult
	steps    kernel.StepsEvaluation
}

func (b *Builder) evaluate(historySeries map[string][]extract.Observation, historyRows []schema.DailyRecord, today, trackingStart time.Time, trackingKnown bool) *evaluationSet {
	start := trackingStart
	if !trackingKnown {
		start = today
	}

	recentWindow := b.settings.TrackingRecentWindowDays
	vector, trackingResult := kernel.EvaluateTracking(kernel.TrackingInput{
		Today:            today,
		TrackingStart:    start,
		RecentWindowDays: recentWindow,
		ManualDays:       extract.ManualDates(historyRows),
	})

	burned := lastPerDay(historySeries[schema.SignalCaloriesBurn])
	eaten := lastPerDay(historySeries[schema.SignalCaloriesTotal])
	week := dayKeys(today.AddDate(0, 0, -6), today)
	priorWeek := dayKeys(today.AddDate(0, 0, -13), today.AddDate(0, 0, -7))
	caloriesResult := kernel.EvaluateCalories(kernel.CaloriesInput{
		Days:                week,
		PriorDays:           priorWeek,
		Burned:              burned,
		Eaten:               eaten,
		BurnModifier:        b.settings.BurnModifier,
		DeficitTargetPerDay: b.settings.DeficitTargetPerDay,
		MinObservedDays:     b.settings.CaloriesMinObserved,
	})

	_, stepHistory := perDayValues(historySeries[schema.SignalSteps], schema.AggSum)
	stepsEval := kernel.EvaluateSteps(kernel.StepsInput{
		History:        stepHistory,
		TrackingStatus: trackingResult.Status,
		CaloriesStatus: caloriesResult.Status,
		Floor:          b.settings.StepsFloor,
		LongTermTarget: b.settings.StepsLongTermTarget,
		RampFast:       b.settings.StepsRampFast,
		RampSlow:       b.settings.StepsRampSlow,
		BaselineWindow: b.settings.StepsBaselineWindow,
		TrailingWindow: b.settings.StepsTrailingWindow,
	})

	return &evaluationSet{
		vector:   vector,
		tracking: trackingResult,
		calories: caloriesResult,
		steps:    stepsEval,
	}
}

// buildSignals rolls up every configured signal over the period and
// attaches goal metadata where a goal exists. The step goal surfaces the
// dynamic ramp target instead of the static table value.
func (b *Builder) buildSignals(series, priorSeries map[string][]extract.Observation, periodDays int, evaluations *evaluationSet) []schema.Signal {
	signals := make([]schema.Signal, 0, len(schema.ListSignals())+1)
	for _, name := range schema.ListSignals() {
		cfg, _ := schema.GetSignalConfig(name)
		agg := kernel.ComputeAggregate(name, cfg.Agg, extract.Values(series[name]), extract.Values(priorSeries[name]))

		signal := schema.Signal{
			Name:        name,
			RecordType:  schema.HealthDailyCollection,
			Value:       agg.Value,
			Unit:        cfg.Unit,
			Aggregation: cfg.Agg,
			Baseline:    agg.Baseline,
			Delta:       agg.Delta,
		}

		if goal, ok := schema.GetGoal(name); ok {
			attachGoal(&signal, goal, cfg, periodDays, series[name], priorSeries[name], evaluations)
		}
		signals = append(signals, signal)
	}
	return signals
}

func attachGoal(signal *schema.Signal, goal schema.GoalDefinition, cfg schema.SignalConfig, periodDays int, current, prior []extract.Observation, evaluations *evaluationSet) {
	priority := goal.Priority
	signal.Priority = &priority

	if signal.Name == schema.SignalSteps && evaluations != nil {
		target := evaluations.steps.DynamicTarget
		progress := evaluations.steps.Result.ProgressPct
		signal.Target = &target
		signal.TargetProgressPct = &progress
		signal.Status = evaluations.steps.Result.Status
		signal.Trend = evaluations.steps.Result.Trend
		return
	}

	target := goal.TargetValue
	signal.Target = &target

	// Daily-windowed goals on summed signals compare against the per-day
	// average, not the whole-period sum.
	goalValue := signal.Value
	if goalValue != nil && goal.WindowDays == 1 && periodDays > 1 && cfg.Agg == schema.AggSum {
		perDay := *goalValue / float64(periodDays)
		goalValue = &perDay
	}

	signal.TargetProgressPct = kernel.GoalProgressPct(goalValue, goal.TargetValue, goal.TargetType)
	signal.Status = kernel.GoalStatus(signal.TargetProgressPct)
	signal.Trend = kernel.TrendLabel(extract.Values(current), extract.Values(prior), goal.TargetType)
}

// trackingSignal is the derived consistency signal carried on every card
// with data. Its value is the recent coverage ratio.
func trackingSignal(evaluations *evaluationSet) schema.Signal {
	goal, _ := schema.GetGoal(schema.SignalTrackingConsistency)
	priority := goal.Priority
	value := evaluations.vector.ManualCoverageRecent
	target := goal.TargetValue
	progress := evaluations.tracking.ProgressPct
	vector := evaluations.vector

	return schema.Signal{
		Name:              schema.SignalTrackingConsistency,
		RecordType:        "derived",
		Value:             &value,
		Aggregation:       "coverage",
		Target:            &target,
		TargetProgressPct: &progress,
		Priority:          &priority,
		Status:            evaluations.tracking.Status,
		Trend:             evaluations.tracking.Trend,
		CoverageVector:    &vector,
	}
}

func buildEvidence(rows []schema.DailyRecord) schema.Evidence {
	type window struct {
		count    int
		earliest time.Time
		latest   time.Time
	}
	bySource := map[string]*window{}
	for _, row := range rows {
		w, ok := bySource[row.SourceType]
		if !ok {
			w = &window{earliest: row.CollectedAt, latest: row.CollectedAt}
			bySource[row.SourceType] = w
		}
		w.count++
		if row.CollectedAt.Before(w.earliest) {
			w.earliest = row.CollectedAt
		}
		if row.CollectedAt.After(w.latest) {
			w.latest = row.CollectedAt
		}
	}

	names := make([]string, 0, len(bySource))
	for name := range bySource {
		names = append(names, name)
	}
	sort.Strings(names)

	evidence := schema.Evidence{Sources: []schema.EvidenceSource{}, TotalRows: len(rows)}
	for _, name := range names {
		w := bySource[name]
		earliest := w.earliest
		latest := w.latest
		evidence.Sources = append(evidence.Sources, schema.EvidenceSource{
			RecordType: name,
			RowCount:   w.count,
			Earliest:   &earliest,
			Latest:     &latest,
		})
	}
	return evidence
}

func buildDrilldowns() []schema.Drilldown {
	return []schema.Drilldown{
		{
			Label:  "Step history",
			Type:   "signal_history",
			Params: map[string]string{"signal": schema.SignalSteps, "days": "30"},
		},
		{
			Label:  "Calorie history",
			Type:   "signal_history",
			Params: map[string]string{"signal": schema.SignalCaloriesTotal, "days": "30"},
		},
		{
			Label:  "Latest sync",
			Type:   "data_latest",
			Params: map[string]string{},
		},
	}
}

// buildWarnings flags ranges that lie entirely in the future; a range
// that merely extends past today still carries observable days and gets
// no warning.
func buildWarnings(localizer localizerFunc, start, today time.Time, rowCount int, signals []schema.Signal) []string {
	warnings := []string{}
	if start.After(today) {
		warnings = append(warnings, localizer("warnings.future_range", "Requested range extends into the future.", nil))
	}
	if rowCount == 0 {
		warnings = append(warnings, localizer("warnings.no_data", "No data recorded in the requested range.", nil))
		return warnings
	}
	for _, signal := range signals {
		if signal.Value != nil && signal.Baseline == nil && signal.RecordType != "derived" {
			warnings = append(warnings, localizer("warnings.missing_baseline",
				fmt.Sprintf("No baseline available for %s.", signal.Name),
				map[string]interface{}{"Signal": signal.Name}))
		}
	}
	return warnings
}

var priorityLabels = map[int]string{1: "Tracking", 2: "Calories", 3: "Steps"}

func buildSummary(localizer localizerFunc, summary *schema.PrioritySummary) string {
	if summary == nil {
		return localizer("summary.no_data", "No data recorded for this period.", nil)
	}
	data := map[string]interface{}{}
	fallback := ""
	for _, result := range summary.Results() {
		label, ok := priorityLabels[result.Priority]
		if !ok {
			continue
		}
		data[label] = string(result.Status)
		if fallback != "" {
			fallback += ", "
		}
		fallback += fmt.Sprintf("%s %s", label, result.Status)
	}
	return localizer("summary.statuses", fallback+".", data)
}
