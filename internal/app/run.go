package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/perdiem/internal/ctxlog"
	"github.com/vk/perdiem/internal/reimburse"
	"github.com/vk/perdiem/internal/trip"
	"github.com/vk/perdiem/internal/tripinput"
)

// ErrInvalidInput wraps every failure caused by the user's trips, as opposed
// to failures writing the report.
var ErrInvalidInput = errors.New("invalid input")

// Run executes one reimbursement batch: collect the trips, validate them,
// build the trip sequence, calculate and write the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	tuples, rates, err := a.collect(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	a.logger.Debug("Trip input collected.", "trips", len(tuples), "rate_overrides", len(rates))

	raws, err := a.validator.Validate(tuples)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	a.logger.Debug("Trip input validated.")

	trips := trip.Build(raws)
	for i, t := range trips {
		a.logger.Debug("Trip built.",
			"index", i,
			"source", t.Source,
			"tier", t.Tier.String(),
			"span", t.Span(),
			"adjacent_to_previous", t.AdjacentToPrevious,
			"adjacent_to_next", t.AdjacentToNext,
		)
	}

	calc := reimburse.New(reimburse.WithRates(rates))
	report := calc.Breakdown(trips)
	a.logger.Info("Reimbursement calculated.", "trips", len(trips), "total", report.Total)

	if err := writeReport(a.outW, a.config.Output, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// collect gathers tuples from the trips file first and the command-line
// tokens second, so that the batch order is file trips then argument trips.
func (a *App) collect(ctx context.Context) ([]tripinput.Tuple, reimburse.RateTable, error) {
	var tuples []tripinput.Tuple
	rates := reimburse.RateTable{}

	if a.config.TripsPath != "" {
		if a.loader == nil {
			return nil, nil, errors.New("no trips loader configured")
		}
		a.logger.Debug("Loading trips file.", "path", a.config.TripsPath)
		batch, err := a.loader.Load(ctx, a.config.TripsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load trips: %w", err)
		}
		tuples = append(tuples, batch.Tuples...)
		rates = rates.Merge(batch.Rates)
		if err := reimburse.DefaultRates().Merge(rates).Validate(); err != nil {
			return nil, nil, fmt.Errorf("trips file %s: %w", a.config.TripsPath, err)
		}
	}

	if len(a.config.Tokens) > 0 {
		argTuples, err := tripinput.Tuples(a.config.Tokens, a.config.TokenOffset)
		if err != nil {
			return nil, nil, err
		}
		tuples = append(tuples, argTuples...)
	}

	if len(tuples) == 0 {
		return nil, nil, errors.New("no trips found")
	}
	return tuples, rates, nil
}
