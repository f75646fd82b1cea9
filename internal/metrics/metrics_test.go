// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveBatch(t *testing.T) {
	before := testutil.ToFloat64(BatchesProcessed.WithLabelValues("ok"))

	ObserveBatch("ok", 50*time.Millisecond)

	after := testutil.ToFloat64(BatchesProcessed.WithLabelValues("ok"))
	if after != before+1 {
		t.Errorf("ok batches = %f, want %f", after, before+1)
	}
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(TopicsValidated.WithLabelValues("rejected"))
	TopicsValidated.WithLabelValues("rejected").Inc()
	if got := testutil.ToFloat64(TopicsValidated.WithLabelValues("rejected")); got != before+1 {
		t.Errorf("rejected topics = %f, want %f", got, before+1)
	}

	before = testutil.ToFloat64(SignificanceTests.WithLabelValues("skipped"))
	SignificanceTests.WithLabelValues("skipped").Inc()
	if got := testutil.ToFloat64(SignificanceTests.WithLabelValues("skipped")); got != before+1 {
		t.Errorf("skipped tests = %f, want %f", got, before+1)
	}
}
