package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestAsksTotal_CountsByPath(t *testing.T) {
	before := testutil.ToFloat64(AsksTotal.WithLabelValues("greeting"))
	AsksTotal.WithLabelValues("greeting").Inc()

	if got := testutil.ToFloat64(AsksTotal.WithLabelValues("greeting")); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}

func TestSeries_AreRegistered(t *testing.T) {
	RegistrationsTotal.WithLabelValues("created")
	LoginsTotal.WithLabelValues("success")
	AsksTotal.WithLabelValues("completion")

	for _, name := range []string{
		"flex_asks_total",
		"flex_completion_errors_total",
		"flex_completion_duration_seconds",
		"flex_registrations_total",
		"flex_logins_total",
	} {
		if n, err := testutil.GatherAndCount(prometheus.DefaultGatherer, name); err != nil || n == 0 {
			t.Errorf("%s: count=%d err=%v", name, n, err)
		}
	}
}
