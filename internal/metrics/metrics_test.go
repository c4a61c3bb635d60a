package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheus_LoanCreated(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := NewPrometheus(reg)

	sink.LoanCreated()
	sink.LoanCreated()

	if got := testutil.ToFloat64(sink.loansCreated); got != 2 {
		t.Fatalf("loans_created_total = %v, want 2", got)
	}
}

func TestNoop(t *testing.T) {
	var s Sink = Noop{}
	s.LoanCreated() // must not panic
}
