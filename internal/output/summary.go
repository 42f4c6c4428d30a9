package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/wesleyorama2/randomuser/internal/metrics"
)

// FormatSummary renders a latency summary from the bench command.
func FormatSummary(s metrics.Summary, noColor bool) string {
	scheme := SchemeFor(noColor)
	var buf strings.Builder

	icon := SuccessIcon(noColor)
	if s.Successes < s.Requests {
		icon = ErrorIcon(noColor)
	}
	buf.WriteString(fmt.Sprintf("%s %d requests, %d ok, %.1f%% failed in %s\n",
		icon, s.Requests, s.Successes, s.ErrorRate()*100, s.Elapsed.Round(time.Millisecond)))

	if s.Requests > 0 {
		buf.WriteString(scheme.Label.Sprint("  latency") + "\n")
		for _, row := range []struct {
			name  string
			value time.Duration
		}{
			{"min", s.Min},
			{"mean", s.Mean},
			{"p50", s.P50},
			{"p90", s.P90},
			{"p95", s.P95},
			{"p99", s.P99},
			{"max", s.Max},
		} {
			buf.WriteString(fmt.Sprintf("    %-5s %s\n", row.name, scheme.Value.Sprint(formatMillis(row.value))))
		}
	}

	for _, f := range s.Failures {
		buf.WriteString(fmt.Sprintf("  %s %d\n", scheme.Error.Sprintf("%s errors:", f.Category), f.Count))
	}

	return buf.String()
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
