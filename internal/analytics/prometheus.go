package analytics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// PrometheusRecorder exports actions as sharelink_actions_total.
type PrometheusRecorder struct {
	actions *prometheus.CounterVec
}

// NewPrometheusRecorder registers its collector on reg.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sharelink",
		Name:      "actions_total",
		Help:      "Share and contact actions recorded by the analytics hook",
	}, []string{"action", "category", "label"})

	if err := reg.Register(actions); err != nil {
		return nil, err
	}
	return &PrometheusRecorder{actions: actions}, nil
}

func (r *PrometheusRecorder) Record(_ context.Context, ev domain.AnalyticsEvent) {
	r.actions.WithLabelValues(ev.Action, ev.Category, ev.Label).Inc()
}
