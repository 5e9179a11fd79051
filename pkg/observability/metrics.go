package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Draft outcomes.
const (
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
)

// Metrics holds the Prometheus collectors fed by the lifecycle hooks.
type Metrics struct {
	Drafts           *prometheus.CounterVec
	Publishes        *prometheus.CounterVec
	Unpublishes      prometheus.Counter
	PathReservations prometheus.Counter
	RejectedStatus   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Drafts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentpub_drafts_total",
				Help: "Draft requests answered by the content store",
			},
			[]string{"kind", "outcome"},
		),
		Publishes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentpub_publishes_total",
				Help: "Content items made live",
			},
			[]string{"kind"},
		),
		Unpublishes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contentpub_unpublishes_total",
			Help: "Content items withdrawn",
		}),
		PathReservations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contentpub_path_reservations_total",
			Help: "Base paths reserved",
		}),
		RejectedStatus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentpub_draft_rejections_by_status_total",
				Help: "Rejected drafts by HTTP status",
			},
			[]string{"status"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Drafts, m.Publishes, m.Unpublishes, m.PathReservations, m.RejectedStatus)
	}
	return m
}

// Hooks returns lifecycle hooks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDraftCreated: func(ctx context.Context, e *domain.ContentEvent) {
			m.Drafts.WithLabelValues(kindLabel(e.Kind), OutcomeCreated).Inc()
		},
		OnDraftRejected: func(ctx context.Context, e *domain.ContentEvent) {
			m.Drafts.WithLabelValues(kindLabel(e.Kind), OutcomeRejected).Inc()
			m.RejectedStatus.WithLabelValues(strconv.Itoa(e.StatusCode)).Inc()
		},
		OnPublished: func(ctx context.Context, e *domain.ContentEvent) {
			m.Publishes.WithLabelValues(kindLabel(e.Kind)).Inc()
		},
		OnUnpublished: func(ctx context.Context, e *domain.ContentEvent) {
			m.Unpublishes.Inc()
		},
		OnPathReserved: func(ctx context.Context, e *domain.ContentEvent) {
			m.PathReservations.Inc()
		},
	}
}

func kindLabel(k domain.Kind) string {
	if k == "" {
		return "unknown"
	}
	return string(k)
}
