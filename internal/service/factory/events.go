// internal/service/factory/events.go

package factory

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"contentfactory/internal/domain/trend"
)

// EventPublisher pushes cycle events onto the NATS event bus. A nil
// connection turns every publish into a no-op so the factory degrades
// cleanly when NATS is not configured.
type EventPublisher struct {
	conn  *nats.Conn
	topic string
	log   *logrus.Logger
}

// NewEventPublisher creates a publisher rooted at topicPrefix.
func NewEventPublisher(conn *nats.Conn, topicPrefix string, log *logrus.Logger) *EventPublisher {
	return &EventPublisher{conn: conn, topic: topicPrefix, log: log}
}

// TrendDetected publishes the cycle's trend summary.
func (p *EventPublisher) TrendDetected(summary trend.Summary) {
	p.publish(fmt.Sprintf("%s.trend.detected", p.topic), summary)
}

// CycleCompleted publishes the cycle's analytics report.
func (p *EventPublisher) CycleCompleted(report Report) {
	p.publish(fmt.Sprintf("%s.cycle.completed", p.topic), report)
}

func (p *EventPublisher) publish(subject string, payload any) {
	if p.conn == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.log.WithError(err).WithField("subject", subject).Warn("failed to encode event")
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.log.WithError(err).WithField("subject", subject).Warn("failed to publish event")
	}
}
