// Package events provides the event dispatcher used by the domain
// services. Events are appended to the structured log; nothing downstream
// consumes them yet.
package events

import (
	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/service"

	"go.uber.org/zap"
)

type LogDispatcher struct {
	logger *zap.Logger
}

var _ service.EventDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(event service.Event) error {
	d.logger.Info("domain event",
		zap.String("type", event.Type()),
		zap.Any("event", event),
	)
	return nil
}
