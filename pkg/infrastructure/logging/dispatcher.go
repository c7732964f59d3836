package logging

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"pos/pkg/domain/service"
)

// Dispatcher logs every domain event through logrus with structured
// fields. It never fails a dispatch.
type Dispatcher struct {
	logger *log.Logger
}

func NewDispatcher(logger *log.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

func (d *Dispatcher) Dispatch(event service.Event) error {
	d.logger.WithFields(log.Fields{
		"event":   event.Type(),
		"payload": fmt.Sprintf("%+v", event),
	}).Info("domain event")
	return nil
}
