package events

import (
	"context"

	"vetdesk/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// LogPublisher delivers UI events to the structured log stream. The
// presentation shell tails these; delivery can never fail the originating
// operation.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, event interfaces.UIEvent) {
	ev := log.Info().Str("event", event.Type)
	for k, v := range event.Fields {
		ev = ev.Str(k, v)
	}
	ev.Msg("[events] ui event")
}
