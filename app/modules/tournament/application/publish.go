package tournamentservice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/riverside-pgc/parklive/app/shared/attr"
)

// publishJSON marshals the payload and publishes it on the given topic,
// carrying the correlation ID forward in the message metadata.
func (s *TournamentService) publishJSON(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if id, ok := ctx.Value(attr.CorrelationIDKey).(string); ok && id != "" {
		msg.Metadata.Set("correlation_id", id)
	}
	return s.EventBus.Publish(ctx, topic, msg)
}
