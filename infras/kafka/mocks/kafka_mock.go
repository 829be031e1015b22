package mocks

import (
	"context"
	"mahalo/infras/kafka"
	"sync"
)

// RecorderClient collects published messages for assertions in tests.
type RecorderClient struct {
	mu       sync.Mutex
	messages map[string][]kafka.Message
}

func NewRecorderClient() *RecorderClient {
	return &RecorderClient{
		messages: map[string][]kafka.Message{},
	}
}

// SendMessages implements kafka.Client.
func (r *RecorderClient) SendMessages(_ context.Context, topic string, messages ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages[topic] = append(r.messages[topic], messages...)

	return nil
}

// Sent returns the messages published to a topic.
func (r *RecorderClient) Sent(topic string) []kafka.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]kafka.Message(nil), r.messages[topic]...)
}
