package consumer

import (
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	messages    []kafka.Message
	next        int
	commitCalls int
	after       func() (kafka.Message, error)
}

func (r *stubReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if r.next < len(r.messages) {
		msg := r.messages[r.next]
		r.next++
		return msg, nil
	}
	return r.after()
}

func (r *stubReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.commitCalls += len(msgs)
	return nil
}

func (r *stubReader) Close() error { return nil }

func contextCanceled() (kafka.Message, error) {
	return kafka.Message{}, context.Canceled
}

type stubHandler struct {
	calls int
	last  Message
	err   error
}

func (h *stubHandler) Handle(ctx context.Context, msg Message) error {
	h.calls++
	h.last = msg
	return h.err
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func rosterMessage(payload string) kafka.Message {
	return kafka.Message{
		Topic:     "roster_events",
		Partition: 0,
		Offset:    10,
		Time:      time.Now().UTC(),
		Key:       []byte("Chess Club"),
		Value:     []byte(payload),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("roster.signed_up")},
		},
	}
}

func TestProcessorCommitsOnSuccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload := `{"event_id":"evt-1","activity":"Chess Club"}`
	reader := &stubReader{
		messages: []kafka.Message{rosterMessage(payload)},
		after:    contextCanceled,
	}
	handler := &stubHandler{}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 1, reader.commitCalls)
	require.Equal(t, "roster.signed_up", handler.last.EventType)
	require.Equal(t, "Chess Club", handler.last.Key)
	require.JSONEq(t, payload, string(handler.last.Payload))
}

func TestProcessorSkipsCommitOnHandlerError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &stubReader{
		messages: []kafka.Message{rosterMessage(`{"event_id":"evt-2"}`)},
		after:    contextCanceled,
	}
	handler := &stubHandler{err: errors.New("boom")}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 0, reader.commitCalls)
}

func TestProcessorCommitsMalformedMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// No event_type header: decode fails, message is committed, handler never runs.
	malformed := kafka.Message{
		Topic: "roster_events",
		Value: []byte(`{"event_id":"evt-3"}`),
	}
	reader := &stubReader{
		messages: []kafka.Message{malformed},
		after:    contextCanceled,
	}
	handler := &stubHandler{}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 0, handler.calls)
	require.Equal(t, 1, reader.commitCalls)
}
