package telemetry

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// EventType identifies a lifecycle event.
type EventType string

const (
	EventBotStarved      EventType = "bot_starved"
	EventBotBorn         EventType = "bot_born"
	EventSpawnerBorn     EventType = "spawner_born"
	EventSpawnerDepleted EventType = "spawner_depleted"
	EventDeposit         EventType = "deposit"
)

// Event is one line of the event log.
type Event struct {
	Tick   int32     `json:"tick"`
	Type   EventType `json:"type"`
	Entity uint32    `json:"entity"`
	Source uint32    `json:"source,omitempty"` // entity that caused the event, if any
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Amount float64   `json:"amount,omitempty"`
}

// EventLog writes lifecycle events as zstd-compressed JSON lines.
// A nil *EventLog discards everything.
type EventLog struct {
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	n   int
}

// NewEventLog creates events.jsonl.zst in dir.
// Returns nil if dir is empty (event logging disabled).
func NewEventLog(dir string) (*EventLog, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating event log directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "events.jsonl.zst"))
	if err != nil {
		return nil, fmt.Errorf("creating events.jsonl.zst: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	return &EventLog{
		f:   f,
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Record appends one event.
func (l *EventLog) Record(ev Event) error {
	if l == nil {
		return nil
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}
	if _, err := l.w.Write(b); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	if err := l.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	l.n++
	return nil
}

// Count returns the number of events recorded.
func (l *EventLog) Count() int {
	if l == nil {
		return 0
	}
	return l.n
}

// Close flushes buffered events and finishes the zstd frame.
func (l *EventLog) Close() error {
	if l == nil {
		return nil
	}
	var firstErr error
	if err := l.w.Flush(); err != nil {
		firstErr = fmt.Errorf("flushing events: %w", err)
	}
	if err := l.enc.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing zstd encoder: %w", err)
	}
	if err := l.f.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing events.jsonl.zst: %w", err)
	}
	return firstErr
}
