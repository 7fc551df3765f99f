package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

func TestLogNotifier_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	err := n.Publish(context.Background(), domain.Notification{StudentID: 4, Subject: "Hi", Body: "text"})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("log line is not json: %v", err)
	}
	if event["student_id"] != float64(4) || event["subject"] != "Hi" || event["body"] != "text" {
		t.Fatalf("unexpected event: %v", event)
	}
}
