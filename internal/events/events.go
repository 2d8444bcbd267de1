// Package events publishes configuration-change notifications so other
// systems can react to WRED profile updates.
package events

import "context"

// TopicThresholdUpdated is the subject threshold changes are published on.
const TopicThresholdUpdated = "ecn.profile.threshold_updated"

// ThresholdUpdated is emitted after a threshold field merge-update succeeds.
type ThresholdUpdated struct {
	Profile string `json:"profile"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
