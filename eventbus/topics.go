package eventbus

import "os"

// TopicModerationEvents carries every prompt/post lifecycle event.
const TopicModerationEvents = "prompt-hub.moderation.events"

// GetBrokers returns Kafka bootstrap servers from KAFKA_BOOTSTRAP_SERVERS.
// Empty means the bus is not configured; callers fall back to NopPublisher.
func GetBrokers() string {
	return os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
}
