package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// Maps review IDs to the Kafka message that delivered them so offsets can be
// committed only once the review's record is safely stored.
var messageMap sync.Map

func TrackMessage(reviewID string, msg *kafka.Message) {
	messageMap.Store(reviewID, msg)
}

func GetMessageForReview(reviewID string) (*kafka.Message, bool) {
	msg, ok := messageMap.Load(reviewID)
	if !ok {
		return nil, false
	}
	messageMap.Delete(reviewID)
	return msg.(*kafka.Message), true
}
