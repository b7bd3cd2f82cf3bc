package services

import (
	"github.com/yigit/memberhub/internal/pkg/websocket"
)

type reviewFeed struct {
	hub *websocket.Hub
}

// NewReviewFeed publishes review notices to moderators connected to the hub
func NewReviewFeed(hub *websocket.Hub) ReviewNotifier {
	return &reviewFeed{hub: hub}
}

func (f *reviewFeed) NotifyReview(item ReviewItem) {
	f.hub.Publish(&websocket.Message{
		Type:      "review",
		Resource:  item.Resource,
		ID:        item.ID,
		Title:     item.Title,
		By:        item.By,
		Timestamp: item.Timestamp,
	})
}
