package server

import (
	"encoding/json"
	"log"

	"devconnector/internal/observability"
)

// Feed event types pushed to websocket clients.
const (
	EventPostCreated         = "post_created"
	EventPostDeleted         = "post_deleted"
	EventPostReactionUpdated = "post_reaction_updated"
	EventCommentCreated      = "comment_created"
	EventCommentDeleted      = "comment_deleted"
)

type feedEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// publishBroadcastEvent fans a feed event out to every connected client, and
// through Redis to clients on other instances.
func (s *Server) publishBroadcastEvent(eventType string, payload any) {
	data, err := json.Marshal(feedEvent{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("failed to marshal feed event %s: %v", eventType, err)
		return
	}
	observability.FeedEventsTotal.WithLabelValues(eventType).Inc()

	if s.notifier != nil {
		if err := s.notifier.PublishBroadcast(s.shutdownContext(), string(data)); err != nil {
			log.Printf("failed to publish feed event %s: %v", eventType, err)
		}
		// Redis delivery loops back to this instance through the hub wiring.
		return
	}
	s.hub.BroadcastAll(string(data))
}

// publishUserEvent pushes a feed event to a single user's connections.
func (s *Server) publishUserEvent(userID uint, eventType string, payload any) {
	data, err := json.Marshal(feedEvent{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("failed to marshal feed event %s: %v", eventType, err)
		return
	}
	observability.FeedEventsTotal.WithLabelValues(eventType).Inc()

	if s.notifier != nil {
		if err := s.notifier.PublishUser(s.shutdownContext(), userID, string(data)); err != nil {
			log.Printf("failed to publish feed event %s: %v", eventType, err)
		}
		return
	}
	s.hub.Broadcast(userID, string(data))
}
