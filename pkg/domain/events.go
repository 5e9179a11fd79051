package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDraftCreated  EventType = "draft_created"
	EventDraftRejected EventType = "draft_rejected"
	EventPublished     EventType = "published"
	EventUnpublished   EventType = "unpublished"
	EventPathReserved  EventType = "path_reserved"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ContentEvent describes a single remote call that completed.
type ContentEvent struct {
	EventBase
	ContentID     string `json:"content_id,omitempty"`
	BasePath      string `json:"base_path,omitempty"`
	PublishingApp string `json:"publishing_app,omitempty"`
	Kind          Kind   `json:"kind,omitempty"`
	StatusCode    int    `json:"status_code,omitempty"`
}

// NewContentEvent stamps an event with the current time.
func NewContentEvent(t EventType) *ContentEvent {
	return &ContentEvent{EventBase: EventBase{Timestamp: time.Now(), Type: t}}
}

// LifecycleHooks defines callbacks for engine observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnDraftCreated  func(context.Context, *ContentEvent)
	OnDraftRejected func(context.Context, *ContentEvent)
	OnPublished     func(context.Context, *ContentEvent)
	OnUnpublished   func(context.Context, *ContentEvent)
	OnPathReserved  func(context.Context, *ContentEvent)
}
