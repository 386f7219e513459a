package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPlaced         Status = "Order Placed"
	StatusPreparing      Status = "Preparing"
	StatusReady          Status = "Order Ready"
	StatusPickedUp       Status = "Picked Up"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// StageCancelled is the timeline stage recorded when an order is cancelled.
const StageCancelled = "Order Cancelled"

// Stages is the canonical delivery sequence, in display order.
var Stages = []string{
	string(StatusPlaced),
	string(StatusReady),
	string(StatusOutForDelivery),
	string(StatusDelivered),
}

var knownStatuses = []Status{
	StatusPlaced, StatusPreparing, StatusReady, StatusPickedUp,
	StatusOutForDelivery, StatusDelivered, StatusCancelled,
}

// stageAliases maps raw statuses that are not stage names onto a stage.
var stageAliases = map[Status]string{
	StatusPreparing: string(StatusReady),
	StatusPickedUp:  string(StatusOutForDelivery),
}

var statusMessages = map[Status]string{
	StatusPlaced:         "Your order has been placed successfully",
	StatusPreparing:      "Your order is being prepared",
	StatusReady:          "Your order is packed and ready for pickup",
	StatusPickedUp:       "Our delivery partner has picked up your order",
	StatusOutForDelivery: "Your order is on its way",
	StatusDelivered:      "Your order has been delivered",
	StatusCancelled:      "Your order has been cancelled",
}

// ParseStatus accepts a known status regardless of case and surrounding space.
func ParseStatus(raw string) (Status, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range knownStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// Terminal statuses accept no further changes.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ResolveStatus maps a raw order status to its canonical stage and that
// stage's position in Stages. ok is false for statuses outside the
// sequence, such as Cancelled.
func ResolveStatus(raw string) (stage string, index int, ok bool) {
	stage = raw
	if alias, found := stageAliases[Status(raw)]; found {
		stage = alias
	}
	for i, s := range Stages {
		if s == stage {
			return stage, i, true
		}
	}
	return "", -1, false
}

// TimelineStageFor is the stage name written to the timeline when an order
// moves to status.
func TimelineStageFor(status Status) string {
	if status == StatusCancelled {
		return StageCancelled
	}
	return string(status)
}

func DefaultStatusMessage(status Status) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return "Order status updated"
}

type TimelineEvent struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	Stage       string
	Description *string
	IsCompleted bool
	CreatedAt   time.Time
}

type StageView struct {
	Name        string
	Description string
	Completed   bool
	Current     bool
	Timestamp   *time.Time
}

type Progress struct {
	Stages      []StageView
	Cancelled   bool
	CancelledAt *time.Time
	CancelNote  string
}

// stageRecord is what the timeline says about one stage name: the latest
// completed event wins over the latest event.
type stageRecord struct {
	event     *TimelineEvent
	completed bool
}

func indexTimeline(events []TimelineEvent) map[string]stageRecord {
	out := make(map[string]stageRecord, len(events))
	for i := range events {
		ev := &events[i]
		rec := out[ev.Stage]
		switch {
		case ev.IsCompleted:
			rec.event, rec.completed = ev, true
		case !rec.completed:
			rec.event = ev
		}
		out[ev.Stage] = rec
	}
	return out
}

func viewFor(name string, rec stageRecord) StageView {
	v := StageView{Name: name, Description: DefaultStatusMessage(Status(name))}
	if rec.event != nil {
		if rec.event.Description != nil && *rec.event.Description != "" {
			v.Description = *rec.event.Description
		}
		ts := rec.event.CreatedAt
		v.Timestamp = &ts
	}
	return v
}

// BuildProgress derives the stage list shown to customers from an order's
// status and its timeline. Stages are always in canonical order and
// "Order Placed" is always first and completed.
//
// With timeline events every stage is emitted and a stage is completed only
// when an event with exactly that name is completed. Without events the
// stages up to and including the current one are emitted, and a stage is
// completed when it precedes the current one.
func BuildProgress(status string, events []TimelineEvent) Progress {
	_, current, mapped := ResolveStatus(status)
	records := indexTimeline(events)

	var p Progress
	if rec, ok := records[StageCancelled]; ok || Status(status) == StatusCancelled {
		p.Cancelled = true
		if rec.event != nil {
			ts := rec.event.CreatedAt
			p.CancelledAt = &ts
			if rec.event.Description != nil {
				p.CancelNote = *rec.event.Description
			}
		}
	}

	if len(events) == 0 {
		last := current
		if !mapped {
			last = 0
		}
		for i := 0; i <= last; i++ {
			v := viewFor(Stages[i], stageRecord{})
			v.Completed = i == 0 || i < current
			v.Current = mapped && i == current
			p.Stages = append(p.Stages, v)
		}
		return p
	}

	for i, name := range Stages {
		rec := records[name]
		if i > 0 && !mapped && !rec.completed {
			continue
		}
		v := viewFor(name, rec)
		v.Completed = i == 0 || rec.completed
		v.Current = mapped && i == current
		p.Stages = append(p.Stages, v)
	}
	return p
}
