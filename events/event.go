package events

import "reflect"

// Event is the interface that all domain events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// EventHandler receives events as they are recorded.
type EventHandler func(event Event)

// GetRoundID returns the RoundID field of an event, or "" if it has none.
func GetRoundID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	field := val.FieldByName("RoundID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
