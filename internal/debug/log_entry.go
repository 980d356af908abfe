package debug

import (
	"fmt"
	"time"
)

// LogLevel represents the severity level of a log entry
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelNone:
		return "NONE"
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelInfo:
		return "INFO"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Component represents the subsystem that generated the log entry
type Component string

const (
	ComponentBank   Component = "Bank"
	ComponentVoice  Component = "Voice"
	ComponentOPL    Component = "OPL"
	ComponentTrack  Component = "Track"
	ComponentPlayer Component = "Player"
	ComponentSystem Component = "System"
)

// IntField returns a pointer to v, for populating one of Fields' optional
// int members. A voice index, channel id, MIDI key, or priority can all
// legitimately be zero, so a plain int (with zero doubling as "absent")
// can't tell a real zero apart from "the caller didn't supply one" the
// way a generic map could just omit the key; a nil *int can.
func IntField(v int) *int { return &v }

// Fields holds the voice-allocator/player state worth attaching to a log
// entry: which voice slot, which channel, which MIDI key, the voice's
// allocator priority, and an instrument name, in place of the generic
// map[string]interface{} bag a caller would otherwise have to build and
// a reader would have to know the key names for. Every member is
// optional; a nil pointer or empty string means it doesn't apply to this
// entry.
type Fields struct {
	Voice      *int
	Channel    *int
	Key        *int
	Priority   *int
	Instrument string
}

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp time.Time
	Component Component
	Level     LogLevel
	Message   string
	Fields    Fields
}

// Format formats the log entry as a string, appending whichever
// structured Fields members are present after the message.
func (e *LogEntry) Format() string {
	timestamp := e.Timestamp.Format("15:04:05.000")
	out := fmt.Sprintf("[%s] [%s] %s: %s", timestamp, e.Component, e.Level, e.Message)

	if v := e.Fields.Voice; v != nil {
		out += fmt.Sprintf(" voice=%d", *v)
	}
	if v := e.Fields.Channel; v != nil {
		out += fmt.Sprintf(" channel=%d", *v)
	}
	if v := e.Fields.Key; v != nil {
		out += fmt.Sprintf(" key=%d", *v)
	}
	if v := e.Fields.Priority; v != nil {
		out += fmt.Sprintf(" priority=%d", *v)
	}
	if e.Fields.Instrument != "" {
		out += fmt.Sprintf(" instrument=%s", e.Fields.Instrument)
	}
	return out
}
