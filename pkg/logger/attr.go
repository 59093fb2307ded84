package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Kind records the submission kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// RecordID records a stored record identifier under the key "record_id".
func RecordID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("record_id", id)
}

// MessageID records an outbound message identifier under the key "message_id".
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}

// Recipient records which party a notification addresses under the key "recipient".
func Recipient(role string) slog.Attr {
	return slog.String("recipient", role)
}

// RemoteIP records the client address under the key "remote_ip".
func RemoteIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("remote_ip", ip)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Driver records a backend driver name under the key "driver".
func Driver(name string) slog.Attr {
	return slog.String("driver", name)
}
