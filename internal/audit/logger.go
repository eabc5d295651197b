package audit

//go:generate mockgen -source=./logger.go -destination=../mocks/mock_audit_logger.go -package=mocks Logger

import (
	"context"
)

// Entry describes one successful mutation.
type Entry struct {
	EntityType string
	Action     string
	EntityIDs  []string
	Details    map[string]interface{}
}

// Logger defines the interface for auditing operations
type Logger interface {
	// Record persists entry together with the caller found in ctx
	Record(ctx context.Context, entry Entry) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// Record implements Logger.Record
func (l *NoOpLogger) Record(ctx context.Context, entry Entry) error {
	return nil
}

type contextKey string

const clientIPKey = contextKey("trainhub_client_ip")

// WithClientIP stores the caller's address for later audit entries.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIP returns the address stored by WithClientIP.
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
