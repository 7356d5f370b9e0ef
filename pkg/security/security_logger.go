package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-jobboard-backend/pkg/logger"
)

// EventType represents the type of audit event
type EventType string

const (
	EventRegister             EventType = "register"
	EventLoginSuccess         EventType = "login_success"
	EventLoginFailed          EventType = "login_failed"
	EventLogout               EventType = "logout"
	EventDuplicateApplication EventType = "duplicate_application"
	EventUploadRejected       EventType = "upload_rejected"
	EventUnauthorizedAccess   EventType = "unauthorized_access"
)

// SecurityEvent is one audit record. Subject values are masked or hashed
// before they reach the log.
type SecurityEvent struct {
	Event        EventType
	SubjectType  string // "email", "identity", "job"
	SubjectValue string
	Details      map[string]interface{}
}

// SecurityLogger writes audit events through zap, separate from the
// application log.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewSecurityLogger builds a production zap logger writing JSON to stdout.
func NewSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	zl, err := config.Build(zap.AddCaller())
	if err != nil {
		zl, _ = zap.NewProduction()
	}
	return &SecurityLogger{zapLogger: zl, serviceName: serviceName, environment: environment}
}

// NewNopSecurityLogger discards every event.
func NewNopSecurityLogger() *SecurityLogger {
	return &SecurityLogger{zapLogger: zap.NewNop(), serviceName: "test", environment: "test"}
}

func newSecurityLoggerWithCore(core zapcore.Core) *SecurityLogger {
	return &SecurityLogger{zapLogger: zap.New(core), serviceName: "test", environment: "test"}
}

func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if sl == nil {
		return
	}
	level := zapcore.InfoLevel
	switch event.Event {
	case EventLoginFailed, EventDuplicateApplication, EventUploadRejected:
		level = zapcore.WarnLevel
	case EventUnauthorizedAccess:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event.Event)),
	}
	if event.SubjectType != "" {
		fields = append(fields,
			zap.String("subject_type", event.SubjectType),
			zap.String("subject_value", maskValue(event.SubjectType, event.SubjectValue)),
		)
	}
	if id := logger.RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}
	sl.zapLogger.Log(level, string(event.Event), fields...)
}

func (sl *SecurityLogger) LogRegister(ctx context.Context, email, role string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRegister,
		SubjectType:  "email",
		SubjectValue: email,
		Details:      map[string]interface{}{"role": role},
	})
}

func (sl *SecurityLogger) LogLoginSuccess(ctx context.Context, identityID, role string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginSuccess,
		SubjectType:  "identity",
		SubjectValue: identityID,
		Details:      map[string]interface{}{"role": role},
	})
}

func (sl *SecurityLogger) LogLoginFailed(ctx context.Context, email, role, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginFailed,
		SubjectType:  "email",
		SubjectValue: email,
		Details:      map[string]interface{}{"role": role, "reason": reason},
	})
}

func (sl *SecurityLogger) LogLogout(ctx context.Context) {
	sl.Log(ctx, SecurityEvent{Event: EventLogout})
}

func (sl *SecurityLogger) LogDuplicateApplication(ctx context.Context, identityID string, jobID int64, raced bool) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventDuplicateApplication,
		SubjectType:  "identity",
		SubjectValue: identityID,
		Details:      map[string]interface{}{"job_id": jobID, "constraint": raced},
	})
}

func (sl *SecurityLogger) LogUploadRejected(ctx context.Context, identityID, reason string, size int64) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventUploadRejected,
		SubjectType:  "identity",
		SubjectValue: identityID,
		Details:      map[string]interface{}{"reason": reason, "size": size},
	})
}

func (sl *SecurityLogger) LogUnauthorizedAccess(ctx context.Context, identityID, resource string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventUnauthorizedAccess,
		SubjectType:  "identity",
		SubjectValue: identityID,
		Details:      map[string]interface{}{"resource": resource},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at < 0 {
		if len(email) < 3 {
			return "***"
		}
		return HashValue(email)
	}
	if at <= 1 {
		return "***" + email[at:]
	}
	return email[:1] + "***" + email[at:]
}

// HashValue creates a short SHA256 fingerprint of a value.
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func maskValue(subjectType, value string) string {
	switch subjectType {
	case "email":
		return MaskEmail(value)
	case "job":
		return value
	default:
		return HashValue(value)
	}
}
