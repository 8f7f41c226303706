package attr

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

func UserID(id uuid.UUID) slog.Attr { return slog.String("user_id", id.String()) }

func CaseID(id uuid.UUID) slog.Attr { return slog.String("case_id", id.String()) }

func GroupID(id uuid.UUID) slog.Attr { return slog.String("group_id", id.String()) }

func DiagnosisID(id uuid.UUID) slog.Attr { return slog.String("diagnosis_id", id.String()) }

// ExtractCorrelationID returns the request id chi stored in ctx, if any.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	return slog.String("correlation_id", middleware.GetReqID(ctx))
}
