package feedservice

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	feeddomain "github.com/Black-And-White-Club/dxwager/app/modules/feed/domain"
	feeddb "github.com/Black-And-White-Club/dxwager/app/modules/feed/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/clock"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/attr"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/dxwager/app/shared/operations"
	"github.com/Black-And-White-Club/dxwager/app/shared/results"
	"github.com/Black-And-White-Club/dxwager/config"
)

// FeedService implements the Service interface.
type FeedService struct {
	repo      feeddb.Repository
	clock     clock.Clock
	limits    config.FeedConfig
	logger    *slog.Logger
	telemetry operations.Telemetry
	db        *bun.DB
}

// NewFeedService creates a new FeedService. Zero limits fall back to 10 and 100.
func NewFeedService(
	repo feeddb.Repository,
	c clock.Clock,
	limits config.FeedConfig,
	logger *slog.Logger,
	m metrics.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *FeedService {
	if logger == nil {
		logger = slog.Default()
	}
	if c == nil {
		c = clock.RealClock{}
	}
	if limits.DefaultLimit <= 0 {
		limits.DefaultLimit = 10
	}
	if limits.MaxLimit <= 0 {
		limits.MaxLimit = 100
	}
	return &FeedService{
		repo:   repo,
		clock:  c,
		limits: limits,
		logger: logger,
		telemetry: operations.Telemetry{
			Service: "FeedService",
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
		db: db,
	}
}

var _ Service = (*FeedService)(nil)

func (s *FeedService) clampLimit(limit int) int {
	if limit <= 0 {
		limit = s.limits.DefaultLimit
	}
	if limit > s.limits.MaxLimit {
		limit = s.limits.MaxLimit
	}
	return limit
}

func (s *FeedService) Events(ctx context.Context, userID uuid.UUID, limit int) ([]feeddomain.Event, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "Events", userID.String(),
		func(ctx context.Context) (results.OperationResult[[]feeddomain.Event, error], error) {
			limit := s.clampLimit(limit)
			db := operations.Handle(s.db)

			interest, err := s.repo.InterestSet(ctx, db, userID)
			if err != nil {
				return results.OperationResult[[]feeddomain.Event, error]{}, err
			}

			events := make([]feeddomain.Event, 0, limit)
			if len(interest) > 0 {
				collected, err := s.interestEvents(ctx, db, interest, limit)
				if err != nil {
					return results.OperationResult[[]feeddomain.Event, error]{}, err
				}
				events = append(events, collected...)
			}

			groupCases, err := s.repo.GroupCaseEvents(ctx, db, userID, interest, limit)
			if err != nil {
				return results.OperationResult[[]feeddomain.Event, error]{}, err
			}
			for _, row := range groupCases {
				events = append(events, feeddomain.GroupCaseEvent{
					CaseID:    row.CaseID,
					Reference: row.Reference,
					User:      feeddomain.Actor{ID: row.UserID, Name: row.UserName},
					GroupID:   row.GroupID,
					GroupName: row.GroupName,
					Timestamp: row.Timestamp.UTC(),
				})
			}

			sort.SliceStable(events, func(i, j int) bool {
				return feeddomain.Newest(events[i], events[j])
			})
			if len(events) > limit {
				events = events[:limit]
			}

			s.logger.DebugContext(ctx, "Feed assembled",
				attr.UserID(userID),
				attr.Int("interest_cases", len(interest)),
				attr.Int("events", len(events)),
			)
			return results.SuccessResult[[]feeddomain.Event, error](events), nil
		}))
}

// interestEvents runs the four sources keyed by the interest set.
func (s *FeedService) interestEvents(ctx context.Context, db bun.IDB, interest []uuid.UUID, limit int) ([]feeddomain.Event, error) {
	var events []feeddomain.Event

	judgements, err := s.repo.JudgementEvents(ctx, db, interest, limit)
	if err != nil {
		return nil, err
	}
	for _, row := range judgements {
		events = append(events, feeddomain.JudgementEvent{
			CaseID:    row.CaseID,
			Reference: row.Reference,
			User:      feeddomain.Actor{ID: row.UserID, Name: row.UserName},
			Diagnosis: row.Diagnosis,
			Outcome:   row.Outcome,
			Timestamp: row.Timestamp.UTC(),
		})
	}

	wagers, err := s.repo.WagerEvents(ctx, db, interest, limit)
	if err != nil {
		return nil, err
	}
	for _, row := range wagers {
		events = append(events, feeddomain.WagerEvent{
			CaseID:     row.CaseID,
			Reference:  row.Reference,
			User:       feeddomain.Actor{ID: row.UserID, Name: row.UserName},
			Diagnosis:  row.Diagnosis,
			Confidence: row.Confidence,
			Timestamp:  row.Timestamp.UTC(),
		})
	}

	comments, err := s.repo.CommentEvents(ctx, db, interest, limit)
	if err != nil {
		return nil, err
	}
	for _, row := range comments {
		events = append(events, feeddomain.CommentEvent{
			CaseID:    row.CaseID,
			Reference: row.Reference,
			User:      feeddomain.Actor{ID: row.UserID, Name: row.UserName},
			Text:      row.Text,
			Timestamp: row.Timestamp.UTC(),
		})
	}

	deadlines, err := s.repo.DeadlineEvents(ctx, db, interest, s.clock.Now(), limit)
	if err != nil {
		return nil, err
	}
	for _, row := range deadlines {
		events = append(events, feeddomain.DeadlineEvent{
			CaseID:    row.CaseID,
			Reference: row.Reference,
			Timestamp: row.Timestamp.UTC(),
		})
	}

	return events, nil
}
