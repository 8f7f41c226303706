package userservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	userdb "github.com/Black-And-White-Club/dxwager/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/dxwager/app/shared/operations"
	"github.com/Black-And-White-Club/dxwager/app/shared/results"
	"github.com/Black-And-White-Club/dxwager/app/shared/validation"
)

// hashCost is the bcrypt work factor for new passwords.
var hashCost = bcrypt.DefaultCost

// dummyHash is compared against when the user does not exist so that an
// unknown name costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dxwager-placeholder"), bcrypt.DefaultCost)

// UserService implements the Service interface.
type UserService struct {
	repo      userdb.Repository
	logger    *slog.Logger
	telemetry operations.Telemetry
	db        *bun.DB
}

// NewUserService creates a new UserService.
func NewUserService(
	repo userdb.Repository,
	logger *slog.Logger,
	m metrics.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		repo:   repo,
		logger: logger,
		telemetry: operations.Telemetry{
			Service: "UserService",
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
		db: db,
	}
}

var _ Service = (*UserService)(nil)

// CreateUser registers an account with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "CreateUser", userdb.NormalizeName(req.Name),
		func(ctx context.Context) (results.OperationResult[*User, error], error) {
			if err := validation.Struct(req); err != nil {
				return results.FailureResult[*User, error](err), nil
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), hashCost)
			if err != nil {
				return results.OperationResult[*User, error]{}, err
			}

			user := &userdb.User{
				ID:           uuid.New(),
				Name:         userdb.NormalizeName(req.Name),
				PasswordHash: string(hash),
			}
			if err := s.repo.CreateUser(ctx, operations.Handle(s.db), user); err != nil {
				return results.OperationResult[*User, error]{}, err
			}
			return results.SuccessResult[*User, error](toUser(user)), nil
		}))
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "GetUser", id.String(),
		func(ctx context.Context) (results.OperationResult[*User, error], error) {
			user, err := s.repo.GetUserByID(ctx, operations.Handle(s.db), id)
			if err != nil {
				if errors.Is(err, userdb.ErrUserNotFound) {
					return results.FailureResult[*User, error](err), nil
				}
				return results.OperationResult[*User, error]{}, err
			}
			return results.SuccessResult[*User, error](toUser(user)), nil
		}))
}

// ListUsers returns every user ordered by name.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "ListUsers", "",
		func(ctx context.Context) (results.OperationResult[[]User, error], error) {
			rows, err := s.repo.ListUsers(ctx, operations.Handle(s.db))
			if err != nil {
				return results.OperationResult[[]User, error]{}, err
			}
			return results.SuccessResult[[]User, error](toUsers(rows)), nil
		}))
}

// Authenticate checks credentials and returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, name, password string) (*User, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "Authenticate", userdb.NormalizeName(name),
		func(ctx context.Context) (results.OperationResult[*User, error], error) {
			user, err := s.repo.GetUserByName(ctx, operations.Handle(s.db), name)
			if err != nil {
				if errors.Is(err, userdb.ErrUserNotFound) {
					_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
					return results.FailureResult[*User, error](ErrInvalidCredentials), nil
				}
				return results.OperationResult[*User, error]{}, err
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
				return results.FailureResult[*User, error](ErrInvalidCredentials), nil
			}
			return results.SuccessResult[*User, error](toUser(user)), nil
		}))
}

// CreateGroup creates an empty group.
func (s *UserService) CreateGroup(ctx context.Context, req CreateGroupRequest) (*Group, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "CreateGroup", req.Name,
		func(ctx context.Context) (results.OperationResult[*Group, error], error) {
			if err := validation.Struct(req); err != nil {
				return results.FailureResult[*Group, error](err), nil
			}
			group := &userdb.Group{ID: uuid.New(), Name: req.Name}
			if err := s.repo.CreateGroup(ctx, operations.Handle(s.db), group); err != nil {
				return results.OperationResult[*Group, error]{}, err
			}
			return results.SuccessResult[*Group, error](toGroup(group)), nil
		}))
}

// GetGroup retrieves a group by id.
func (s *UserService) GetGroup(ctx context.Context, id uuid.UUID) (*Group, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "GetGroup", id.String(),
		func(ctx context.Context) (results.OperationResult[*Group, error], error) {
			group, err := s.repo.GetGroupByID(ctx, operations.Handle(s.db), id)
			if err != nil {
				if errors.Is(err, userdb.ErrGroupNotFound) {
					return results.FailureResult[*Group, error](err), nil
				}
				return results.OperationResult[*Group, error]{}, err
			}
			return results.SuccessResult[*Group, error](toGroup(group)), nil
		}))
}

// ListGroups returns every group ordered by name.
func (s *UserService) ListGroups(ctx context.Context) ([]Group, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "ListGroups", "",
		func(ctx context.Context) (results.OperationResult[[]Group, error], error) {
			rows, err := s.repo.ListGroups(ctx, operations.Handle(s.db))
			if err != nil {
				return results.OperationResult[[]Group, error]{}, err
			}
			return results.SuccessResult[[]Group, error](toGroups(rows)), nil
		}))
}

// AddUserToGroup records a membership. Joining twice is a conflict.
func (s *UserService) AddUserToGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	_, err := operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "AddUserToGroup", groupID.String(),
		func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
			if userID == uuid.Nil || groupID == uuid.Nil {
				return results.FailureResult[struct{}, error](apperrors.NewValidationError("user and group are required")), nil
			}
			err := s.repo.AddMembership(ctx, operations.Handle(s.db), &userdb.Membership{UserID: userID, GroupID: groupID})
			if err != nil {
				return results.OperationResult[struct{}, error]{}, err
			}
			return results.SuccessResult[struct{}, error](struct{}{}), nil
		}))
	return err
}

// GroupsForUser lists the groups a user belongs to.
func (s *UserService) GroupsForUser(ctx context.Context, userID uuid.UUID) ([]Group, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "GroupsForUser", userID.String(),
		func(ctx context.Context) (results.OperationResult[[]Group, error], error) {
			rows, err := s.repo.GroupsForUser(ctx, operations.Handle(s.db), userID)
			if err != nil {
				return results.OperationResult[[]Group, error]{}, err
			}
			return results.SuccessResult[[]Group, error](toGroups(rows)), nil
		}))
}

// MembersOfGroup lists a group's members.
func (s *UserService) MembersOfGroup(ctx context.Context, groupID uuid.UUID) ([]User, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "MembersOfGroup", groupID.String(),
		func(ctx context.Context) (results.OperationResult[[]User, error], error) {
			rows, err := s.repo.MembersOfGroup(ctx, operations.Handle(s.db), groupID)
			if err != nil {
				return results.OperationResult[[]User, error]{}, err
			}
			return results.SuccessResult[[]User, error](toUsers(rows)), nil
		}))
}
