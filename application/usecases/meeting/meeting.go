package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/domain/repository"
	"github.com/convenehq/convene/infrastructure/logger"
	"github.com/convenehq/convene/infrastructure/security"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInput carries the validated creation payload. Field validation
// happens at the routing boundary; the usecase only applies business rules.
type CreateInput struct {
	Title           string
	Description     string
	StartTime       *time.Time
	EndTime         *time.Time
	MaxParticipants int
}

type MeetingUseCase interface {
	Create(ctx context.Context, token string, input CreateInput) (*model.Meeting, error)
	GetByID(ctx context.Context, id string) (*model.Meeting, error)
	List(ctx context.Context) ([]*model.Meeting, error)
}

type meetingUseCase struct {
	repository    repository.MeetingRepository
	validateToken security.TokenValidator
	logger        *logger.Logger
}

func NewMeetingUseCase(
	repository repository.MeetingRepository,
	validateToken security.TokenValidator,
	logger *logger.Logger,
) MeetingUseCase {
	return &meetingUseCase{
		repository:    repository,
		validateToken: validateToken,
		logger:        logger,
	}
}

// Create is the only write path for meetings. The token is checked before
// anything touches the repository, so a rejected request leaves no record.
func (uc *meetingUseCase) Create(ctx context.Context, token string, input CreateInput) (*model.Meeting, error) {
	ok, err := uc.validateToken(ctx, token)
	if err != nil {
		uc.logger.Error("token validation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to validate creation token: %w", err)
	}
	if !ok {
		uc.logger.Warn("meeting creation rejected", zap.String("reason", "invalid token"))
		return nil, model.ErrInvalidCreationToken
	}

	maxParticipants := input.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = 10
	}

	now := time.Now().UTC()
	meeting := &model.Meeting{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Description:     input.Description,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		MaxParticipants: maxParticipants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.repository.Create(ctx, meeting); err != nil {
		uc.logger.Error("failed to create meeting", zap.Error(err))
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	uc.logger.Info("meeting created", zap.String("meetingID", meeting.ID))
	return meeting, nil
}

func (uc *meetingUseCase) GetByID(ctx context.Context, id string) (*model.Meeting, error) {
	if id == "" {
		return nil, model.ErrMeetingNotFound
	}

	meeting, err := uc.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

func (uc *meetingUseCase) List(ctx context.Context) ([]*model.Meeting, error) {
	meetings, err := uc.repository.GetAll(ctx)
	if err != nil {
		uc.logger.Error("failed to list meetings", zap.Error(err))
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	return meetings, nil
}
