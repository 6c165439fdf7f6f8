package link

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

type CreateInput struct {
	URL   string
	Label string
}

type LinkUseCase interface {
	Create(ctx context.Context, token, meetingID string, input CreateInput) (*model.Link, error)
	GetByID(ctx context.Context, meetingID, linkID string) (*model.Link, error)
	List(ctx context.Context, meetingID string) ([]*model.Link, error)
}

type linkUseCase struct {
	repository    repository.LinkRepository
	meetings      repository.MeetingRepository
	validateToken security.TokenValidator
	logger        *logger.Logger
}

func NewLinkUseCase(
	repository repository.LinkRepository,
	meetings repository.MeetingRepository,
	validateToken security.TokenValidator,
	logger *logger.Logger,
) LinkUseCase {
	return &linkUseCase{
		repository:    repository,
		meetings:      meetings,
		validateToken: validateToken,
		logger:        logger,
	}
}

// Create follows the same gate as meeting creation: token first, then the
// owning meeting must exist, then the write.
func (uc *linkUseCase) Create(ctx context.Context, token, meetingID string, input CreateInput) (*model.Link, error) {
	ok, err := uc.validateToken(ctx, token)
	if err != nil {
		uc.logger.Error("token validation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to validate creation token: %w", err)
	}
	if !ok {
		uc.logger.Warn("link creation rejected",
			zap.String("meetingID", meetingID),
			zap.String("reason", "invalid token"),
		)
		return nil, model.ErrInvalidCreationToken
	}

	if _, err := uc.meetings.GetByID(ctx, meetingID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	link := &model.Link{
		ID:        uuid.NewString(),
		MeetingID: meetingID,
		URL:       input.URL,
		Label:     input.Label,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repository.Create(ctx, link); err != nil {
		uc.logger.Error("failed to create link",
			zap.Error(err),
			zap.String("meetingID", meetingID),
		)
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	uc.logger.Info("link created",
		zap.String("linkID", link.ID),
		zap.String("meetingID", meetingID),
	)
	return link, nil
}

func (uc *linkUseCase) GetByID(ctx context.Context, meetingID, linkID string) (*model.Link, error) {
	if linkID == "" {
		return nil, model.ErrLinkNotFound
	}

	link, err := uc.repository.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}

	// a link fetched through another meeting's scope does not exist
	if link.MeetingID != meetingID {
		return nil, model.ErrLinkNotFound
	}

	return link, nil
}

func (uc *linkUseCase) List(ctx context.Context, meetingID string) ([]*model.Link, error) {
	if _, err := uc.meetings.GetByID(ctx, meetingID); err != nil {
		return nil, err
	}

	links, err := uc.repository.GetAllByMeetingID(ctx, meetingID)
	if err != nil {
		uc.logger.Error("failed to list links", zap.Error(err), zap.String("meetingID", meetingID))
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}
