package link

import (
	"context"
	"testing"
	"time"

	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/infrastructure/logger"
	"github.com/convenehq/convene/infrastructure/persistence/repository"
	"github.com/convenehq/convene/infrastructure/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testToken = "valid-token-123"

func newFixture(t *testing.T) (LinkUseCase, *model.Meeting) {
	t.Helper()

	meetings := repository.NewInMemoryMeetingRepository()
	links := repository.NewInMemoryLinkRepository()

	meeting := &model.Meeting{
		ID:              "9f2c1f6a-0000-4000-8000-000000000001",
		Title:           "Standup",
		MaxParticipants: 10,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	require.NoError(t, meetings.Create(context.Background(), meeting))

	uc := NewLinkUseCase(
		links,
		meetings,
		security.StaticTokenValidator(testToken),
		&logger.Logger{Log: zap.NewNop()},
	)
	return uc, meeting
}

func TestCreateLink_ValidToken(t *testing.T) {
	uc, meeting := newFixture(t)

	link, err := uc.Create(context.Background(), testToken, meeting.ID, CreateInput{
		URL:   "https://meet.example.com/standup",
		Label: "join",
	})
	require.NoError(t, err)
	require.NotEmpty(t, link.ID)
	assert.Equal(t, meeting.ID, link.MeetingID)

	fetched, err := uc.GetByID(context.Background(), meeting.ID, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://meet.example.com/standup", fetched.URL)
}

func TestCreateLink_InvalidToken(t *testing.T) {
	uc, meeting := newFixture(t)

	_, err := uc.Create(context.Background(), "wrong-token", meeting.ID, CreateInput{
		URL: "https://meet.example.com/standup",
	})
	require.ErrorIs(t, err, model.ErrInvalidCreationToken)

	links, err := uc.List(context.Background(), meeting.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestCreateLink_UnknownMeeting(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Create(context.Background(), testToken, "unknown-meeting", CreateInput{
		URL: "https://meet.example.com/standup",
	})
	require.ErrorIs(t, err, model.ErrMeetingNotFound)
}

func TestGetLink_ScopedToMeeting(t *testing.T) {
	uc, meeting := newFixture(t)

	link, err := uc.Create(context.Background(), testToken, meeting.ID, CreateInput{
		URL: "https://meet.example.com/standup",
	})
	require.NoError(t, err)

	// correct scope
	_, err = uc.GetByID(context.Background(), meeting.ID, link.ID)
	require.NoError(t, err)

	// another meeting's scope must not expose the link
	_, err = uc.GetByID(context.Background(), "another-meeting", link.ID)
	require.ErrorIs(t, err, model.ErrLinkNotFound)
}

func TestGetLink_NotFound(t *testing.T) {
	uc, meeting := newFixture(t)

	_, err := uc.GetByID(context.Background(), meeting.ID, "missing-link")
	require.ErrorIs(t, err, model.ErrLinkNotFound)
}

func TestListLinks_UnknownMeeting(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.List(context.Background(), "unknown-meeting")
	require.ErrorIs(t, err, model.ErrMeetingNotFound)
}

func TestListLinks_OnlyOwnMeeting(t *testing.T) {
	uc, meeting := newFixture(t)

	_, err := uc.Create(context.Background(), testToken, meeting.ID, CreateInput{
		URL: "https://meet.example.com/a",
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), testToken, meeting.ID, CreateInput{
		URL: "https://meet.example.com/b",
	})
	require.NoError(t, err)

	links, err := uc.List(context.Background(), meeting.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)
	for _, link := range links {
		assert.Equal(t, meeting.ID, link.MeetingID)
	}
}
