package meeting

import (
	"errors"
	"net/http"

	usecase "github.com/convenehq/convene/application/usecases/meeting"
	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/presentation/middlewares"
	"github.com/gin-gonic/gin"
)

type MeetingController interface {
	CreateMeeting(ctx *gin.Context)
	GetMeeting(ctx *gin.Context)
	ListMeetings(ctx *gin.Context)
}

type meetingController struct {
	usecase usecase.MeetingUseCase
}

func NewMeetingController(usecase usecase.MeetingUseCase) MeetingController {
	return &meetingController{
		usecase: usecase,
	}
}

func (c *meetingController) CreateMeeting(ctx *gin.Context) {
	var req CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: middlewares.TranslateBindingError(err),
		})
		return
	}

	token := ctx.Param("token")

	meeting, err := c.usecase.Create(ctx.Request.Context(), token, usecase.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidCreationToken) {
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "invalid_token",
				Message: "creation token is missing or invalid",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to create meeting",
		})
		return
	}

	ctx.JSON(http.StatusCreated, toMeetingResponse(meeting))
}

func (c *meetingController) GetMeeting(ctx *gin.Context) {
	meetingID := ctx.Param("meeting_id")

	meeting, err := c.usecase.GetByID(ctx.Request.Context(), meetingID)
	if err != nil {
		if errors.Is(err, model.ErrMeetingNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "meeting not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to get meeting",
		})
		return
	}

	ctx.JSON(http.StatusOK, toMeetingResponse(meeting))
}

func (c *meetingController) ListMeetings(ctx *gin.Context) {
	meetings, err := c.usecase.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to list meetings",
		})
		return
	}

	responses := make([]MeetingResponse, len(meetings))
	for i, meeting := range meetings {
		responses[i] = toMeetingResponse(meeting)
	}

	ctx.JSON(http.StatusOK, MeetingListResponse{
		Meetings: responses,
		Count:    len(responses),
	})
}

func toMeetingResponse(meeting *model.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:              meeting.ID,
		Title:           meeting.Title,
		Description:     meeting.Description,
		StartTime:       meeting.StartTime,
		EndTime:         meeting.EndTime,
		MaxParticipants: meeting.MaxParticipants,
		CreatedAt:       meeting.CreatedAt,
		UpdatedAt:       meeting.UpdatedAt,
	}
}
