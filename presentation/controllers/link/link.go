package link

import (
	"errors"
	"net/http"

	usecase "github.com/convenehq/convene/application/usecases/link"
	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/presentation/middlewares"
	"github.com/gin-gonic/gin"
)

type LinkController interface {
	CreateLink(ctx *gin.Context)
	GetLink(ctx *gin.Context)
	ListLinks(ctx *gin.Context)
}

type linkController struct {
	usecase usecase.LinkUseCase
}

func NewLinkController(usecase usecase.LinkUseCase) LinkController {
	return &linkController{
		usecase: usecase,
	}
}

func (c *linkController) CreateLink(ctx *gin.Context) {
	var req CreateLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: middlewares.TranslateBindingError(err),
		})
		return
	}

	meetingID := ctx.Param("meeting_id")
	token := ctx.Param("token")

	link, err := c.usecase.Create(ctx.Request.Context(), token, meetingID, usecase.CreateInput{
		URL:   req.URL,
		Label: req.Label,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCreationToken):
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "invalid_token",
				Message: "creation token is missing or invalid",
			})
		case errors.Is(err, model.ErrMeetingNotFound):
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "meeting not found",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "internal_error",
				Message: "failed to create link",
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, toLinkResponse(link))
}

func (c *linkController) GetLink(ctx *gin.Context) {
	meetingID := ctx.Param("meeting_id")
	linkID := ctx.Param("link_id")

	link, err := c.usecase.GetByID(ctx.Request.Context(), meetingID, linkID)
	if err != nil {
		if errors.Is(err, model.ErrLinkNotFound) || errors.Is(err, model.ErrMeetingNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "link not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to get link",
		})
		return
	}

	ctx.JSON(http.StatusOK, toLinkResponse(link))
}

func (c *linkController) ListLinks(ctx *gin.Context) {
	meetingID := ctx.Param("meeting_id")

	links, err := c.usecase.List(ctx.Request.Context(), meetingID)
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
			Message: "failed to list links",
		})
		return
	}

	responses := make([]LinkResponse, len(links))
	for i, link := range links {
		responses[i] = toLinkResponse(link)
	}

	ctx.JSON(http.StatusOK, LinkListResponse{
		Links: responses,
		Count: len(responses),
	})
}

func toLinkResponse(link *model.Link) LinkResponse {
	return LinkResponse{
		ID:        link.ID,
		MeetingID: link.MeetingID,
		URL:       link.URL,
		Label:     link.Label,
		CreatedAt: link.CreatedAt,
		UpdatedAt: link.UpdatedAt,
	}
}
