package link

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	usecase "github.com/convenehq/convene/application/usecases/link"
	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/infrastructure/logger"
	"github.com/convenehq/convene/infrastructure/persistence/repository"
	"github.com/convenehq/convene/infrastructure/security"
	"github.com/convenehq/convene/presentation/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testToken     = "valid-token-123"
	testMeetingID = "9f2c1f6a-0000-4000-8000-000000000001"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	binding.Validator = &middlewares.DefaultValidator{}

	meetings := repository.NewInMemoryMeetingRepository()
	links := repository.NewInMemoryLinkRepository()

	require.NoError(t, meetings.Create(context.Background(), &model.Meeting{
		ID:              testMeetingID,
		Title:           "Standup",
		MaxParticipants: 10,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}))

	uc := usecase.NewLinkUseCase(
		links,
		meetings,
		security.StaticTokenValidator(testToken),
		&logger.Logger{Log: zap.NewNop()},
	)
	controller := NewLinkController(uc)

	router := gin.New()
	group := router.Group("/meetings/:meeting_id/links")
	group.GET("/list", controller.ListLinks)
	group.GET("/:link_id", controller.GetLink)
	group.POST("/create/:token", controller.CreateLink)

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateThenGetAndListLinks(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost,
		"/meetings/"+testMeetingID+"/links/create/"+testToken,
		`{"url": "https://meet.example.com/standup", "label": "join"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created LinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, testMeetingID, created.MeetingID)

	rec = doRequest(router, http.MethodGet,
		"/meetings/"+testMeetingID+"/links/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet,
		"/meetings/"+testMeetingID+"/links/list", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list LinkListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
}

func TestCreateLinkWithWrongToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost,
		"/meetings/"+testMeetingID+"/links/create/wrong-token",
		`{"url": "https://meet.example.com/standup"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodGet,
		"/meetings/"+testMeetingID+"/links/list", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list LinkListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Count)
}

func TestCreateLinkInvalidURL(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost,
		"/meetings/"+testMeetingID+"/links/create/"+testToken,
		`{"url": "not a url"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "invalid_request", errResp.Error)
}

func TestLinkRoutesUnknownMeeting(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost,
		"/meetings/unknown/links/create/"+testToken,
		`{"url": "https://meet.example.com/standup"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodGet, "/meetings/unknown/links/list", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUnknownLink(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet,
		"/meetings/"+testMeetingID+"/links/999999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
