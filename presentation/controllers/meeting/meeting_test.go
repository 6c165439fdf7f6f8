package meeting

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	usecase "github.com/convenehq/convene/application/usecases/meeting"
	"github.com/convenehq/convene/infrastructure/logger"
	"github.com/convenehq/convene/infrastructure/persistence/repository"
	"github.com/convenehq/convene/infrastructure/security"
	"github.com/convenehq/convene/presentation/controllers/health"
	"github.com/convenehq/convene/presentation/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testToken = "valid-token-123"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	binding.Validator = &middlewares.DefaultValidator{}

	repo := repository.NewInMemoryMeetingRepository()
	uc := usecase.NewMeetingUseCase(
		repo,
		security.StaticTokenValidator(testToken),
		&logger.Logger{Log: zap.NewNop()},
	)
	controller := NewMeetingController(uc)

	router := gin.New()
	router.GET("/", health.Greeting)

	meetings := router.Group("/meetings")
	meetings.GET("/list", controller.ListMeetings)
	meetings.GET("/:meeting_id", controller.GetMeeting)
	meetings.POST("/create/:token", controller.CreateMeeting)

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateThenGetAndList(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodPost, "/meetings/create/"+testToken, `{"title": "Standup"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created MeetingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Standup", created.Title)

	rec = doRequest(router, http.MethodGet, "/meetings/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched MeetingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Standup", fetched.Title)

	rec = doRequest(router, http.MethodGet, "/meetings/list", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list MeetingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, created.ID, list.Meetings[0].ID)
}

func TestCreateWithWrongToken_NothingPersisted(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodPost, "/meetings/create/wrong-token", `{"title": "Covert"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "invalid_token", errResp.Error)

	rec = doRequest(router, http.MethodGet, "/meetings/list", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list MeetingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Count)
}

func TestCreateWithInvalidBody(t *testing.T) {
	router := newTestRouter()

	// missing required title
	rec := doRequest(router, http.MethodPost, "/meetings/create/"+testToken, `{"description": "no title"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "invalid_request", errResp.Error)

	// max_participants out of bounds
	rec = doRequest(router, http.MethodPost, "/meetings/create/"+testToken, `{"title": "Big", "max_participants": 500}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed JSON
	rec = doRequest(router, http.MethodPost, "/meetings/create/"+testToken, `{"title": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownMeeting(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/meetings/999999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "not_found", errResp.Error)
}

func TestListIsIdempotent(t *testing.T) {
	router := newTestRouter()

	doRequest(router, http.MethodPost, "/meetings/create/"+testToken, `{"title": "One"}`)
	doRequest(router, http.MethodPost, "/meetings/create/"+testToken, `{"title": "Two"}`)

	first := doRequest(router, http.MethodGet, "/meetings/list", "")
	second := doRequest(router, http.MethodGet, "/meetings/list", "")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestGreeting(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Hello World"}`, rec.Body.String())
}
