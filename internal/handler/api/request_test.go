//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	handler      *api.RequestHandler
	actorID      uuid.UUID
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.handler = api.NewRequestHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	actor := middleware.RequireActor()
	s.router.POST("/requests", actor, s.handler.CreateRequest)
	s.router.GET("/requests", actor, s.handler.ListOwnRequests)
	s.router.GET("/requests/all", actor, s.handler.ListAllRequests)
	s.router.GET("/requests/:id", actor, s.handler.GetRequest)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func (s *RequestHandlerTestSuite) TestCreateRequest() {
	url := "/requests"
	reqBody := builder.NewRequestBuilder().BuildCreateRequestDTO()
	createdID := uuid.New()

	s.Run("success: returns 201 Created with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actorID, reqBody.Description).
			Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.actorID.String())

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(createdID, body.ID)
	})

	s.Run("error: 400 on missing description", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, s.actorID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when the requestor does not exist", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actorID, reqBody.Description).
			Return(uuid.Nil, errs.Mark(errs.New("user not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.actorID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *RequestHandlerTestSuite) TestGetRequest() {
	returnView := builder.NewRequestBuilder().BuildView()
	url := "/requests/" + returnView.ID.String()

	s.Run("success: returns 200 OK with answering items", func() {
		returnView.Items = []*queries.RequestAnswerView{
			{ID: uuid.New(), Name: "Cordless drill", OwnerID: uuid.New(), RequestID: &returnView.ID},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID, s.actorID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.actorID.String())

		var response resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Len(response.Items, 1)
	})

	s.Run("error: 404 for unknown request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID, s.actorID).
			Return(nil, errs.Mark(errs.New("request not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.actorID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *RequestHandlerTestSuite) TestListRequests() {
	s.Run("success: own requests come back newest first", func() {
		views := []*queries.RequestView{
			builder.NewRequestBuilder().WithRequestorID(s.actorID).BuildView(),
		}
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), s.actorID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, s.actorID.String())

		var response []*resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: all requests excludes the actor's own", func() {
		views := []*queries.RequestView{builder.NewRequestBuilder().BuildView()}
		s.mockQueries.EXPECT().ListAll(gomock.Any(), s.actorID, 0, 10).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/all?from=0&size=10", nil, s.actorID.String())

		var response []*resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 404 when the actor does not exist", func() {
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), s.actorID).
			Return(nil, errs.Mark(errs.New("user not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, s.actorID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
