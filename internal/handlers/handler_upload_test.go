package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/dto"
	"github.com/af360bank/financeiro_app/internal/handlers"
	"github.com/af360bank/financeiro_app/internal/jobs"
	"github.com/af360bank/financeiro_app/internal/middleware"
	"github.com/af360bank/financeiro_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ImporterService ---
type MockImporterService struct {
	mock.Mock
}

func (m *MockImporterService) Process(ctx context.Context, filePath string, bank domain.BankVariant, jobID string) {
	m.Called(ctx, filePath, bank, jobID)
}

var _ portssvc.ImporterSvcFacade = (*MockImporterService)(nil)

// --- Test Suite ---
type UploadHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockImporter *MockImporterService
	tracker      *jobs.Tracker
	queue        *jobs.Queue
	jwtSecret    string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *UploadHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "financeiro-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *UploadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockImporter = new(MockImporterService)
	suite.tracker = jobs.NewTracker(time.Minute)
	suite.queue = jobs.NewQueue(4, slog.New(slog.NewTextHandler(io.Discard, nil)))

	cfg := &config.Config{UploadDir: suite.T().TempDir()}
	passThrough := func(c *gin.Context) { c.Next() }

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterUploadRoutes(v1, cfg, suite.mockImporter, suite.tracker, suite.queue, passThrough)
}

// multipartUpload builds a multipart body with the given filename and bank.
func (suite *UploadHandlerTestSuite) multipartUpload(filename, bank string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		suite.Require().NoError(err)
		_, err = part.Write([]byte("conteudo"))
		suite.Require().NoError(err)
	}
	if bank != "" {
		suite.Require().NoError(writer.WriteField("bank", bank))
	}
	suite.Require().NoError(writer.Close())
	return body, writer.FormDataContentType()
}

func (suite *UploadHandlerTestSuite) postUpload(filename, bank string) *httptest.ResponseRecorder {
	body, contentType := suite.multipartUpload(filename, bank)
	req, err := http.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *UploadHandlerTestSuite) TestUpload_Accepted() {
	w := suite.postUpload("extrato.xlsx", "santander")

	suite.Equal(http.StatusAccepted, w.Code)

	var resp dto.UploadAcceptedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.ProcessID)

	// The job is registered before the worker picks it up.
	progress, err := suite.tracker.Get(resp.ProcessID)
	suite.Require().NoError(err)
	suite.Equal(domain.JobStatusProcessing, progress.Status)
}

func (suite *UploadHandlerTestSuite) TestUpload_ProgressPolling() {
	w := suite.postUpload("extrato.xls", "itau")
	suite.Require().Equal(http.StatusAccepted, w.Code)

	var resp dto.UploadAcceptedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	req, err := http.NewRequest(http.MethodGet, "/api/v1/uploads/"+resp.ProcessID+"/progress", nil)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))

	pw := httptest.NewRecorder()
	suite.router.ServeHTTP(pw, req)
	suite.Equal(http.StatusOK, pw.Code)

	var progress dto.ProgressResponse
	suite.Require().NoError(json.Unmarshal(pw.Body.Bytes(), &progress))
	suite.Equal(string(domain.JobStatusProcessing), progress.Status)
}

func (suite *UploadHandlerTestSuite) TestUpload_UnknownBankRejected() {
	w := suite.postUpload("extrato.xlsx", "bradesco")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UploadHandlerTestSuite) TestUpload_UnsupportedExtensionRejected() {
	w := suite.postUpload("extrato.csv", "santander")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UploadHandlerTestSuite) TestUpload_MissingFileRejected() {
	w := suite.postUpload("", "santander")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UploadHandlerTestSuite) TestUpload_RequiresAuth() {
	body, contentType := suite.multipartUpload("extrato.xlsx", "santander")
	req, err := http.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *UploadHandlerTestSuite) TestProgress_UnknownProcessNotFound() {
	req, err := http.NewRequest(http.MethodGet, "/api/v1/uploads/nao-existe/progress", nil)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestUploadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}
