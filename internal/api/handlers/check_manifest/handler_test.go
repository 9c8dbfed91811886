package check_manifest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	checkManifest "github.com/m04kA/SMC-ContainerSlots/internal/usecase/check_manifest"
	"github.com/m04kA/SMC-ContainerSlots/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkManifest.Request) (*checkManifest.Response, error) {
	data, _ := io.ReadAll(req.File)
	args := m.Called(req.ContainerID, string(data))
	resp, _ := args.Get(0).(*checkManifest.Response)
	return resp, args.Error(1)
}

func multipartRequest(t *testing.T, field, content string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, "manifest.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/containers/CNT-1/manifest", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(uc CheckManifestUseCase, req *http.Request) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/containers/{containerId}/manifest", NewHandler(uc, logger.Discard()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_PassesFile(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", "CNT-1", "xlsx-bytes").Return(&checkManifest.Response{
		ContainerID: "CNT-1",
		Lines: []checkManifest.LineResult{
			{Line: 2, Reference: "PAL-001", Outcome: "placed", RequiredSlots: 1, Cells: []int{3}, Price: 200},
		},
		Placed:     1,
		Cells:      []int{3},
		TotalPrice: 200,
	}, nil)

	rec := serve(uc, multipartRequest(t, "file", "xlsx-bytes"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reference":"PAL-001"`)
	uc.AssertExpectations(t)
}

func TestHandle_FileTooLarge(t *testing.T) {
	uc := &mockUseCase{}
	content := strings.Repeat("x", domain.MaxManifestSizeBytes+1024)

	rec := serve(uc, multipartRequest(t, "file", content))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), msgFileTooLarge)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_MissingFile(t *testing.T) {
	rec := serve(&mockUseCase{}, multipartRequest(t, "attachment", "xlsx-bytes"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	plain := httptest.NewRequest(http.MethodPost, "/api/v1/containers/CNT-1/manifest", strings.NewReader("{}"))
	rec = serve(&mockUseCase{}, plain)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidManifest(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: manifest: required column is missing: width", checkManifest.ErrInvalidManifest))

	rec := serve(uc, multipartRequest(t, "file", "xlsx-bytes"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"не удалось разобрать манифест: manifest: required column is missing: width"}`, rec.Body.String())
}

func TestHandle_ContainerNotFound(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, checkManifest.ErrContainerNotFound)

	rec := serve(uc, multipartRequest(t, "file", "xlsx-bytes"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
