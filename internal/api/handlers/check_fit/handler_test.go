package check_fit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers"
	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers/models"
	"github.com/m04kA/SMC-ContainerSlots/pkg/logger"
)

func newHandler() *Handler {
	svc := containers.NewService(nil, nil, allocator.DefaultLayout(), domain.DefaultPriceTiers,
		containers.DemoSettings{}, logger.Discard())
	return NewHandler(svc, logger.Discard())
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/fit-check", strings.NewReader(body)))
	return rec
}

func TestHandle_Placed(t *testing.T) {
	rec := post(newHandler(), `{"dimensions":{"width":1300,"height":1000,"length":1200},"occupiedCells":[1,2,5,6]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.FitCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Fits)
	assert.Equal(t, []int{3, 4, 7, 8}, resp.Cells)
	assert.Equal(t, 900.0, resp.TotalPrice)
}

func TestHandle_NegativeDimensions(t *testing.T) {
	rec := post(newHandler(), `{"dimensions":{"width":-1,"height":1000,"length":1200}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownField(t *testing.T) {
	rec := post(newHandler(), `{"size":{"width":1}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
