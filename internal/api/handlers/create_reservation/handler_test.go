package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	createReservation "github.com/m04kA/SMC-ContainerSlots/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ContainerSlots/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*createReservation.Response)
	return resp, args.Error(1)
}

func serve(uc CreateReservationUseCase, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/containers/{containerId}/reservations", NewHandler(uc, logger.Discard()).Handle).
		Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/containers/CNT-202611-001/reservations", strings.NewReader(body))
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", &createReservation.Request{
		ContainerID: "CNT-202611-001",
		Mode:        domain.ModeCustom,
		Cargo:       &domain.Dimensions{Width: 1300, Height: 1000, Length: 1200},
	}).Return(&createReservation.Response{
		ContainerID:      "CNT-202611-001",
		Mode:             domain.ModeCustom,
		Cells:            []int{3, 4, 7, 8},
		TotalPrice:       900,
		AvailableCells:   12,
		InvoiceID:        "INV-CNT-202611-001-5f0c6a2e-8d3b-4f7a-9c1e-2b4d6f8a0c13",
		Barcode:          "MCCNT-202611-001200123",
		TrackingNumber:   "TRKAAAAAAAAA",
		PurchaseDate:     time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC),
		DepartureDate:    time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
		EstimatedArrival: time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC),
	}, nil)

	rec := serve(uc, `{"mode":"custom","dimensions":{"width":1300,"height":1000,"length":1200}}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []int{3, 4, 7, 8}, resp.Cells)
	assert.Equal(t, 900.0, resp.TotalPrice)
	assert.Equal(t, "TRKAAAAAAAAA", resp.Invoice.TrackingNumber)
	assert.Equal(t, "2026-11-01T10:00:00Z", resp.Invoice.PurchaseDate)
	assert.Equal(t, "2026-12-05", resp.Invoice.EstimatedArrival)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := serve(&mockUseCase{}, `{"mode":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestHandle_ErrorMapping проверяет соответствие ошибок use case HTTP статусам.
func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{createReservation.ErrInvalidInput, http.StatusBadRequest},
		{createReservation.ErrInvalidCell, http.StatusBadRequest},
		{createReservation.ErrContainerNotFound, http.StatusNotFound},
		{createReservation.ErrContainerDeparted, http.StatusConflict},
		{createReservation.ErrCellOccupied, http.StatusConflict},
		{createReservation.ErrNoPlacement, http.StatusConflict},
		{createReservation.ErrCargoDoesNotFit, http.StatusUnprocessableEntity},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything).Return(nil, fmt.Errorf("%w: details", tc.err))

			rec := serve(uc, `{"mode":"palletized","cells":[3]}`)

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
