package create_reservation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	containerRepo "github.com/m04kA/SMC-ContainerSlots/internal/infra/storage/container"
	"github.com/m04kA/SMC-ContainerSlots/pkg/logger"
)

type mockContainerRepo struct {
	mock.Mock
}

func (m *mockContainerRepo) GetByID(ctx context.Context, id string) (*domain.Container, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Container)
	return c, args.Error(1)
}

func (m *mockContainerRepo) AddOccupiedCells(ctx context.Context, id string, cells []int64) error {
	return m.Called(ctx, id, cells).Error(0)
}

// passthroughTx выполняет fn без реальной транзакции
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

// zeroRandom всегда возвращает 0, трекинг-номер TRKAAAAAAAAA
type zeroRandom struct{}

func (zeroRandom) Intn(int) int {
	return 0
}

type fixedID string

func (f fixedID) NewID() string {
	return string(f)
}

type noopMetrics struct{}

func (noopMetrics) ObserveAllocation(string, string, int) {}

var (
	purchaseTime = time.Date(2026, time.November, 1, 10, 0, 0, 123_000_000, time.UTC)
	departure    = time.Date(2026, time.November, 20, 0, 0, 0, 0, time.UTC)
)

func newContainer(occupied ...int64) *domain.Container {
	return &domain.Container{
		ID:            "CNT-202611-002",
		DepartureDate: departure,
		Route:         "Shanghai → Saint Petersburg",
		Rows:          domain.DefaultGridRows,
		Cols:          domain.DefaultGridCols,
		OccupiedCells: occupied,
	}
}

func newUseCase(repo ContainerRepository, tx TransactionManager) *UseCase {
	uc := NewUseCase(repo, tx, allocator.DefaultLayout(), domain.DefaultPriceTiers, noopMetrics{}, logger.Discard())
	uc.timeProvider = fixedTime{now: purchaseTime}
	uc.random = zeroRandom{}
	uc.ids = fixedID("5f0c6a2e-8d3b-4f7a-9c1e-2b4d6f8a0c13")
	return uc
}

// TestExecute_CustomCargoReservesBlock проверяет полный сценарий:
// подбор блока, запись занятости и сводку счёта.
func TestExecute_CustomCargoReservesBlock(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-002").Return(newContainer(1, 2, 5, 6), nil)
	repo.On("AddOccupiedCells", mock.Anything, "CNT-202611-002", []int64{3, 4, 7, 8}).Return(nil).Once()

	tx := &passthroughTx{}
	uc := newUseCase(repo, tx)

	resp, err := uc.Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-002",
		Mode:        domain.ModeCustom,
		Cargo:       &domain.Dimensions{Width: 1300, Height: 1000, Length: 1200},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []int{3, 4, 7, 8}, resp.Cells)
	assert.Equal(t, 900.0, resp.TotalPrice)
	assert.Equal(t, 12, resp.AvailableCells)

	assert.Equal(t, "INV-CNT-202611-002-5f0c6a2e-8d3b-4f7a-9c1e-2b4d6f8a0c13", resp.InvoiceID)
	assert.Equal(t, "MCCNT-202611-002200123", resp.Barcode)
	assert.Equal(t, "TRKAAAAAAAAA", resp.TrackingNumber)
	assert.Equal(t, purchaseTime, resp.PurchaseDate)
	assert.Equal(t, departure.AddDate(0, 0, 30), resp.EstimatedArrival)
	assert.Equal(t, "Shanghai → Saint Petersburg", resp.Route)
	repo.AssertExpectations(t)
}

func TestExecute_PalletCountUsesFreeCells(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-002").Return(newContainer(1, 2), nil)
	repo.On("AddOccupiedCells", mock.Anything, "CNT-202611-002", []int64{3, 4}).Return(nil).Once()

	resp, err := newUseCase(repo, &passthroughTx{}).Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-002",
		Mode:        domain.ModePalletized,
		PalletCount: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, resp.Cells)
	assert.Equal(t, 400.0, resp.TotalPrice)
}

func TestExecute_ExplicitCellsReserved(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-002").Return(newContainer(1), nil)
	repo.On("AddOccupiedCells", mock.Anything, "CNT-202611-002", []int64{8, 15, 20}).Return(nil).Once()

	resp, err := newUseCase(repo, &passthroughTx{}).Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-002",
		Mode:        domain.ModePalletized,
		Cells:       []int{8, 15, 20},
	})

	require.NoError(t, err)
	assert.Equal(t, 1300.0, resp.TotalPrice)
}

func TestExecute_ExplicitCellRejected(t *testing.T) {
	cases := []struct {
		name  string
		cells []int
		want  error
	}{
		{name: "occupied", cells: []int{3, 5}, want: ErrCellOccupied},
		{name: "out of grid", cells: []int{21}, want: ErrInvalidCell},
		{name: "zero id", cells: []int{0}, want: ErrInvalidCell},
		{name: "duplicate", cells: []int{3, 3}, want: ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockContainerRepo{}
			repo.On("GetByID", mock.Anything, "CNT-202611-002").Return(newContainer(5), nil)

			_, err := newUseCase(repo, &passthroughTx{}).Execute(context.Background(), &Request{
				ContainerID: "CNT-202611-002",
				Mode:        domain.ModePalletized,
				Cells:       tc.cells,
			})

			assert.ErrorIs(t, err, tc.want)
			repo.AssertNotCalled(t, "AddOccupiedCells", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_CargoDoesNotFit(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-002").Return(newContainer(), nil)

	_, err := newUseCase(repo, &passthroughTx{}).Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-002",
		Mode:        domain.ModeCustom,
		Cargo:       &domain.Dimensions{Width: 1000, Height: 5000, Length: 1000},
	})

	assert.ErrorIs(t, err, ErrCargoDoesNotFit)
}

// TestExecute_NoPlacement проверяет шахматную занятость, в которой нет
// свободного ряда из трёх ячеек.
func TestExecute_NoPlacement(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-002").Return(newContainer(2, 7, 10, 15, 18), nil)

	_, err := newUseCase(repo, &passthroughTx{}).Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-002",
		Mode:        domain.ModeCustom,
		Cargo:       &domain.Dimensions{Width: 2500, Height: 1000, Length: 1000},
	})

	assert.ErrorIs(t, err, ErrNoPlacement)
}

func TestExecute_TooManyPallets(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-002").Return(newContainer(1, 2, 3), nil)

	_, err := newUseCase(repo, &passthroughTx{}).Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-002",
		Mode:        domain.ModePalletized,
		PalletCount: 18,
	})

	assert.ErrorIs(t, err, ErrNoPlacement)
}

func TestExecute_ContainerDeparted(t *testing.T) {
	container := newContainer()
	container.DepartureDate = purchaseTime.AddDate(0, 0, -1)

	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, container.ID).Return(container, nil)

	_, err := newUseCase(repo, &passthroughTx{}).Execute(context.Background(), &Request{
		ContainerID: container.ID,
		Mode:        domain.ModePalletized,
		PalletCount: 1,
	})

	assert.ErrorIs(t, err, ErrContainerDeparted)
}

func TestExecute_ContainerNotFound(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "missing").Return(nil, containerRepo.ErrContainerNotFound)

	_, err := newUseCase(repo, &passthroughTx{}).Execute(context.Background(), &Request{
		ContainerID: "missing",
		Mode:        domain.ModePalletized,
		PalletCount: 1,
	})

	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestExecute_StorageFailure(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-002").Return(newContainer(), nil)
	repo.On("AddOccupiedCells", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("serialization failure"))

	_, err := newUseCase(repo, &passthroughTx{}).Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-002",
		Mode:        domain.ModePalletized,
		PalletCount: 1,
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&mockContainerRepo{}, &passthroughTx{})

	cases := []*Request{
		{Mode: domain.ModePalletized, PalletCount: 1},
		{ContainerID: "CNT-1", Mode: domain.ModePalletized},
		{ContainerID: "CNT-1", Mode: domain.ModePalletized, PalletCount: domain.MaxPalletsPerReservation + 1},
		{ContainerID: "CNT-1", Mode: domain.ModeCustom, Cells: []int{1}, Cargo: &domain.Dimensions{}},
		{ContainerID: "CNT-1", Mode: ""},
	}

	for _, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestTrackingNumber_Format(t *testing.T) {
	got := trackingNumber(&RealRandomSource{})

	assert.Len(t, got, len(domain.TrackingPrefix)+domain.TrackingSuffixLength)
	assert.Regexp(t, `^TRK[A-Z0-9]{9}$`, got)
}

// TestBuildInvoice_UniqueWithinSecond два счёта на один контейнер в одну секунду
func TestBuildInvoice_UniqueWithinSecond(t *testing.T) {
	container := newContainer()
	gen := &UUIDGenerator{}

	first := buildInvoice(container, purchaseTime, gen.NewID(), zeroRandom{})
	second := buildInvoice(container, purchaseTime.Add(700*time.Millisecond), gen.NewID(), zeroRandom{})

	assert.NotEqual(t, first.ID, second.ID)

	for _, id := range []string{first.ID, second.ID} {
		prefix := domain.InvoicePrefix + "-" + container.ID + "-"
		require.True(t, strings.HasPrefix(id, prefix), id)
		_, err := uuid.Parse(strings.TrimPrefix(id, prefix))
		assert.NoError(t, err)
	}
}
