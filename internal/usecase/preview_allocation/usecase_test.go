package preview_allocation

import (
	"context"
	"errors"
	"testing"

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

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveAllocation(mode, outcome string, cells int) {
	m.Called(mode, outcome, cells)
}

func newContainer(occupied ...int64) *domain.Container {
	return &domain.Container{
		ID:            "CNT-202611-001",
		Rows:          domain.DefaultGridRows,
		Cols:          domain.DefaultGridCols,
		OccupiedCells: occupied,
	}
}

func newUseCase(repo ContainerRepository, metrics AllocationMetrics) *UseCase {
	return NewUseCase(repo, allocator.DefaultLayout(), domain.DefaultPriceTiers, metrics, logger.Discard())
}

// TestExecute_CustomCargoPlaced проверяет подбор блока 2×2 рядом с занятыми ячейками.
func TestExecute_CustomCargoPlaced(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-001").Return(newContainer(1, 2, 5, 6), nil)

	metrics := &mockMetrics{}
	metrics.On("ObserveAllocation", "custom", "placed", 4).Once()

	uc := newUseCase(repo, metrics)

	resp, err := uc.Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-001",
		Mode:        domain.ModeCustom,
		Cargo:       &domain.Dimensions{Width: 1300, Height: 1000, Length: 1200},
	})

	require.NoError(t, err)
	assert.True(t, resp.Fits)
	assert.Equal(t, "placed", resp.Outcome)
	assert.Equal(t, 2, resp.BlockWidth)
	assert.Equal(t, 2, resp.BlockLength)
	assert.Equal(t, []int{3, 4, 7, 8}, resp.Cells)
	assert.Equal(t, 900.0, resp.TotalPrice)
	assert.Equal(t, 16, resp.AvailableCells)
	metrics.AssertExpectations(t)
}

// TestExecute_DoesNotFitIsNotAnError проверяет, что слишком большой груз
// возвращается как штатный ответ.
func TestExecute_DoesNotFitIsNotAnError(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-001").Return(newContainer(), nil)

	metrics := &mockMetrics{}
	metrics.On("ObserveAllocation", "custom", "does_not_fit", 0).Once()

	resp, err := newUseCase(repo, metrics).Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-001",
		Mode:        domain.ModeCustom,
		Cargo:       &domain.Dimensions{Width: 7000, Height: 1000, Length: 1000},
	})

	require.NoError(t, err)
	assert.False(t, resp.Fits)
	assert.Zero(t, resp.RequiredSlots)
	assert.Empty(t, resp.Cells)
	assert.Zero(t, resp.TotalPrice)
}

func TestExecute_PalletsUseFreeCells(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-202611-001").Return(newContainer(1, 2, 5, 6), nil)

	metrics := &mockMetrics{}
	metrics.On("ObserveAllocation", "palletized", "placed", 3).Once()

	resp, err := newUseCase(repo, metrics).Execute(context.Background(), &Request{
		ContainerID: "CNT-202611-001",
		Mode:        domain.ModePalletized,
		PalletCount: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 7}, resp.Cells)
	assert.Equal(t, 600.0, resp.TotalPrice)
}

// TestExecute_UsesContainerGrid проверяет, что контейнер второй ревизии
// (2×10) считается по своей сетке.
func TestExecute_UsesContainerGrid(t *testing.T) {
	container := newContainer(1, 2, 11, 12)
	container.Rows, container.Cols = 2, 10

	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, container.ID).Return(container, nil)

	metrics := &mockMetrics{}
	metrics.On("ObserveAllocation", mock.Anything, mock.Anything, mock.Anything)

	resp, err := newUseCase(repo, metrics).Execute(context.Background(), &Request{
		ContainerID: container.ID,
		Mode:        domain.ModeCustom,
		Cargo:       &domain.Dimensions{Width: 1300, Height: 1000, Length: 1200},
	})

	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 13, 14}, resp.Cells)
}

func TestExecute_ContainerNotFound(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "missing").Return(nil, containerRepo.ErrContainerNotFound)

	_, err := newUseCase(repo, &mockMetrics{}).Execute(context.Background(), &Request{
		ContainerID: "missing",
		Mode:        domain.ModePalletized,
		PalletCount: 1,
	})

	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &mockContainerRepo{}
	repo.On("GetByID", mock.Anything, "CNT-1").Return(nil, errors.New("connection refused"))

	_, err := newUseCase(repo, &mockMetrics{}).Execute(context.Background(), &Request{
		ContainerID: "CNT-1",
		Mode:        domain.ModePalletized,
		PalletCount: 1,
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&mockContainerRepo{}, &mockMetrics{})

	cases := []*Request{
		{Mode: domain.ModePalletized, PalletCount: 1},
		{ContainerID: "CNT-1", Mode: "crates"},
		{ContainerID: "CNT-1", Mode: domain.ModeCustom},
		{ContainerID: "CNT-1", Mode: domain.ModeCustom, Cargo: &domain.Dimensions{Width: -1}},
		{ContainerID: "CNT-1", Mode: domain.ModePalletized, PalletCount: 0},
	}

	for _, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
