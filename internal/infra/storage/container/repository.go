package container

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	"github.com/m04kA/SMC-ContainerSlots/pkg/dbmetrics"
	"github.com/m04kA/SMC-ContainerSlots/pkg/psqlbuilder"
)

const (
	tableContainers = "containers"

	// pgUniqueViolation код ошибки PostgreSQL для нарушения уникальности
	pgUniqueViolation = "23505"
)

var containerColumns = []string{
	"id",
	"departure_date",
	"delivery_deadline",
	"route",
	"grid_rows",
	"grid_cols",
	"occupied_cells",
	"created_at",
	"updated_at",
}

// Repository репозиторий рейсов контейнеров и занятости их ячеек
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контейнеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает контейнер вместе с начальной занятостью ячеек
func (r *Repository) Create(ctx context.Context, c *domain.Container) (*domain.Container, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	occupied := c.OccupiedCells
	if occupied == nil {
		occupied = []int64{}
	}

	query, args, err := insertQuery(c, occupied)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, mapInsertError(err)
	}

	c.OccupiedCells = occupied
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает контейнер по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы бронирование
// видело актуальную занятость до своего коммита.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Container, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectByIDQuery(id, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanContainer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrContainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan container: %v", ErrScanRow, err)
	}

	return c, nil
}

// ListByDepartureRange получает контейнеры с датой отправления в [from, to)
// Сортировка по дате отправления, затем по ID
func (r *Repository) ListByDepartureRange(ctx context.Context, from, to time.Time) ([]*domain.Container, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listByDepartureRangeQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDepartureRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDepartureRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	containers := make([]*domain.Container, 0)
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDepartureRange - scan row: %v", ErrScanRow, err)
		}
		containers = append(containers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDepartureRange - rows error: %v", ErrScanRow, err)
	}

	return containers, nil
}

// CountByDepartureRange считает контейнеры с датой отправления в [from, to)
func (r *Repository) CountByDepartureRange(ctx context.Context, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableContainers).
		Where(squirrel.GtOrEq{"departure_date": from}).
		Where(squirrel.Lt{"departure_date": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByDepartureRange - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDepartureRange - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// AddOccupiedCells помечает ячейки контейнера как занятые.
// Проверка свободности ячеек - ответственность вызывающего (в той же транзакции).
func (r *Repository) AddOccupiedCells(ctx context.Context, id string, cells []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableContainers).
		Set("occupied_cells", squirrel.Expr("occupied_cells || ?::integer[]", pq.Array(cells))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddOccupiedCells - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddOccupiedCells - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AddOccupiedCells - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrContainerNotFound
	}

	return nil
}

func insertQuery(c *domain.Container, occupied []int64) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableContainers).
		Columns(
			"id",
			"departure_date",
			"delivery_deadline",
			"route",
			"grid_rows",
			"grid_cols",
			"occupied_cells",
		).
		Values(
			c.ID,
			c.DepartureDate,
			c.DeliveryDeadline,
			c.Route,
			c.Rows,
			c.Cols,
			pq.Array(occupied),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

// mapInsertError нарушение уникальности id превращается в ErrContainerExists
func mapInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return ErrContainerExists
	}
	return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
}

// selectByIDQuery строит выборку контейнера по ID.
// Внутри транзакции строка блокируется до коммита.
func selectByIDQuery(id string, forUpdate bool) (string, []interface{}, error) {
	builder := psqlbuilder.Select(containerColumns...).
		From(tableContainers).
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

func listByDepartureRangeQuery(from, to time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(containerColumns...).
		From(tableContainers).
		Where(squirrel.GtOrEq{"departure_date": from}).
		Where(squirrel.Lt{"departure_date": to}).
		OrderBy("departure_date ASC", "id ASC").
		ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContainer(row rowScanner) (*domain.Container, error) {
	var (
		c                    domain.Container
		occupied             pq.Int64Array
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.DepartureDate,
		&c.DeliveryDeadline,
		&c.Route,
		&c.Rows,
		&c.Cols,
		&occupied,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.OccupiedCells = []int64(occupied)
	if c.OccupiedCells == nil {
		c.OccupiedCells = []int64{}
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
