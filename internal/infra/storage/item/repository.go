package item

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// itemColumns колонки таблицы schedule_items в порядке сканирования
var itemColumns = []string{
	"id",
	"resource_id",
	"item_date",
	"start_time",
	"duration_minutes",
	"label",
	"subtitle",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с элементами расписания
// Единственная точка ввода-вывода ядра: рабочие наборы наполняются отсюда,
// а результаты мутаций сохраняются через Upsert/Delete
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория элементов расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByResourcesAndRange получает элементы указанных ресурсов за период [from, to]
// Используется для первоначального наполнения рабочего набора сессии
func (r *Repository) ListByResourcesAndRange(
	ctx context.Context,
	resourceIDs []int64,
	from, to time.Time,
) ([]*domain.ScheduleItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("schedule_items").
		Where(squirrel.Eq{"resource_id": resourceIDs}).
		Where(squirrel.GtOrEq{"item_date": from}).
		Where(squirrel.LtOrEq{"item_date": to}).
		OrderBy("item_date ASC, resource_id ASC, start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByResourcesAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByResourcesAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanItems(rows)
}

// GetByID получает элемент расписания по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("schedule_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var item domain.ScheduleItem
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.ResourceID,
		&item.Date,
		&item.StartTime,
		&item.DurationMinutes,
		&item.Label,
		&item.Subtitle,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}

// Upsert сохраняет результат мутации (create/move/duplicate)
//
// Элементы с локальным id (id <= 0) вставляются - id выдаёт БД.
// Элементы с id хранилища обновляются по месту. В обоих случаях
// возвращается элемент с актуальными id и таймстампами.
func (r *Repository) Upsert(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	if item.IsPersisted() {
		return r.update(ctx, item)
	}
	return r.insert(ctx, item)
}

func (r *Repository) insert(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_items").
		Columns(
			"resource_id",
			"item_date",
			"start_time",
			"duration_minutes",
			"label",
			"subtitle",
		).
		Values(
			item.ResourceID,
			item.Date,
			item.StartTime,
			item.DurationMinutes,
			item.Label,
			item.Subtitle,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: insert - build insert query: %v", ErrBuildQuery, err)
	}

	persisted := item.Clone()
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&persisted.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: insert - execute insert: %v", ErrExecQuery, err)
	}

	persisted.CreatedAt = createdAt.Time
	persisted.UpdatedAt = updatedAt.Time

	return persisted, nil
}

func (r *Repository) update(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_items").
		Set("resource_id", item.ResourceID).
		Set("item_date", item.Date).
		Set("start_time", item.StartTime).
		Set("duration_minutes", item.DurationMinutes).
		Set("label", item.Label).
		Set("subtitle", item.Subtitle).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: update - build update query: %v", ErrBuildQuery, err)
	}

	persisted := item.Clone()
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: update - execute update: %v", ErrExecQuery, err)
	}

	persisted.CreatedAt = createdAt.Time
	persisted.UpdatedAt = updatedAt.Time

	return persisted, nil
}

// Delete удаляет элемент расписания
// Возвращает ErrItemNotFound, если строки уже нет - вызывающая сторона
// сама решает, фатально ли это (для delete-мутаций - нет)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// scanItems сканирует результаты запроса в слайс элементов расписания
func (r *Repository) scanItems(rows *sql.Rows) ([]*domain.ScheduleItem, error) {
	items := make([]*domain.ScheduleItem, 0)

	for rows.Next() {
		var item domain.ScheduleItem
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.ResourceID,
			&item.Date,
			&item.StartTime,
			&item.DurationMinutes,
			&item.Label,
			&item.Subtitle,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanItems - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
