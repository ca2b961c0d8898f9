package servicetype

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

var serviceTypeColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price_min",
	"price_max",
	"specialty",
	"icon",
	"created_at",
}

// Repository репозиторий справочника типов услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый тип услуги (используется при первичном наполнении справочника)
func (r *Repository) Create(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_types").
		Columns(serviceTypeColumns...).
		Values(
			st.ID,
			st.Name,
			st.Description,
			st.DurationMinutes,
			st.PriceMin,
			st.PriceMax,
			st.Specialty,
			st.Icon,
			st.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return st, nil
}

// GetByID получает тип услуги по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ServiceType, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceTypeColumns...).
		From("service_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var st domain.ServiceType
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&st.ID,
		&st.Name,
		&st.Description,
		&st.DurationMinutes,
		&st.PriceMin,
		&st.PriceMax,
		&st.Specialty,
		&st.Icon,
		&st.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service type: %v", ErrScanRow, err)
	}

	return &st, nil
}

// List получает все типы услуг, отсортированные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.ServiceType, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceTypeColumns...).
		From("service_types").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]*domain.ServiceType, 0)
	for rows.Next() {
		var st domain.ServiceType
		err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.Description,
			&st.DurationMinutes,
			&st.PriceMin,
			&st.PriceMax,
			&st.Specialty,
			&st.Icon,
			&st.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan service type: %v", ErrScanRow, err)
		}
		types = append(types, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return types, nil
}

// Count возвращает количество типов услуг в справочнике
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, _, err := psqlbuilder.Select("COUNT(*)").From("service_types").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// DeleteAll удаляет все типы услуг (используется при восстановлении из бэкапа).
// Ссылки из бронирований на удаляемые типы обнуляются на уровне БД
// (FK ON DELETE SET NULL) - справочник ссылаемый, а не владеющий.
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, _, err := psqlbuilder.Delete("service_types").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}
