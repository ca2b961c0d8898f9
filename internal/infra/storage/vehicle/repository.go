package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

var vehicleColumns = []string{
	"id",
	"make",
	"model",
	"year",
	"registration",
	"mileage",
	"fuel_type",
	"color",
	"last_service_date",
	"next_service_due",
	"mot_due_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с автомобилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый автомобиль
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns(vehicleColumns...).
		Values(
			v.ID,
			v.Make,
			v.Model,
			v.Year,
			v.Registration,
			v.Mileage,
			v.FuelType,
			v.Color,
			v.LastServiceDate,
			v.NextServiceDue,
			v.MOTDueDate,
			v.CreatedAt,
			v.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return v, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanVehicle(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByRegistration ищет автомобиль по нормализованному госномеру.
// Госномера хранятся нормализованными (uppercase), поэтому сравнение
// по равенству эквивалентно сравнению без учета регистра.
func (r *Repository) GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"registration": domain.NormalizeRegistration(registration)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRegistration - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanVehicle(executor.QueryRowContext(ctx, query, args...), "GetByRegistration")
}

// List получает все автомобили, отсортированные по последнему обновлению
func (r *Repository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVehicles(rows, "List")
}

// Search ищет автомобили по подстроке в марке, модели или госномере
func (r *Repository) Search(ctx context.Context, text string) ([]*domain.Vehicle, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	pattern := "%" + text + "%"
	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Or{
			squirrel.ILike{"make": pattern},
			squirrel.ILike{"model": pattern},
			squirrel.ILike{"registration": pattern},
		}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVehicles(rows, "Search")
}

// Update сохраняет изменённый автомобиль целиком
func (r *Repository) Update(ctx context.Context, v *domain.Vehicle) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("make", v.Make).
		Set("model", v.Model).
		Set("year", v.Year).
		Set("registration", v.Registration).
		Set("mileage", v.Mileage).
		Set("fuel_type", v.FuelType).
		Set("color", v.Color).
		Set("last_service_date", v.LastServiceDate).
		Set("next_service_due", v.NextServiceDue).
		Set("mot_due_date", v.MOTDueDate).
		Set("updated_at", v.UpdatedAt).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// Delete удаляет автомобиль. Связанные бронирования и напоминания
// удаляются каскадно на уровне БД (FK ON DELETE CASCADE).
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vehicles").
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
		return ErrVehicleNotFound
	}

	return nil
}

// DeleteAll удаляет все автомобили (используется при восстановлении из бэкапа)
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, _, err := psqlbuilder.Delete("vehicles").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanVehicle(row rowScanner, method string) (*domain.Vehicle, error) {
	var v domain.Vehicle

	err := row.Scan(
		&v.ID,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.Registration,
		&v.Mileage,
		&v.FuelType,
		&v.Color,
		&v.LastServiceDate,
		&v.NextServiceDue,
		&v.MOTDueDate,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan vehicle: %v", ErrScanRow, method, err)
	}

	return &v, nil
}

func (r *Repository) scanVehicles(rows *sql.Rows, method string) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0)

	for rows.Next() {
		var v domain.Vehicle
		err := rows.Scan(
			&v.ID,
			&v.Make,
			&v.Model,
			&v.Year,
			&v.Registration,
			&v.Mileage,
			&v.FuelType,
			&v.Color,
			&v.LastServiceDate,
			&v.NextServiceDue,
			&v.MOTDueDate,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan vehicle: %v", ErrScanRow, method, err)
		}
		vehicles = append(vehicles, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return vehicles, nil
}
