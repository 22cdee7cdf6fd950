package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/pkg/pagination"
	"github.com/stewardhq/steward/pkg/query"
	"github.com/stewardhq/steward/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an employee directory repository implementing the System
// interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "directory"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Employee], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "EmployeeID", "Name", "Email")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Employee, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEmployee)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	q, args := query.NewBuilder(projection).BuildSingle("EmployeeID", employeeID)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEmployee)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Employee, error) {
	if cmd.EmployeeID == "" {
		return nil, fmt.Errorf("%w: employee_id is required", ErrInvalidCommand)
	}

	insertQ := `
		INSERT INTO employees(employee_id, name, email, department, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, name, email, department, position, active,
				  created_at, updated_at`

	e, err := repository.QueryOne(
		ctx, r.db, insertQ,
		[]any{cmd.EmployeeID, cmd.Name, cmd.Email, cmd.Department, cmd.Position},
		scanEmployee,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("employee registered", "id", e.ID, "employee_id", e.EmployeeID)
	return &e, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Employee, error) {
	updateQ := `
		UPDATE employees
		SET name = COALESCE($1, name),
			email = COALESCE($2, email),
			department = COALESCE($3, department),
			position = COALESCE($4, position),
			active = COALESCE($5, active),
			updated_at = NOW()
		WHERE id = $6
		RETURNING id, employee_id, name, email, department, position, active,
				  created_at, updated_at`

	e, err := repository.QueryOne(
		ctx, r.db, updateQ,
		[]any{cmd.Name, cmd.Email, cmd.Department, cmd.Position, cmd.Active, id},
		scanEmployee,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("employee updated", "id", e.ID, "employee_id", e.EmployeeID)
	return &e, nil
}

func (r *repo) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE employees SET active = false, updated_at = NOW() WHERE id = $1",
		id,
	)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("employee deactivated", "id", id)
	return nil
}

func (r *repo) Resolve(ctx context.Context, employeeID string) (string, string, bool, bool, error) {
	e, err := r.FindByEmployeeID(ctx, employeeID)
	if errors.Is(err, ErrNotFound) {
		return "", "", false, false, nil
	}
	if err != nil {
		return "", "", false, false, err
	}
	return e.Department, e.Position, e.Active, true, nil
}
