package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/dberrors"
)

// RoleRepository handles database operations for access roles
type RoleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new role and fills in its assigned ID
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) error {
	var departmentName *string
	if role.DepartmentName != "" {
		departmentName = &role.DepartmentName
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO roles (role_type, department_name, access_key)
		VALUES ($1, $2, $3)
		RETURNING id`,
		role.RoleType, departmentName, role.AccessKey,
	).Scan(&role.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "roles_access_key_key") {
			return apperrors.ErrAccessKeyExists
		}
		return fmt.Errorf("error creating role: %w", err)
	}

	return nil
}

// GetByAccessKey resolves a role by its access key, returning (nil, nil) when
// absent. This is the hot path behind every authenticated request.
func (r *RoleRepository) GetByAccessKey(ctx context.Context, accessKey string) (*models.Role, error) {
	var role models.Role
	var departmentName *string
	err := r.db.QueryRow(ctx,
		`SELECT id, role_type, department_name, access_key FROM roles WHERE access_key = $1`,
		accessKey).
		Scan(&role.ID, &role.RoleType, &departmentName, &role.AccessKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	if departmentName != nil {
		role.DepartmentName = *departmentName
	}
	return &role, nil
}

// GetDepartmentRoles retrieves all department roles ordered by department name
func (r *RoleRepository) GetDepartmentRoles(ctx context.Context) ([]models.Role, error) {
	query := r.sb.Select("id", "role_type", "department_name", "access_key").
		From("roles").
		Where(squirrel.Eq{"role_type": models.RoleDepartment}).
		OrderBy("department_name")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		var departmentName *string
		if err := rows.Scan(&role.ID, &role.RoleType, &departmentName, &role.AccessKey); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if departmentName != nil {
			role.DepartmentName = *departmentName
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

// Count returns the total number of roles
func (r *RoleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
