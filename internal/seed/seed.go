package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/examtable/internal/app/models"
	appRepos "github.com/yigit/examtable/internal/app/repositories"
)

// EnsureFacultyRole creates the faculty exam office role with a generated
// access key when the roles table is empty, so a fresh deployment can be
// bootstrapped. The key is logged once; every further role is created through
// the API with this key.
func EnsureFacultyRole(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	roleRepo := appRepos.NewRoleRepository(dbPool)

	count, err := roleRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	role := &appModels.Role{
		RoleType:  appModels.RoleFaculty,
		AccessKey: uuid.NewString(),
	}
	if err := roleRepo.Create(ctx, role); err != nil {
		return err
	}

	lgr.Info().
		Str("access_key", role.AccessKey).
		Msg("Created initial faculty access key, store it securely")
	return nil
}
