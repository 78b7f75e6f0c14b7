package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/repositories"
)

// CatalogService covers the faculty office's resource catalog: venues,
// sessions, invigilators and department access roles. Catalog rows are
// append-only; nothing in the core updates or deletes them.
type CatalogService interface {
	CreateVenue(ctx context.Context, venue *models.Venue) error
	ListVenues(ctx context.Context) ([]models.Venue, error)
	CreateSession(ctx context.Context, session *models.Session) error
	ListSessions(ctx context.Context) ([]models.Session, error)
	CreateInvigilator(ctx context.Context, inv *models.Invigilator) error
	ListInvigilators(ctx context.Context) ([]models.Invigilator, error)
	CreateDepartmentRole(ctx context.Context, departmentName string) (*models.Role, error)
	ListDepartmentRoles(ctx context.Context) ([]models.Role, error)
}

type catalogServiceImpl struct {
	venueRepo   *repositories.VenueRepository
	sessionRepo *repositories.SessionRepository
	invRepo     *repositories.InvigilatorRepository
	roleRepo    *repositories.RoleRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	venueRepo *repositories.VenueRepository,
	sessionRepo *repositories.SessionRepository,
	invRepo *repositories.InvigilatorRepository,
	roleRepo *repositories.RoleRepository,
) CatalogService {
	return &catalogServiceImpl{
		venueRepo:   venueRepo,
		sessionRepo: sessionRepo,
		invRepo:     invRepo,
		roleRepo:    roleRepo,
	}
}

func (s *catalogServiceImpl) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return s.venueRepo.Create(ctx, venue)
}

func (s *catalogServiceImpl) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.venueRepo.GetAll(ctx)
}

func (s *catalogServiceImpl) CreateSession(ctx context.Context, session *models.Session) error {
	return s.sessionRepo.Create(ctx, session)
}

func (s *catalogServiceImpl) ListSessions(ctx context.Context) ([]models.Session, error) {
	return s.sessionRepo.GetAll(ctx)
}

func (s *catalogServiceImpl) CreateInvigilator(ctx context.Context, inv *models.Invigilator) error {
	return s.invRepo.Create(ctx, inv)
}

func (s *catalogServiceImpl) ListInvigilators(ctx context.Context) ([]models.Invigilator, error) {
	return s.invRepo.GetAll(ctx)
}

// CreateDepartmentRole registers a department officer and generates their
// access key server-side; the key is returned exactly once in the response.
func (s *catalogServiceImpl) CreateDepartmentRole(ctx context.Context, departmentName string) (*models.Role, error) {
	role := &models.Role{
		RoleType:       models.RoleDepartment,
		DepartmentName: departmentName,
		AccessKey:      uuid.NewString(),
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *catalogServiceImpl) ListDepartmentRoles(ctx context.Context) ([]models.Role, error) {
	return s.roleRepo.GetDepartmentRoles(ctx)
}
