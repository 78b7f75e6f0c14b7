package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	VenueRepository       *VenueRepository
	SessionRepository     *SessionRepository
	InvigilatorRepository *InvigilatorRepository
	ExamRepository        *ExamRepository
	RoleRepository        *RoleRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		VenueRepository:       NewVenueRepository(db),
		SessionRepository:     NewSessionRepository(db),
		InvigilatorRepository: NewInvigilatorRepository(db),
		ExamRepository:        NewExamRepository(db),
		RoleRepository:        NewRoleRepository(db),
	}
}
