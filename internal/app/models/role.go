package models

// RoleType defines the access role attached to an access key
type RoleType string

const (
	RoleFaculty    RoleType = "faculty"
	RoleDepartment RoleType = "department"
)

// Role is a row of the access store: a secret key mapped to a role type and,
// for department officers, the department they act for.
type Role struct {
	ID             int64    `json:"id"`
	RoleType       RoleType `json:"role_type"`
	DepartmentName string   `json:"department_name,omitempty"`
	AccessKey      string   `json:"access_key"`
}

// AccessContext is the already-validated identity attached to a request by the
// access-key middleware. Core operations consume it as-is and never re-derive
// it; Department and AccessKey are what gets stamped onto a new exam.
type AccessContext struct {
	Role       RoleType
	Department string
	AccessKey  string
}
