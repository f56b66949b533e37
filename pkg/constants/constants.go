package constants

import "fmt"

// ProjectType climate intervention category
const (
	ProjectTypeAdaptation   = "adaptation"
	ProjectTypeMitigation   = "mitigation"
	ProjectTypeCrossCutting = "cross_cutting"
)

var projectTypeName = map[string]string{
	ProjectTypeAdaptation:   "Adaptation",
	ProjectTypeMitigation:   "Mitigation",
	ProjectTypeCrossCutting: "Cross-cutting",
}

// ProjectTypeLabel display name for a project type
func ProjectTypeLabel(projectType string) string {
	if name, ok := projectTypeName[projectType]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%s)", projectType)
}

// IsValidProjectType reports whether projectType is a known category
func IsValidProjectType(projectType string) bool {
	_, ok := projectTypeName[projectType]
	return ok
}

// SubmissionStatus review state of a pending submission.
// A submission has no intermediate states: it is pending until consumed by
// approval (row removed, project created) or rejection (row removed).
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Common project lifecycle labels; Status is free-form, these are conventions only
const (
	ProjectStatusPlanning    = "Planning"
	ProjectStatusActive      = "Active"
	ProjectStatusImplemented = "Implemented"
)

// JWT
const (
	JWTContextKey  = "jwt_user"
	JWTTypeAccess  = "access"
	JWTTypeRefresh = "refresh"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)
