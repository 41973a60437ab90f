package identity

// User is a registered identity. Records are append-only: once created they
// are never mutated or deleted for the life of the process. The password is
// stored as an opaque string; hardening credential storage is explicitly out
// of scope for this service.
type User struct {
	Username string
	Password string
}
