package database

import "errors"

var (
	// ErrDuplicateUser is returned when the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already exists")
	// ErrInvalidCredentials is returned on any login failure. Unknown usernames
	// and wrong passwords are deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrProjectNotFound is returned when a project does not exist or is not
	// owned by the requesting user. The two cases are deliberately not
	// distinguished.
	ErrProjectNotFound = errors.New("project not found")
)
