package store

import "errors"

// Sentinel errors returned by repositories and photo storages. Callers
// should match them with [errors.Is].
var (
	// ErrUsernameAlreadyExists is returned when a user is created or renamed
	// to a username that another user already holds.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup, or when
	// an update or insert references a user that does not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrHouseNotFound is returned when no house matches the lookup, or when
	// a bid references a house that does not exist.
	ErrHouseNotFound = errors.New("house not found")

	// ErrPhotoNotFound is returned when the requested photo is not stored.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrInvalidPhotoName is returned for photo names that are empty or
	// contain path elements.
	ErrInvalidPhotoName = errors.New("invalid photo name")

	// ErrSavingPhoto is returned when the photo storage fails to persist an
	// upload.
	ErrSavingPhoto = errors.New("error saving photo")
)

// Low-level database errors. Repositories wrap the driver error with one of
// these before any domain classification applies.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
)

// Construction errors.
var (
	ErrUnknownDBDriver     = errors.New("unknown database driver")
	ErrUnknownPhotoBackend = errors.New("unknown photo storage backend")
)
