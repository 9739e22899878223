package uow

import "errors"

var (
	// ErrRepositoryNotRegistered is returned by lookups for a name that was
	// never passed to Register.
	ErrRepositoryNotRegistered = errors.New("[uow] repository is not registered")
	// ErrRepositoryAlreadyRegistered is returned by Register on a duplicate name.
	ErrRepositoryAlreadyRegistered = errors.New("[uow] repository is already registered")
	// ErrInvalidRepositoryType is returned by the typed getters when the
	// registered repository does not implement the requested type.
	ErrInvalidRepositoryType = errors.New("[uow] repository has an invalid type")
)
