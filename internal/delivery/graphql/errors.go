package graphql

import (
	"github.com/pkg/errors"

	domainerrors "empdir/internal/domain/errors"
)

// extendedError carries an application error across the GraphQL boundary so
// its business code surfaces in the error's extensions.
type extendedError struct {
	appErr domainerrors.AppError
}

func (e *extendedError) Error() string {
	return e.appErr.Message()
}

// Extensions implements gqlerrors.ExtendedError.
func (e *extendedError) Extensions() map[string]any {
	return map[string]any{"code": e.appErr.ErrorCode()}
}

// wrapResolverError shapes usecase errors for the GraphQL response.
func wrapResolverError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return &extendedError{appErr: appErr}
	}

	return err
}
