package shared

import (
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/errs"
)

// TranslateBookingErr turns repository kinds into the sentinels handlers switch on.
func TranslateBookingErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	case infra.IsKind(err, infra.KindSchemaMissing):
		return errs.Mark(err, errs.ErrSchemaMissing)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
