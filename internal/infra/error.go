package infra

import (
	"errors"
	"log/slog"

	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs once and wraps err. Kind defaults to KindDBFailure.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if k == KindNotFound {
		slog.Debug("Repository error: "+msg, logArgs...)
	} else {
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

// WrapPgErr classifies a pgx error before wrapping it.
func WrapPgErr(msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return WrapRepoErr(msg, err, KindNotFound)
	case pgconv.IsUndefinedTable(err):
		return WrapRepoErr(msg, err, KindSchemaMissing)
	case pgconv.IsUniqueViolation(err):
		return WrapRepoErr(msg, err, KindDuplicateKey)
	default:
		return WrapRepoErr(msg, err)
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure     RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey  RepositoryErrorKind = "DUPLICATE_KEY"
	KindSchemaMissing RepositoryErrorKind = "SCHEMA_MISSING"
)
