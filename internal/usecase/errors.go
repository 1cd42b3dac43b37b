package usecase

import (
	"context"
	stderrors "errors"

	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/pkg/errors"
)

// translateDatasetError переводит ошибки загрузки и валидации набора данных в AppError
func translateDatasetError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *errors.AppError
	switch {
	case stderrors.As(err, &appErr):
		return appErr
	case stderrors.Is(err, domain.ErrDatasetNotFound):
		return errors.ErrDatasetNotFound.WithMessage(err.Error())
	case stderrors.Is(err, domain.ErrInvalidDatasetID),
		stderrors.Is(err, domain.ErrInvalidFileName),
		stderrors.Is(err, domain.ErrEmptyImportFile):
		return errors.ErrInvalidDatasetID.WithMessage(err.Error())
	case stderrors.Is(err, domain.ErrLengthMismatch),
		stderrors.Is(err, domain.ErrEmptyRoute),
		stderrors.Is(err, domain.ErrMalformedData):
		return errors.ErrInvalidDataset.WithMessage(err.Error())
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return errors.ErrDatabaseError
	}
}
