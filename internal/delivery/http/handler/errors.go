package handler

import (
	"github.com/visual-twin/internal/pkg/errors"
)

// invalidBody - тело запроса не разобрано как JSON
func invalidBody(err error) error {
	return errors.ErrInvalidRequest.WithMessage("Invalid request body: " + err.Error())
}
