package dto

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/udecupos/udecupos-api/pkg/errors"
)

var validate = validator.New()

// Validate checks the request beyond what JSON binding enforces.
func (r TimetableRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "selecciones inválidas")
	}
	if r.Options.FontScale < 0 || r.Options.FontScale > 3 {
		return appErrors.Clone(appErrors.ErrValidation, "fontScale fuera de rango (0..3)")
	}
	if r.Options.StartHour != 0 || r.Options.EndHour != 0 {
		if r.Options.StartHour < 0 || r.Options.EndHour > 24 || r.Options.EndHour <= r.Options.StartHour {
			return appErrors.Clone(appErrors.ErrValidation, "ventana horaria inválida")
		}
	}
	return nil
}
