package handlers

import (
	"github.com/lac-hong-legacy/rehab_api/dto"
	"github.com/lac-hong-legacy/rehab_api/shared"
)

func validate(req dto.Validator) error {
	if err := req.Validate(); err != nil {
		return shared.NewValidationError(err, "Validation failed", dto.FormatValidationErrors(err))
	}
	return nil
}
