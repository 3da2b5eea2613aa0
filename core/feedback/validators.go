package feedback

import (
	"github.com/go-playground/validator/v10"

	"github.com/openedu/campusvoice/core"
)

var (
	// custom validation tags & texts
	subjectTag   = "subjectlabel"
	subjectText  = "unknown subject"
	categoryTag  = "categorylabel"
	categoryText = "unknown category"
)

func init() {
	_ = core.Validate.RegisterValidation(subjectTag, subjectValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, subjectTag, subjectText)

	_ = core.Validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, categoryTag, categoryText)
}

func subjectValidation(fl validator.FieldLevel) bool {
	return contains(Subjects, fl.Field().String())
}

func categoryValidation(fl validator.FieldLevel) bool {
	return contains(Categories, fl.Field().String())
}

func contains(set []string, s string) bool {
	for _, el := range set {
		if el == s {
			return true
		}
	}
	return false
}

// Validate cleans the input in place and checks required fields before any
// network activity happens. Failures wrap ErrMissingFields with field detail.
func (nf *NewFeedback) Validate() error {
	nf.Subject = core.CleanString(nf.Subject)
	nf.Category = core.CleanString(nf.Category)
	nf.Body = core.CleanString(nf.Body)

	if err := core.Validate.Struct(nf); err != nil {
		return core.TranslateValidationError(ErrMissingFields, err)
	}
	return nil
}
