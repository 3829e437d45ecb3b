// Package validate runs struct-tag validation and reports failures as
// domain.ValidationError with JSON field paths.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

// enumValue is implemented by the domain enums.
type enumValue interface {
	IsValid() bool
}

var (
	once  sync.Once
	v     *validator.Validate
	trans ut.Translator
)

func engine() (*validator.Validate, ut.Translator) {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		// "enum" accepts any value whose type reports itself valid.
		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(enumValue)
			return !ok || e.IsValid()
		})

		enT := en.New()
		trans, _ = ut.New(enT, enT).GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterTranslation("enum", trans,
			func(ut ut.Translator) error {
				return ut.Add("enum", "{0} has an unknown value", true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				msg, _ := ut.T("enum", fe.Field())
				return msg
			},
		)
	})
	return v, trans
}

// Struct validates s. Failures come back as *domain.ValidationError, one
// FieldError per failing field, with paths such as "data.phoneNumbers[0].phoneNumber".
func Struct(s any) error {
	validate, tr := engine()

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fe.Translate(tr),
		})
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
