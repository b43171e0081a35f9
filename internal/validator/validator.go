package validator

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator checks request payloads and reports failures per field.
type Validator struct {
	validate *govalidator.Validate
	trans    ut.Translator
}

// New builds a validator that names fields by their JSON tag and translates
// messages to English.
func New() *Validator {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())

	// Use JSON tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register English translations.
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &Validator{validate: v, trans: trans}
}

// Struct validates dst. It returns nil on success or a map of field path to
// human-readable message.
func (v *Validator) Struct(dst any) map[string]string {
	if err := v.validate.Struct(dst); err != nil {
		return v.TranslateErrors(err)
	}
	return nil
}

// TranslateErrors takes a validation error and returns a map of field path
// to message. If the error is not a validation error, it returns a
// single-key map with "detail".
func (v *Validator) TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fieldPath(fe.Namespace())] = fe.Translate(v.trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// fieldPath drops the root type and embedded struct names from a namespace,
// leaving the JSON path: "CreateQuestionRequest.QuestionContent.options[1].optionText"
// becomes "options[1].optionText".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" && unicode.IsUpper([]rune(p)[0]) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}
