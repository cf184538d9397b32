package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var customValidators = map[string]validator.Func{
	"project_name":      isProjectName,
	"parameter_name":    isParameterName,
	"semver_constraint": isSemverConstraint,
	"key_value":         isKeyValue,
	"alias_name":        isAliasName,
}

var customTranslations = map[string]string{
	"oneof":             "{0} must be one of [{1}]",
	"project_name":      "{0} must be a non-empty name without path separators, at most 64 characters: {1}",
	"parameter_name":    "{0} must contain only letters, numbers and underscores and must not be a reserved name: {1}",
	"semver_constraint": "{0} must be a valid semantic version constraint: {1}",
	"key_value":         "{0} must use the key=value form: {1}",
	"alias_name":        "{0} must contain only letters, numbers, dots, dashes and underscores: {1}",
}

type ValidationError struct {
	Field  string
	Detail string
}

type ValidationErrors []ValidationError

func NewValidationError(key, detail string) error {
	return &ValidationError{
		Field:  key,
		Detail: detail,
	}
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func (ve ValidationErrors) Error() string {
	msg := "validation error\n"
	for _, err := range ve {
		msg += err.Detail + "\n"
	}
	return msg
}

// Validator wraps a validator instance and a translator.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator creates a new Validator with English translations registered.
func NewValidator() (*Validator, error) {
	validate := validator.New()

	// Use the "cli" tag, then the "toml" tag, to override the field name if present.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if cliTag := fld.Tag.Get("cli"); cliTag != "" {
			return cliTag
		}
		if tomlTag := fld.Tag.Get("toml"); tomlTag != "" && tomlTag != "-" {
			return tomlTag
		}
		return fld.Name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("translator not found")
	}

	if err := registerDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	for validatorName, validatorFunc := range customValidators {
		if err := validate.RegisterValidation(validatorName, validatorFunc); err != nil {
			return nil, err
		}
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// RegisterCustomTranslation registers a custom translation for a given tag.
func (v *Validator) RegisterCustomTranslation(tag, msg string) error {
	return v.validate.RegisterTranslation(tag, v.trans,
		func(ut ut.Translator) error {
			// {0} is the field name, {1} the offending value.
			return ut.Add(tag, msg, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field(), fmt.Sprintf("%v", fe.Value()))
			return t
		},
	)
}

// Struct validates a struct and returns translated errors if any.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var msg string
		for _, e := range verrs {
			msg += e.Translate(v.trans) + "\n"
		}
		return fmt.Errorf("validation error:\n%s: %w", msg, verrs)
	}
	return err
}

// Var validates a single value against a tag, e.g. v.Var(name, "project_name").
func (v *Validator) Var(field interface{}, tag string) error {
	err := v.validate.Var(field, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%s: %w", verrs[0].Translate(v.trans), verrs)
	}
	return err
}

// Validate returns the underlying *validator.Validate instance if you need it directly.
func (v *Validator) Validate() *validator.Validate {
	return v.validate
}

// Translator returns the underlying translator if you need direct access.
func (v *Validator) Translator() ut.Translator {
	return v.trans
}

// ParseValidationErrors parses a raw validation error and returns a slice of ValidationErrors.
func (v *Validator) ParseValidationErrors(err error) ValidationErrors {
	ves := ValidationErrors{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			ves = append(ves, ValidationError{
				Field:  verr.StructNamespace(),
				Detail: verr.Translate(v.trans),
			})
		}
	}

	return ves
}

func registerDefaultTranslations(v *validator.Validate, trans ut.Translator) error {
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return fmt.Errorf("failed to register default translations: %w", err)
	}

	for tag, message := range customTranslations {
		if err := v.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(tag, message, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				param := fe.Param()
				if param == "" {
					param = fmt.Sprintf("%v", fe.Value())
				}
				t, _ := ut.T(tag, fe.Field(), param)
				return t
			},
		); err != nil {
			return fmt.Errorf("failed to register custom translation for %s: %w", tag, err)
		}
	}

	return nil
}
