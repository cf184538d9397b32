package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"

	"github.com/smartcontractkit/scaffold/internal/constants"
)

// ParameterNameRegex matches identifiers usable as template variables.
var ParameterNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// AliasNameRegex matches template alias names. Aliases never contain path separators, so they
// cannot be confused with local template paths.
var AliasNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

var reservedParameterNames = map[string]struct{}{
	constants.NameParameter:      {},
	constants.TargetDirParameter: {},
}

func stringField(fl validator.FieldLevel) string {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field is not a string: %s", fl.FieldName()))
	}
	return field.String()
}

func isProjectName(fl validator.FieldLevel) bool {
	return IsValidProjectName(stringField(fl)) == nil
}

func isParameterName(fl validator.FieldLevel) bool {
	return IsValidParameterName(stringField(fl)) == nil
}

func isAliasName(fl validator.FieldLevel) bool {
	return IsValidAliasName(stringField(fl)) == nil
}

func isSemverConstraint(fl validator.FieldLevel) bool {
	_, err := semver.NewConstraint(stringField(fl))
	return err == nil
}

func isKeyValue(fl validator.FieldLevel) bool {
	_, _, err := SplitKeyValue(stringField(fl))
	return err == nil
}

// IsValidProjectName accepts any display name whose kebab-cased form is a usable directory name.
func IsValidProjectName(projectName string) error {
	trimmed := strings.TrimSpace(projectName)
	if trimmed == "" {
		return fmt.Errorf("project name can't be an empty string")
	}

	if len(trimmed) > constants.MaxProjectNameLength {
		return fmt.Errorf("project name is too long, limit is %d characters", constants.MaxProjectNameLength)
	}

	if strings.ContainsAny(trimmed, `/\`) {
		return fmt.Errorf("project name can't contain path separators")
	}

	dir := strcase.ToKebab(trimmed)
	if dir == "" || dir == "." || dir == ".." {
		return fmt.Errorf("project name %q does not produce a usable directory name", projectName)
	}

	return nil
}

func IsValidParameterName(name string) error {
	if !ParameterNameRegex.MatchString(name) {
		return fmt.Errorf("parameter name %q can only contain letters, numbers and underscores", name)
	}
	if _, reserved := reservedParameterNames[name]; reserved {
		return fmt.Errorf("parameter name %q is reserved", name)
	}
	return nil
}

func IsValidAliasName(name string) error {
	if !AliasNameRegex.MatchString(name) {
		return fmt.Errorf("alias %q can only contain letters, numbers, dots, dashes and underscores", name)
	}
	if strings.HasSuffix(name, constants.RemoteTemplateSuffix) {
		return fmt.Errorf("alias %q can't end with %s", name, constants.RemoteTemplateSuffix)
	}
	return nil
}

// SplitKeyValue splits a key=value flag argument.
func SplitKeyValue(s string) (string, string, error) {
	key, value, found := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	return key, value, nil
}
