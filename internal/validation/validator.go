package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GroupNameTag checks the XX-dd group name format
const GroupNameTag = "group_name"

var groupNameRegex = regexp.MustCompile(`^[A-Z]{2}-[0-9]{2}$`)

// New creates the validator shared by services and the seeder. Errors report
// JSON field names.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(GroupNameTag, func(fl validator.FieldLevel) bool {
		return groupNameRegex.MatchString(fl.Field().String())
	})
	return validate
}
