package field

import (
	"testing"

	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/test"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestCustomFieldValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Custom Field Validation Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestValidSelectField", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Select Field")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Valid Select Field",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		in := models.CustomFieldInput{
			Name:    "餐飲葷素",
			Type:    models.FieldTypeSelect,
			Options: []string{"葷食", "素食"},
		}
		assert.NoError(t, validate.Struct(in))
	})

	t.Run("TestValidTextField", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Text Field")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Valid Text Field",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		in := models.CustomFieldInput{Name: "住址", Type: models.FieldTypeText}
		assert.NoError(t, validate.Struct(in))
	})

	t.Run("TestUnknownFieldTypeRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Unknown Field Type Rejected")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Unknown Field Type Rejected",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		in := models.CustomFieldInput{Name: "生日", Type: "date"}
		assert.Error(t, validate.Struct(in))
	})

	t.Run("TestFieldNameRequired", func(t *testing.T) {
		timer := test.NewTestTimer("Field Name Required")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Field Name Required",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		in := models.CustomFieldInput{Type: models.FieldTypeText}
		assert.Error(t, validate.Struct(in))
	})
}
