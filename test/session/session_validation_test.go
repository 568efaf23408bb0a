package session

import (
	"testing"

	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/test"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestSessionValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Session Validation Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestValidSessionInput", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Session Input")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Valid Session Input",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		in := models.SessionInput{
			Week:      3,
			Date:      "2024-09-18",
			StartTime: "09:00",
			EndTime:   "12:00",
		}
		assert.NoError(t, validate.Struct(in))
	})

	t.Run("TestWeekMustBePositive", func(t *testing.T) {
		timer := test.NewTestTimer("Week Must Be Positive")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Week Must Be Positive",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		in := models.SessionInput{
			Week:      0,
			Date:      "2024-09-18",
			StartTime: "09:00",
			EndTime:   "12:00",
		}
		assert.Error(t, validate.Struct(in))
	})

	t.Run("TestDateRequired", func(t *testing.T) {
		timer := test.NewTestTimer("Date Required")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Date Required",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		in := models.SessionInput{Week: 1, StartTime: "09:00", EndTime: "12:00"}
		assert.Error(t, validate.Struct(in))
	})
}
