package attendee

import (
	"testing"

	"Backend-CourseSignin/src/identity"
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/test"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestAttendeeValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Attendee Validation Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestValidAttendeeInput", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Attendee Input")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Valid Attendee Input",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		in := models.AttendeeInput{
			Name:       "王小明",
			Department: "資訊部",
			Phone:      "0912345678",
			Dietary:    "素食",
		}
		assert.NoError(t, validate.Struct(in))
	})

	t.Run("TestAttendeeNameRequired", func(t *testing.T) {
		timer := test.NewTestTimer("Attendee Name Required")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Attendee Name Required",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		in := models.AttendeeInput{Department: "資訊部"}
		assert.Error(t, validate.Struct(in))
	})

	t.Run("TestAttendeeHashDerivedFromName", func(t *testing.T) {
		timer := test.NewTestTimer("Attendee Hash Derived From Name")
		defer func() {
			suiteResult.AddResult(test.TestResult{
				Name:     "Attendee Hash Derived From Name",
				Duration: timer.Stop(),
				Passed:   true,
			})
		}()

		hash := identity.Encode("王小明", "secure_seed_2024")
		attendee := models.Attendee{Name: "王小明", Hash: hash}

		assert.Len(t, attendee.Hash, 64)
		assert.Equal(t, hash[:identity.BackupLength], attendee.BackupCode())

		// 改名後重算 hash, 必須跟舊的不同
		renamed := identity.Encode("王大明", "secure_seed_2024")
		assert.NotEqual(t, hash, renamed)
	})
}
