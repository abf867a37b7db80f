/* validate_test.go
 * Contains unit tests for validate.go functions
 */

package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// region ValidateICS tests

func TestValidateICS_AcceptsRenderedCalendar(t *testing.T) {
	doc := RenderICS([]TeamData{fnaticData()}, DefaultReminderMinutes)
	assert.NoError(t, ValidateICS(doc))
}

func TestValidateICS_AcceptsEmptyCalendar(t *testing.T) {
	td := fnaticData()
	td.Matches = nil
	doc := RenderICS([]TeamData{td}, DefaultReminderMinutes)
	assert.NoError(t, ValidateICS(doc))
}

func TestValidateICS_RejectsGarbage(t *testing.T) {
	assert.Error(t, ValidateICS("this is not a calendar"))
}

// endregion
