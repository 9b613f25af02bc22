package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerations(t *testing.T) {
	assert.True(t, IsKnownCourse("Leaving Cert Spanish"))
	assert.False(t, IsKnownCourse("French"))
	assert.Equal(t, "Junior Cert Spanish", CanonicalCourse("junior cert spanish"))
	assert.Empty(t, CanonicalCourse("French"))

	assert.True(t, IsKnownLevel("Not sure"))
	assert.True(t, IsKnownLevel("Intermediate (B1/B2)"))
	assert.False(t, IsKnownLevel("Expert"))
	assert.Equal(t, "Intermediate", CanonicalLevel("Intermediate (B1/B2)"))
	assert.Equal(t, "Advanced", CanonicalLevel("Advanced"))

	assert.True(t, IsKnownSchedule("Flexible"))
	assert.True(t, IsKnownSchedule("Wednesday 17:30"))
	assert.False(t, IsKnownSchedule("Sunday 10:00"))
	assert.False(t, IsKnownSchedule("Midnight"))
}

func TestRegistrationRecord_Fields(t *testing.T) {
	rec := RegistrationRecord{Timestamp: "2025-09-01T10:00:00Z", Name: "Aoife", Email: "aoife@example.ie", Course: "Junior Cert Spanish"}
	fields := rec.Fields()
	assert.Len(t, fields, 8)
	assert.Equal(t, "Aoife", fields[FieldName])
	assert.Equal(t, "", fields[FieldPhone])
	assert.Equal(t, "2025-09-01T10:00:00Z", fields[FieldTimestamp])
}
