package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "insert", Operation("INSERT INTO booking_status_log (a) VALUES ($1)"))
	assert.Equal(t, "select", Operation("  SELECT id FROM x"))
	assert.Equal(t, "unknown", Operation(""))
}
