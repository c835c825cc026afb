package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDPrefersExplicitOverride(t *testing.T) {
	t.Setenv("ACTIVITYCART_INSTANCE_ID", "api-1")
	t.Setenv("DYNO", "web.1")
	assert.Equal(t, "api-1", ID())
}

func TestIDFallsBackToDyno(t *testing.T) {
	t.Setenv("ACTIVITYCART_INSTANCE_ID", "")
	t.Setenv("DYNO", "web.2")
	assert.Equal(t, "web.2", ID())
}

func TestIDNeverEmpty(t *testing.T) {
	t.Setenv("ACTIVITYCART_INSTANCE_ID", "")
	t.Setenv("DYNO", "")
	assert.NotEmpty(t, ID())
}
