package conf

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallsBackToEnvironment(t *testing.T) {
	const key = "CONF_TEST_FALLBACK_VAR"
	assert.NoError(t, os.Setenv(key, "from-environment"))
	t.Cleanup(func() { assert.NoError(t, UnsetEnv(t, key)) })

	assert.Equal(t, "from-environment", GetEnv(key))
}

func TestSetEnvGetEnvRoundTrip(t *testing.T) {
	const key = "CONF_TEST_ROUND_TRIP_VAR"
	t.Cleanup(func() { assert.NoError(t, UnsetEnv(t, key)) })

	assert.NoError(t, SetEnv(t, key, "some-value"))
	assert.Equal(t, "some-value", GetEnv(key))

	assert.NoError(t, SetEnv(t, key, "other-value"))
	assert.Equal(t, "other-value", GetEnv(key))
}

func TestUnsetEnv(t *testing.T) {
	const key = "CONF_TEST_UNSET_VAR"
	assert.NoError(t, SetEnv(t, key, "doomed"))
	assert.NoError(t, UnsetEnv(t, key))
	assert.Equal(t, "", GetEnv(key))
}

func TestLookupEnv(t *testing.T) {
	const key = "CONF_TEST_LOOKUP_VAR"
	t.Cleanup(func() { assert.NoError(t, UnsetEnv(t, key)) })

	_, found := LookupEnv(key)
	assert.False(t, found)

	assert.NoError(t, SetEnv(t, key, "present"))
	value, found := LookupEnv(key)
	assert.True(t, found)
	assert.Equal(t, "present", value)
}
