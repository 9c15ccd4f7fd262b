package utils

import (
	"testing"

	"github.com/nisavid/32health-assmt-claim-process/conf"
	"github.com/stretchr/testify/assert"
)

func TestGetEnvInt(t *testing.T) {
	const key = "UTILS_TEST_INT_VAR"
	t.Cleanup(func() { assert.NoError(t, conf.UnsetEnv(t, key)) })

	assert.Equal(t, 42, GetEnvInt(key, 42))

	assert.NoError(t, conf.SetEnv(t, key, "7"))
	assert.Equal(t, 7, GetEnvInt(key, 42))

	assert.NoError(t, conf.SetEnv(t, key, "not-a-number"))
	assert.Equal(t, 42, GetEnvInt(key, 42))
}

func TestGetEnvString(t *testing.T) {
	const key = "UTILS_TEST_STRING_VAR"
	t.Cleanup(func() { assert.NoError(t, conf.UnsetEnv(t, key)) })

	assert.Equal(t, "fallback", GetEnvString(key, "fallback"))

	assert.NoError(t, conf.SetEnv(t, key, "configured"))
	assert.Equal(t, "configured", GetEnvString(key, "fallback"))
}
