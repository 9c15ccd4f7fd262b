package utils

import (
	"strconv"

	"github.com/nisavid/32health-assmt-claim-process/conf"
)

func GetEnvInt(varName string, defaultVal int) int {
	v := conf.GetEnv(varName)
	if v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return defaultVal
}

func GetEnvString(varName string, defaultVal string) string {
	v := conf.GetEnv(varName)
	if v != "" {
		return v
	}
	return defaultVal
}
