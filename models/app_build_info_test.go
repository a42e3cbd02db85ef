package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", " ", "")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: 1.2.0\nBuild date: N/A\nBuild commit: N/A", info.String())

	var zero AppBuildInfo
	assert.Equal(t, "N/A", zero.BuildVersion())
}
