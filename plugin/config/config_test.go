package config

import (
	"testing"

	"github.com/jbvmio/nthline/plugin"
	"github.com/jbvmio/nthline/plugin/osio"
	"github.com/stretchr/testify/assert"
)

func TestGetInputConfig(t *testing.T) {
	assert.Nil(t, GetInputConfig(plugin.TypeNone))
	assert.Nil(t, GetInputConfig(plugin.TypeOutputStd))
	assert.IsType(t, &osio.FileInputConfig{}, GetInputConfig(plugin.TypeInputFile))
	assert.IsType(t, &osio.FollowInputConfig{}, GetInputConfig(plugin.TypeInputFollow))
}

func TestGetOutputConfig(t *testing.T) {
	assert.Nil(t, GetOutputConfig(plugin.TypeNone))
	assert.Nil(t, GetOutputConfig(plugin.TypeInputFile))
	assert.IsType(t, &osio.StdOutputConfig{}, GetOutputConfig(plugin.TypeOutputStd))
	assert.IsType(t, &osio.WriterOutputConfig{}, GetOutputConfig(plugin.TypeOutputWriter))
}
