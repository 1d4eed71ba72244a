package config

import (
	"github.com/jbvmio/nthline/plugin"
	"github.com/jbvmio/nthline/plugin/osio"
)

// InputConfig is a Config for an Input Plugin.
type InputConfig interface {
	CreateInput() (plugin.Input, error)
}

// OutputConfig is a Config for an Output Plugin.
type OutputConfig interface {
	CreateOutput() (plugin.Output, error)
}

// GetInputConfig returns an InputConfig based on the entered ID.
// Returns nil if TypeID is None or an invalid ID is entered.
func GetInputConfig(i plugin.TypeID) InputConfig {
	switch i {
	case plugin.TypeNone:
		return nil
	case plugin.TypeInputFile:
		return &osio.FileInputConfig{}
	case plugin.TypeInputFollow:
		return &osio.FollowInputConfig{}
	default:
		return nil
	}
}

// GetOutputConfig returns an OutputConfig based on the entered ID.
// Returns nil if TypeID is None or an invalid ID is entered.
func GetOutputConfig(i plugin.TypeID) OutputConfig {
	switch i {
	case plugin.TypeNone:
		return nil
	case plugin.TypeOutputStd:
		return &osio.StdOutputConfig{}
	case plugin.TypeOutputWriter:
		return &osio.WriterOutputConfig{}
	default:
		return nil
	}
}
