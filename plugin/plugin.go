package plugin

import (
	"context"
)

// TypeID are used to assign IDs to available Plugins.
type TypeID int

// Available PluginTypes:
const (
	TypeNone TypeID = iota
	TypeInputFile
	TypeInputFollow
	TypeOutputStd
	TypeOutputWriter
)

var idStrings = [...]string{
	`none`,
	`FileInput`,
	`FollowInput`,
	`StdOutput`,
	`WriterOutput`,
}

func (id TypeID) String() string {
	if id < 0 || int(id) >= len(idStrings) {
		return `unknown`
	}
	return idStrings[id]
}

// Input is a source of lines.
type Input interface {
	// Open acquires the underlying resource. Close must be called once Open succeeds.
	Open() error
	// ReadLine returns the next line without its line terminator, or io.EOF once the
	// source is exhausted.
	ReadLine(ctx context.Context) (string, error)
	// Close releases the underlying resource.
	Close() error
}

// Output is a destination for lines.
type Output interface {
	// WriteLine writes s followed by a newline.
	WriteLine(s string) error
	// Flush writes any buffered data to the underlying destination.
	Flush() error
}
