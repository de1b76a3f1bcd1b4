package buildinfo

import (
	"runtime/debug"
)

// Modules is a list describing all modules that is part of this build.
var Modules = func() []*debug.Module {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return append([]*debug.Module{&info.Main}, info.Deps...)
}()
