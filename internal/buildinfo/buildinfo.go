package buildinfo

import "runtime/debug"

var BuildInfo *debug.BuildInfo

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		BuildInfo = bi
	}
}

func Version() string {
	if BuildInfo == nil || BuildInfo.Main.Version == "" {
		return "unknown"
	}
	return BuildInfo.Main.Version
}
