package main

import (
	"io"
	"runtime"
	"runtime/debug"

	"github.com/bjaus/ufmt"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = VersionUnknown

func runVersion(stdout io.Writer) int {
	if err := ufmt.Writeln(ufmt.IOWriter(stdout), VersionTextTemplate, buildVersion(), runtime.Version()); err != nil {
		return ExitCodeError
	}
	return ExitCodeSuccess
}

func buildVersion() string {
	if version != VersionUnknown {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}
