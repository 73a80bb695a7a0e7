package util

import (
	"runtime/debug"
)

// Version 构建版本信息
type Version struct {
	Version   string
	GoVersion string
}

// GetVersion 从构建信息中读取版本号
func GetVersion() Version {
	v := Version{
		Version: "dev",
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		v.Version = info.Main.Version
	}
	v.GoVersion = info.GoVersion
	return v
}
