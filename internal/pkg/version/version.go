package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// 构建时通过 -ldflags "-X" 注入
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// BuildInfo 包含构建信息，/healthz 会原样返回
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// vcsSetting 从 debug.ReadBuildInfo 里读取 vcs.* 设置
func vcsSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// Get 汇总版本信息，ldflags 注入的值优先，其次是 Go 自带的 vcs 信息
func Get() BuildInfo {
	bi := BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}
	if bi.Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			bi.Version = info.Main.Version
		}
	}
	if bi.Commit == "unknown" {
		if rev := vcsSetting("vcs.revision"); rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			bi.Commit = rev
		}
	}
	if bi.Date == "unknown" {
		if t := vcsSetting("vcs.time"); t != "" {
			bi.Date = t
		}
	}
	return bi
}

// String 返回一行可读的版本描述
func (b BuildInfo) String() string {
	parts := []string{b.Version}
	if b.Commit != "unknown" {
		parts = append(parts, fmt.Sprintf("commit %s", b.Commit))
	}
	if b.Date != "unknown" {
		parts = append(parts, fmt.Sprintf("built at %s", b.Date))
	}
	return strings.Join(parts, ", ")
}
