package entry

import (
	"path/filepath"
	"strings"
)

// ComputeID derives a desktop file's application id from its path relative
// to root: the relative path has its ".desktop" suffix stripped and its
// path separators replaced with "-", per the freedesktop convention (a file
// at "kde/org.kde.foo.desktop" under an applications root becomes
// "kde-org.kde.foo"). If path does not live under root, the bare file stem
// is used instead.
func ComputeID(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}
	rel = trimDesktopSuffix(rel)
	rel = filepath.ToSlash(rel)
	return strings.ReplaceAll(rel, "/", "-")
}

func trimDesktopSuffix(name string) string {
	if len(name) >= len(".desktop") && strings.EqualFold(name[len(name)-len(".desktop"):], ".desktop") {
		return name[:len(name)-len(".desktop")]
	}
	return name
}
