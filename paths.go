package xlwrite

import (
	"os"
	"path"
	"path/filepath"
	"time"
)

// DesktopDirEnv overrides the directory returned by DesktopDir.
const DesktopDirEnv = "XLWRITE_DESKTOP_DIR"

// outputZone stamps default file names; it is fixed so the name does not
// depend on the host's locale or time zone.
var outputZone = time.FixedZone("UTC+9", 9*60*60)

// DesktopDir returns $XLWRITE_DESKTOP_DIR, or the Desktop folder in the
// user's home directory.
func DesktopDir() (string, error) {
	if v := os.Getenv(DesktopDirEnv); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Desktop"), nil
}

// DefaultOutputPath returns "<dir>/xlsx_<YYYYMMDDHHMMSS>.xlsx" for t,
// with forward slashes. Writes issued in different seconds never collide.
func DefaultOutputPath(dir string, t time.Time) string {
	name := "xlsx_" + t.In(outputZone).Format("20060102150405") + ".xlsx"
	return path.Join(filepath.ToSlash(dir), name)
}
