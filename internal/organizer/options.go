package organizer

import (
	"github.com/Ayoub-D1/downloads-organizer/internal/fsys"
	"github.com/Ayoub-D1/downloads-organizer/internal/rules"
	"github.com/Ayoub-D1/downloads-organizer/internal/util"
)

// Options holds options for an organize pass
type Options struct {
	Table        *rules.Table  // extension table; nil means the built-in table
	FS           fsys.FS       // file system; nil means the real one
	Logger       util.Logger   // destination for per-file and summary output
	Exclude      *util.GlobSet // filename patterns to leave in place
	MaxFileSize  int64         // skip files larger than this; 0 disables
	DryRun       bool          // report planned moves without touching anything
	QuietMode    bool
	Verbose      bool
	ShowProgress bool // progress bar (typically util.IsATTY() && !QuietMode && !Verbose)
	NoLock       bool // skip the source-directory lock
}

// Status represents the exit status of an organize pass
type Status int

const (
	StatusSuccess      Status = 0
	StatusFatal        Status = 1
	StatusPartialError Status = 2
)
