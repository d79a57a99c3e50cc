package organizer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/Ayoub-D1/downloads-organizer/internal/fsys"
	"github.com/Ayoub-D1/downloads-organizer/internal/output"
	"github.com/Ayoub-D1/downloads-organizer/internal/progress"
	"github.com/Ayoub-D1/downloads-organizer/internal/rules"
	"github.com/Ayoub-D1/downloads-organizer/internal/util"
)

// LockFileName is the lock file created in the source directory to
// keep two passes from reorganizing it at the same time. The leading
// dot also keeps the pass itself from moving it.
const LockFileName = ".downloads-organizer.lock"

// partialExtensions mark files a browser is still writing.
var partialExtensions = map[string]bool{
	".crdownload": true,
	".part":       true,
	".tmp":        true,
}

// Run organizes sourceDir: every direct child regular file is moved
// into a category subdirectory chosen by the extension table. Per-file
// failures are recorded in the returned report and do not stop the
// pass; only setup errors (missing directory, held lock) are returned.
func Run(sourceDir string, opts *Options) (*output.Report, Status, error) {
	applyDefaults(opts)

	info, err := opts.FS.Stat(sourceDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, StatusFatal, fmt.Errorf("source directory does not exist: %s", sourceDir)
		}
		return nil, StatusFatal, fmt.Errorf("cannot access source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, StatusFatal, fmt.Errorf("not a directory: %s", sourceDir)
	}

	if !opts.NoLock && !opts.DryRun {
		lock := flock.New(filepath.Join(sourceDir, LockFileName))
		locked, err := lock.TryLock()
		if err != nil {
			return nil, StatusFatal, fmt.Errorf("acquire lock: %w", err)
		}
		if !locked {
			return nil, StatusFatal, fmt.Errorf("another organize pass is already running on %s", sourceDir)
		}
		defer lock.Unlock()
	}

	entries, err := opts.FS.ReadDir(sourceDir)
	if err != nil {
		return nil, StatusFatal, fmt.Errorf("cannot read source directory: %w", err)
	}

	report := output.NewReport(sourceDir, opts.Logger, opts.QuietMode, opts.Verbose)

	var files []os.DirEntry
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry)
		}
	}
	if len(files) == 0 {
		opts.Logger.Println("No files to organize")
		return report, StatusSuccess, nil
	}

	description := "Organizing"
	if opts.DryRun {
		description = "Previewing"
	}
	bar := progress.NewBar(len(files), description, opts.ShowProgress)

	ensured := make(map[string]bool)
	for _, entry := range files {
		report.Record(processFile(sourceDir, entry, ensured, opts))
		bar.Increment()
	}
	bar.Finish()

	if report.HasFailures() {
		return report, StatusPartialError, nil
	}
	return report, StatusSuccess, nil
}

func applyDefaults(opts *Options) {
	if opts.Table == nil {
		opts.Table = rules.Default()
	}
	if opts.FS == nil {
		opts.FS = fsys.OSFS{}
	}
	if opts.Logger == nil {
		opts.Logger = util.NewLogger(io.Discard)
	}
	if opts.Exclude == nil {
		opts.Exclude = util.ParseGlobSet("")
	}
}

func processFile(sourceDir string, entry os.DirEntry, ensured map[string]bool, opts *Options) output.FileResult {
	name := entry.Name()
	result := output.FileResult{Name: name}

	info, err := entry.Info()
	if err != nil {
		// Disappeared between listing and stat.
		result.Status = output.StatusSkipped
		result.Reason = "file no longer present"
		return result
	}
	result.Size = info.Size()

	if reason, skip, err := skipReason(name, info.Size(), opts); err != nil {
		result.Status = output.StatusFailed
		result.Err = err
		return result
	} else if skip {
		result.Status = output.StatusSkipped
		result.Reason = reason
		return result
	}

	category := opts.Table.Classify(name)
	result.Category = category
	dest := filepath.Join(sourceDir, category, name)

	if opts.DryRun {
		result.Status = output.StatusMoved
		result.Dest = dest
		return result
	}

	categoryDir := filepath.Join(sourceDir, category)
	if !ensured[category] {
		if err := opts.FS.MkdirAll(categoryDir, 0755); err != nil {
			result.Status = output.StatusFailed
			result.Err = fmt.Errorf("create category directory: %w", err)
			return result
		}
		ensured[category] = true
	}

	dest, err = resolveCollision(opts.FS, dest)
	if err != nil {
		result.Status = output.StatusFailed
		result.Err = err
		return result
	}

	if err := opts.FS.Rename(filepath.Join(sourceDir, name), dest); err != nil {
		result.Status = output.StatusFailed
		result.Err = fmt.Errorf("move: %w", err)
		return result
	}

	result.Status = output.StatusMoved
	result.Dest = dest
	return result
}

// skipReason decides, from the name and size alone, whether a file
// stays in place. Pure: no file system access.
func skipReason(name string, size int64, opts *Options) (string, bool, error) {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") {
		return "hidden or temporary file", true, nil
	}
	_, ext := util.SplitExt(name)
	if partialExtensions[util.NormalizeExt(ext)] {
		return "download in progress", true, nil
	}
	if opts.MaxFileSize > 0 && size > opts.MaxFileSize {
		return "file too large", true, nil
	}
	excluded, err := opts.Exclude.Match(name)
	if err != nil {
		return "", false, err
	}
	if excluded {
		return "matches exclude pattern", true, nil
	}
	return "", false, nil
}

// resolveCollision returns dest unchanged when free, otherwise the
// first stem_N.ext variant that does not exist yet.
func resolveCollision(fsImpl fsys.FS, dest string) (string, error) {
	if free, err := pathFree(fsImpl, dest); err != nil {
		return "", err
	} else if free {
		return dest, nil
	}

	dir := filepath.Dir(dest)
	stem, ext := util.SplitExt(filepath.Base(dest))
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if free, err := pathFree(fsImpl, candidate); err != nil {
			return "", err
		} else if free {
			return candidate, nil
		}
	}
}

func pathFree(fsImpl fsys.FS, path string) (bool, error) {
	_, err := fsImpl.Stat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return false, fmt.Errorf("check destination: %w", err)
}
