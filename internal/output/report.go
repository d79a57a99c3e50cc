package output

import (
	"fmt"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Ayoub-D1/downloads-organizer/internal/util"
)

type FileStatus string

const (
	StatusMoved   FileStatus = "moved"
	StatusSkipped FileStatus = "skipped"
	StatusFailed  FileStatus = "failed"
)

// FileResult records the outcome for one directory entry.
type FileResult struct {
	Name     string
	Category string
	Dest     string
	Size     int64
	Status   FileStatus
	Reason   string // skip reason
	Err      error  // failure cause
}

// sampleLimit caps how many filenames a category or section lists
// before collapsing to a count.
const sampleLimit = 5

// Report accumulates per-file results for one organize pass and
// renders the final summary.
type Report struct {
	source    string
	startTime time.Time
	endTime   time.Time
	files     []FileResult
	logger    util.Logger
	quietMode bool
	verbose   bool
}

func NewReport(source string, logger util.Logger, quietMode, verbose bool) *Report {
	return &Report{
		source:    source,
		startTime: time.Now(),
		logger:    logger,
		quietMode: quietMode,
		verbose:   verbose,
	}
}

// Record adds one file outcome and logs it according to verbosity.
func (r *Report) Record(file FileResult) {
	r.files = append(r.files, file)

	switch file.Status {
	case StatusMoved:
		r.logger.VerbosePrintf("✓ %s → %s/\n", file.Name, file.Category)
	case StatusSkipped:
		r.logger.VerbosePrintf("- %s (skipped: %s)\n", file.Name, file.Reason)
	case StatusFailed:
		r.logger.Printf("✗ %s: %v\n", file.Name, file.Err)
	}
}

// Counts returns the number of moved, skipped, and failed files.
func (r *Report) Counts() (moved, skipped, failed int) {
	for _, file := range r.files {
		switch file.Status {
		case StatusMoved:
			moved++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}
	return
}

// HasFailures reports whether any per-file move failed.
func (r *Report) HasFailures() bool {
	_, _, failed := r.Counts()
	return failed > 0
}

// MovedByCategory returns moved filenames grouped by category.
func (r *Report) MovedByCategory() map[string][]string {
	byCategory := make(map[string][]string)
	for _, file := range r.files {
		if file.Status == StatusMoved {
			byCategory[file.Category] = append(byCategory[file.Category], file.Name)
		}
	}
	return byCategory
}

// PrintSummary renders the per-category table and the closing totals line.
func (r *Report) PrintSummary() {
	r.endTime = time.Now()
	if r.quietMode {
		return
	}

	moved, skipped, failed := r.Counts()
	var movedBytes int64
	for _, file := range r.files {
		if file.Status == StatusMoved {
			movedBytes += file.Size
		}
	}

	if moved > 0 {
		r.logger.Println(r.renderCategoryTable())
	}

	if skipped > 0 && r.verbose {
		r.printSection("Skipped", StatusSkipped)
	}
	if failed > 0 {
		r.printSection("Failed", StatusFailed)
	}

	elapsed := r.endTime.Sub(r.startTime)
	summary := fmt.Sprintf("Files moved: %d", moved)
	if skipped > 0 {
		summary += fmt.Sprintf(", skipped: %d", skipped)
	}
	if failed > 0 {
		summary += fmt.Sprintf(", failed: %d", failed)
	}
	summary += fmt.Sprintf(", size: %s", formatBytes(movedBytes))
	summary += fmt.Sprintf(", time: %s", formatDuration(elapsed))
	r.logger.Println(summary)
	r.logger.VerbosePrintf("Organized files location: %s\n", r.source)
}

func (r *Report) renderCategoryTable() string {
	type categoryStats struct {
		files []string
		bytes int64
	}
	stats := make(map[string]*categoryStats)
	for _, file := range r.files {
		if file.Status != StatusMoved {
			continue
		}
		cs := stats[file.Category]
		if cs == nil {
			cs = &categoryStats{}
			stats[file.Category] = cs
		}
		cs.files = append(cs.files, file.Name)
		cs.bytes += file.Size
	}

	categories := make([]string, 0, len(stats))
	for category := range stats {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Files", "Size", "Examples"})
	for _, category := range categories {
		cs := stats[category]
		tw.AppendRow(table.Row{
			category,
			len(cs.files),
			formatBytes(cs.bytes),
			sampleNames(cs.files),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func (r *Report) printSection(title string, status FileStatus) {
	r.logger.Printf("%s:\n", title)
	shown := 0
	total := 0
	for _, file := range r.files {
		if file.Status != status {
			continue
		}
		total++
		if shown >= sampleLimit {
			continue
		}
		shown++
		if status == StatusFailed {
			r.logger.Printf("  • %s: %v\n", file.Name, file.Err)
		} else {
			r.logger.Printf("  • %s: %s\n", file.Name, file.Reason)
		}
	}
	if total > shown {
		r.logger.Printf("  ... and %d more\n", total-shown)
	}
}

func sampleNames(names []string) string {
	if len(names) <= sampleLimit {
		out := ""
		for i, name := range names {
			if i > 0 {
				out += ", "
			}
			out += name
		}
		return out
	}
	out := ""
	for i := 0; i < 3; i++ {
		if i > 0 {
			out += ", "
		}
		out += names[i]
	}
	return fmt.Sprintf("%s, +%d more", out, len(names)-3)
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}
