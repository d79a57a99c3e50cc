package progress

import (
	"fmt"
	"io"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// Bar wraps a progress bar counting processed files.
type Bar struct {
	bar          *progressbar.ProgressBar
	showProgress bool
}

// NewBar creates a progress bar over totalFiles entries. The
// showProgress parameter controls whether progress should be shown
// (typically util.IsATTY() && !quietMode && !verboseMode).
func NewBar(totalFiles int, description string, showProgress bool) *Bar {
	var writer io.Writer = ansi.NewAnsiStdout()
	if !showProgress {
		writer = io.Discard
	}

	bar := progressbar.NewOptions(totalFiles,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", description)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	return &Bar{
		bar:          bar,
		showProgress: showProgress,
	}
}

// Increment advances the bar by one file.
func (b *Bar) Increment() error {
	return b.bar.Add(1)
}

// Describe sets the description of the progress bar
func (b *Bar) Describe(description string) {
	b.bar.Describe(description)
}

// Finish completes the progress bar and prints a newline if progress is shown
func (b *Bar) Finish() error {
	err := b.bar.Finish()
	if b.showProgress {
		fmt.Println()
	}
	return err
}
