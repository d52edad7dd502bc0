package launcher

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/studioutils/studioutils/internal/platform"
)

// Opener opens a navigation target in a new, independent execution context.
type Opener interface {
	Open(target string) error
}

// Supported opener modes.
const (
	ModeBrowser = "browser"
	ModePrint   = "print"
)

// DispatchOpener returns the Opener for a mode. Unknown modes yield an
// opener that fails every Open call.
func DispatchOpener(mode, command string, w io.Writer) Opener {
	switch mode {
	case "", ModeBrowser:
		return &BrowserOpener{Command: command}
	case ModePrint:
		return &WriterOpener{W: w}
	default:
		return &unknownOpener{mode: mode}
	}
}

// BrowserOpener starts the platform open command and does not wait for it
// to exit; the child is reaped on a background goroutine.
type BrowserOpener struct {
	// Command overrides the platform default (see platform.OpenCommand).
	Command string
}

func (b *BrowserOpener) Open(target string) error {
	name, args, err := platform.CurrentOpenCommand(b.Command, target)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// WriterOpener prints the target instead of opening it.
type WriterOpener struct {
	W io.Writer
}

func (p *WriterOpener) Open(target string) error {
	w := p.W
	if w == nil {
		w = os.Stdout
	}
	_, err := fmt.Fprintln(w, target)
	return err
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(target string) error

func (f OpenerFunc) Open(target string) error { return f(target) }

type unknownOpener struct {
	mode string
}

func (u *unknownOpener) Open(string) error {
	return fmt.Errorf("unknown opener %q: supported openers are %q and %q", u.mode, ModeBrowser, ModePrint)
}
