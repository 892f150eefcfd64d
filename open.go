package xlwrite

import (
	"context"
	"fmt"
	"path/filepath"
)

// Opener is implemented by engines that can reveal a written workbook.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Open asks the engine to open the output file with its default handler.
// Engines that do not implement Opener fall back to PowerShell{}. It does
// not wait for the handler to exit, so ctx should outlive the caller's
// write deadline (see context.WithoutCancel).
func (w *Workbook) Open(ctx context.Context) error {
	path, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("open %q: %w", w.path, err)
	}
	opener, ok := w.opts.engine.(Opener)
	if !ok {
		w.logger.Debug("Engine cannot open files, using the default shell", "engine", fmt.Sprintf("%T", w.opts.engine))
		opener = PowerShell{}
	}
	return opener.Open(ctx, path)
}

// Open starts the default handler for path through the shell.
func (p PowerShell) Open(ctx context.Context, path string) error {
	cmd := p.shellCommand(ctx, nativePath(path))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
