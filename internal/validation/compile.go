package validation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// CompilationTimeout is the default maximum time to wait for typst
	CompilationTimeout = 60 * time.Second

	// DefaultTypstBinary is looked up on PATH when no binary is configured
	DefaultTypstBinary = "typst"

	// pipeWaitDelay bounds how long Run waits for output pipes after typst is
	// killed, in case a child process still holds them open
	pipeWaitDelay = 2 * time.Second
)

// Compiler turns a markup file into a PDF. The bool reports success and the
// string is a human-readable message for either outcome.
type Compiler interface {
	Compile(ctx context.Context, markupPath, outputPath string) (bool, string)
}

// TypstCompiler runs the typst CLI as a subprocess
type TypstCompiler struct {
	// Binary is the executable name or path; empty means DefaultTypstBinary
	Binary string
	// Root is passed as --root so templates above the markup file resolve
	Root string
	// Timeout bounds a single compilation; zero means CompilationTimeout
	Timeout time.Duration
}

// ErrorCompiler is a Compiler that can also report failures as typed errors
type ErrorCompiler interface {
	Compiler
	CompileTypst(ctx context.Context, markupPath, outputPath string) (string, error)
}

// Compile implements Compiler.
func (c *TypstCompiler) Compile(ctx context.Context, markupPath, outputPath string) (bool, string) {
	_, err := c.CompileTypst(ctx, markupPath, outputPath)
	return CompileOutcome(outputPath, err)
}

// CompileOutcome turns the result of CompileTypst into the success flag and
// message reported by Compiler.
func CompileOutcome(outputPath string, err error) (bool, string) {
	if err == nil {
		return true, fmt.Sprintf("PDF generated: %s", outputPath)
	}

	var unavailable *CompilerUnavailableError
	if errors.As(err, &unavailable) {
		return false, unavailable.Error()
	}
	var compErr *CompilationError
	if errors.As(err, &compErr) && compErr.LogOutput != "" {
		return false, fmt.Sprintf("Compilation failed: %s", compErr.LogOutput)
	}
	return false, fmt.Sprintf("Compilation failed: %v", err)
}

// CompileTypst compiles markupPath into outputPath and returns the compiler's
// combined output. typst writes to a temp file next to outputPath, which is
// renamed into place only after a successful compile.
func (c *TypstCompiler) CompileTypst(ctx context.Context, markupPath, outputPath string) (logOutput string, err error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultTypstBinary
	}
	binPath, err := exec.LookPath(binary)
	if err != nil {
		return "", &CompilerUnavailableError{Binary: binary, Cause: err}
	}

	if _, err := os.Stat(markupPath); err != nil {
		return "", &FileReadError{
			Message: fmt.Sprintf("markup file not found: %s", markupPath),
			Cause:   err,
		}
	}

	root := c.Root
	if root == "" {
		root = filepath.Dir(markupPath)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = CompilationTimeout
	}

	// the .pdf suffix lets typst infer the output format
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".tmp-*.pdf")
	if err != nil {
		return "", &CompilationError{Message: "failed to create temp output", Cause: err}
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binPath, "compile", "--root", root, markupPath, tmpPath)
	cmd.WaitDelay = pipeWaitDelay

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	logOutput = stdout.String() + stderr.String()

	if ctx.Err() == context.DeadlineExceeded {
		return logOutput, &CompilationError{
			Message:   fmt.Sprintf("typst timed out after %s", timeout),
			LogOutput: stderr.String(),
			Cause:     ctx.Err(),
		}
	}
	if runErr != nil {
		return logOutput, &CompilationError{
			Message:   "typst exited with an error",
			LogOutput: stderr.String(),
			Cause:     runErr,
		}
	}
	info, statErr := os.Stat(tmpPath)
	if statErr == nil && info.Size() == 0 {
		statErr = errors.New("output is empty")
	}
	if statErr != nil {
		return logOutput, &CompilationError{
			Message:   "PDF was not generated",
			LogOutput: stderr.String(),
			Cause:     statErr,
		}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return logOutput, &CompilationError{Message: "failed to set PDF permissions", Cause: err}
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		return logOutput, &CompilationError{Message: "failed to move PDF into place", Cause: err}
	}

	return logOutput, nil
}
