// Package runner invokes the headless LM CLI as a subprocess and parses its
// stream-json output into structured events.
package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/droverhq/drover/pkg/config"
)

// maxStreamLineBytes bounds a single stream-json line. Tool results can carry
// large file contents.
const maxStreamLineBytes = 4 * 1024 * 1024

// InvokeRequest describes one CLI invocation.
type InvokeRequest struct {
	Prompt       string
	Model        string
	AllowedTools []string
	WorkDir      string
	Timeout      time.Duration // falls back to the configured default when zero
}

// Result is the terminal outcome of an invocation, including partial
// accounting when the run failed midway.
type Result struct {
	Success         bool
	Output          string
	ErrorMessage    string
	CostUSD         float64
	InputTokens     int
	OutputTokens    int
	DurationSeconds float64
}

// Runner invokes the CLI. The onEvent callback receives every parsed stream
// event in order; it must not block for long since it backpressures stdout.
type Runner interface {
	Invoke(ctx context.Context, req InvokeRequest, onEvent func(StreamEvent)) (*Result, error)
}

// CLIRunner runs the configured CLI binary in print mode with stream-json
// output. One invocation is one subprocess; the process is killed when the
// context is cancelled or the deadline passes.
type CLIRunner struct {
	cfg *config.CLIConfig
}

// NewCLIRunner creates a CLIRunner.
func NewCLIRunner(cfg *config.CLIConfig) *CLIRunner {
	return &CLIRunner{cfg: cfg}
}

// buildArgs constructs the CLI argument list for an invocation. The prompt
// goes over stdin, never argv, so payload size and shell quoting are
// non-issues.
func (r *CLIRunner) buildArgs(req InvokeRequest) []string {
	args := []string{
		"-p",
		"--verbose",
		"--output-format", "stream-json",
	}
	if req.Model != "" {
		args = append(args, "--model", req.Model)
	}
	if len(req.AllowedTools) > 0 {
		args = append(args, "--allowedTools", strings.Join(req.AllowedTools, ","))
	}
	return args
}

// Invoke runs the CLI once and blocks until it exits or the deadline passes.
// Returns partial accounting in Result even on failure; the error classifies
// the outcome (ErrSpawnFailed, ErrTimeout, ErrCancelled, ErrNonZeroExit).
func (r *CLIRunner) Invoke(ctx context.Context, req InvokeRequest, onEvent func(StreamEvent)) (*Result, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = r.cfg.InvokeTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := slog.With("binary", r.cfg.Binary, "model", req.Model)

	cmd := exec.CommandContext(runCtx, r.cfg.Binary, r.buildArgs(req)...)
	cmd.Stdin = strings.NewReader(req.Prompt)
	if req.WorkDir != "" {
		cmd.Dir = req.WorkDir
	} else {
		cmd.Dir = r.cfg.WorkDir
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	// Parse stdout line by line. Unknown event types are forwarded verbatim;
	// malformed lines are logged and skipped.
	var (
		resultEvent *ResultEvent
		textParts   []string
	)
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), maxStreamLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		event, err := ParseLine(line)
		if err != nil {
			log.Warn("Skipping malformed stream line", "error", err)
			continue
		}

		if event.Type == EventAssistant && event.Text != "" {
			textParts = append(textParts, event.Text)
		}
		if event.Type == EventResult {
			resultEvent = event.Result
		}

		if onEvent != nil {
			onEvent(event)
		}
	}
	scanErr := scanner.Err()

	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	result := r.buildResult(resultEvent, textParts, elapsed)

	// Classify the outcome. Context errors win over exit codes: a killed
	// process reports an unhelpful -1 exit status. The no-result placeholder
	// from buildResult is replaced by the more specific cause.
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.Success = false
		if resultEvent == nil || result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("timed out after %v", timeout)
		}
		return result, ErrTimeout
	case errors.Is(runCtx.Err(), context.Canceled):
		result.Success = false
		if resultEvent == nil || result.ErrorMessage == "" {
			result.ErrorMessage = "cancelled"
		}
		return result, ErrCancelled
	case waitErr != nil:
		var exitErr *exec.ExitError
		result.Success = false
		if resultEvent == nil || result.ErrorMessage == "" {
			result.ErrorMessage = strings.TrimSpace(stderr.String())
			if result.ErrorMessage == "" {
				result.ErrorMessage = waitErr.Error()
			}
		}
		if errors.As(waitErr, &exitErr) {
			return result, fmt.Errorf("%w: code %d", ErrNonZeroExit, exitErr.ExitCode())
		}
		return result, fmt.Errorf("%w: %v", ErrNonZeroExit, waitErr)
	case scanErr != nil:
		result.Success = false
		result.ErrorMessage = fmt.Sprintf("failed to read CLI output: %v", scanErr)
		return result, fmt.Errorf("failed to read CLI output: %w", scanErr)
	}

	return result, nil
}

// buildResult folds the terminal result event and accumulated assistant text
// into a Result. A run that never emitted a result record is a failure with
// zero accounting; its partial transcript and wall-clock duration are still
// returned.
func (r *CLIRunner) buildResult(resultEvent *ResultEvent, textParts []string, elapsed time.Duration) *Result {
	result := &Result{
		Success:         true,
		Output:          strings.Join(textParts, "\n"),
		DurationSeconds: elapsed.Seconds(),
	}

	if resultEvent == nil {
		result.Success = false
		result.ErrorMessage = "CLI exited without a result record"
		return result
	}

	result.CostUSD = resultEvent.TotalCostUSD
	result.InputTokens = resultEvent.Usage.InputTokens
	result.OutputTokens = resultEvent.Usage.OutputTokens
	if resultEvent.DurationMS > 0 {
		result.DurationSeconds = float64(resultEvent.DurationMS) / 1000.0
	}
	if resultEvent.Result != "" {
		result.Output = resultEvent.Result
	}
	if resultEvent.IsError {
		result.Success = false
		result.ErrorMessage = resultEvent.Result
	}

	return result
}
