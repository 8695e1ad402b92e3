package svn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrNoInfo is returned when `svn info` succeeds but lacks the last-changed fields.
var ErrNoInfo = errors.New("no last-changed date/revision in svn info output")

// CommandError describes a failed svn invocation.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("svn %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes a command and returns its stdout and stderr.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Client shells out to the svn command-line tool.
type Client struct {
	Binary  string
	Timeout time.Duration
	Run     Runner
}

// NewClient returns a Client using os/exec. An empty binary means "svn".
func NewClient(binary string, timeout time.Duration) *Client {
	if binary == "" {
		binary = "svn"
	}
	return &Client{Binary: binary, Timeout: timeout, Run: ExecRunner}
}

// List returns every path below url, recursively.
func (c *Client) List(ctx context.Context, url string) ([]string, error) {
	out, err := c.run(ctx, "list", "-R", url)
	if err != nil {
		return nil, err
	}
	return ParseList(out), nil
}

// Info returns the last-changed metadata for url/file.
func (c *Client) Info(ctx context.Context, url, file string) (Info, error) {
	out, err := c.run(ctx, "info", JoinURL(url, file))
	if err != nil {
		return Info{}, err
	}
	info, ok := ParseInfo(out)
	if !ok {
		return Info{}, ErrNoInfo
	}
	return info, nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	run := c.Run
	if run == nil {
		run = ExecRunner
	}

	stdout, stderr, err := run(ctx, c.Binary, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return "", &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(string(stderr)),
			Err:    err,
		}
	}
	return string(stdout), nil
}

// JoinURL appends file to a repository url with a single slash.
func JoinURL(url, file string) string {
	return strings.TrimSuffix(url, "/") + "/" + strings.TrimPrefix(file, "/")
}
