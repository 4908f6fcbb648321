// Package buildtest contains helpers for testing the build driver. The
// general idea is to run the pipeline against a fake shellx library
// that collects commands instead of executing them, and then to
// compare the collected commands with the expected sequence.
package buildtest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/hdfkit/hdf5build/internal/shellx"
	"github.com/hdfkit/hdf5build/internal/shellx/shellxtesting"
	"golang.org/x/sys/execabs"
)

// SimpleCommandCollector implements [shellx.Dependencies] and
// collects commands rather than executing them. LookPath returns the
// given file name unchanged, so the collected argv[0] is the name the
// caller asked for.
type SimpleCommandCollector struct {
	Commands []*execabs.Cmd
}

var _ shellx.Dependencies = &SimpleCommandCollector{}

// CmdOutput implements shellx.Dependencies
func (cc *SimpleCommandCollector) CmdOutput(c *execabs.Cmd) ([]byte, error) {
	cc.Commands = append(cc.Commands, c)
	return nil, nil
}

// CmdRun implements shellx.Dependencies
func (cc *SimpleCommandCollector) CmdRun(c *execabs.Cmd) error {
	cc.Commands = append(cc.Commands, c)
	return nil
}

// LookPath implements shellx.Dependencies
func (cc *SimpleCommandCollector) LookPath(file string) (string, error) {
	return file, nil
}

// ExecExpectations describes what we expect of a single command. The
// zero value matches a command with empty argv and environment, which
// never occurs in practice.
type ExecExpectations struct {
	// Env contains the environment variables specific to this
	// command, i.e., minus the ones inherited from the process.
	Env []string

	// Argv contains the expected argv. The first element matches
	// when the actual argv[0] ends with it, because the actual
	// value is an absolute path chosen by the system. Subsequent
	// elements match exactly, except that an element starting with
	// "*" matches when the actual argument contains the rest.
	Argv []string

	// Dir, when nonempty, matches the command working directory
	// with the same rules as the non-initial Argv elements.
	Dir string
}

// ErrCheckFailed means a command does not match expectations.
var ErrCheckFailed = errors.New("buildtest: check failed")

// CheckManyCommands verifies that the given commands match the given
// expectations in order.
func CheckManyCommands(cmd []*execabs.Cmd, tee []ExecExpectations) error {
	if len(cmd) != len(tee) {
		return fmt.Errorf("%w: expected %d commands, got %d", ErrCheckFailed, len(tee), len(cmd))
	}
	for idx := 0; idx < len(cmd); idx++ {
		if err := CheckSingleCommand(cmd[idx], tee[idx]); err != nil {
			return fmt.Errorf("command %d: %w", idx, err)
		}
	}
	return nil
}

// CheckSingleCommand verifies that a single command matches a
// single expectation.
func CheckSingleCommand(cmd *execabs.Cmd, tee ExecExpectations) error {
	if err := checkArgv(shellxtesting.MustArgv(cmd), tee.Argv); err != nil {
		return err
	}
	if err := checkEnv(shellxtesting.RemoveCommonEnvironmentVariables(cmd), tee.Env); err != nil {
		return err
	}
	if tee.Dir != "" && !matchArg(cmd.Dir, tee.Dir) {
		return fmt.Errorf("%w: expected dir %s, got %s", ErrCheckFailed, tee.Dir, cmd.Dir)
	}
	return nil
}

func checkArgv(got, expect []string) error {
	if len(got) != len(expect) {
		return fmt.Errorf("%w: expected argv %v, got %v", ErrCheckFailed, expect, got)
	}
	if len(expect) >= 1 && !strings.HasSuffix(got[0], expect[0]) {
		return fmt.Errorf("%w: expected argv0 %s, got %s", ErrCheckFailed, expect[0], got[0])
	}
	for idx := 1; idx < len(expect); idx++ {
		if !matchArg(got[idx], expect[idx]) {
			return fmt.Errorf("%w: expected argv[%d] %s, got %s", ErrCheckFailed, idx, expect[idx], got[idx])
		}
	}
	return nil
}

func checkEnv(got, expect []string) error {
	got = append([]string{}, got...)
	expect = append([]string{}, expect...)
	sort.Strings(got)
	sort.Strings(expect)
	if diff := cmp.Diff(expect, got); diff != "" {
		return fmt.Errorf("%w: environment mismatch: %s", ErrCheckFailed, diff)
	}
	return nil
}

// matchArg implements the matching rules documented
// in [ExecExpectations].
func matchArg(got, expect string) bool {
	if strings.HasPrefix(expect, "*") {
		return strings.Contains(got, strings.TrimPrefix(expect, "*"))
	}
	return got == expect
}
