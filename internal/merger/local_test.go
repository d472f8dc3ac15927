package merger

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/prkit/mergepr/internal/message"
	"github.com/prkit/mergepr/pkg/model"
)

// fakeRunner records git invocations and fails at a chosen step. It
// reads the -F message file while the merge step runs, before cleanup.
type fakeRunner struct {
	calls       [][]string
	failAt      int
	failStderr  string
	msgFilePath string
	msgFileBody string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (model.CommandResult, error) {
	f.calls = append(f.calls, append([]string{name}, args...))

	for i, arg := range args {
		if arg == "-F" && i+1 < len(args) {
			f.msgFilePath = args[i+1]
			if data, err := os.ReadFile(args[i+1]); err == nil {
				f.msgFileBody = string(data)
			}
		}
	}

	if f.failAt == len(f.calls) {
		return model.CommandResult{Stderr: f.failStderr, ExitCode: 1}, nil
	}
	return model.CommandResult{}, nil
}

func testInfo() *model.PullRequestInfo {
	return &model.PullRequestInfo{
		Number:  42,
		Title:   "Fix bug",
		Author:  "alice",
		HeadSHA: "abc1234",
	}
}

func TestLocalMerge_CommandSequence(t *testing.T) {
	runner := &fakeRunner{}
	m := NewLocalMerger(LocalOptions{Runner: runner})

	msg := message.Compose(testInfo(), message.DefaultWidth)
	result, err := m.Merge(context.Background(), model.RepoRef{Owner: "o", Name: "r"}, testInfo(), msg)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if !result.Merged {
		t.Error("expected merged result")
	}

	if len(runner.calls) != 3 {
		t.Fatalf("expected 3 git commands, got %d: %v", len(runner.calls), runner.calls)
	}

	fetch := strings.Join(runner.calls[0], " ")
	if fetch != "git fetch origin pull/42/head" {
		t.Errorf("unexpected fetch command: %q", fetch)
	}

	checkout := strings.Join(runner.calls[1], " ")
	if checkout != "git checkout main" {
		t.Errorf("unexpected checkout command: %q", checkout)
	}

	merge := runner.calls[2]
	if merge[1] != "merge" || merge[2] != "--no-ff" || merge[3] != "abc1234" || merge[4] != "-F" {
		t.Errorf("unexpected merge command: %v", merge)
	}

	if runner.msgFileBody != msg.Full() {
		t.Errorf("message file mismatch:\n got %q\nwant %q", runner.msgFileBody, msg.Full())
	}
}

func TestLocalMerge_MessageFileRemoved(t *testing.T) {
	for _, failAt := range []int{0, 1, 2, 3} {
		runner := &fakeRunner{failAt: failAt, failStderr: "boom"}
		m := NewLocalMerger(LocalOptions{Runner: runner})

		msg := message.Compose(testInfo(), message.DefaultWidth)
		_, _ = m.Merge(context.Background(), model.RepoRef{Owner: "o", Name: "r"}, testInfo(), msg)

		if runner.msgFilePath == "" {
			// Failed before the merge step ran; nothing to check.
			continue
		}
		if _, err := os.Stat(runner.msgFilePath); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("failAt=%d: expected message file removed, stat err = %v", failAt, err)
		}
	}
}

func TestLocalMerge_StopsOnFirstFailure(t *testing.T) {
	runner := &fakeRunner{failAt: 2, failStderr: "pathspec 'main' did not match"}
	m := NewLocalMerger(LocalOptions{Runner: runner})

	msg := message.Compose(testInfo(), message.DefaultWidth)
	_, err := m.Merge(context.Background(), model.RepoRef{Owner: "o", Name: "r"}, testInfo(), msg)
	if err == nil {
		t.Fatal("expected error from failed checkout")
	}
	if !strings.Contains(err.Error(), "pathspec 'main' did not match") {
		t.Errorf("expected command stderr surfaced, got %q", err)
	}
	if len(runner.calls) != 2 {
		t.Errorf("expected run to stop after checkout, got %d commands", len(runner.calls))
	}
}

func TestLocalMerge_CustomBranchAndRemote(t *testing.T) {
	runner := &fakeRunner{}
	m := NewLocalMerger(LocalOptions{MainBranch: "master", Remote: "upstream", Runner: runner})

	msg := message.Compose(testInfo(), message.DefaultWidth)
	if _, err := m.Merge(context.Background(), model.RepoRef{Owner: "o", Name: "r"}, testInfo(), msg); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if got := strings.Join(runner.calls[0], " "); got != "git fetch upstream pull/42/head" {
		t.Errorf("unexpected fetch command: %q", got)
	}
	if got := strings.Join(runner.calls[1], " "); got != "git checkout master" {
		t.Errorf("unexpected checkout command: %q", got)
	}
}
