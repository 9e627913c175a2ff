package console

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/Iron-Ham/cookieshell/internal/logging"
	"github.com/Iron-Ham/cookieshell/internal/shell"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newConsole(opts ...Option) *Console {
	in := shell.New(shell.WithBakeDelay(0))
	return New(in, shell.NewRandom(1), opts...)
}

// stubResolver returns a canned result, optionally blocking until released.
type stubResolver struct {
	res     shell.Result
	next    shell.Session
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubResolver) Resolve(string, shell.Session, shell.Random) (shell.Result, shell.Session, error) {
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.res, s.next, s.err
}

func TestNewShowsWelcome(t *testing.T) {
	c := newConsole()

	if diff := cmp.Diff(WelcomeLines(), c.Lines()); diff != "" {
		t.Errorf("welcome mismatch (-want +got):\n%s", diff)
	}
	if c.Session().Folder != shell.FolderRoot {
		t.Errorf("Folder = %q, want root", c.Session().Folder)
	}
	if c.Locked() || c.Busy() {
		t.Error("new console should be idle and unlocked")
	}
	if c.Theme() != ThemeLight {
		t.Errorf("Theme = %q, want light", c.Theme())
	}
}

func TestSubmitBlankIsNoOp(t *testing.T) {
	c := newConsole()
	before := c.Lines()

	up, err := c.Submit("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(up.Lines) != 0 {
		t.Errorf("blank input appended %d lines", len(up.Lines))
	}
	if diff := cmp.Diff(before, c.Lines()); diff != "" {
		t.Errorf("blank input changed scrollback:\n%s", diff)
	}
}

func TestSubmitOutput(t *testing.T) {
	c := newConsole()

	up, err := c.Submit("COOKIE cd Cookie Jar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Line{
		{Kind: LineCommand, Content: "COOKIE cd Cookie Jar"},
		{Kind: LineOutput, Content: `📂 Switched to folder: "cookie jar"`, Style: shell.StyleSuccess},
	}
	if diff := cmp.Diff(want, up.Lines); diff != "" {
		t.Errorf("update lines (-want +got):\n%s", diff)
	}
	lines := c.Lines()
	if diff := cmp.Diff(want, lines[len(lines)-2:]); diff != "" {
		t.Errorf("scrollback tail (-want +got):\n%s", diff)
	}
	if c.Session().Folder != shell.FolderCookieJar {
		t.Errorf("Folder = %q, want cookie jar", c.Session().Folder)
	}
}

func TestSubmitClear(t *testing.T) {
	c := newConsole()
	if _, err := c.Submit("cookie ls"); err != nil {
		t.Fatal(err)
	}

	up, err := c.Submit("cookie clear")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !up.Cleared {
		t.Error("expected Cleared")
	}
	if got := c.Lines(); len(got) != 0 {
		t.Errorf("scrollback has %d lines after clear, want 0", len(got))
	}

	if _, err := c.Submit("cookie eat"); err != nil {
		t.Fatal(err)
	}
	if got := c.Lines(); len(got) != 2 {
		t.Errorf("scrollback has %d lines, want 2", len(got))
	}
}

func TestSubmitExitLocks(t *testing.T) {
	c := newConsole()

	up, err := c.Submit("cookie exit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !up.Locked || !c.Locked() {
		t.Error("expected console to be locked")
	}
	last := c.Lines()[len(c.Lines())-1]
	if !strings.Contains(last.Content, "Thanks for using Cookie Shell") {
		t.Errorf("last line = %q", last.Content)
	}

	before := c.Lines()
	if _, err := c.Submit("cookie help"); !errors.Is(err, ErrLocked) {
		t.Errorf("err = %v, want ErrLocked", err)
	}
	if diff := cmp.Diff(before, c.Lines()); diff != "" {
		t.Errorf("locked submit changed scrollback:\n%s", diff)
	}
}

func TestSubmitThemeToggles(t *testing.T) {
	c := newConsole(WithTheme(ThemeDark))

	up, err := c.Submit("cookie theme")
	if err != nil {
		t.Fatal(err)
	}
	if up.Theme != ThemeLight || c.Theme() != ThemeLight {
		t.Errorf("theme = %q/%q, want light", up.Theme, c.Theme())
	}

	up, _ = c.Submit("cookie theme")
	if up.Theme != ThemeDark {
		t.Errorf("theme = %q, want dark", up.Theme)
	}
}

func TestSubmitInternalError(t *testing.T) {
	var buf bytes.Buffer
	start := shell.Session{Folder: shell.FolderEvilCookieJar}
	r := &stubResolver{err: shell.ErrInternal, next: shell.NewSession()}
	c := New(r, shell.NewRandom(1), WithLogger(logging.NewWriterLogger(&buf, logging.LevelDebug)))
	c.session = start

	up, err := c.Submit("cookie fortune")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Line{
		{Kind: LineCommand, Content: "cookie fortune"},
		{Kind: LineOutput, Content: ErrorMessage, Style: shell.StyleError},
	}
	if diff := cmp.Diff(want, up.Lines); diff != "" {
		t.Errorf("update lines (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(start, c.Session()); diff != "" {
		t.Errorf("session changed on failure (-want +got):\n%s", diff)
	}
	if c.Busy() {
		t.Error("console still busy after failure")
	}
	if !strings.Contains(buf.String(), "command failed") {
		t.Errorf("failure not logged: %s", buf.String())
	}
}

func TestSubmitBusy(t *testing.T) {
	r := &stubResolver{
		res:     shell.Result{Kind: shell.KindOutput, Content: "done"},
		next:    shell.NewSession(),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := New(r, shell.NewRandom(1))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := c.Submit("cookie bake"); err != nil {
			t.Errorf("first submit: %v", err)
		}
	}()

	<-r.started
	if !c.Busy() {
		t.Error("expected console to be busy")
	}
	if _, err := c.Submit("cookie eat"); !errors.Is(err, ErrBusy) {
		t.Errorf("err = %v, want ErrBusy", err)
	}

	// Readers are not blocked by the running command.
	lines := c.Lines()
	if last := lines[len(lines)-1]; last.Kind != LineCommand || last.Content != "cookie bake" {
		t.Errorf("last line during bake = %+v", last)
	}

	close(r.release)
	wg.Wait()

	if c.Busy() {
		t.Error("console still busy")
	}
	if last := c.Lines()[len(c.Lines())-1]; last.Content != "done" {
		t.Errorf("last line = %q, want done", last.Content)
	}
}

func TestSubmitBakeWaits(t *testing.T) {
	in := shell.New(shell.WithBakeDelay(30 * time.Millisecond))
	c := New(in, shell.NewRandom(1))

	start := time.Now()
	up, err := c.Submit("cookie bake")
	if err != nil {
		t.Fatal(err)
	}
	if time.Since(start) < 30*time.Millisecond {
		t.Error("bake returned before the delay")
	}
	if !strings.Contains(up.Lines[1].Content, "ready") {
		t.Errorf("bake output = %q", up.Lines[1].Content)
	}
}

func TestMaxLines(t *testing.T) {
	c := newConsole(WithMaxLines(3))

	for i := 0; i < 5; i++ {
		if _, err := c.Submit("cookie eat"); err != nil {
			t.Fatal(err)
		}
	}
	lines := c.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[2].Kind != LineOutput || lines[1].Kind != LineCommand {
		t.Errorf("tail = %+v", lines)
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	c := newConsole(WithLogger(logging.NewWriterLogger(&buf, logging.LevelDebug)))

	if _, err := c.Submit("cookie cd evil cookie jar"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"msg":"command resolved"`, `"folder":"evil cookie jar"`, `"kind":"output"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s: %s", want, out)
		}
	}
}

func TestLineString(t *testing.T) {
	cmd := Line{Kind: LineCommand, Content: "cookie ls"}
	if got := cmd.String(); got != Prompt+"cookie ls" {
		t.Errorf("String() = %q", got)
	}
	out := Line{Kind: LineOutput, Content: "hi"}
	if got := out.String(); got != "hi" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"light", ThemeLight, false},
		{" Dark ", ThemeDark, false},
		{"solarized", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestEndToEndSession walks a full session from welcome to exit.
func TestEndToEndSession(t *testing.T) {
	c := newConsole()

	steps := []struct {
		input string
		want  string
	}{
		{"cookie cd cookie jar", "Switched to folder"},
		{"cookie bake", "ready"},
		{"cookie fortune", "Lucky numbers:"},
		{"cookie hug @alice", "@alice"},
		{"cookie cd evil cookie jar", "evil cookie jar"},
		{"cookie bonk", "Evil cookie bonks itself"},
		{"cookie cd nowhere", `Folder not found: "nowhere"`},
		{"cookie exit", "Thanks for using Cookie Shell"},
	}
	for _, step := range steps {
		up, err := c.Submit(step.input)
		if err != nil {
			t.Fatalf("%q: %v", step.input, err)
		}
		if got := up.Lines[len(up.Lines)-1].Content; !strings.Contains(got, step.want) {
			t.Errorf("%q = %q, want it to contain %q", step.input, got, step.want)
		}
	}
	if c.Session().Folder != shell.FolderEvilCookieJar {
		t.Errorf("Folder = %q", c.Session().Folder)
	}
	if !c.Locked() {
		t.Error("console should be locked after exit")
	}
}
