package shell

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGameStart(t *testing.T) {
	in, _ := newTestInterpreter()

	// Intn(5) -> 3, target 4
	res, next, _ := in.Resolve("cookie game", sessionIn(FolderCookieJar), &seqRandom{values: []int{3}})
	if !strings.Contains(res.Content, "between 1 and 5") || !strings.Contains(res.Content, "3 attempts") {
		t.Errorf("start message = %q", res.Content)
	}
	if strings.Contains(res.Content, "4") {
		t.Errorf("start message reveals target: %q", res.Content)
	}

	want := Session{
		Folder: FolderCookieJar,
		Game:   &GameState{Active: true, Target: 4, MaxAttempts: MaxAttempts},
	}
	if diff := cmp.Diff(want, next); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestGameSwallowsCommands(t *testing.T) {
	in, _ := newTestInterpreter()
	s := Session{Folder: FolderRoot, Game: &GameState{Active: true, Target: 2, MaxAttempts: 3}}

	for _, input := range []string{"cookie exit", "cookie help", "cookie game", "cookie cd cookie jar", "hello", "2.5", "0", "6"} {
		t.Run(input, func(t *testing.T) {
			res, next, err := in.Resolve(input, s, &seqRandom{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Kind != KindOutput {
				t.Errorf("Kind = %v, want output", res.Kind)
			}
			if res.Content != "❌ Please guess a whole number between 1 and 5." {
				t.Errorf("Content = %q", res.Content)
			}
			if diff := cmp.Diff(s, next); diff != "" {
				t.Errorf("invalid guess changed session (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGuess(t *testing.T) {
	tests := []struct {
		name      string
		game      GameState
		input     string
		want      string
		wantGame  *GameState
		wantStyle string
	}{
		{
			name:      "correct",
			game:      GameState{Active: true, Target: 3, MaxAttempts: 3},
			input:     "3",
			want:      "🎉 Correct! The number was 3. You win a cookie!",
			wantStyle: StyleSuccess,
		},
		{
			name:      "correct on last attempt",
			game:      GameState{Active: true, Target: 5, Attempts: 2, MaxAttempts: 3},
			input:     " 5 ",
			want:      "🎉 Correct! The number was 5. You win a cookie!",
			wantStyle: StyleSuccess,
		},
		{
			name:      "too low",
			game:      GameState{Active: true, Target: 4, MaxAttempts: 3},
			input:     "1",
			want:      "📈 Higher! 2 attempts left.",
			wantGame:  &GameState{Active: true, Target: 4, Attempts: 1, MaxAttempts: 3},
			wantStyle: StyleGame,
		},
		{
			name:      "too high with one left",
			game:      GameState{Active: true, Target: 2, Attempts: 1, MaxAttempts: 3},
			input:     "5",
			want:      "📉 Lower! 1 attempt left.",
			wantGame:  &GameState{Active: true, Target: 2, Attempts: 2, MaxAttempts: 3},
			wantStyle: StyleGame,
		},
		{
			name:      "out of attempts",
			game:      GameState{Active: true, Target: 2, Attempts: 2, MaxAttempts: 3},
			input:     "1",
			want:      "💀 Out of attempts! The number was 2. Type 'cookie game' to play again.",
			wantStyle: StyleError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _ := newTestInterpreter()
			g := tt.game
			s := Session{Folder: FolderEvilCookieJar, Game: &g}

			res, next, _ := in.Resolve(tt.input, s, &seqRandom{})
			if res.Content != tt.want {
				t.Errorf("Content = %q, want %q", res.Content, tt.want)
			}
			if res.Style != tt.wantStyle {
				t.Errorf("Style = %q, want %q", res.Style, tt.wantStyle)
			}
			if diff := cmp.Diff(tt.wantGame, next.Game); diff != "" {
				t.Errorf("game mismatch (-want +got):\n%s", diff)
			}
			if next.Folder != FolderEvilCookieJar {
				t.Errorf("Folder = %q, want evil cookie jar", next.Folder)
			}
			if g != tt.game {
				t.Errorf("input game mutated: %+v", g)
			}
		})
	}
}

func TestGameFullScenario(t *testing.T) {
	in, _ := newTestInterpreter()
	rng := &seqRandom{values: []int{3}}

	steps := []struct {
		input string
		want  string
	}{
		{"cookie cd cookie jar", `Switched to folder: "cookie jar"`},
		{"cookie bake", "ready"},
		{"cookie game", "I'm thinking of a number"},
		{"3", "📈 Higher! 2 attempts left."},
		{"3", "📈 Higher! 1 attempt left."},
		{"3", "Out of attempts! The number was 4."},
		{"cookie hug @sam", "🤗 Cookie hugs @sam!"},
	}

	s := NewSession()
	for i, step := range steps {
		res, next, err := in.Resolve(step.input, s, rng)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if !strings.Contains(res.Content, step.want) {
			t.Fatalf("step %d %q = %q, want it to contain %q", i, step.input, res.Content, step.want)
		}
		s = next
	}

	if s.Game != nil {
		t.Errorf("game still active after loss: %+v", s.Game)
	}
	if s.Folder != FolderCookieJar {
		t.Errorf("Folder = %q, want cookie jar", s.Folder)
	}
}

func TestGameRestartAfterWin(t *testing.T) {
	in, _ := newTestInterpreter()
	rng := &seqRandom{values: []int{0}}

	_, s, _ := in.Resolve("cookie game", NewSession(), rng)
	res, s, _ := in.Resolve("1", s, rng)
	if !strings.HasPrefix(res.Content, "🎉 Correct!") {
		t.Fatalf("guess = %q", res.Content)
	}
	if s.InGame() {
		t.Fatal("game should be over")
	}

	_, s, _ = in.Resolve("cookie game", s, rng)
	if !s.InGame() || s.Game.Attempts != 0 {
		t.Errorf("restarted game = %+v", s.Game)
	}
}

func TestAttemptsLeft(t *testing.T) {
	if got := attemptsLeft(1); got != "1 attempt" {
		t.Errorf("attemptsLeft(1) = %q", got)
	}
	if got := attemptsLeft(2); got != "2 attempts" {
		t.Errorf("attemptsLeft(2) = %q", got)
	}
}
