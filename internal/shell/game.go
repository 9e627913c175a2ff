package shell

import (
	"fmt"
	"strconv"
)

// cmdGame starts a number game unless one is already running.
func cmdGame(c call) (Result, Session) {
	if c.session.InGame() {
		return output("🎲 A game is already running. Enter your guess!", StyleGame), c.session
	}

	g := &GameState{
		Active:      true,
		Target:      between(c.rng, MinGuess, MaxGuess),
		MaxAttempts: MaxAttempts,
	}
	msg := fmt.Sprintf("🎲 I'm thinking of a number between %d and %d. You have %d attempts. Type your guess!",
		MinGuess, MaxGuess, g.MaxAttempts)
	return output(msg, StyleGame), c.session.withGame(g)
}

// guess advances the number game with one input line. The target is only
// revealed on the winning or final losing guess.
func guess(input string, s Session) (Result, Session) {
	g := *s.Game
	if g.MaxAttempts <= 0 {
		g.MaxAttempts = MaxAttempts
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < MinGuess || n > MaxGuess {
		msg := fmt.Sprintf("❌ Please guess a whole number between %d and %d.", MinGuess, MaxGuess)
		return errorOutput(msg), s
	}

	if n == g.Target {
		msg := fmt.Sprintf("🎉 Correct! The number was %d. You win a cookie!", g.Target)
		return output(msg, StyleSuccess), s.withGame(nil)
	}

	g.Attempts++
	if g.Attempts >= g.MaxAttempts {
		msg := fmt.Sprintf("💀 Out of attempts! The number was %d. Type 'cookie game' to play again.", g.Target)
		return output(msg, StyleError), s.withGame(nil)
	}

	direction := "📈 Higher!"
	if n > g.Target {
		direction = "📉 Lower!"
	}
	return output(fmt.Sprintf("%s %s left.", direction, attemptsLeft(g.MaxAttempts-g.Attempts)), StyleGame), s.withGame(&g)
}

func attemptsLeft(n int) string {
	if n == 1 {
		return "1 attempt"
	}
	return fmt.Sprintf("%d attempts", n)
}
