package shell

import (
	"fmt"
	"strings"
)

// Command implementations

func cmdList(c call) (Result, Session) {
	names := make([]string, 0, len(Folders()))
	for _, f := range Folders() {
		names = append(names, "📂 "+string(f))
	}
	return output(strings.Join(names, "\n"), StyleFolder), c.session
}

func cmdChangeFolder(c call) (Result, Session) {
	name := c.cmd.rest
	if name == "" {
		return errorOutput("Usage: cookie cd [folder]. Try 'cookie ls' to see folders."), c.session
	}

	for _, f := range Folders() {
		if name == string(f) {
			return output(fmt.Sprintf("📂 Switched to folder: %q", name), StyleSuccess), c.session.withFolder(f)
		}
	}
	return errorOutput(fmt.Sprintf("❌ Folder not found: %q", name)), c.session
}

func cmdHelp(c call) (Result, Session) {
	return renderHelp(c.session.Folder), c.session
}

func cmdClear(c call) (Result, Session) {
	return Result{Kind: KindClear}, c.session
}

func cmdExit(c call) (Result, Session) {
	return Result{
		Kind:    KindExit,
		Content: "🍪 Thanks for using Cookie Shell! Refresh to start again. 🍪",
	}, c.session
}

// cmdBake suspends for the bake delay. There is no cancellation: once the
// oven is on, the batch always comes out.
func (in *Interpreter) cmdBake(c call) (Result, Session) {
	if in.bakeDelay > 0 {
		<-in.after(in.bakeDelay)
	}
	return output("🍪 Ding! Your cookies are ready, fresh out of the oven.", StyleSuccess), c.session
}

func cmdCrumble(c call) (Result, Session) {
	return output("🍪 The cookie crumbles into a thousand delicious pieces...", StyleInfo), c.session
}

func cmdEat(c call) (Result, Session) {
	return output("😋 You eat a cookie. Sweet and satisfying.", StyleInfo), c.session
}

// Lucky numbers are two-digit.
const (
	luckyMin   = 10
	luckyMax   = 99
	luckyCount = 3
)

func (in *Interpreter) cmdFortune(c call) (Result, Session) {
	list := in.fortunes.List()
	if len(list) == 0 {
		list = fortuneFallback
	}
	text := pick(c.rng, list)

	lucky := make([]string, luckyCount)
	for i := range lucky {
		lucky[i] = fmt.Sprint(between(c.rng, luckyMin, luckyMax))
	}

	return output(fmt.Sprintf("🥠 \"%s\"\nLucky numbers: %s", text, strings.Join(lucky, ", ")), StyleFortune), c.session
}

var fortuneFallback = []string{"The fortune jar is empty, but your future is still sweet."}

func cmdFun(c call) (Result, Session) {
	return output("Fun commands include: hug, pat, love, give, vibe. Head to the cookie jar and try 'cookie hug @user'.", StyleFriendly), c.session
}

var nerdResponses = [2]string{
	"🤓 Nerd cookie appears! Time to study.",
	"No nerd cookies today, just chill!",
}

func cmdNerd(c call) (Result, Session) {
	return output(nerdResponses[c.rng.Intn(2)], StyleNerd), c.session
}

func cmdTheme(c call) (Result, Session) {
	res := output("🎨 Cookie theme changed!", StyleTheme)
	res.ToggleTheme = true
	return res, c.session
}
