package shell

import (
	"fmt"
	"strings"
)

// Reaction is a reaction-table entry. Directed holds a single %s for the
// @user token; Self is used when no @user token was given.
type Reaction struct {
	Directed string
	Self     string
	Style    string
}

// Render picks the phrasing for user ("" means self-directed).
func (r Reaction) Render(user string) string {
	if user == "" {
		return r.Self
	}
	return fmt.Sprintf(r.Directed, user)
}

// FriendlyReactions is the cookie jar's reaction table.
var FriendlyReactions = map[string]Reaction{
	"hug": {
		Directed: "🤗 Cookie hugs %s!",
		Self:     "🤗 Cookie hugs itself... adorable!",
		Style:    StyleFriendly,
	},
	"pat": {
		Directed: "🖐️ Cookie pats %s!",
		Self:     "🖐️ Cookie pats itself... adorable!",
		Style:    StyleFriendly,
	},
	"love": {
		Directed: "❤️ Cookie sends love to %s!",
		Self:     "❤️ Cookie sends love to itself... adorable!",
		Style:    StyleFriendly,
	},
	"give": {
		Directed: "🎁 Cookie gives a cookie to %s!",
		Self:     "🎁 Cookie gives a cookie to itself... adorable!",
		Style:    StyleFriendly,
	},
	"vibe": {
		Directed: "🎶 Cookie starts vibing with %s!",
		Self:     "🎶 Cookie starts vibing with itself... adorable!",
		Style:    StyleFriendly,
	},
}

// HostileReactions is the evil cookie jar's reaction table. Its bonk and
// burn entries shadow the hidden commands of the same name.
var HostileReactions = map[string]Reaction{
	"bonk": {
		Directed: "☠️ Evil cookie bonks %s and shatters reality!",
		Self:     "☠️ Evil cookie bonks itself... ouch!",
		Style:    StyleEvil,
	},
	"throw": {
		Directed: "💥 Evil cookie throws a cookie at %s! Watch out!",
		Self:     "💥 Evil cookie throws cookies everywhere!",
		Style:    StyleEvil,
	},
	"fight": {
		Directed: "🥊 Evil cookie fights fiercely with %s!",
		Self:     "🥊 Evil cookie fights with itself... epic battle!",
		Style:    StyleEvil,
	},
	"angry": {
		Directed: "😠 Evil cookie is angry at %s. Crumbs fly!",
		Self:     "😠 Evil cookie is furious... crumbs everywhere!",
		Style:    StyleEvil,
	},
	"jealous": {
		Directed: "😤 Evil cookie is jealous of %s. Beware!",
		Self:     "😤 Evil cookie is jealous... silently seething.",
		Style:    StyleEvil,
	},
	"burn": {
		Directed: "🔥 Evil cookie sets %s's snacks ablaze!",
		Self:     "🔥 Evil cookie burns itself to a crisp... worth it.",
		Style:    StyleEvil,
	},
}

// reactionTables maps each folder to its reaction table. Root has none.
var reactionTables = map[Folder]map[string]Reaction{
	FolderCookieJar:     FriendlyReactions,
	FolderEvilCookieJar: HostileReactions,
}

// hiddenFunc produces a hidden command's response.
type hiddenFunc func(rng Random) Result

var summonings = []string{
	"🍪 The Cookie Guardian emerges from the doughy depths...",
	"👻 A spectral cookie appears and whispers secrets of the oven.",
	"🧙 The Great Cookie Wizard blesses your terminal!",
	"🐉 A cookie dragon flaps its wings and vanishes in crumbs.",
}

var hackSteps = []string{
	"Initializing cookie hack...",
	"Bypassing chocolate firewall...",
	"Injecting sprinkle script...",
	"Extracting recipe.exe...",
	"🍪 SUCCESS: Gained access to the secret cookie vault.",
}

const asciiCookie = `      ( (
       ) )
    ........
    |      |]
    \      /
     ` + "`" + `----'
A digital cookie just for you 🍪`

// Matrix dimensions for "cookie matrix".
const (
	matrixRows = 12
	matrixCols = 32
)

// hiddenCommands are recognized but never listed in help.
var hiddenCommands = map[string]hiddenFunc{
	"summon": func(rng Random) Result {
		return output(pick(rng, summonings), StyleMystic)
	},
	"hack": func(Random) Result {
		return output(strings.Join(hackSteps, "\n"), StyleHacker)
	},
	"glitch": func(Random) Result {
		return output("g̷l̷i̷t̷c̷h̷ ̷e̷r̷r̷o̷r̷ ̷i̷n̷ ̷t̷h̷e̷ ̷c̷o̷o̷k̷i̷e̷ ̷m̷a̷t̷r̷i̷x̷", StyleGlitch)
	},
	"cookie": func(Random) Result {
		return output("🍪🍪 Double cookie power activated!", StyleInfo)
	},
	"ascii": func(Random) Result {
		return output(asciiCookie, StyleInfo)
	},
	"self-destruct": func(Random) Result {
		return output("💣 Initiating self-destruct sequence...\n3...\n2...\n1...\n💥 Just kidding. Cookies are immortal.", StyleError)
	},
	"lore": func(Random) Result {
		return output("🍪 In the beginning, there was only flour and fire...\n"+
			"From the chaos, Cookie Shell was baked into existence by the Eldest Crumb.\n"+
			"Few know the recipe. Fewer still know the price.", StyleLore)
	},
	"matrix": func(rng Random) Result {
		rows := make([]string, matrixRows)
		for i := range rows {
			var b strings.Builder
			for j := 0; j < matrixCols; j++ {
				b.WriteByte(byte('0' + rng.Intn(2)))
			}
			rows[i] = b.String()
		}
		return output("🟢 Cookie Matrix Loaded:\n<pre>"+strings.Join(rows, "\n")+"</pre>", StyleHacker)
	},
	"dance": func(Random) Result {
		return output("💃 The cookie breaks into a crumbly little dance! 🕺", StyleFriendly)
	},
	"sing": func(Random) Result {
		return output("🎤 🎵 C is for cookie, that's good enough for me! 🎵", StyleFriendly)
	},
	"burn": func(Random) Result {
		return output("🔥 You burned the cookies. The smoke alarm judges you silently.", StyleWarning)
	},
	"bonk": func(Random) Result {
		return output("🔨 Bonk! A stray cookie bonks you on the head.", StyleWarning)
	},
}

// HiddenVerbs returns the verbs of the hidden command table.
func HiddenVerbs() []string {
	verbs := make([]string, 0, len(hiddenCommands))
	for v := range hiddenCommands {
		verbs = append(verbs, v)
	}
	return verbs
}

// CommandInfo describes one help entry.
type CommandInfo struct {
	Usage       string
	Description string
}

// HelpSection is a titled group of help entries.
type HelpSection struct {
	Title    string
	Commands []CommandInfo
}

var basicHelp = HelpSection{
	Title: "Basic Cookie Commands",
	Commands: []CommandInfo{
		{"cookie help", "Show this help message"},
		{"cookie clear", "Clear the terminal"},
		{"cookie exit", "Exit Cookie Shell"},
		{"cookie ls", "List folders"},
		{"cookie cd [name]", "Change folders"},
		{"cookie bake", "Bake a fresh batch (takes a moment)"},
		{"cookie crumble", "Crumble a cookie"},
		{"cookie eat", "Eat a cookie"},
		{"cookie fortune", "Crack open a fortune cookie"},
		{"cookie game", "Play guess-the-number"},
		{"cookie fun", "List the fun commands"},
		{"cookie nerd", "Maybe a nerd cookie appears"},
		{"cookie theme", "Toggle the light/dark theme"},
	},
}

var cookieJarHelp = HelpSection{
	Title: "Cookie Jar Commands",
	Commands: []CommandInfo{
		{"cookie hug [@user]", "Hug someone or yourself"},
		{"cookie pat [@user]", "Pat someone"},
		{"cookie love [@user]", "Send some love"},
		{"cookie give [@user]", "Give a cookie away"},
		{"cookie vibe [@user]", "Vibe together"},
	},
}

var evilCookieJarHelp = HelpSection{
	Title: "Evil Cookie Jar Commands",
	Commands: []CommandInfo{
		{"cookie bonk [@user]", "Bonk someone or yourself"},
		{"cookie throw [@user]", "Throw cookies"},
		{"cookie fight [@user]", "Fight with cookies"},
		{"cookie angry [@user]", "Show anger"},
		{"cookie jealous [@user]", "Show jealousy"},
		{"cookie burn [@user]", "Set things on fire"},
	},
}

// HelpSections returns the help groups shown in folder f.
func HelpSections(f Folder) []HelpSection {
	switch f {
	case FolderCookieJar:
		return []HelpSection{basicHelp, cookieJarHelp}
	case FolderEvilCookieJar:
		return []HelpSection{basicHelp, evilCookieJarHelp}
	default:
		return []HelpSection{basicHelp}
	}
}

func renderHelp(f Folder) Result {
	var b strings.Builder
	for i, section := range HelpSections(f) {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "🍪 <strong>%s</strong> 🍪\n", section.Title)

		width := 0
		for _, cmd := range section.Commands {
			width = max(width, len(cmd.Usage))
		}
		for _, cmd := range section.Commands {
			fmt.Fprintf(&b, "<span class=\"cmd\">%s</span>%s - %s\n",
				cmd.Usage, strings.Repeat(" ", width-len(cmd.Usage)), cmd.Description)
		}
	}

	style := StyleHelp
	switch f {
	case FolderCookieJar:
		style = StyleFriendly
	case FolderEvilCookieJar:
		style = StyleHelpEvil
	default:
		b.WriteString("\n📁 Use 'cookie cd [folder]' to switch folders.")
	}
	return output(strings.TrimRight(b.String(), "\n"), style)
}
