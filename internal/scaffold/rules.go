package scaffold

import "strings"

// platformToken is the generic placeholder rewritten to the literal chosen
// platform identifier after line stripping.
const platformToken = "PLATFORM"

// platformLines maps each platform to the template source lines that belong
// to it alone. Generating for one platform deletes every line owned by the
// other two. Matching is on exact line content after trimming indentation.
var platformLines = map[Platform][]string{
	PlatformSteam: {
		`options.AppID = "APP_ID"`,
		`options.AppArgs = nil`,
	},
	PlatformExecutable: {
		`options.ExecutablePath = "EXECUTABLE_PATH"`,
	},
	PlatformWebBrowser: {
		`"github.com/entity53/SerpentAI/pkg/game/launchers"`,
		`options.URL = "URL"`,
		`options.Browser = launchers.DefaultBrowser`,
	},
}

// substitutions returns the ordered whole-token rewrites for the spec's kind.
// Longer tokens come first so that a token containing another token is never
// corrupted by a partial rewrite.
func (s Spec) substitutions() [][2]string {
	lower := strings.ToLower(s.Name)
	if s.Kind == KindGameAgent {
		return [][2]string{
			{"SerpentGameAgentPlugin", "Serpent" + s.Name + "GameAgentPlugin"},
			{"serpent_game_agent", "serpent_" + lower + "_game_agent"},
			{"SerpentGameAgent", "Serpent" + s.Name + "GameAgent"},
		}
	}
	return [][2]string{
		{"SerpentGamePlugin", "Serpent" + s.Name + "GamePlugin"},
		{"serpent_game", "serpent_" + lower + "_game"},
		{"SerpentGame", "Serpent" + s.Name + "Game"},
		{"MyGameAPI", s.Name + "API"},
	}
}

func applySubstitutions(text string, subs [][2]string) string {
	for _, sub := range subs {
		text = strings.ReplaceAll(text, sub[0], sub[1])
	}
	return text
}

// stripPlatformLines deletes every line belonging to a platform other than
// keep. The transformation is pure text keyed on exact line content.
func stripPlatformLines(contents string, keep Platform) string {
	remove := make(map[string]bool)
	for platform, lines := range platformLines {
		if platform == keep {
			continue
		}
		for _, line := range lines {
			remove[line] = true
		}
	}

	kept := make([]string, 0, strings.Count(contents, "\n")+1)
	for _, line := range strings.Split(contents, "\n") {
		if remove[strings.TrimSpace(line)] {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
