package roast

import (
	"fmt"
	"strings"
)

// Lang selects the language of prompts and fallback messages.
type Lang string

const (
	LangIcelandic Lang = "is"
	LangEnglish   Lang = "en"
)

// ParseLang converts a flag value to a Lang. Unknown values are an error.
func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case "", LangIcelandic:
		return LangIcelandic, nil
	case LangEnglish:
		return LangEnglish, nil
	default:
		return "", fmt.Errorf("roast: unknown language %q (want is or en)", s)
	}
}

// Messages holds the localized prompt and the three fallback lines.
type Messages struct {
	prompt     string // Sprintf format: score, coffee count
	MissingKey string // No credential configured
	Failed     string // The call failed or timed out
	Empty      string // The call returned no text
	Loading    string // Shown while waiting
}

// Prompt builds the text-generation prompt for a finished run.
func (m Messages) Prompt(score, coffees int) string {
	return fmt.Sprintf(m.prompt, score, coffees)
}

var catalog = map[Lang]Messages{
	LangIcelandic: {
		prompt: `Þú ert hrokafullur íslenskur kaffibarþjónn á dýru kaffihúsi í Reykjavík (eins og Reykjavik Roasters eða Te og Kaffi).
Leikmaður var að tapa í kaffileik af því hann klessti á mjólkurfernu.
Hann náði %d stigum og safnaði %d espresso bollum.

Gefðu honum stutt, fyndið og hrokafullt 1-setningar "roast" á íslensku um frammistöðuna.
Notaðu orðaleik um mjólk, kaffi, kaffibaunir eða íslenska kaffimenningu ef hægt er.
Vertu vond/ur en fyndin/n.`,
		MissingKey: "Ekki gráta yfir helltri mjólk. (Vantar API lykil fyrir alvöru roast!)",
		Failed:     "Barþjónninn er of upptekinn við að dæma pöntunina þína.",
		Empty:      "Þú hefur verið afkaffínvædd/ur.",
		Loading:    "Barþjónninn hugsar...",
	},
	LangEnglish: {
		prompt: `You are a snobbish barista at an expensive third-wave coffee bar in Reykjavík.
A player just lost a coffee game by crashing into a milk carton.
They scored %d points and collected %d espresso cups.

Give them a short, funny and arrogant one-sentence roast about the performance.
Use wordplay about milk, coffee, beans or coffee culture if you can.
Be mean but funny.`,
		MissingKey: "Don't cry over spilled milk. (No API key for a real roast!)",
		Failed:     "The barista is too busy judging your order.",
		Empty:      "You have been decaffeinated.",
		Loading:    "The barista is thinking...",
	},
}

// MessagesFor returns the catalog for lang, defaulting to Icelandic.
func MessagesFor(lang Lang) Messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[LangIcelandic]
}
