// Package platform maps GOG Galaxy platform names to the icons of the
// platforms sprite.
package platform

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SymbolPrefix is the id prefix of every platform symbol in the sprite.
const SymbolPrefix = "icon-platform-"

// Generic is the icon used for platforms without a dedicated symbol.
const Generic = "generic"

// sprite lists the short names with a symbol in the default sprite.
var sprite = []string{
	"apple-arcade", "battlenet", "bethesda", "discord", "epic", "ffxiv",
	"gamecube", "generic", "gog", "gw2", "humble", "itch", "minecraft",
	"nintendo-switch", "nintendo", "origin", "paradox", "pathofexile",
	"playstation2", "psn", "rockstar", "steam", "twitch", "uplay",
	"wargaming", "xboxone",
}

// shortNames maps Galaxy's platform short names to their display names.
var shortNames = map[string]string{
	"3do": "3DO Interactive Multiplayer", "3ds": "Nintendo 3DS", "aion": "Aion",
	"aionl": "Aion: Legions of War", "amazon": "Amazon", "amiga": "Amiga",
	"arc": "ARC", "atari": "Atari 2600", "battlenet": "Battle.net",
	"bb": "BestBuy", "beamdog": "Beamdog", "bethesda": "Bethesda.net",
	"blade": "Blade & Soul", "c64": "Commodore 64", "d2d": "Direct2Drive",
	"dc": "Dreamcast", "discord": "Discord", "dotemu": "DotEmu", "egg": "Newegg",
	"elites": "Elite Dangerous", "epic": "Epic Games Store",
	"eso": "The Elder Scrolls Online", "fanatical": "Fanatical",
	"ffxi": "Final Fantasy XI", "ffxiv": "Final Fantasy XIV",
	"fxstore": "Placeholder", "gamehouse": "GameHouse",
	"gamesessions": "GameSessions", "gameuk": "GAME UK", "generic": "Other",
	"gg": "GamersGate", "glyph": "Trion World", "gmg": "Green Man Gaming",
	"gog": "GOG", "gw": "Guild Wars", "gw2": "Guild Wars 2",
	"humble": "Humble Bundle", "indiegala": "IndieGala", "itch": "Itch.io",
	"jaguar": "Atari Jaguar", "kartridge": "Kartridge", "lin2": "Lineage 2",
	"minecraft": "Minecraft", "n64": "Nintendo 64", "ncube": "Nintendo GameCube",
	"nds": "Nintendo DS", "neo": "NeoGeo", "nes": "Nintendo Entertainment System",
	"ngameboy": "Game Boy", "nswitch": "Nintendo Switch", "nuuvem": "Nuuvem",
	"nwii": "Wii", "nwiiu": "Wii U", "oculus": "Oculus", "origin": "Origin",
	"paradox": "Paradox Plaza", "pathofexile": "Path of Exile",
	"pce": "PC Engine", "playasia": "Play-Asia", "playfire": "Playfire",
	"ps2": "PlayStation 2", "psn": "PlayStation Network",
	"psp": "PlayStation Portable", "psvita": "PlayStation Vita",
	"psx": "PlayStation", "riot": "Riot", "rockstar": "Rockstar Games Launcher",
	"saturn": "Sega Saturn", "sega32": "32X", "segacd": "Sega CD",
	"segag": "Sega Genesis", "sms": "Sega Master System",
	"snes": "Super Nintendo Entertainment System", "stadia": "Google Stadia",
	"star": "Star Citizen", "steam": "Steam", "test": "Test",
	"totalwar": "Total War", "twitch": "Twitch", "unknown": "Unknown",
	"uplay": "Uplay", "vision": "ColecoVision", "wargaming": "Wargaming",
	"weplay": "WePlay", "winstore": "Windows Store", "xboxog": "Xbox",
	"xboxone": "Xbox Live", "zx": "ZX Spectrum PC",
}

var byDisplayName = func() map[string]string {
	m := make(map[string]string, len(shortNames))
	for short, name := range shortNames {
		m[name] = short
	}
	return m
}()

var svgComment = regexp.MustCompile(`(?s)\s*<!--.*?-->\s*`)

// Short returns the short name of a platform display name, or Generic when
// the platform is unknown.
func Short(name string) string {
	if short, ok := byDisplayName[name]; ok {
		return short
	}
	return Generic
}

// Icon renders the placeholder element for a short name. Short names without
// a symbol fall back to the generic icon, keeping their own class for styling.
func Icon(short string) string {
	if slices.Contains(sprite, short) {
		return fmt.Sprintf(`<i class="pi pi-%s"></i>`, short)
	}
	return fmt.Sprintf(`<i class="pi pi-%s pi-%s"></i>`, Generic, short)
}

// Icons renders the icons for a record's platforms, skipping ignored ones.
func Icons(names, ignore []string) string {
	var sb strings.Builder
	for _, name := range names {
		if slices.Contains(ignore, name) {
			continue
		}
		sb.WriteString(Icon(Short(name)))
	}
	return sb.String()
}

// StripComments removes the comments from an SVG document, along with the
// whitespace around them.
func StripComments(svg string) string {
	return svgComment.ReplaceAllString(svg, "")
}

// SymbolIDs returns the short names of every platform symbol defined in an
// SVG sprite, in document order.
func SymbolIDs(svg string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse sprite: %w", err)
	}

	ids := []string{}
	doc.Find("symbol[id^='" + SymbolPrefix + "']").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids = append(ids, strings.TrimPrefix(id, SymbolPrefix))
	})
	return ids, nil
}

// Showcase renders every platform symbol of the sprite, for debugging the
// icon set.
func Showcase(svg string) (string, error) {
	ids, err := SymbolIDs(svg)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(`<div id="debug">`)
	for _, id := range ids {
		sb.WriteString(Icon(id))
	}
	sb.WriteString(`</div>`)
	return sb.String(), nil
}
