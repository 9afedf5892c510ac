// Package lookup holds the closed, hand-curated tables used to turn raw
// spreadsheet track titles into display names and local artwork paths.
//
// Both tables are keyed by the raw title exactly as it appears in the source
// sheet. Matching is exact and case-sensitive; corrupted encodings of the
// same title are listed as separate keys.
package lookup

// Raw titles of the Skyrim track in every encoding observed in the sheet.
const (
	skyrimEnDash       = "Elder Scrolls – Skyrim: Far Horizons"
	skyrimWindows1252  = "Elder Scrolls â€“ Skyrim: Far Horizons"
	skyrimMacRoman     = "Elder Scrolls ‚Äì Skyrim: Far Horizons"
	skyrimDoubleMangle = "Elder Scrolls â€šÃ„Ã¬ Skyrim: Far Horizons"
	skyrimFullTitle    = "The Elder Scrolls V: Skyrim: Far Horizons"
)

var cleanNames = map[string]string{
	"Tenebre Rosso Sangue (ULTRAKILL Original Game Soundtrack)": "Tenebre Rosso Sangue",
	"UltraChurch (ULTRAKILL) (Original Game Soundtrack)":        "UltraChurch",
	"Ori, Lost In the Storm (feat. Aeralie Brighton)":           "Ori, Lost In the Storm",
	"Prelude (Final Fantasy Series)":                            "Prelude",
	"Mad Mew Mew (from UNDERTALE)":                              "Mad Mew Mew",
	"Can You Feel The Sunshine? (Sonic R)":                      "Can You Feel The Sunshine?",
	"Uncharted, Drake's Fortune: Nate's Theme":                  "Nate's Theme",
	`Coconut Mall (From "Mario Kart Wii")`:                      "Coconut Mall",
	"The Moon (Duck Tales OST)":                                 "The Moon",
	skyrimEnDash:                                                "Far Horizons",
	skyrimWindows1252:                                           "Far Horizons",
	skyrimMacRoman:                                              "Far Horizons",
	skyrimDoubleMangle:                                          "Far Horizons",
	skyrimFullTitle:                                             "Far Horizons",
	"Super Mario Bros. Ground Theme":                            "Ground Theme",
	`Super Bell Hill (From "Super Mario 3D World")`:             "Super Bell Hill",
	"Lost Woods (From The Legend of Zelda: Ocarina of Time)":    "Lost Woods",
	`Stickerbush Symphony (From "Donkey Kong Country 2")`:       "Stickerbush Symphony",
	"Halo 3: One Final Effort":                                  "One Final Effort",
	`Dire, Dire Docks (From "Super Mario 64") [lofi]`:           "Dire, Dire Docks",
	`Double Cherry Pass (From "Super Mario 3D World")`:          "Double Cherry Pass",
	"Delfino Plaza (Super Mario Sunshine)":                      "Delfino Plaza",
	`File Select (From "Super Mario 64")`:                       "File Select",
	`Tomodachi Life Menu Theme (From "Tomodachi Life")`:         "Tomodachi Life Menu Theme",
	`Hot-Head Bop (From "Donkey Kong Country 2")`:               "Hot-Head Bop",
	`Background Music (From "Mario Paint")`:                     "Background Music",
	`Waluigi Pinball / Wario Stadium (From "Mario Kart DS")`:    "Waluigi Pinball / Wario Stadium",
	`Wandering the Plains (From "Super Mario World")`:           "Wandering the Plains",
}

// CleanTrackName maps a raw sheet title to its display name. Titles not in
// the table are returned unchanged.
func CleanTrackName(raw string) string {
	if clean, ok := cleanNames[raw]; ok {
		return clean
	}
	return raw
}

// CleanNames returns a copy of the raw -> display name table.
func CleanNames() map[string]string {
	out := make(map[string]string, len(cleanNames))
	for k, v := range cleanNames {
		out[k] = v
	}
	return out
}
