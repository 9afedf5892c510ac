package lookup

var artworkPaths = map[string]string{
	"I Really Want to Stay at Your House":                        "/images/i-really-want-to-stay-at-your-house.jpg",
	"Sweden":                                                     "/images/sweden.png",
	"The Last of Us":                                             "/images/the-last-of-us.jpg",
	"Halo":                                                       "/images/halo.jpg",
	"Super Mario Bros. Ground Theme":                             "/images/ground-theme.png",
	"At Doom's Gate":                                             "/images/at-doom-s-gate.jpg",
	"Tenebre Rosso Sangue (ULTRAKILL Original Game Soundtrack)":  "/images/tenebre-rosso-sangue.png",
	"Altars of Apostasy":                                         "/images/tenebre-rosso-sangue.png",
	"UltraChurch (ULTRAKILL) (Original Game Soundtrack)":         "/images/tenebre-rosso-sangue.png",
	"Tetris Theme":                                               "/images/tetris-theme.png",
	"One-Winged Angel":                                           "/images/one-winged-angel.jpg",
	"God of War":                                                 "/images/god-of-war.jpg",
	"Main Theme":                                                 "/images/breath-of-the-wild.jpg",
	"Lonely Rolling Star":                                        "/images/katamari-damacy.jpg",
	"Donkey Kong Country Theme":                                  "/images/donkey-kong-country.png",
	"Ryu's Theme":                                                "/images/street-fighter-ii.jpg",
	"Ori, Lost In the Storm (feat. Aeralie Brighton)":            "/images/ori-blind-forest.jpg",
	"Prelude (Final Fantasy Series)":                             "/images/final-fantasy.jpg",
	"Mad Mew Mew (from UNDERTALE)":                               "/images/undertale.png",
	"Can You Feel The Sunshine? (Sonic R)":                       "/images/sonic-r.jpg",
	"Uncharted, Drake's Fortune: Nate's Theme":                   "/images/uncharted.jpg",
	`Coconut Mall (From "Mario Kart Wii")`:                       "/images/mario-kart-wii.png",
	"The Moon (Duck Tales OST)":                                  "/images/ducktales.png",
	skyrimEnDash:                                                 "/images/skyrim.png",
	skyrimWindows1252:                                            "/images/skyrim.png",
	skyrimMacRoman:                                               "/images/skyrim.png",
	skyrimDoubleMangle:                                           "/images/skyrim.png",
	skyrimFullTitle:                                              "/images/skyrim.png",
	`Super Bell Hill (From "Super Mario 3D World")`:              "/images/mario-3d-world.jpg",
	"Lost Woods (From The Legend of Zelda: Ocarina of Time)":     "/images/ocarina-of-time.jpg",
	`Stickerbush Symphony (From "Donkey Kong Country 2")`:        "/images/donkey-kong-country-2.jpg",
	"Halo 3: One Final Effort":                                   "/images/halo-3.jpg",
	`Dire, Dire Docks (From "Super Mario 64") [lofi]`:            "/images/mario-64.png",
	`Double Cherry Pass (From "Super Mario 3D World")`:           "/images/mario-3d-world.jpg",
	"Delfino Plaza (Super Mario Sunshine)":                       "/images/mario-sunshine.png",
	`File Select (From "Super Mario 64")`:                        "/images/mario-64.png",
	`Tomodachi Life Menu Theme (From "Tomodachi Life")`:          "/images/tomodachi-life.jpg",
	`Hot-Head Bop (From "Donkey Kong Country 2")`:                "/images/donkey-kong-country-2.jpg",
	`Background Music (From "Mario Paint")`:                      "/images/mario-paint.jpg",
	`Waluigi Pinball / Wario Stadium (From "Mario Kart DS")`:     "/images/mario-kart-ds.jpg",
	`Wandering the Plains (From "Super Mario World")`:            "/images/mario-world.png",
	"Vs. Metal Sonic":                                            "/images/sonic-mania.jpg",
	"Metal Gear Solid: Sons of Liberty Theme":                    "/images/metal-gear-solid-2.jpg",
	"Dragon Roost Island":                                        "/images/wind-waker.jpg",
	"Pushing Onwards":                                            "/images/vvvvvv.png",
	"This World Is Not My Home":                                  "/images/kentucky-route-zero.png",
	"Battlefield 2: Theme":                                       "/images/battlefield-2.jpg",
	"Legend of Zelda: Suite":                                     "/images/legend-of-zelda.png",
	"Undertale Shop Trap Beat":                                   "/images/undertale.png",
}

// ResolveArtwork returns the local artwork path for a raw sheet title.
// The boolean is false when the title has no artwork.
func ResolveArtwork(raw string) (string, bool) {
	path, ok := artworkPaths[raw]
	return path, ok
}

// ArtworkPaths returns a copy of the raw title -> artwork path table.
func ArtworkPaths() map[string]string {
	out := make(map[string]string, len(artworkPaths))
	for k, v := range artworkPaths {
		out[k] = v
	}
	return out
}
