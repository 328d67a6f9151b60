package generator

// Built-in word lists for the memorable generator. Short, common words only.
// The Swedish list deliberately avoids the accented letters so that generated
// passwords stay within the same character pools as the random generator.

var englishWords = []string{
	"apple", "anchor", "autumn", "basket", "beacon", "bridge", "butter",
	"candle", "castle", "cloud", "copper", "corner", "dragon", "eagle",
	"ember", "falcon", "feather", "forest", "garden", "giant", "ginger",
	"hammer", "harbor", "hollow", "island", "jungle", "kettle", "ladder",
	"lantern", "lemon", "maple", "marble", "meadow", "mirror", "monkey",
	"mountain", "needle", "ocean", "orange", "pebble", "pepper", "pillow",
	"planet", "rabbit", "raven", "ribbon", "river", "saddle", "shadow",
	"silver", "spider", "spring", "stone", "summer", "sunset", "thunder",
	"tiger", "timber", "turtle", "velvet", "walnut", "window", "winter",
	"wonder",
}

var swedishWords = []string{
	"boll", "blomma", "citron", "docka", "druva", "duva", "eld",
	"fisk", "flagga", "gaffel", "glas", "gris", "gunga", "hammare",
	"himmel", "hink", "hjul", "hund", "igelkott", "jord", "kanin",
	"katt", "kikare", "kniv", "korg", "krona", "kudde", "kvarn",
	"lampa", "ljus", "mask", "moln", "morgon", "mugg", "mynt",
	"nyckel", "orm", "penna", "pumpa", "regn", "sadel", "segel",
	"silver", "skugga", "slott", "sommar", "sten", "stol", "storm",
	"strand", "svamp", "tiger", "timmer", "tunna", "uggla", "vante",
	"vinter", "vulkan",
}

// wordList returns the list for the given language, defaulting to English.
func wordList(language string) []string {
	if language == "Swedish" {
		return swedishWords
	}
	return englishWords
}
