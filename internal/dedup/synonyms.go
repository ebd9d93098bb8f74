package dedup

// DefaultSynonyms maps a canonical word to alternate surface forms commonly
// used for the same lost item. Entries are deliberately not symmetric
// ("handy" lists "iphone", "iphone" is no key); lookups only ever go
// key -> values.
var DefaultSynonyms = map[string][]string{
	// Electronics
	"handy":      {"smartphone", "telefon", "iphone", "android"},
	"smartphone": {"handy", "telefon"},
	"laptop":     {"notebook", "rechner"},
	"tablet":     {"ipad"},
	"kopfhörer":  {"ohrhörer", "stöpsel"},
	"ladekabel":  {"ladegerät", "netzteil"},

	// Bags & Luggage
	"geldbeutel": {"portemonnaie", "börse", "wallet"},
	"tasche":     {"handtasche", "beutel"},

	// Clothing
	"jacke":  {"mantel"},
	"schal":  {"tuch"},
	"mütze":  {"kappe"},
	"schuhe": {"sneaker"},

	// Accessories
	"brille":       {"lesebrille", "sonnenbrille"},
	"sonnenbrille": {"brille"},
	"uhr":          {"armbanduhr"},

	// Documents
	"ausweis":    {"studentenausweis", "id"},
	"unterlagen": {"dokumente", "papiere"},
	"notizbuch":  {"heft", "block"},

	// Jewelry
	"kette": {"halskette"},

	// Keys
	"schlüssel": {"schlüsselbund"},

	// Others
	"stift":   {"kugelschreiber", "kuli"},
	"flasche": {"trinkflasche"},
}
