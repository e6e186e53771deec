package network

// defaultAliases is the built-in multilingual alias dataset. Keys are
// lowercase surface forms as they show up in extraction output across
// Cyrillic, Greek, Korean, Chinese, Arabic, Hindi and Bengali coverage,
// plus common Latin-script variants and abbreviations. Values are canonical
// lowercase names.
var defaultAliases = AliasTable{
	// Vladimir Putin
	"putin":                          "vladimir putin",
	"v. putin":                       "vladimir putin",
	"vladimir putin":                 "vladimir putin",
	"vladimir vladimirovich putin":   "vladimir putin",
	"путин":                          "vladimir putin",
	"владимир путин":                 "vladimir putin",
	"владимир владимирович путин":    "vladimir putin",
	"πούτιν":                         "vladimir putin",
	"βλαντιμίρ πούτιν":               "vladimir putin",
	"푸틴":                             "vladimir putin",
	"블라디미르 푸틴":                      "vladimir putin",
	"普京":                             "vladimir putin",
	"弗拉基米尔·普京":                      "vladimir putin",
	"بوتين":                          "vladimir putin",
	"فلاديمير بوتين":                 "vladimir putin",
	"पुतिन":                          "vladimir putin",
	"व्लादिमीर पुतिन":                "vladimir putin",
	"পুতিন":                          "vladimir putin",
	"ভ্লাদিমির পুতিন":                "vladimir putin",

	// Donald Trump
	"trump":           "donald trump",
	"donald trump":    "donald trump",
	"donald j. trump": "donald trump",
	"трамп":           "donald trump",
	"дональд трамп":   "donald trump",
	"τραμπ":           "donald trump",
	"트럼프":             "donald trump",
	"도널드 트럼프":         "donald trump",
	"特朗普":             "donald trump",
	"川普":              "donald trump",
	"唐纳德·特朗普":         "donald trump",
	"ترامب":           "donald trump",
	"دونالد ترامب":    "donald trump",
	"ट्रम्प":          "donald trump",
	"डोनाल्ड ट्रम्प":  "donald trump",
	"ট্রাম্প":         "donald trump",

	// Joe Biden
	"biden":           "joe biden",
	"joe biden":       "joe biden",
	"joseph biden":    "joe biden",
	"joseph r. biden": "joe biden",
	"байден":          "joe biden",
	"джо байден":      "joe biden",
	"μπάιντεν":        "joe biden",
	"바이든":             "joe biden",
	"조 바이든":           "joe biden",
	"拜登":              "joe biden",
	"乔·拜登":            "joe biden",
	"بايدن":           "joe biden",
	"جو بايدن":        "joe biden",
	"बाइडेन":          "joe biden",
	"জো বাইডেন":       "joe biden",

	// Volodymyr Zelensky
	"zelensky":            "volodymyr zelensky",
	"zelenskyy":           "volodymyr zelensky",
	"volodymyr zelensky":  "volodymyr zelensky",
	"volodymyr zelenskyy": "volodymyr zelensky",
	"зеленский":           "volodymyr zelensky",
	"зеленський":          "volodymyr zelensky",
	"владимир зеленский":  "volodymyr zelensky",
	"володимир зеленський": "volodymyr zelensky",
	"ζελένσκι":            "volodymyr zelensky",
	"젤렌스키":               "volodymyr zelensky",
	"볼로디미르 젤렌스키":         "volodymyr zelensky",
	"泽连斯基":               "volodymyr zelensky",
	"زيلينسكي":            "volodymyr zelensky",
	"जेलेंस्की":           "volodymyr zelensky",

	// Xi Jinping
	"xi":            "xi jinping",
	"xi jinping":    "xi jinping",
	"president xi":  "xi jinping",
	"си цзиньпин":   "xi jinping",
	"σι τζινπίνγκ":  "xi jinping",
	"시진핑":           "xi jinping",
	"习近平":           "xi jinping",
	"習近平":           "xi jinping",
	"شي جين بينغ":   "xi jinping",
	"शी जिनपिंग":    "xi jinping",

	// Emmanuel Macron
	"macron":           "emmanuel macron",
	"emmanuel macron":  "emmanuel macron",
	"макрон":           "emmanuel macron",
	"эммануэль макрон": "emmanuel macron",
	"마크롱":              "emmanuel macron",
	"马克龙":              "emmanuel macron",
	"ماكرون":           "emmanuel macron",
	"मैक्रों":          "emmanuel macron",

	// Narendra Modi
	"modi":          "narendra modi",
	"narendra modi": "narendra modi",
	"моди":          "narendra modi",
	"나렌드라 모디":       "narendra modi",
	"모디":            "narendra modi",
	"莫迪":            "narendra modi",
	"مودي":          "narendra modi",
	"मोदी":          "narendra modi",
	"नरेंद्र मोदी":  "narendra modi",
	"মোদী":          "narendra modi",

	// Kim Jong-un
	"kim jong un":  "kim jong un",
	"kim jong-un":  "kim jong un",
	"ким чен ын":   "kim jong un",
	"김정은":          "kim jong un",
	"金正恩":          "kim jong un",
	"كيم جونغ أون": "kim jong un",
	"किम जोंग उन":  "kim jong un",

	// Olaf Scholz
	"scholz":      "olaf scholz",
	"olaf scholz": "olaf scholz",
	"шольц":       "olaf scholz",
	"олаф шольц":  "olaf scholz",
	"숄츠":          "olaf scholz",
	"朔尔茨":         "olaf scholz",
	"شولتس":       "olaf scholz",

	// Recep Tayyip Erdogan
	"erdogan":              "recep tayyip erdogan",
	"erdoğan":              "recep tayyip erdogan",
	"recep tayyip erdogan": "recep tayyip erdogan",
	"recep tayyip erdoğan": "recep tayyip erdogan",
	"эрдоган":              "recep tayyip erdogan",
	"에르도안":                 "recep tayyip erdogan",
	"埃尔多安":                 "recep tayyip erdogan",
	"أردوغان":              "recep tayyip erdogan",
	"एर्दोगन":              "recep tayyip erdogan",

	// Benjamin Netanyahu
	"netanyahu":           "benjamin netanyahu",
	"benjamin netanyahu":  "benjamin netanyahu",
	"bibi":                "benjamin netanyahu",
	"нетаньяху":           "benjamin netanyahu",
	"биньямин нетаньяху":  "benjamin netanyahu",
	"네타냐후":               "benjamin netanyahu",
	"内塔尼亚胡":              "benjamin netanyahu",
	"نتنياهو":             "benjamin netanyahu",
	"नेतन्याहू":           "benjamin netanyahu",
}
