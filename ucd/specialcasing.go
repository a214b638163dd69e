package ucd

// special is one unconditional line of SpecialCasing.txt: code; lower; title; upper.
type special struct {
	code                rune
	lower, title, upper []rune
}

// Unconditional entries of SpecialCasing.txt. Conditional (Final_Sigma) and
// language-sensitive (tr, az, lt) entries are excluded.
var specialLines = []special{
	{0x00DF, []rune{0x00DF}, []rune{0x0053, 0x0073}, []rune{0x0053, 0x0053}},
	{0x0130, []rune{0x0069, 0x0307}, []rune{0x0130}, []rune{0x0130}},

	// ligatures
	{0xFB00, []rune{0xFB00}, []rune{0x0046, 0x0066}, []rune{0x0046, 0x0046}},
	{0xFB01, []rune{0xFB01}, []rune{0x0046, 0x0069}, []rune{0x0046, 0x0049}},
	{0xFB02, []rune{0xFB02}, []rune{0x0046, 0x006C}, []rune{0x0046, 0x004C}},
	{0xFB03, []rune{0xFB03}, []rune{0x0046, 0x0066, 0x0069}, []rune{0x0046, 0x0046, 0x0049}},
	{0xFB04, []rune{0xFB04}, []rune{0x0046, 0x0066, 0x006C}, []rune{0x0046, 0x0046, 0x004C}},
	{0xFB05, []rune{0xFB05}, []rune{0x0053, 0x0074}, []rune{0x0053, 0x0054}},
	{0xFB06, []rune{0xFB06}, []rune{0x0053, 0x0074}, []rune{0x0053, 0x0054}},
	{0x0587, []rune{0x0587}, []rune{0x0535, 0x0582}, []rune{0x0535, 0x0552}},
	{0xFB13, []rune{0xFB13}, []rune{0x0544, 0x0576}, []rune{0x0544, 0x0546}},
	{0xFB14, []rune{0xFB14}, []rune{0x0544, 0x0565}, []rune{0x0544, 0x0535}},
	{0xFB15, []rune{0xFB15}, []rune{0x0544, 0x056B}, []rune{0x0544, 0x053B}},
	{0xFB16, []rune{0xFB16}, []rune{0x054E, 0x0576}, []rune{0x054E, 0x0546}},
	{0xFB17, []rune{0xFB17}, []rune{0x0544, 0x056D}, []rune{0x0544, 0x053D}},

	// no corresponding uppercase precomposed character
	{0x0149, []rune{0x0149}, []rune{0x02BC, 0x004E}, []rune{0x02BC, 0x004E}},
	{0x0390, []rune{0x0390}, []rune{0x0399, 0x0308, 0x0301}, []rune{0x0399, 0x0308, 0x0301}},
	{0x03B0, []rune{0x03B0}, []rune{0x03A5, 0x0308, 0x0301}, []rune{0x03A5, 0x0308, 0x0301}},
	{0x01F0, []rune{0x01F0}, []rune{0x004A, 0x030C}, []rune{0x004A, 0x030C}},
	{0x1E96, []rune{0x1E96}, []rune{0x0048, 0x0331}, []rune{0x0048, 0x0331}},
	{0x1E97, []rune{0x1E97}, []rune{0x0054, 0x0308}, []rune{0x0054, 0x0308}},
	{0x1E98, []rune{0x1E98}, []rune{0x0057, 0x030A}, []rune{0x0057, 0x030A}},
	{0x1E99, []rune{0x1E99}, []rune{0x0059, 0x030A}, []rune{0x0059, 0x030A}},
	{0x1E9A, []rune{0x1E9A}, []rune{0x0041, 0x02BE}, []rune{0x0041, 0x02BE}},
	{0x1F50, []rune{0x1F50}, []rune{0x03A5, 0x0313}, []rune{0x03A5, 0x0313}},
	{0x1F52, []rune{0x1F52}, []rune{0x03A5, 0x0313, 0x0300}, []rune{0x03A5, 0x0313, 0x0300}},
	{0x1F54, []rune{0x1F54}, []rune{0x03A5, 0x0313, 0x0301}, []rune{0x03A5, 0x0313, 0x0301}},
	{0x1F56, []rune{0x1F56}, []rune{0x03A5, 0x0313, 0x0342}, []rune{0x03A5, 0x0313, 0x0342}},
	{0x1FB6, []rune{0x1FB6}, []rune{0x0391, 0x0342}, []rune{0x0391, 0x0342}},
	{0x1FC6, []rune{0x1FC6}, []rune{0x0397, 0x0342}, []rune{0x0397, 0x0342}},
	{0x1FD2, []rune{0x1FD2}, []rune{0x0399, 0x0308, 0x0300}, []rune{0x0399, 0x0308, 0x0300}},
	{0x1FD3, []rune{0x1FD3}, []rune{0x0399, 0x0308, 0x0301}, []rune{0x0399, 0x0308, 0x0301}},
	{0x1FD6, []rune{0x1FD6}, []rune{0x0399, 0x0342}, []rune{0x0399, 0x0342}},
	{0x1FD7, []rune{0x1FD7}, []rune{0x0399, 0x0308, 0x0342}, []rune{0x0399, 0x0308, 0x0342}},
	{0x1FE2, []rune{0x1FE2}, []rune{0x03A5, 0x0308, 0x0300}, []rune{0x03A5, 0x0308, 0x0300}},
	{0x1FE3, []rune{0x1FE3}, []rune{0x03A5, 0x0308, 0x0301}, []rune{0x03A5, 0x0308, 0x0301}},
	{0x1FE4, []rune{0x1FE4}, []rune{0x03A1, 0x0313}, []rune{0x03A1, 0x0313}},
	{0x1FE6, []rune{0x1FE6}, []rune{0x03A5, 0x0342}, []rune{0x03A5, 0x0342}},
	{0x1FE7, []rune{0x1FE7}, []rune{0x03A5, 0x0308, 0x0342}, []rune{0x03A5, 0x0308, 0x0342}},
	{0x1FF6, []rune{0x1FF6}, []rune{0x03A9, 0x0342}, []rune{0x03A9, 0x0342}},

	// single letters with ypogegrammeni or prosgegrammeni
	{0x1FB3, []rune{0x1FB3}, []rune{0x1FBC}, []rune{0x0391, 0x0399}},
	{0x1FBC, []rune{0x1FB3}, []rune{0x1FBC}, []rune{0x0391, 0x0399}},
	{0x1FC3, []rune{0x1FC3}, []rune{0x1FCC}, []rune{0x0397, 0x0399}},
	{0x1FCC, []rune{0x1FC3}, []rune{0x1FCC}, []rune{0x0397, 0x0399}},
	{0x1FF3, []rune{0x1FF3}, []rune{0x1FFC}, []rune{0x03A9, 0x0399}},
	{0x1FFC, []rune{0x1FF3}, []rune{0x1FFC}, []rune{0x03A9, 0x0399}},

	// ypogegrammeni without corresponding titlecase or uppercase
	{0x1FB2, []rune{0x1FB2}, []rune{0x1FBA, 0x0345}, []rune{0x1FBA, 0x0399}},
	{0x1FB4, []rune{0x1FB4}, []rune{0x0386, 0x0345}, []rune{0x0386, 0x0399}},
	{0x1FC2, []rune{0x1FC2}, []rune{0x1FCA, 0x0345}, []rune{0x1FCA, 0x0399}},
	{0x1FC4, []rune{0x1FC4}, []rune{0x0389, 0x0345}, []rune{0x0389, 0x0399}},
	{0x1FF2, []rune{0x1FF2}, []rune{0x1FFA, 0x0345}, []rune{0x1FFA, 0x0399}},
	{0x1FF4, []rune{0x1FF4}, []rune{0x038F, 0x0345}, []rune{0x038F, 0x0399}},
	{0x1FB7, []rune{0x1FB7}, []rune{0x0391, 0x0342, 0x0345}, []rune{0x0391, 0x0342, 0x0399}},
	{0x1FC7, []rune{0x1FC7}, []rune{0x0397, 0x0342, 0x0345}, []rune{0x0397, 0x0342, 0x0399}},
	{0x1FF7, []rune{0x1FF7}, []rune{0x03A9, 0x0342, 0x0345}, []rune{0x03A9, 0x0342, 0x0399}},
}

// specialCasing returns the unconditional special casing entries, including the
// Greek letters with ypogegrammeni (U+1F80..U+1FAF). Those come in runs of
// eight small letters followed by eight titlecase letters; both uppercase to
// the capital base letter followed by U+0399.
func specialCasing() []CaseEntry {
	entries := make([]CaseEntry, 0, len(specialLines)+48)
	for _, s := range specialLines {
		entries = append(entries, CaseEntry{CodePoint: s.code, Lower: s.lower, Title: s.title, Upper: s.upper})
	}
	for _, run := range []struct{ small, capital rune }{
		{0x1F80, 0x1F08}, // alpha
		{0x1F90, 0x1F28}, // eta
		{0x1FA0, 0x1F68}, // omega
	} {
		for i := rune(0); i < 8; i++ {
			small, title := run.small+i, run.small+8+i
			upper := []rune{run.capital + i, 0x0399}
			entries = append(entries,
				CaseEntry{CodePoint: small, Lower: []rune{small}, Title: []rune{title}, Upper: upper},
				CaseEntry{CodePoint: title, Lower: []rune{small}, Title: []rune{title}, Upper: upper},
			)
		}
	}
	return entries
}
