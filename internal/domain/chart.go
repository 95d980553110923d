package domain

// Pillar is one of the four chart slots. Stem and branch are single
// glyphs; NaYin is the optional Five Elements label the oracle attaches
// to the pillar.
type Pillar struct {
	Stem   string `json:"stem"`
	Branch string `json:"branch"`
	NaYin  string `json:"naYin,omitempty"`
}

// NameAnalysis is the optional scored verdict on the subject's name.
type NameAnalysis struct {
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`
}

// EmbeddedChart is the structured block the oracle is asked to prefix to
// its prose. If present it always carries exactly the four pillars; the
// name analysis is optional.
type EmbeddedChart struct {
	Year         Pillar        `json:"year"`
	Month        Pillar        `json:"month"`
	Day          Pillar        `json:"day"`
	Hour         Pillar        `json:"hour"`
	NameAnalysis *NameAnalysis `json:"nameAnalysis,omitempty"`
}

// DisplayReport is the extractor's output: the oracle prose with the
// embedded block removed, plus the parsed chart when one was found and
// survived validation. Derived once per response and replaced wholesale
// on the next request.
type DisplayReport struct {
	BodyText string
	Chart    *EmbeddedChart
}
