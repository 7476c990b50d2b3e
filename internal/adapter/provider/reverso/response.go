package reverso

// apiRequest is the body of a bst-query-service call.
// Pages are 1-based.
type apiRequest struct {
	SourceText string `json:"source_text"`
	TargetText string `json:"target_text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	NPage      int    `json:"npage"`
	Mode       int    `json:"mode"`
}

// apiResponse is one page of Reverso Context results. Dictionary entries are
// the same on every page.
type apiResponse struct {
	NPages     int                  `json:"npages"`
	List       []apiExample         `json:"list"`
	Dictionary []apiDictionaryEntry `json:"dictionary_entry_list"`
}

// apiExample is a sentence pair. Both sides mark the match with <em> tags.
type apiExample struct {
	SText string `json:"s_text"`
	TText string `json:"t_text"`
}

// apiDictionaryEntry is a suggested translation of the query.
type apiDictionaryEntry struct {
	Term      string `json:"term"`
	AlignFreq int    `json:"alignFreq"`
	Pos       string `json:"pos"`
}
