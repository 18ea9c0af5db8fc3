package shorts

type AuthData struct {
	CSRF   string
	Cookie string
}

type Media struct {
	FormatNote string `json:"format_note"`
	URL        string `json:"url"`
}

// MediaList is decoded from a two element array,
// only the first list takes part in selection.
type MediaList [][]*Media
