package booking

// StyleKind tells a real cut style apart from the "decide on site" default.
type StyleKind int

const (
	StyleDecideOnSite StyleKind = iota
	StyleChosen
)

// StyleChoice is a radio selection in a style picker. The zero value means
// "decide on site", which carries no sub-option.
type StyleChoice struct {
	Kind  StyleKind
	CutID string
}

func DecideOnSite() StyleChoice { return StyleChoice{Kind: StyleDecideOnSite} }

func Chosen(cutID string) StyleChoice { return StyleChoice{Kind: StyleChosen, CutID: cutID} }

func (c StyleChoice) IsDecideOnSite() bool {
	return c.Kind != StyleChosen || c.CutID == ""
}
