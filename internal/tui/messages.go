package tui

// assistField names the form field an assistant draft lands in.
type assistField int

const (
	assistVCardBio assistField = iota
	assistCardBio
	assistEmailBody
	assistWifiSlogan
)

// imageSlot names the destination of an asynchronously loaded image.
type imageSlot int

const (
	slotProfile imageSlot = iota
	slotSplash
	slotLogo
)

type exportDoneMsg struct {
	path string
	err  error
}

type assistDoneMsg struct {
	field assistField
	text  string
	err   error
}

type imageLoadedMsg struct {
	slot imageSlot
	uri  string
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
