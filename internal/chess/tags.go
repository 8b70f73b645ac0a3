package chess

// Tag names with special meaning to the codecs.
const (
	EventTag       = "Event"
	SiteTag        = "Site"
	DateTag        = "Date"
	RoundTag       = "Round"
	WhiteTag       = "White"
	BlackTag       = "Black"
	ResultTag      = "Result"
	FENTag         = "FEN"
	SetupTag       = "SetUp"
	VariantTag     = "Variant"
	TerminationTag = "Termination"
	PlyCountTag    = "PlyCount"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}
