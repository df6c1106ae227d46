package pdftables

// WordsExtractSettings configures glyph-to-word clustering.
type WordsExtractSettings struct {
	XTolerance          float64
	YTolerance          float64
	KeepBlankChars      bool
	UseTextFlow         bool
	TextReadInClockwise bool
	// SplitAtPunctuation is nil for "don't split on punctuation". A
	// pointer to "all" selects defaultPunctuationSet; any other string is
	// taken as the literal set of runes to split on.
	SplitAtPunctuation *string
	ExpandLigatures    bool
}

// DefaultWordsExtractSettings returns the package's default tuning.
func DefaultWordsExtractSettings() WordsExtractSettings {
	return WordsExtractSettings{
		XTolerance:          3.0,
		YTolerance:          3.0,
		KeepBlankChars:      false,
		UseTextFlow:         false,
		TextReadInClockwise: false,
		SplitAtPunctuation:  nil,
		ExpandLigatures:     true,
	}
}

// Validate checks the non-negative preconditions these settings require.
func (s WordsExtractSettings) Validate() error {
	if s.XTolerance < 0 {
		return validationErrorf("x_tolerance", "x_tolerance must be >= 0, got %v", s.XTolerance)
	}
	if s.YTolerance < 0 {
		return validationErrorf("y_tolerance", "y_tolerance must be >= 0, got %v", s.YTolerance)
	}
	return nil
}

// defaultPunctuationSet is the platform-defined default used when
// SplitAtPunctuation points to the literal string "all".
const defaultPunctuationSet = ".,;:!?()[]{}\"'"

// EdgeStrategy selects how TfSettings derives edges for one axis.
type EdgeStrategy string

const (
	StrategyLines       EdgeStrategy = "lines"
	StrategyLinesStrict EdgeStrategy = "lines_strict"
	StrategyText        EdgeStrategy = "text"
)

// TfSettings configures the table-finder pipeline.
type TfSettings struct {
	VerticalStrategy   EdgeStrategy
	HorizontalStrategy EdgeStrategy

	SnapXTolerance float64
	SnapYTolerance float64

	JoinXTolerance float64
	JoinYTolerance float64

	EdgeMinLength         float64
	EdgeMinLengthPrefilter float64

	MinWordsVertical   int
	MinWordsHorizontal int

	IntersectionXTolerance float64
	IntersectionYTolerance float64

	TextSettings WordsExtractSettings

	// TextXTolerance/TextYTolerance govern cell-text attribution only (the
	// word-center-vs-cell-bbox containment check); TextSettings governs word
	// assembly. The two are deliberately not unified — see DESIGN.md.
	TextXTolerance float64
	TextYTolerance float64

	IncludeSingleCell bool
	MinRows           int
	MinColumns        int

	// NeedStrip trims leading/trailing whitespace from cell text before
	// serialization. Defaults to true.
	NeedStrip bool
}

// DefaultTfSettings returns the package's default tuning.
func DefaultTfSettings() TfSettings {
	return TfSettings{
		VerticalStrategy:       StrategyLines,
		HorizontalStrategy:     StrategyLines,
		SnapXTolerance:         3.0,
		SnapYTolerance:         3.0,
		JoinXTolerance:         3.0,
		JoinYTolerance:         3.0,
		EdgeMinLength:          3.0,
		EdgeMinLengthPrefilter: 3.0,
		MinWordsVertical:       0,
		MinWordsHorizontal:     0,
		IntersectionXTolerance: 3.0,
		IntersectionYTolerance: 3.0,
		TextSettings:           DefaultWordsExtractSettings(),
		TextXTolerance:         3.0,
		TextYTolerance:         3.0,
		IncludeSingleCell:      true,
		MinRows:                1,
		MinColumns:             1,
		NeedStrip:              true,
	}
}

// Validate checks every numeric/enum precondition these settings require,
// naming the first offending field.
func (s TfSettings) Validate() error {
	if err := s.TextSettings.Validate(); err != nil {
		return err
	}
	if err := validateStrategy("vertical_strategy", s.VerticalStrategy); err != nil {
		return err
	}
	if err := validateStrategy("horizontal_strategy", s.HorizontalStrategy); err != nil {
		return err
	}
	nonNeg := []struct {
		name string
		val  float64
	}{
		{"snap_x_tolerance", s.SnapXTolerance},
		{"snap_y_tolerance", s.SnapYTolerance},
		{"join_x_tolerance", s.JoinXTolerance},
		{"join_y_tolerance", s.JoinYTolerance},
		{"edge_min_length", s.EdgeMinLength},
		{"edge_min_length_prefilter", s.EdgeMinLengthPrefilter},
		{"intersection_x_tolerance", s.IntersectionXTolerance},
		{"intersection_y_tolerance", s.IntersectionYTolerance},
		{"text_x_tolerance", s.TextXTolerance},
		{"text_y_tolerance", s.TextYTolerance},
	}
	for _, f := range nonNeg {
		if f.val < 0 {
			return validationErrorf(f.name, "%s must be >= 0, got %v", f.name, f.val)
		}
	}
	if s.MinWordsVertical < 0 {
		return validationErrorf("min_words_vertical", "min_words_vertical must be >= 0, got %v", s.MinWordsVertical)
	}
	if s.MinWordsHorizontal < 0 {
		return validationErrorf("min_words_horizontal", "min_words_horizontal must be >= 0, got %v", s.MinWordsHorizontal)
	}
	if s.MinRows < 0 {
		return validationErrorf("min_rows", "min_rows must be >= 0, got %v", s.MinRows)
	}
	if s.MinColumns < 0 {
		return validationErrorf("min_columns", "min_columns must be >= 0, got %v", s.MinColumns)
	}
	return nil
}

func validateStrategy(field string, s EdgeStrategy) error {
	switch s {
	case StrategyLines, StrategyLinesStrict, StrategyText:
		return nil
	default:
		return validationErrorf(field, "%s must be one of lines, lines_strict, text, got %q", field, s)
	}
}

// Overrides carries loose keyword-style overrides on top of a TfSettings
// value, for callers that want to override a handful of fields without
// restating the rest. A nil field means "keep the settings value"; a
// non-nil field wins over it.
type Overrides struct {
	VerticalStrategy       *EdgeStrategy
	HorizontalStrategy     *EdgeStrategy
	SnapXTolerance         *float64
	SnapYTolerance         *float64
	JoinXTolerance         *float64
	JoinYTolerance         *float64
	EdgeMinLength          *float64
	EdgeMinLengthPrefilter *float64
	MinWordsVertical       *int
	MinWordsHorizontal     *int
	IntersectionXTolerance *float64
	IntersectionYTolerance *float64
	TextXTolerance         *float64
	TextYTolerance         *float64
	IncludeSingleCell      *bool
	MinRows                *int
	MinColumns             *int
}

// MergeOverrides applies o on top of base, field by field, overrides winning;
// unset (nil) fields in o leave base's value untouched. base is not mutated.
func MergeOverrides(base TfSettings, o Overrides) TfSettings {
	merged := base
	if o.VerticalStrategy != nil {
		merged.VerticalStrategy = *o.VerticalStrategy
	}
	if o.HorizontalStrategy != nil {
		merged.HorizontalStrategy = *o.HorizontalStrategy
	}
	if o.SnapXTolerance != nil {
		merged.SnapXTolerance = *o.SnapXTolerance
	}
	if o.SnapYTolerance != nil {
		merged.SnapYTolerance = *o.SnapYTolerance
	}
	if o.JoinXTolerance != nil {
		merged.JoinXTolerance = *o.JoinXTolerance
	}
	if o.JoinYTolerance != nil {
		merged.JoinYTolerance = *o.JoinYTolerance
	}
	if o.EdgeMinLength != nil {
		merged.EdgeMinLength = *o.EdgeMinLength
	}
	if o.EdgeMinLengthPrefilter != nil {
		merged.EdgeMinLengthPrefilter = *o.EdgeMinLengthPrefilter
	}
	if o.MinWordsVertical != nil {
		merged.MinWordsVertical = *o.MinWordsVertical
	}
	if o.MinWordsHorizontal != nil {
		merged.MinWordsHorizontal = *o.MinWordsHorizontal
	}
	if o.IntersectionXTolerance != nil {
		merged.IntersectionXTolerance = *o.IntersectionXTolerance
	}
	if o.IntersectionYTolerance != nil {
		merged.IntersectionYTolerance = *o.IntersectionYTolerance
	}
	if o.TextXTolerance != nil {
		merged.TextXTolerance = *o.TextXTolerance
	}
	if o.TextYTolerance != nil {
		merged.TextYTolerance = *o.TextYTolerance
	}
	if o.IncludeSingleCell != nil {
		merged.IncludeSingleCell = *o.IncludeSingleCell
	}
	if o.MinRows != nil {
		merged.MinRows = *o.MinRows
	}
	if o.MinColumns != nil {
		merged.MinColumns = *o.MinColumns
	}
	return merged
}
