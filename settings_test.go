package pdftables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTfSettingsValidates(t *testing.T) {
	require.NoError(t, DefaultTfSettings().Validate())
}

func TestTfSettingsValidateRejectsNegativeTolerance(t *testing.T) {
	settings := DefaultTfSettings()
	settings.SnapXTolerance = -1

	err := settings.Validate()
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, KindValidationError, pe.Kind)
	require.Equal(t, "snap_x_tolerance", pe.Field)
}

func TestTfSettingsValidateRejectsUnknownStrategy(t *testing.T) {
	settings := DefaultTfSettings()
	settings.VerticalStrategy = "diagonal"

	err := settings.Validate()
	require.Error(t, err)
}

func TestMergeOverridesLeavesUnsetFieldsAlone(t *testing.T) {
	base := DefaultTfSettings()
	tol := 7.5
	merged := MergeOverrides(base, Overrides{SnapXTolerance: &tol})

	require.Equal(t, 7.5, merged.SnapXTolerance)
	require.Equal(t, base.SnapYTolerance, merged.SnapYTolerance)
	require.Equal(t, base.MinRows, merged.MinRows)
	require.Equal(t, DefaultTfSettings(), base, "base must not be mutated")
}

func TestWordsExtractSettingsValidateRejectsNegativeTolerance(t *testing.T) {
	settings := DefaultWordsExtractSettings()
	settings.YTolerance = -0.5
	require.Error(t, settings.Validate())
}
