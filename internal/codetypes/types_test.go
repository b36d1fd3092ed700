package codetypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeCode(t *testing.T) {
	require.False(t, TypeUnknown.Known())
	require.Equal(t, "", TypeUnknown.String())
	require.True(t, TypeInteger.Known())
	require.Equal(t, "i", TypeInteger.String())
	require.Equal(t, "x", TypeCode('x').String())
}

func TestParameterJSON(t *testing.T) {
	params := []Parameter{
		{SourceName: "$iSurveyID", TargetName: "survey_id", Type: TypeInteger, Default: IntDefault(0)},
		{SourceName: "$options", TargetName: "options", Default: EmptyMapDefault()},
		{SourceName: "$sLanguage", TargetName: "language", Type: TypeString, Default: NullDefault()},
		{SourceName: "$x", TargetName: "x"},
	}
	data, err := json.Marshal(params)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"name": "$iSurveyID", "py_name": "survey_id", "type": "i", "default": 0},
		{"name": "$options", "py_name": "options", "default": {}},
		{"name": "$sLanguage", "py_name": "language", "type": "s", "default": null},
		{"name": "$x", "py_name": "x"}
	]`, string(data))
}

func TestDefaultValue(t *testing.T) {
	require.Nil(t, NullDefault().Value())
	require.Equal(t, false, BoolDefault(false).Value())
	require.Equal(t, int64(-3), IntDefault(-3).Value())
	require.Equal(t, "en", StringDefault("en").Value())
	require.Equal(t, "PHP_INT_MAX", RawDefault("PHP_INT_MAX").Value())
	require.Equal(t, map[string]any{}, EmptyMapDefault().Value())
	require.Equal(t, "empty_map", DefaultEmptyMap.String())
}
