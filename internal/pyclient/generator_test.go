package pyclient

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
)

func TestGenerate_FunctionBlock(t *testing.T) {
	fns := []codetypes.Function{{
		Name: "function_name",
		Doc:  "A method\n* remark 1 with slash /\n@return string",
		Parameters: []codetypes.Parameter{{
			SourceName: "$parameter",
			TargetName: "parameter",
			Default:    codetypes.StringDefault("foo"),
		}},
	}}

	out, err := Generate(fns)
	require.NoError(t, err)
	require.NotContains(t, out, Placeholder)
	require.Contains(t, out, "class LimeSurveyClient(object):")
	require.Contains(t, out, `    def function_name(self, parameter="foo"):`)
	require.Contains(t, out, `            ("$parameter", parameter)`)
	require.Contains(t, out, "        :return: string")
	require.Contains(t, out, `        return self.query("function_name", params)`)
}

func TestGenerate_KeepsOrderAndRendersAllDefaults(t *testing.T) {
	fns := []codetypes.Function{
		{
			Name: "zeta",
			Parameters: []codetypes.Parameter{
				{SourceName: "$sSessionKey", TargetName: "session_key", Type: codetypes.TypeString},
				{SourceName: "$iStart", TargetName: "start", Type: codetypes.TypeInteger, Default: codetypes.IntDefault(0)},
				{SourceName: "$bAll", TargetName: "all", Type: codetypes.TypeBoolean, Default: codetypes.BoolDefault(false)},
				{SourceName: "$aOptions", TargetName: "options", Type: codetypes.TypeArray, Default: codetypes.EmptyMapDefault()},
				{SourceName: "$sLanguage", TargetName: "language", Type: codetypes.TypeString, Default: codetypes.NullDefault()},
			},
		},
		{Name: "alpha"},
	}

	out, err := Generate(fns)
	require.NoError(t, err)
	require.Contains(t, out, "def zeta(self, session_key, start=0, all=False, options={}, language=None):")
	require.Contains(t, out, "    def alpha(self):\n")
	require.Contains(t, out, "        params = OrderedDict([\n        ])\n        return self.query(\"alpha\", params)")
	require.Less(t, strings.Index(out, "def zeta"), strings.Index(out, "def alpha"))

	payload := `            ("$sSessionKey", session_key),
            ("$iStart", start),
            ("$bAll", all),
            ("$aOptions", options),
            ("$sLanguage", language)
        ])`
	require.Contains(t, out, payload)
}

func TestGenerate_CustomTemplate(t *testing.T) {
	out, err := New(WithTemplate("HEADER\n" + Placeholder + "\nFOOTER\n")).Generate([]codetypes.Function{{Name: "ping"}})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "HEADER\n\n    def ping(self):"))
	require.True(t, strings.HasSuffix(out, "\nFOOTER\n"))
}

func TestGenerate_MissingPlaceholder(t *testing.T) {
	_, err := New(WithTemplate("no marker here")).Generate(nil)
	require.True(t, errors.Is(err, ErrMissingPlaceholder))
}

func TestRenderDoc_RewritesTagsAndTypedParams(t *testing.T) {
	fn := codetypes.Function{
		Name: "export",
		Doc: "Export responses.\n@access public\n@param string $sSessionKey Auth credentials\n" +
			"@param int $iSurveyID\n@param array $aOptions Extra options\n@return string",
		Parameters: []codetypes.Parameter{
			{SourceName: "$sSessionKey", TargetName: "session_key", Type: codetypes.TypeString},
			{SourceName: "$iSurveyID", TargetName: "survey_id", Type: codetypes.TypeInteger},
			{SourceName: "$aOptions", TargetName: "options", Type: codetypes.TypeArray},
		},
	}

	want := strings.Join([]string{
		`        """`,
		`        Export responses.`,
		`        :type session_key: String`,
		`        :param session_key: Auth credentials`,
		`        :type survey_id: Integer`,
		`        :param survey_id:`,
		`        :type options: Dict`,
		`        :param options: Extra options`,
		`        :return: string`,
		`        """`,
	}, "\n")
	require.Equal(t, want, New().renderDoc(fn, 8))
}

func TestRenderDoc_UnknownTypeIsLeftAndReported(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	g := New(WithLogger(zap.New(core)))

	fn := codetypes.Function{
		Name: "get_thing",
		Doc:  "Get it.\n\nSee $oThing and $username.\n@param object $oThing\n@param mixed $username",
		Parameters: []codetypes.Parameter{
			{SourceName: "$oThing", TargetName: "thing", Type: codetypes.TypeCode('o')},
			{SourceName: "$username", TargetName: "username"},
		},
	}

	doc := g.renderDoc(fn, 4)
	require.Contains(t, doc, "    See thing and username.")
	require.Contains(t, doc, "    @param object thing")
	require.Contains(t, doc, "    @param mixed username")
	require.Contains(t, doc, "Get it.\n\n    See")

	entries := logs.FilterMessage("no docstring label for parameter type").All()
	require.Len(t, entries, 1)
	require.Equal(t, "$oThing", entries[0].ContextMap()["parameter"])
}

func TestRenderDoc_IdentifierReplacementRespectsWordBoundaries(t *testing.T) {
	fn := codetypes.Function{
		Doc: "Uses $iSurveyID, not $iSurveyIDs.",
		Parameters: []codetypes.Parameter{
			{SourceName: "$iSurveyID", TargetName: "survey_id"},
		},
	}
	require.Contains(t, New().renderDoc(fn, 0), "Uses survey_id, not $iSurveyIDs.")
}

func TestPyLiteral(t *testing.T) {
	tests := []struct {
		in   *codetypes.Default
		want string
	}{
		{codetypes.NullDefault(), "None"},
		{codetypes.BoolDefault(true), "True"},
		{codetypes.BoolDefault(false), "False"},
		{codetypes.IntDefault(-3), "-3"},
		{codetypes.StringDefault("pdf"), `"pdf"`},
		{codetypes.StringDefault(`say "hi"`), `"say \"hi\""`},
		{codetypes.EmptyMapDefault(), "{}"},
		{codetypes.RawDefault("SOME_CONSTANT"), "SOME_CONSTANT"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, pyLiteral(tt.in))
	}
}
