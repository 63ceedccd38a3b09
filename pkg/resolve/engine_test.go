package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CliForge/cliparams/pkg/param"
)

// recordingOptions counts store calls on top of MapOptions.
type recordingOptions struct {
	MapOptions
	interactiveCalls int
	sets             map[string]interface{}
}

func newRecordingOptions(interactive bool, values map[string]interface{}) *recordingOptions {
	return &recordingOptions{
		MapOptions: MapOptions{Values: values, NonInteractive: !interactive},
		sets:       make(map[string]interface{}),
	}
}

func (r *recordingOptions) Interactive() bool {
	r.interactiveCalls++
	return r.MapOptions.Interactive()
}

func (r *recordingOptions) SetOption(name string, value interface{}) {
	r.sets[name] = value
	r.MapOptions.SetOption(name, value)
}

// failingTerminal fails the test when asked.
type failingTerminal struct{ t *testing.T }

func (f failingTerminal) Ask(prompt *param.Prompt) (interface{}, error) {
	f.t.Fatalf("unexpected question for --%s", prompt.Name)
	return nil, nil
}

func testParams() map[string]param.Param {
	name := param.NewString("name")
	name.SetDescription("Your name")
	name.SetRequired(true)

	flag := param.NewBool("bool")
	flag.SetDescription("True or false")
	flag.SetRequired(true)

	optionalInt := param.NewInt("int")
	optionalInt.SetDescription("Integer")

	choices := param.NewChoice("choices", []string{"a", "b", "c"})
	choices.SetDescription("Choose one")
	choices.SetDefault("a")

	withDefault := param.NewInt("multi-int-with-default")
	withDefault.SetDescription("Allowed integers")
	withDefault.SetDefault([]int{1, 2})
	withDefault.SetAllowMultiple(true)

	required := param.NewInt("multi-int-required")
	required.SetDescription("Required integers")
	required.SetRequired(true)
	required.SetAllowMultiple(true)

	return map[string]param.Param{
		"name":                   name,
		"bool":                   flag,
		"int":                    optionalInt,
		"choices":                choices,
		"multi-int-with-default": withDefault,
		"multi-int-required":     required,
	}
}

func newTestEngine(t *testing.T, options Options, terminal Terminal, names ...string) *Engine {
	t.Helper()
	all := testParams()
	params := make([]param.Param, 0, len(names))
	for _, n := range names {
		params = append(params, all[n])
	}
	e, err := NewEngine(options, terminal, params)
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsDuplicateNames(t *testing.T) {
	_, err := NewEngine(NewMapOptions(nil), nil, []param.Param{param.NewInt("a"), param.NewString("a")})
	assert.ErrorIs(t, err, param.ErrInvalidConfiguration)
}

func TestResolveUnknownParameter(t *testing.T) {
	e := newTestEngine(t, NewMapOptions(nil), failingTerminal{t}, "name")

	_, err := e.Resolve("does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, param.ErrUnknownParameter)
	assert.Contains(t, err.Error(), "Invalid parameter name")
}

func TestResolveReturnsDefaultWhenNonInteractive(t *testing.T) {
	opts := newRecordingOptions(false, map[string]interface{}{})
	e := newTestEngine(t, opts, failingTerminal{t}, "choices", "multi-int-with-default")

	got, err := e.Resolve("choices")
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	got, err = e.Resolve("multi-int-with-default")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2}, got)

	assert.Empty(t, opts.sets, "defaults are not written back")
}

func TestResolveNormalizesProvidedScalar(t *testing.T) {
	// Values from the command line arrive as strings.
	opts := newRecordingOptions(true, map[string]interface{}{"int": "10"})
	e := newTestEngine(t, opts, failingTerminal{t}, "int")

	got, err := e.Resolve("int")
	require.NoError(t, err)
	assert.Equal(t, 10, got)
	assert.Zero(t, opts.interactiveCalls)
}

func TestResolveProvidedArray(t *testing.T) {
	opts := newRecordingOptions(true, map[string]interface{}{"multi-int-with-default": []string{"10"}})
	e := newTestEngine(t, opts, failingTerminal{t}, "multi-int-with-default")

	got, err := e.Resolve("multi-int-with-default")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{10}, got)
	assert.Zero(t, opts.interactiveCalls)
}

func TestResolveRejectsScalarForArrayParam(t *testing.T) {
	opts := newRecordingOptions(true, map[string]interface{}{"multi-int-with-default": 1})
	e := newTestEngine(t, opts, failingTerminal{t}, "multi-int-with-default")

	_, err := e.Resolve("multi-int-with-default")
	require.Error(t, err)
	assert.ErrorIs(t, err, param.ErrInvalidShape)
	assert.Contains(t, err.Error(), "expects an array of values")
	assert.Contains(t, err.Error(), `"int"`)
}

func TestResolveRejectsSequenceForScalarParam(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		typeName string
	}{
		{"name", []string{"a"}, "[]string"},
		{"bool", []bool{true}, "[]bool"},
		{"int", []int64{1}, "[]int64"},
		{"choices", []interface{}{"a"}, "[]interface {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newRecordingOptions(true, map[string]interface{}{tt.name: tt.value})
			e := newTestEngine(t, opts, failingTerminal{t}, tt.name)

			got, err := e.Resolve(tt.name)
			assert.Nil(t, got)
			require.ErrorIs(t, err, param.ErrInvalidShape)
			assert.Contains(t, err.Error(), "expects a single value")
			assert.Contains(t, err.Error(), `"`+tt.typeName+`"`)
			assert.Empty(t, opts.sets)
		})
	}
}

func TestResolveAcceptsTypedDefaultSlices(t *testing.T) {
	ids := param.NewInt("ids")
	ids.SetAllowMultiple(true)
	ids.SetDefault([]int64{1, 2})

	e, err := NewEngine(&MapOptions{NonInteractive: true}, nil, []param.Param{ids})
	require.NoError(t, err)

	got, err := e.Resolve("ids")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2}, got)
}

func TestResolveRejectsInvalidArrayElement(t *testing.T) {
	opts := newRecordingOptions(true, map[string]interface{}{"multi-int-with-default": []interface{}{"string"}})
	e := newTestEngine(t, opts, failingTerminal{t}, "multi-int-with-default")

	_, err := e.Resolve("multi-int-with-default")
	require.Error(t, err)
	assert.ErrorIs(t, err, param.ErrInvalidValue)
	assert.Contains(t, err.Error(), "integer expected")

	var pe *param.Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "multi-int-with-default", pe.Param)
}

func TestResolveMissingRequiredWhenNonInteractive(t *testing.T) {
	opts := newRecordingOptions(false, map[string]interface{}{})
	e := newTestEngine(t, opts, failingTerminal{t}, "name")

	_, err := e.Resolve("name")
	require.Error(t, err)
	assert.ErrorIs(t, err, param.ErrMissingRequiredValue)
	assert.EqualError(t, err, "Missing required value for --name parameter")
}

func TestResolveRequiredWithDefaultWhenNonInteractive(t *testing.T) {
	p := param.NewInt("count")
	p.SetRequired(true)
	p.SetDefault("3")

	e, err := NewEngine(&MapOptions{NonInteractive: true}, failingTerminal{t}, []param.Param{p})
	require.NoError(t, err)

	got, err := e.Resolve("count")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestResolveOptionalNonInteractiveWithoutDefault(t *testing.T) {
	opts := newRecordingOptions(false, map[string]interface{}{})
	e := newTestEngine(t, opts, failingTerminal{t}, "int")

	got, err := e.Resolve("int")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Contains(t, opts.sets, "int")
}

func TestResolvePromptsWhenInteractive(t *testing.T) {
	opts := newRecordingOptions(true, map[string]interface{}{})
	term := NewScriptedTerminal("Grace")
	e := newTestEngine(t, opts, term, "name")

	got, err := e.Resolve("name")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got)
	assert.Equal(t, "Grace", opts.sets["name"])
	assert.Len(t, term.Asked, 1)
}

func TestResolveIsIdempotentAfterWriteBack(t *testing.T) {
	opts := newRecordingOptions(true, map[string]interface{}{})
	term := NewScriptedTerminal("7")
	e := newTestEngine(t, opts, term, "int")

	first, err := e.Resolve("int")
	require.NoError(t, err)
	second, err := e.Resolve("int")
	require.NoError(t, err)

	assert.Equal(t, 7, first)
	assert.Equal(t, first, second)
	assert.Len(t, term.Asked, 1)
}

func TestResolvePromptsUntilBlankForArrayParam(t *testing.T) {
	opts := newRecordingOptions(true, map[string]interface{}{"multi-int-with-default": []interface{}{}})
	term := NewScriptedTerminal(10, 2, 7, nil)
	e := newTestEngine(t, opts, term, "multi-int-with-default")

	got, err := e.Resolve("multi-int-with-default")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{10, 2, 7}, got)
	assert.Equal(t, []interface{}{10, 2, 7}, opts.sets["multi-int-with-default"])
	assert.Len(t, term.Asked, 4)
}

func TestResolveRequiredArrayCollectsAtLeastOneValue(t *testing.T) {
	opts := newRecordingOptions(true, map[string]interface{}{})
	term := NewScriptedTerminal("", "10", "hey", "1", "")
	e := newTestEngine(t, opts, term, "multi-int-required")

	got, err := e.Resolve("multi-int-required")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{10, 1}, got)

	// The first blank and "hey" were rejected and re-asked.
	require.Len(t, term.Rejected, 2)
	assert.ErrorContains(t, term.Rejected[0], "integer expected")
	assert.ErrorContains(t, term.Rejected[1], "integer expected")
	assert.Len(t, term.Asked, 3)
	assert.Zero(t, term.Remaining())
}

func TestResolveOptionalArrayStopsOnFirstBlank(t *testing.T) {
	p := param.NewString("tags")
	p.SetAllowMultiple(true)
	term := NewScriptedTerminal("")

	e, err := NewEngine(NewMapOptions(nil), term, []param.Param{p})
	require.NoError(t, err)

	got, err := e.Resolve("tags")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, got)
}

func TestResolveOptionalScalarAcceptsBlankWithoutKindValidation(t *testing.T) {
	dir, err := param.NewPath("dir", param.PathDir)
	require.NoError(t, err)
	dir.SetMustExist(true)

	tests := []struct {
		name  string
		param param.Param
	}{
		{name: "int", param: param.NewInt("value")},
		{name: "string", param: stringWithPattern(t, `^x+$`)},
		{name: "choice", param: param.NewChoice("value", []string{"a"})},
		{name: "path", param: dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := NewScriptedTerminal("")
			e, err := NewEngine(NewMapOptions(nil), term, []param.Param{tt.param})
			require.NoError(t, err)

			got, err := e.Resolve(tt.param.Name())
			require.NoError(t, err)
			assert.Nil(t, got)
			assert.Empty(t, term.Rejected)
		})
	}
}

func TestResolveBoolFromTerminal(t *testing.T) {
	opts := newRecordingOptions(true, map[string]interface{}{})
	e := newTestEngine(t, opts, NewScriptedTerminal(true), "bool")

	got, err := e.Resolve("bool")
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestResolveChoiceOutsideSet(t *testing.T) {
	opts := newRecordingOptions(true, map[string]interface{}{"choices": "z"})
	e := newTestEngine(t, opts, failingTerminal{t}, "choices")

	_, err := e.Resolve("choices")
	assert.ErrorIs(t, err, param.ErrInvalidValue)

	opts.Values["choices"] = "b"
	got, err := e.Resolve("choices")
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestResolveWithoutTerminalFails(t *testing.T) {
	e := newTestEngine(t, NewMapOptions(nil), nil, "name")

	_, err := e.Resolve("name")
	assert.ErrorContains(t, err, "no terminal available")
}

func TestResolveDependentParameters(t *testing.T) {
	first := param.NewString("first")
	first.SetRequired(true)
	second := param.NewString("second")
	second.SetRequired(true)

	opts := NewMapOptions(nil)
	e, err := NewEngine(opts, NewScriptedTerminal("one", "two"), []param.Param{first, second})
	require.NoError(t, err)

	_, err = e.Resolve("first")
	require.NoError(t, err)
	assert.Equal(t, "one", opts.Option("first"))

	_, err = e.Resolve("second")
	require.NoError(t, err)
	assert.Equal(t, "two", opts.Option("second"))
}

func stringWithPattern(t *testing.T, pattern string) *param.String {
	t.Helper()
	p := param.NewString("value")
	require.NoError(t, p.SetPattern(pattern))
	return p
}
