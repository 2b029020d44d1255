package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/activations/internal/tensor"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeNested(t *testing.T, out string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	return v
}

func TestApply_ReLU(t *testing.T) {
	out, _, err := execute(t, "[-2, 0, 3]", "apply", "relu")
	require.NoError(t, err)
	assert.Equal(t, "[0,0,3]\n", out)
}

func TestApply_SoftmaxLargeLogits(t *testing.T) {
	out, _, err := execute(t, "[[1000, 1000, 1000]]", "apply", "softmax")
	require.NoError(t, err)

	rows := decodeNested(t, out).([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].([]interface{})
	require.Len(t, row, 3)
	for _, v := range row {
		assert.InDelta(t, 1.0/3, v.(float64), 1e-15)
	}
}

func TestApply_FastVarKeepDims(t *testing.T) {
	out, _, err := execute(t, "[[1, 2], [3, 4]]", "apply", "fastvar", "--axis", "0", "--keepdims")
	require.NoError(t, err)
	assert.Equal(t, "[[1,1]]\n", out)

	out, _, err = execute(t, "[1, 2, 3, 4]", "apply", "fastvar", "--axis", "-1")
	require.NoError(t, err)
	assert.Equal(t, "1.25\n", out)
}

func TestApply_Float32(t *testing.T) {
	out, _, err := execute(t, "[0, 1e4, -1e4]", "apply", "sigmoid", "--dtype", "float32")
	require.NoError(t, err)
	assert.Equal(t, "[0.5,1,0]\n", out)
}

func TestApply_NonFiniteValues(t *testing.T) {
	out, _, err := execute(t, `[["-Infinity", 0, 0]]`, "apply", "logsoftmax")
	require.NoError(t, err)

	row := decodeNested(t, out).([]interface{})[0].([]interface{})
	assert.Equal(t, "-Infinity", row[0])
	assert.InDelta(t, -math.Ln2, row[1].(float64), 1e-12)
}

func TestApply_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	require.NoError(t, os.WriteFile(path, []byte("[-1, 2]"), 0o600))

	out, _, err := execute(t, "", "apply", "leaky_relu", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "[-0.01,2]\n", out)
}

func TestApply_Metrics(t *testing.T) {
	_, stderr, err := execute(t, "[0, 1]", "apply", "elu", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, `activations_evaluations_total{function="elu"} 1`)
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"unknown function", "[1]", []string{"apply", "gelu"}, "invalid function"},
		{"missing function", "[1]", []string{"apply"}, "accepts 1 arg"},
		{"bad dtype", "[1]", []string{"apply", "relu", "--dtype", "int8"}, "invalid dtype"},
		{"ragged", "[[1, 2], [3]]", []string{"apply", "relu"}, "ragged array"},
		{"empty", "[]", []string{"apply", "relu"}, "empty array"},
		{"not a number", `["a"]`, []string{"apply", "relu"}, "not a number"},
		{"bad json", "[1,", []string{"apply", "relu"}, "decode input"},
		{"axis", "[[1, 2]]", []string{"apply", "softmax", "--axis", "2"}, "axis out of range"},
		{"missing file", "", []string{"apply", "relu", "--input", "/nonexistent/x.json"}, "read input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "relu"))
	assert.Contains(t, lines[0], "elementwise")
	assert.True(t, strings.HasPrefix(lines[7], "fastvar"))
	assert.Contains(t, lines[7], "axis")
}

func TestInfo(t *testing.T) {
	out, _, err := execute(t, "", "info", "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend:  CPU")
	assert.Contains(t, out, "Parallel: false")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "activations "+version+"\n", out)
}

func TestDecodeArray(t *testing.T) {
	data, shape, err := decodeArray([]byte("[[[1], [2]], [[3], [4]], [[5], [6]]]"))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2, 1}, shape)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, data)

	data, shape, err = decodeArray([]byte("2.5"))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{}, shape)
	assert.Equal(t, []float64{2.5}, data)

	_, _, err = decodeArray([]byte("[[1, 2], 3]"))
	assert.ErrorIs(t, err, errRagged)

	_, _, err = decodeArray([]byte("[[], []]"))
	assert.ErrorIs(t, err, errEmpty)
}

func TestEncodeArray(t *testing.T) {
	out, err := encodeArray([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, "[[1,2,3],[4,5,6]]", string(out))

	out, err = encodeArray([]float64{math.NaN(), math.Inf(1)}, tensor.Shape{2})
	require.NoError(t, err)
	assert.Equal(t, `["NaN","Infinity"]`, string(out))
}
