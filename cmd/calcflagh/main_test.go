package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCmd(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"calcflagh"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	testCases := []struct {
		desc string
		args []string
		want string
	}{
		{desc: "add carry", args: []string{"False", "15", "1"}, want: "Expected H flag: True\n"},
		{desc: "add no carry", args: []string{"False", "14", "1"}, want: "Expected H flag: False\n"},
		{desc: "sub negative", args: []string{"True", "5", "10"}, want: "Expected H flag: True\n"},
		{desc: "sub positive", args: []string{"True", "10", "5"}, want: "Expected H flag: False\n"},
		{desc: "numeric bool", args: []string{"1", "5", "10"}, want: "Expected H flag: True\n"},
		{desc: "negative operand", args: []string{"True", "-5", "3"}, want: "Expected H flag: True\n"},
		{desc: "min int64 operand", args: []string{"True", "-9223372036854775808", "1"}, want: "Expected H flag: True\n"},
		{desc: "subtract min int64", args: []string{"True", "0", "-9223372036854775808"}, want: "Expected H flag: False\n"},
		{desc: "verbose", args: []string{"-v", "0", "15", "1"}, want: "Expected H flag: True\n"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			code, stdout, _ := runCmd(tC.args...)
			assert.Equal(t, exitOK, code)
			assert.Equal(t, tC.want, stdout)
		})
	}
}

const usageLine = "Usage: calcflagh <bool isSubtraction> <int originalValue> <int toAdd>\n"

// Usage is a diagnostic and is written to stderr; stdout only ever holds
// the result line.
func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{{}, {"True"}, {"True", "1"}, {"True", "1", "2", "3"}} {
		code, stdout, stderr := runCmd(args...)
		assert.Equal(t, exitUsage, code, "%v", args)
		assert.Empty(t, stdout, "usage must not reach stdout")
		assert.True(t, strings.HasPrefix(stderr, usageLine), "stderr: %q", stderr)
	}
}

func TestRun_Help(t *testing.T) {
	code, stdout, stderr := runCmd("-h")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, usageLine), "stderr: %q", stderr)
	assert.Contains(t, stderr, "enable debug logging")
}

func TestRun_InvalidInput(t *testing.T) {
	testCases := []struct {
		desc string
		args []string
		want string
	}{
		{desc: "expression bool", args: []string{"not False", "1", "2"}, want: "isSubtraction"},
		{desc: "bad original", args: []string{"True", "0x10", "2"}, want: "originalValue"},
		{desc: "bad operand", args: []string{"True", "1", "two"}, want: "toAdd"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			code, stdout, stderr := runCmd(tC.args...)
			assert.Equal(t, exitInvalidInput, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tC.want)
		})
	}
}

func TestRun_Debug(t *testing.T) {
	_, _, stderr := runCmd("-v", "False", "15", "1")
	assert.Contains(t, stderr, "level=debug")
	assert.Contains(t, stderr, "Add 0xf, 0x1")
}
