package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmercmp/pkg/api"
)

func fixtures(t *testing.T) (target, reference string) {
	t.Helper()
	dir := t.TempDir()
	target = filepath.Join(dir, "target.fq")
	reference = filepath.Join(dir, "reference.fq")
	require.NoError(t, os.WriteFile(target, []byte("@t1\nAATTAAGGAACC\n+\n!!!!!!!!!!!!\n"), 0o644))
	require.NoError(t, os.WriteFile(reference, []byte("@r1\nAATTCC\n+\n!!!!!!\n"), 0o644))
	return target, reference
}

func runCLI(argv ...string) (code int, stdout, stderr string) {
	var out, errBuf bytes.Buffer
	code = Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRunTextReport(t *testing.T) {
	target, reference := fixtures(t)

	code, out, stderr := runCLI(target, reference, "2", "")
	require.Equal(t, ExitOK, code, stderr)

	want := "(2-mers)\tUnique\tRedundant\tIntersection_unique\tIntersection\n" +
		target + "\t9\t11\t44.44%\t36.36%\n" +
		reference + "\t5\t5\t80.00%\t80.00%\n"
	assert.Equal(t, want, out)
	assert.Empty(t, stderr)
}

func TestRunFlagsEquivalentToPositionals(t *testing.T) {
	target, reference := fixtures(t)

	_, positional, _ := runCLI(target, reference, "4", "AA")
	code, flagged, stderr := runCLI("-k", "4", "-p", "AA", target, reference)
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, positional, flagged)
}

func TestRunJSONReport(t *testing.T) {
	target, reference := fixtures(t)

	code, out, stderr := runCLI("-o", "json", "-k", "2", "-p", "", target, reference)
	require.Equal(t, ExitOK, code, stderr)

	var rep api.ReportV1
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 2, rep.K)
	assert.Equal(t, 4, rep.SharedUnique)
	require.Len(t, rep.Files, 2)
	assert.Equal(t, 9, rep.Files[0].Unique)
}

func TestRunUsageErrors(t *testing.T) {
	target, _ := fixtures(t)
	for _, argv := range [][]string{
		{},
		{target},
		{target, target, "4", "AA", "extra"},
		{"--no-such-flag", target, target},
		{target, target, "zero"},
		{"-k", "0", target, target},
	} {
		code, out, stderr := runCLI(argv...)
		assert.Equal(t, ExitUsage, code, "argv=%v", argv)
		assert.Empty(t, out)
		assert.Contains(t, stderr, "--help")
	}
}

func TestRunMissingFile(t *testing.T) {
	target, _ := fixtures(t)
	missing := filepath.Join(t.TempDir(), "missing.fq")

	code, out, stderr := runCLI(target, missing)
	assert.Equal(t, ExitRun, code)
	assert.Empty(t, out, "no partial report on failure")
	assert.Contains(t, stderr, "missing.fq")
}

func TestRunShortRecordsError(t *testing.T) {
	target, reference := fixtures(t)

	code, out, stderr := runCLI("--short-records", "error", target, reference, "8")
	assert.Equal(t, ExitRun, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "shorter than k")
}

func TestRunVersionAndHelp(t *testing.T) {
	code, out, _ := runCLI("--version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "kmercmp version dev\n", out)

	code, out, _ = runCLI("-h")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "--kmer-size")
	assert.Contains(t, out, "--short-records")
}

func TestRunWarnsOnLongPrefix(t *testing.T) {
	target, reference := fixtures(t)

	code, out, stderr := runCLI("-k", "2", "-p", "AAT", target, reference)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, "prefix is longer than k")
	assert.Contains(t, out, "\t0\t0\t0.00%\t0.00%")

	_, _, stderr = runCLI("-q", "-k", "2", "-p", "AAT", target, reference)
	assert.Empty(t, stderr)
}
