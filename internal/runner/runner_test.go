package runner

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/curvecheck/internal/curve"
	"github.com/andyballingall/curvecheck/internal/document"
	"github.com/andyballingall/curvecheck/internal/schema"
)

type countingValidator struct {
	calls atomic.Int32
	err   error
}

func (v *countingValidator) ValidateAs(curve.Class, document.Value) error {
	v.calls.Add(1)
	return v.err
}

func TestRunner_Configuration(t *testing.T) {
	t.Parallel()
	r := New(curve.NewCatalog(), discardLogger())

	r.SetClass(curve.ClassIndex)
	assert.Equal(t, curve.ClassIndex, r.class)

	r.SetContinueOnError(true)
	assert.True(t, r.continueOnError)

	r.SetNumWorkers(7)
	assert.Equal(t, 7, r.numWorkers)

	r.SetNumWorkers(0)
	assert.Equal(t, 7, r.numWorkers)
}

func TestRunner_ValidateFile(t *testing.T) {
	t.Parallel()

	_, paths := writeDocs(t, map[string]string{
		"index.json":   validIndex,
		"index.yaml":   validIndexYAML,
		"tenor.json":   badTenor,
		"broken.json":  `{"indexType": `,
		"unknown.json": `{"colour": "blue"}`,
		"notes.txt":    "hello",
	})
	r := New(curve.NewCatalog(), discardLogger())

	t.Run("valid json", func(t *testing.T) {
		t.Parallel()
		res := r.ValidateFile(paths["index.json"])
		require.NoError(t, res.Err)
		assert.True(t, res.Passed())
		assert.Equal(t, curve.ClassIndex, res.Class)
	})

	t.Run("valid yaml", func(t *testing.T) {
		t.Parallel()
		res := r.ValidateFile(paths["index.yaml"])
		require.NoError(t, res.Err)
	})

	t.Run("invalid document keeps the chain", func(t *testing.T) {
		t.Parallel()
		res := r.ValidateFile(paths["tenor.json"])
		require.Error(t, res.Err)
		assert.Equal(t, curve.ClassIndex, res.Class)

		var target *curve.RateIndexError
		require.ErrorAs(t, res.Err, &target)
		var format *schema.FormatError
		require.ErrorAs(t, res.Err, &format)
		assert.Equal(t, "1Y6M", format.Value)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		res := r.ValidateFile(paths["broken.json"])
		require.Error(t, res.Err)
		assert.Empty(t, res.Class)
	})

	t.Run("unknown class", func(t *testing.T) {
		t.Parallel()
		res := r.ValidateFile(paths["unknown.json"])
		var target *curve.UnknownDocumentClassError
		require.ErrorAs(t, res.Err, &target)
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()
		res := r.ValidateFile(paths["notes.txt"])
		var target *document.UnsupportedFormatError
		require.ErrorAs(t, res.Err, &target)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		res := r.ValidateFile(paths["index.json"] + ".gone")
		var target *ReadError
		require.ErrorAs(t, res.Err, &target)
		assert.Contains(t, target.Error(), "cannot read")
	})

	t.Run("forced class", func(t *testing.T) {
		t.Parallel()
		forced := New(curve.NewCatalog(), discardLogger())
		forced.SetClass(curve.ClassCurve)
		res := forced.ValidateFile(paths["index.json"])
		require.Error(t, res.Err)
		assert.Equal(t, curve.ClassCurve, res.Class)
	})
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()
		_, paths := writeDocs(t, map[string]string{"a.json": validIndex, "b.yaml": validIndexYAML})
		r := New(curve.NewCatalog(), discardLogger())

		report, err := r.Run(context.Background(), []string{paths["b.yaml"], paths["a.json"]})
		require.NoError(t, err)
		passed, failed := report.Counts()
		assert.Equal(t, 2, passed)
		assert.Zero(t, failed)
		assert.False(t, report.Failed())
		assert.False(t, report.EndTime.Before(report.StartTime))

		results := report.Results()
		require.Len(t, results, 2)
		assert.Equal(t, paths["a.json"], results[0].Path)
	})

	t.Run("continue on error", func(t *testing.T) {
		t.Parallel()
		_, paths := writeDocs(t, map[string]string{"a.json": badTenor, "b.json": badTenor, "c.json": validIndex})
		r := New(curve.NewCatalog(), discardLogger())
		r.SetContinueOnError(true)

		report, err := r.Run(context.Background(), []string{paths["a.json"], paths["b.json"], paths["c.json"]})
		require.NoError(t, err)
		passed, failed := report.Counts()
		assert.Equal(t, 1, passed)
		assert.Equal(t, 2, failed)
		assert.True(t, report.Failed())
	})

	t.Run("stop on first error", func(t *testing.T) {
		t.Parallel()
		v := &countingValidator{err: errors.New("boom")}
		r := New(v, discardLogger())
		r.SetNumWorkers(1)
		r.SetClass(curve.ClassIndex)

		files := map[string]string{}
		for _, name := range []string{"a.json", "b.json", "c.json", "d.json"} {
			files[name] = validIndex
		}
		_, paths := writeDocs(t, files)

		report, err := r.Run(context.Background(),
			[]string{paths["a.json"], paths["b.json"], paths["c.json"], paths["d.json"]})
		require.NoError(t, err)
		assert.True(t, report.Failed())
		assert.Equal(t, int32(1), v.calls.Load())
		assert.Len(t, report.Results(), 1)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		_, paths := writeDocs(t, map[string]string{"a.json": validIndex})
		v := &countingValidator{}
		r := New(v, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		report, err := r.Run(ctx, []string{paths["a.json"]})
		require.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, report)
		assert.Zero(t, v.calls.Load())
	})

	t.Run("no paths", func(t *testing.T) {
		t.Parallel()
		report, err := New(curve.NewCatalog(), discardLogger()).Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, report.Results())
	})
}

func TestReport(t *testing.T) {
	t.Parallel()
	r := NewReport()
	r.Add(Result{Path: "b.json"})
	r.Add(Result{Path: "a.json", Err: errors.New("bad")})

	passed, failed := r.Counts()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
	assert.Equal(t, "a.json", r.Results()[0].Path)

	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.NotEqual(t, r.ID, NewReport().ID)
}
