package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		Before: State{Filename: "alpha_beta_gamma.pdf", Attrs: []string{"alpha", "beta", "gamma"}},
		After:  State{Filename: "gamma_alpha_beta.pdf", Attrs: []string{"gamma", "alpha", "beta"}},
	}
}

// --- Recorder ---

func TestRecorder_PreservesOrder(t *testing.T) {
	r := NewRecorder()
	for _, n := range []string{"one", "two", "three"} {
		r.Append(Record{Before: State{Filename: n}, After: State{Filename: n + "!"}})
	}
	assert.Equal(t, []string{"one", "two", "three"}, beforeNames(r.Export()))
}

func TestRecorder_CopiesAttrs(t *testing.T) {
	r := NewRecorder()
	rec := sampleRecord()
	r.Append(rec)
	rec.Before.Attrs[0] = "mutated"

	out := r.Export()
	assert.Equal(t, "alpha", out[0].Before.Attrs[0])

	out[0].Before.Filename = "changed"
	assert.Equal(t, "alpha_beta_gamma.pdf", r.Export()[0].Before.Filename)
}

func TestRecorder_EmptyExport(t *testing.T) {
	out := NewRecorder().Export()
	require.NotNil(t, out)
	assert.Empty(t, out)
}

// --- WriteReport ---

func TestWriteReport_Format(t *testing.T) {
	fs := afero.NewMemMapFs()
	written, err := WriteReport(fs, "/out/result.json", Report{sampleRecord()})
	require.NoError(t, err)
	assert.True(t, written)

	data, err := afero.ReadFile(fs, "/out/result.json")
	require.NoError(t, err)

	var raw []map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "alpha_beta_gamma.pdf", raw[0]["before"]["filename"])
	assert.Equal(t, []any{"gamma", "alpha", "beta"}, raw[0]["after"]["attrs"])

	back, err := ReadReport(fs, "/out/result.json")
	require.NoError(t, err)
	assert.Equal(t, Report{sampleRecord()}, back)
}

func TestWriteReport_LeavesNoTempFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := WriteReport(fs, "/out/result.json", Report{sampleRecord()})
	require.NoError(t, err)

	infos, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "result.json", infos[0].Name())
}

func TestWriteReport_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/result.json", []byte("stale"), 0o644))

	_, err := WriteReport(fs, "/out/result.json", Report{sampleRecord()})
	require.NoError(t, err)
	back, err := ReadReport(fs, "/out/result.json")
	require.NoError(t, err)
	assert.Len(t, back, 1)
}

func TestWriteReport_PersistenceError(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	written, err := WriteReport(fs, "/out/result.json", Report{sampleRecord()})
	assert.False(t, written)

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "/out/result.json", perr.Path)
}

// --- RenameLedger ---

func TestRenameLedger(t *testing.T) {
	l := NewRenameLedger()

	owner, ok := l.Claim("/d/a_b_c.pdf", "/d/c_a_b.pdf")
	assert.True(t, ok)
	assert.Equal(t, "/d/a_b_c.pdf", owner)

	// Same source may claim again.
	_, ok = l.Claim("/d/a_b_c.pdf", "/d/c_a_b.pdf")
	assert.True(t, ok)

	owner, ok = l.Claim("/d/x_y_z.pdf", "/d/c_a_b.pdf")
	assert.False(t, ok)
	assert.Equal(t, "/d/a_b_c.pdf", owner)

	l.Release("/d/c_a_b.pdf")
	owner, ok = l.Claim("/d/x_y_z.pdf", "/d/c_a_b.pdf")
	assert.True(t, ok)
	assert.Equal(t, "/d/x_y_z.pdf", owner)

	owner, ok = l.Claim("/d/a_b_c.pdf", "/d/c_a_b.pdf")
	assert.False(t, ok, "released target now belongs to the new claimant")
	assert.Equal(t, "/d/x_y_z.pdf", owner)
}
