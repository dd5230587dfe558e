package keyspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCompute_Dictionary(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		want    int64
		wantErr error
	}{
		{
			name: "words times rules",
			params: Params{
				Mode:          "dictionary",
				WordListCount: int64Ptr(1000),
				RuleListCount: int64Ptr(10),
			},
			want: 10000,
		},
		{
			name: "no rule list counts as one",
			params: Params{
				Mode:          "dictionary",
				WordListCount: int64Ptr(5000),
			},
			want: 5000,
		},
		{
			name: "empty rule list counts as one",
			params: Params{
				Mode:          "dictionary",
				WordListCount: int64Ptr(5000),
				RuleListCount: int64Ptr(0),
			},
			want: 5000,
		},
		{
			name: "uncounted word list is not dispatchable",
			params: Params{
				Mode: "dictionary",
			},
			wantErr: ErrUnknownLineCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaskKeyspace(t *testing.T) {
	tests := []struct {
		name     string
		mask     string
		charsets Charsets
		want     int64
		wantErr  bool
	}{
		{name: "lower lower digit", mask: "?l?l?d", want: 26 * 26 * 10},
		{name: "all printable", mask: "?a?a", want: 95 * 95},
		{name: "binary byte", mask: "?b", want: 256},
		{name: "hex nibbles", mask: "?h?H", want: 16 * 16},
		{name: "specials", mask: "?s", want: 33},
		{name: "literals count one", mask: "pass?d", want: 10},
		{name: "escaped question mark", mask: "???d", want: 10},
		{name: "custom charset", mask: "?1?1", charsets: Charsets{"?l?d"}, want: 36 * 36},
		{name: "custom charset with literals", mask: "?2", charsets: Charsets{"", "abc?d"}, want: 13},
		{name: "nested custom charset", mask: "?2", charsets: Charsets{"?l", "?1?d"}, want: 36},
		{name: "unset custom charset", mask: "?3", wantErr: true},
		{name: "dangling marker", mask: "?d?", wantErr: true},
		{name: "unknown marker", mask: "?x", wantErr: true},
		{name: "empty mask", mask: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaskKeyspace(tt.mask, tt.charsets)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompute_SelfReferencingCharset(t *testing.T) {
	_, err := MaskKeyspace("?1", Charsets{"?1"})
	require.Error(t, err)
}

func TestCompute_Hybrid(t *testing.T) {
	total, err := Compute(Params{
		Mode:          "hybrid_dictionary",
		Mask:          "?d?d",
		WordListCount: int64Ptr(100),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100*100), total)

	total, err = Compute(Params{
		Mode:          "hybrid_mask",
		Mask:          "?d?d?d",
		WordListCount: int64Ptr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50*1000), total)

	_, err = Compute(Params{Mode: "hybrid_dictionary", Mask: "?d"})
	require.ErrorIs(t, err, ErrUnknownLineCount)
}

func TestCompute_MaskList(t *testing.T) {
	// Opaque mask list lines: keyspace is the line count.
	total, err := Compute(Params{
		Mode:          "mask",
		MaskListCount: int64Ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	// With a template mask, each line is estimated by the template.
	total, err = Compute(Params{
		Mode:          "mask",
		Mask:          "?d?d",
		MaskListCount: int64Ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(400), total)

	// Uncounted mask list is not dispatchable.
	_, err = Compute(Params{Mode: "mask"})
	require.ErrorIs(t, err, ErrUnknownLineCount)
}

func TestIncrementPhases(t *testing.T) {
	phases, err := PhasesFor(Params{
		Mode:          "mask",
		Mask:          "?d?d?d?d",
		IncrementMode: true,
		IncrementMin:  2,
		IncrementMax:  4,
	})
	require.NoError(t, err)
	require.Len(t, phases, 3)
	assert.Equal(t, Phase{Length: 2, Keyspace: 100}, phases[0])
	assert.Equal(t, Phase{Length: 3, Keyspace: 1000}, phases[1])
	assert.Equal(t, Phase{Length: 4, Keyspace: 10000}, phases[2])

	total, err := Compute(Params{
		Mode:          "mask",
		Mask:          "?d?d?d?d",
		IncrementMode: true,
		IncrementMin:  2,
		IncrementMax:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11100), total)
}

func TestIncrementPhases_Bounds(t *testing.T) {
	// Zero bounds default to the full mask length.
	phases, err := PhasesFor(Params{
		Mode:          "mask",
		Mask:          "?l?l?l",
		IncrementMode: true,
	})
	require.NoError(t, err)
	require.Len(t, phases, 3)
	assert.Equal(t, int64(26), phases[0].Keyspace)
	assert.Equal(t, int64(26*26*26), phases[2].Keyspace)

	// Maximum beyond the mask length clamps.
	phases, err = PhasesFor(Params{
		Mode:          "mask",
		Mask:          "?d?d",
		IncrementMode: true,
		IncrementMin:  1,
		IncrementMax:  62,
	})
	require.NoError(t, err)
	require.Len(t, phases, 2)

	// Minimum above the mask length cannot produce phases.
	_, err = PhasesFor(Params{
		Mode:          "mask",
		Mask:          "?d?d",
		IncrementMode: true,
		IncrementMin:  5,
		IncrementMax:  6,
	})
	require.Error(t, err)
}

func TestPlan(t *testing.T) {
	// Even split: ten slices of one thousand.
	slices := Plan(10000, 1000)
	require.Len(t, slices, 10)
	var covered int64
	for i, s := range slices {
		assert.Equal(t, covered, s.Skip, "slice %d skip", i)
		assert.Equal(t, int64(1000), s.Limit)
		covered += s.Limit
	}
	assert.Equal(t, int64(10000), covered)

	// Remainder folds into the final slice.
	slices = Plan(10500, 1000)
	require.Len(t, slices, 10)
	assert.Equal(t, int64(1500), slices[9].Limit)
	assert.Equal(t, int64(9000), slices[9].Skip)

	// Keyspace smaller than a slice yields exactly one slice.
	slices = Plan(700, 1000)
	require.Len(t, slices, 1)
	assert.Equal(t, Slice{Skip: 0, Limit: 700}, slices[0])

	assert.Nil(t, Plan(0, 1000))
}

func TestNextSlice(t *testing.T) {
	phases := []Phase{{Length: 2, Keyspace: 100}, {Length: 3, Keyspace: 1000}}

	// First slice starts at zero.
	s, ok := NextSlice(phases, 0, 40)
	require.True(t, ok)
	assert.Equal(t, Slice{Skip: 0, Limit: 40}, s)

	// Phase remainder is absorbed rather than leaving a sliver.
	s, ok = NextSlice(phases, 40, 40)
	require.True(t, ok)
	assert.Equal(t, Slice{Skip: 40, Limit: 60}, s)

	// Next slice begins the second phase; phases are never spanned.
	s, ok = NextSlice(phases, 100, 40)
	require.True(t, ok)
	assert.Equal(t, Slice{Skip: 100, Limit: 40}, s)

	// Fully dispatched.
	_, ok = NextSlice(phases, 1100, 40)
	assert.False(t, ok)
}

func TestNextSlice_CoversWholeKeyspace(t *testing.T) {
	phases := []Phase{{Keyspace: 777}, {Keyspace: 2048}, {Keyspace: 13}}
	var dispatched, covered int64
	for {
		s, ok := NextSlice(phases, dispatched, 100)
		if !ok {
			break
		}
		assert.Equal(t, dispatched, s.Skip)
		assert.Positive(t, s.Limit)
		dispatched += s.Limit
		covered += s.Limit
	}
	assert.Equal(t, int64(777+2048+13), covered)
}

func TestSliceSize(t *testing.T) {
	// A million hashes per second for a minute.
	size := SliceSize(1_000_000, 60*time.Second, 30*time.Second, 120*time.Second)
	assert.Equal(t, int64(60_000_000), size)

	// Target clamped into the window.
	size = SliceSize(1000, 10*time.Second, 30*time.Second, 120*time.Second)
	assert.Equal(t, int64(30_000), size)

	size = SliceSize(1000, 10*time.Minute, 30*time.Second, 120*time.Second)
	assert.Equal(t, int64(120_000), size)

	// No usable speed falls back to the probe.
	assert.Equal(t, DefaultProbeKeyspace, SliceSize(0, time.Minute, 30*time.Second, 120*time.Second))
	assert.Equal(t, DefaultProbeKeyspace, SliceSize(-5, time.Minute, 30*time.Second, 120*time.Second))
}
