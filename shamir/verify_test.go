package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/shamirkit/field"
	"pgregory.net/rapid"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr error
	}{
		{in: "", want: StrategySubstitute},
		{in: "substitute", want: StrategySubstitute},
		{in: " HoldOut ", want: StrategyHoldOut},
		{in: "majority", wantErr: ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "substitute", StrategySubstitute.String())
	assert.Equal(t, "holdout", StrategyHoldOut.String())
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}

func TestFindWrongPoints(t *testing.T) {
	f := field.Default()

	tests := []struct {
		name      string
		shares    []*Share
		threshold int
		strategy  Strategy
		want      []*Share
	}{
		{
			name:      "threshold equals total",
			shares:    []*Share{share(1, 100), share(2, 150)},
			threshold: 2,
			strategy:  StrategySubstitute,
			want:      nil,
		},
		{
			name:      "substitute flags redundant outlier",
			shares:    []*Share{share(1, 100), share(2, 150), share(3, 300)},
			threshold: 2,
			strategy:  StrategySubstitute,
			want:      []*Share{share(3, 300)},
		},
		{
			name:      "substitute accepts consistent redundant share",
			shares:    []*Share{share(1, 100), share(2, 150), share(3, 200)},
			threshold: 2,
			strategy:  StrategySubstitute,
			want:      nil,
		},
		{
			name:      "substitute flags several outliers",
			shares:    []*Share{share(1, 100), share(2, 150), share(3, 201), share(4, 250), share(5, 0)},
			threshold: 2,
			strategy:  StrategySubstitute,
			want:      []*Share{share(3, 201), share(5, 0)},
		},
		{
			name:      "substitute with constant polynomial",
			shares:    []*Share{share(1, 9), share(2, 9), share(3, 8)},
			threshold: 1,
			strategy:  StrategySubstitute,
			want:      []*Share{share(3, 8)},
		},
		{
			name:      "hold out flags the baseline shares",
			shares:    []*Share{share(1, 100), share(2, 150), share(3, 300)},
			threshold: 2,
			strategy:  StrategyHoldOut,
			want:      []*Share{share(1, 100), share(2, 150)},
		},
		{
			name:      "hold out on consistent shares",
			shares:    []*Share{share(1, 100), share(2, 150), share(3, 200), share(4, 250)},
			threshold: 2,
			strategy:  StrategyHoldOut,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindWrongPoints(f, tt.shares, tt.threshold, tt.strategy)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))

			for i := range tt.want {
				assert.True(t, tt.want[i].Equal(got[i]), "got %s, want %s", got[i], tt.want[i])
			}
		})
	}
}

func TestFindWrongPointsErrors(t *testing.T) {
	f := field.Default()

	t.Run("insufficient shares", func(t *testing.T) {
		_, err := FindWrongPoints(f, []*Share{share(1, 1)}, 2, StrategySubstitute)
		assert.ErrorIs(t, err, ErrInsufficientShares)
	})

	t.Run("invalid threshold", func(t *testing.T) {
		_, err := FindWrongPoints(f, []*Share{share(1, 1)}, 0, StrategySubstitute)
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := FindWrongPoints(f, []*Share{share(1, 1), share(2, 2)}, 1, Strategy(42))
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("duplicate in baseline", func(t *testing.T) {
		_, err := FindWrongPoints(f, []*Share{share(1, 1), share(1, 2), share(3, 3)}, 2, StrategySubstitute)
		assert.ErrorIs(t, err, ErrDegenerateShares)
	})

	t.Run("redundant share duplicates a baseline x", func(t *testing.T) {
		shares := []*Share{share(1, 100), share(2, 150), share(1, 100)}

		_, err := FindWrongPoints(f, shares, 2, StrategySubstitute)
		assert.ErrorIs(t, err, ErrDegenerateShares)

		_, err = FindWrongPoints(f, shares, 2, StrategyHoldOut)
		assert.ErrorIs(t, err, ErrDegenerateShares)
	})
}

func TestFindWrongPointsDoesNotModifyInput(t *testing.T) {
	f := field.Default()
	shares := []*Share{share(1, 100), share(2, 150), share(3, 300), share(4, 250)}
	before := cloneShares(shares)

	for _, strategy := range []Strategy{StrategySubstitute, StrategyHoldOut} {
		wrong, err := FindWrongPoints(f, shares, 2, strategy)
		require.NoError(t, err)

		for _, w := range wrong {
			w.Y.SetInt64(0)
		}

		require.Len(t, shares, len(before))
		for i := range shares {
			assert.True(t, before[i].Equal(shares[i]), "strategy %s changed share %d", strategy, i)
		}
	}
}

func TestVerifyAllShares(t *testing.T) {
	f := field.Default()
	shares := newPolynomial(f, 10, 20, 30).shares(1, 2, 3, 4, 5)

	ok, err := VerifyAllShares(f, shares, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	tampered := cloneShares(shares)
	tampered[4].Y.Add(tampered[4].Y, big.NewInt(1))

	ok, err = VerifyAllShares(f, tampered, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpected(t *testing.T) {
	f := field.Default()
	shares := []*Share{share(1, 100), share(2, 150), share(3, 300)}

	y, err := Expected(f, shares, 2, big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, int64(200), y.Int64())

	_, err = Expected(f, shares[:1], 2, big.NewInt(3))
	assert.ErrorIs(t, err, ErrInsufficientShares)
}

func TestFindWrongPointsConsistentSharesProperty(t *testing.T) {
	f := field.Default()

	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 5).Draw(t, "k")
		n := rapid.IntRange(k, 12).Draw(t, "n")
		coefficients := rapid.SliceOfN(rapid.Int64Range(0, field.DefaultModulus-1), k, k).Draw(t, "coefficients")
		xs := rapid.SliceOfNDistinct(rapid.Int64Range(1, field.DefaultModulus-1), n, n, rapid.ID[int64]).Draw(t, "xs")

		shares := newPolynomial(f, coefficients...).shares(xs...)

		for _, strategy := range []Strategy{StrategySubstitute, StrategyHoldOut} {
			wrong, err := FindWrongPoints(f, shares, k, strategy)
			if err != nil {
				t.Fatalf("%s: %v", strategy, err)
			}
			if len(wrong) != 0 {
				t.Fatalf("%s flagged %v on consistent shares", strategy, wrong)
			}
		}
	})
}

func TestFindWrongPointsTamperedShareProperty(t *testing.T) {
	f := field.Default()

	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 5).Draw(t, "k")
		n := rapid.IntRange(k+1, 12).Draw(t, "n")
		coefficients := rapid.SliceOfN(rapid.Int64Range(0, field.DefaultModulus-1), k, k).Draw(t, "coefficients")
		xs := rapid.SliceOfNDistinct(rapid.Int64Range(1, field.DefaultModulus-1), n, n, rapid.ID[int64]).Draw(t, "xs")
		target := rapid.IntRange(k, n-1).Draw(t, "target")
		delta := rapid.Int64Range(1, field.DefaultModulus-1).Draw(t, "delta")

		shares := newPolynomial(f, coefficients...).shares(xs...)
		shares[target].Y = f.Add(shares[target].Y, big.NewInt(delta))

		wrong, err := FindWrongPoints(f, shares, k, StrategySubstitute)
		if err != nil {
			t.Fatalf("find wrong points: %v", err)
		}

		if len(wrong) != 1 || !wrong[0].Equal(shares[target]) {
			t.Fatalf("flagged %v, want only %s", wrong, shares[target])
		}
	})
}

func BenchmarkFindWrongPoints(b *testing.B) {
	f := field.Default()
	shares := newPolynomial(f, 1, 2, 3, 4, 5).shares(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	shares[12].Y = f.Add(shares[12].Y, big.NewInt(1))

	b.ResetTimer()
	for range b.N {
		_, _ = FindWrongPoints(f, shares, 5, StrategySubstitute)
	}
}
