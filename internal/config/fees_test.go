package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultFeeScheduleTiers(t *testing.T) {
	s := DefaultFeeSchedule()

	cases := []struct {
		amount float64
		fee    float64
	}{
		{1, 5},
		{100, 5},
		{101, 10},
		{500, 10},
		{501, 20},
		{1000, 20},
		{1001, 30},
		{1500, 30},
		{2000, 40},
		{10000, 200},
	}
	for _, tc := range cases {
		require.Equal(t, tc.fee, s.FeeFor(tc.amount), "amount %v", tc.amount)
	}
}

func TestFeeForZeroAndNegative(t *testing.T) {
	s := DefaultFeeSchedule()
	require.Zero(t, s.FeeFor(0))
	require.Zero(t, s.FeeFor(-50))
}

func TestFeeForNoStepFallsBackToLastTier(t *testing.T) {
	s := FeeSchedule{Tiers: []FeeTier{{UpTo: 100, Fee: 5}}}
	require.Equal(t, 5.0, s.FeeFor(5000))
}

func TestValidateFeeSchedule(t *testing.T) {
	require.NoError(t, validateFeeSchedule(DefaultFeeSchedule()))

	require.Error(t, validateFeeSchedule(FeeSchedule{}))
	require.Error(t, validateFeeSchedule(FeeSchedule{
		Tiers: []FeeTier{{UpTo: 500, Fee: 10}, {UpTo: 100, Fee: 5}},
	}))
	require.Error(t, validateFeeSchedule(FeeSchedule{
		Tiers: []FeeTier{{UpTo: 100, Fee: -1}},
	}))
}
