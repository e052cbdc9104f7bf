package domain_test

import (
	"testing"

	"fitcore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateMacroGoals_WeightLoss(t *testing.T) {
	goals, err := domain.AllocateMacroGoals(2371.31245, 60, domain.ProgramWeightLoss)
	require.NoError(t, err)

	assert.InDelta(t, 150.0, goals.Proteins, 1e-9)
	assert.InDelta(t, (2371.31245-600)*(0.35/9), goals.Fats, 1e-9)
	assert.InDelta(t, (2371.31245-600)*(0.65/4), goals.Carbohydrates, 1e-9)
	assert.InDelta(t, 2371.31245*13/1000, goals.Fibers, 1e-9)
}

func TestAllocateMacroGoals_WeightGain(t *testing.T) {
	goals, err := domain.AllocateMacroGoals(2371.31245, 60, domain.ProgramWeightGain)
	require.NoError(t, err)

	assert.InDelta(t, 120.0, goals.Proteins, 1e-9)
	assert.InDelta(t, 73.551040, goals.Fats, 1e-6)
	assert.InDelta(t, 307.338273, goals.Carbohydrates, 1e-6)
}

func TestAllocateMacroGoals_ProteinRatio(t *testing.T) {
	for _, ffm := range []float64{35, 48.2, 60, 71.9, 95} {
		loss, err := domain.AllocateMacroGoals(2200, ffm, domain.ProgramWeightLoss)
		require.NoError(t, err)
		gain, err := domain.AllocateMacroGoals(2200, ffm, domain.ProgramWeightGain)
		require.NoError(t, err)
		assert.InDelta(t, 1.25*gain.Proteins, loss.Proteins, 1e-9)
	}
}

func TestAllocateMacroGoals_RemainderSplit(t *testing.T) {
	goals, err := domain.AllocateMacroGoals(2500, 55, domain.ProgramWeightGain)
	require.NoError(t, err)

	kcal := goals.Proteins*4 + goals.Fats*9 + goals.Carbohydrates*4
	assert.InDelta(t, 2500, kcal, 1e-9)
}

func TestAllocateMacroGoals_UnknownProgram(t *testing.T) {
	_, err := domain.AllocateMacroGoals(2000, 60, domain.Program("bulk"))
	assert.ErrorIs(t, err, domain.ErrUnknownProgramCategory)
}

func TestResolveProgram(t *testing.T) {
	tests := []struct {
		raw     string
		strict  bool
		want    domain.Program
		wantErr error
	}{
		{"lose_weight", false, domain.ProgramWeightLoss, nil},
		{"Lose Weight", true, domain.ProgramWeightLoss, nil},
		{"gain weight", true, domain.ProgramWeightGain, nil},
		{"weight_gain", false, domain.ProgramWeightGain, nil},
		{"maintenance", false, domain.ProgramWeightGain, nil},
		{"", false, domain.ProgramWeightGain, nil},
		{"maintenance", true, "", domain.ErrUnknownProgramCategory},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := domain.ResolveProgram(tc.raw, tc.strict)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseProfileEnums(t *testing.T) {
	sex, err := domain.ParseSex("f")
	require.NoError(t, err)
	assert.Equal(t, domain.SexFemale, sex)
	_, err = domain.ParseSex("x")
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)

	lvl, err := domain.ParseActivityLevel("Moderate")
	require.NoError(t, err)
	mult, err := lvl.Multiplier()
	require.NoError(t, err)
	assert.Equal(t, 1.37, mult)

	_, err = domain.ParseActivityLevel("extreme")
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
	_, err = domain.ActivityLevel("extreme").Multiplier()
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}
