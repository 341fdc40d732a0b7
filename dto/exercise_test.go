package dto

import (
	"encoding/json"
	"testing"

	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryExerciseHasRequestSchema(t *testing.T) {
	for _, def := range model.ExerciseDefinitions() {
		_, err := NewExerciseRequest(def.Kind)
		assert.NoError(t, err, def.Kind)
	}

	_, err := NewExerciseRequest("juggling")
	assert.Error(t, err)
}

func TestExerciseRequestAcceptsExplicitZeros(t *testing.T) {
	for _, def := range model.ExerciseDefinitions() {
		// Every field present, all zero valued.
		body, err := json.Marshal(def.New())
		require.NoError(t, err)

		req, err := NewExerciseRequest(def.Kind)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, req), def.Kind)

		assert.NoError(t, req.Validate(), def.Kind)
		assert.Equal(t, def.New(), req.ToModel(), def.Kind)
	}
}

func TestExerciseRequestRejectsMissingFields(t *testing.T) {
	for _, def := range model.ExerciseDefinitions() {
		req, err := NewExerciseRequest(def.Kind)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal([]byte(`{}`), req))

		err = req.Validate()
		require.Error(t, err, def.Kind)
		for _, e := range FormatValidationErrors(err) {
			assert.Equal(t, e.Field+" is required", e.Message)
		}
	}

	req := &CreateBreathingTechniqueRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"play_or_pass":false,"breaths":null}`), req))

	errs := FormatValidationErrors(req.Validate())
	require.Len(t, errs, 1)
	assert.Equal(t, "Breaths", errs[0].Field)
}

func TestLineWalkRequestToModel(t *testing.T) {
	req := &CreateLineWalkRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"play_or_pass": true,
		"forward_time": 14.2,
		"backward_time": 17.8,
		"crab_right_time": 11.5,
		"crab_left_time": 12.1,
		"out_of_line_count": 2
	}`), req))
	require.NoError(t, req.Validate())

	assert.Equal(t, &model.LineWalk{
		PlayOrPass:     true,
		ForwardTime:    14.2,
		BackwardTime:   17.8,
		CrabRightTime:  11.5,
		CrabLeftTime:   12.1,
		OutOfLineCount: 2,
	}, req.ToModel())
}
