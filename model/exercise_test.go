package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseRegistryCoversEveryKind(t *testing.T) {
	kinds := []ExerciseKind{
		ExerciseBreathingTechniques,
		ExerciseStretchAndReach,
		ExerciseLightHands,
		ExerciseRhythmRecovery,
		ExerciseDrawShapes,
		ExerciseLineWalk,
		ExerciseBalloons,
	}

	defs := ExerciseDefinitions()
	require.Len(t, defs, len(kinds))

	for _, kind := range kinds {
		def, err := LookupExercise(kind)
		require.NoError(t, err, kind)

		record := def.New()
		assert.Equal(t, kind, record.Kind())

		tabler, ok := record.(interface{ TableName() string })
		require.True(t, ok)
		assert.Equal(t, string(kind), tabler.TableName())
	}
}

func TestExerciseDefinitionsReturnsCopy(t *testing.T) {
	defs := ExerciseDefinitions()
	defs[0].Label = "changed"

	def, err := LookupExercise(defs[0].Kind)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", def.Label)
}

func TestLookupUnknownExercise(t *testing.T) {
	_, err := LookupExercise("juggling")
	assert.Error(t, err)
}

func TestBindSessionSetsKey(t *testing.T) {
	for _, def := range ExerciseDefinitions() {
		record := def.New()
		BindSession(record, 42)
		assert.Equal(t, uint(42), record.GetSessionID(), def.Kind)
	}
}

func TestExerciseAck(t *testing.T) {
	def, err := LookupExercise(ExerciseBreathingTechniques)
	require.NoError(t, err)
	assert.Equal(t, "Breathing technique record created", def.Ack())
}

func TestExerciseModelsAreFreshRecords(t *testing.T) {
	models := ExerciseModels()
	require.Len(t, models, len(ExerciseDefinitions()))

	first := models[0].(*BreathingTechnique)
	first.Breaths = 5
	assert.Equal(t, 0, ExerciseModels()[0].(*BreathingTechnique).Breaths)
}
