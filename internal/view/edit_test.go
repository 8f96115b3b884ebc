package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/view"
)

func TestApplyFieldEdit_AilmentField(t *testing.T) {
	original := migraineFixture()
	row := view.DisplayRow{ID: "a1", RowType: view.RowTypeAilment}

	edited, changed := view.ApplyFieldEdit(original, row, view.FieldName, view.TextValue("Cluster Headache"))

	assert.True(t, changed)
	assert.Equal(t, "Cluster Headache", edited.Ailment.Name)
	assert.Equal(t, "Migraine", original.Ailment.Name, "input must not be mutated")
}

func TestApplyFieldEdit_TreatmentField(t *testing.T) {
	original := migraineFixture()
	row := view.DisplayRow{ID: "t1", RowType: view.RowTypeTreatment, ParentID: "a1"}

	edited, changed := view.ApplyFieldEdit(original, row, view.FieldEfficacy, view.NumberValue(250))

	assert.True(t, changed)
	assert.Equal(t, 100, edited.Treatments[0].Efficacy, "percentages are clamped")
	assert.Equal(t, 85, original.Treatments[0].Efficacy)
}

func TestApplyFieldEdit_TreatmentFlagsAndEnums(t *testing.T) {
	original := migraineFixture()
	row := view.DisplayRow{ID: "t2", RowType: view.RowTypeTreatment, ParentID: "a1"}

	edited, changed := view.ApplyFieldEdit(original, row, view.FieldIsCurative, view.FlagValue(true))
	require.True(t, changed)
	assert.True(t, edited.Treatments[1].IsCurative)

	edited, changed = view.ApplyFieldEdit(original, row, view.FieldApplication, view.TextValue(string(entities.ApplicationIV)))
	require.True(t, changed)
	assert.Equal(t, entities.ApplicationIV, edited.Treatments[1].Application)
}

func TestApplyFieldEdit_SideEffectField(t *testing.T) {
	original := migraineFixture()
	row := view.DisplayRow{
		ID:            "s1",
		RowType:       view.RowTypeSideEffect,
		ParentID:      "t1",
		GrandParentID: "a1",
		ParentType:    view.ParentTypeTreatment,
	}

	edited, changed := view.ApplyFieldEdit(original, row, view.FieldDuration, view.DurationValue("1h 30m"))

	assert.True(t, changed)
	assert.Equal(t, int64(5400), edited.Treatments[0].SideEffects[0].Duration)
	assert.Equal(t, int64(0), original.Treatments[0].SideEffects[0].Duration)
}

func TestApplyFieldEdit_MissingTargetIsNoOp(t *testing.T) {
	original := migraineFixture()

	// Entity id absent from the aggregate.
	row := view.DisplayRow{ID: "t-gone", RowType: view.RowTypeTreatment, ParentID: "a1"}
	edited, changed := view.ApplyFieldEdit(original, row, view.FieldName, view.TextValue("x"))
	assert.False(t, changed)
	assert.Equal(t, original, edited)

	// Field not editable for the row type.
	row = view.DisplayRow{ID: "a1", RowType: view.RowTypeAilment}
	_, changed = view.ApplyFieldEdit(original, row, view.FieldEfficacy, view.NumberValue(10))
	assert.False(t, changed)
}

func TestApplyFieldEdit_NegativeDurationClampsToZero(t *testing.T) {
	original := migraineFixture()
	row := view.DisplayRow{ID: "a1", RowType: view.RowTypeAilment}

	edited, changed := view.ApplyFieldEdit(original, row, view.FieldDuration, view.NumberValue(-10))

	assert.True(t, changed)
	assert.Equal(t, int64(0), edited.Ailment.Duration)
}

func TestAddTreatmentAndDiagnostic(t *testing.T) {
	original := migraineFixture()

	withTreatment := view.AddTreatment(original, entities.Treatment{ID: "t3", Name: "Hydration"})
	assert.Len(t, withTreatment.Treatments, 3)
	assert.Len(t, original.Treatments, 2)

	withDiagnostic := view.AddDiagnostic(original, entities.Diagnostic{ID: "d2", Name: "MRI"})
	assert.Len(t, withDiagnostic.Diagnostics, 2)
	assert.Len(t, original.Diagnostics, 1)
}

func TestAddSideEffect(t *testing.T) {
	original := migraineFixture()

	edited, ok := view.AddSideEffect(original, view.ParentTypeTreatment, "t2", entities.SideEffect{ID: "s4", Name: "Fatigue"})
	require.True(t, ok)
	assert.Len(t, edited.Treatments[1].SideEffects, 1)
	assert.Empty(t, original.Treatments[1].SideEffects)

	edited, ok = view.AddSideEffect(original, view.ParentTypeDiagnostic, "d1", entities.SideEffect{ID: "s5"})
	require.True(t, ok)
	assert.Len(t, edited.Diagnostics[0].SideEffects, 2)

	_, ok = view.AddSideEffect(original, view.ParentTypeTreatment, "missing", entities.SideEffect{ID: "s6"})
	assert.False(t, ok)
}

func TestRemoveEntity_TreatmentCascadesSideEffects(t *testing.T) {
	original := migraineFixture()
	row := view.DisplayRow{ID: "t1", RowType: view.RowTypeTreatment, ParentID: "a1"}

	edited, removed := view.RemoveEntity(original, row)
	require.True(t, removed)
	assert.Len(t, edited.Treatments, 1)
	assert.Equal(t, "t2", edited.Treatments[0].ID)

	// No orphaned side-effect rows can be produced from the edited aggregate.
	expanded := view.NewExpansionState()
	expanded.Expand("a1")
	expanded.Expand("t1")
	for _, r := range view.Flatten([]entities.Ailment{edited}, expanded) {
		assert.NotEqual(t, "s1", r.ID)
		assert.NotEqual(t, "s2", r.ID)
	}
}

func TestRemoveEntity_SideEffect(t *testing.T) {
	original := migraineFixture()
	row := view.DisplayRow{
		ID:            "s3",
		RowType:       view.RowTypeSideEffect,
		ParentID:      "d1",
		GrandParentID: "a1",
		ParentType:    view.ParentTypeDiagnostic,
	}

	edited, removed := view.RemoveEntity(original, row)
	require.True(t, removed)
	assert.Empty(t, edited.Diagnostics[0].SideEffects)
	assert.Len(t, original.Diagnostics[0].SideEffects, 1)
}

func TestRemoveEntity_MissingTargetIsNoOp(t *testing.T) {
	original := migraineFixture()
	row := view.DisplayRow{ID: "gone", RowType: view.RowTypeDiagnostic, ParentID: "a1"}

	edited, removed := view.RemoveEntity(original, row)
	assert.False(t, removed)
	assert.Equal(t, original, edited)
}
