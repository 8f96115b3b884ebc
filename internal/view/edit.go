package view

import (
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
)

// Editable field names, matching the grid column identifiers
const (
	FieldName           = "name"
	FieldDescription    = "description"
	FieldDuration       = "duration"
	FieldIntensity      = "intensity"
	FieldSeverity       = "severity"
	FieldEfficacy       = "efficacy"
	FieldApplication    = "application"
	FieldType           = "type"
	FieldSetting        = "setting"
	FieldIsPreventative = "isPreventative"
	FieldIsPalliative   = "isPalliative"
	FieldIsCurative     = "isCurative"
)

// FieldValue carries one typed cell value. Exactly one member is meaningful
// for a given field; duration strings are parsed with the compound codec.
type FieldValue struct {
	Text   string
	Number int64
	Flag   bool
}

// TextValue builds a field value for name/description/enum fields
func TextValue(s string) FieldValue { return FieldValue{Text: s} }

// NumberValue builds a field value for numeric fields
func NumberValue(n int64) FieldValue { return FieldValue{Number: n} }

// FlagValue builds a field value for boolean fields
func FlagValue(b bool) FieldValue { return FieldValue{Flag: b} }

// DurationValue parses a compound duration string into a numeric field value
func DurationValue(s string) FieldValue {
	return FieldValue{Number: entities.ParseDuration(s)}
}

// ApplyFieldEdit returns a new aggregate with exactly one scalar field of
// exactly one nested entity updated. The input is never mutated; percentage
// fields are clamped. When the target entity cannot be found by id within the
// stated parent chain the input is returned unchanged: the UI may race a
// delete against a pending edit, so a missing target fails silently.
func ApplyFieldEdit(ailment entities.Ailment, row DisplayRow, field string, value FieldValue) (entities.Ailment, bool) {
	clone := ailment.Clone()

	switch row.RowType {
	case RowTypeAilment:
		if clone.ID != row.ID {
			return ailment, false
		}
		if !applyDetailsEdit(&clone.Ailment, field, value) {
			return ailment, false
		}
		return clone, true

	case RowTypeTreatment:
		for i := range clone.Treatments {
			if clone.Treatments[i].ID != row.ID {
				continue
			}
			if !applyTreatmentEdit(&clone.Treatments[i], field, value) {
				return ailment, false
			}
			return clone, true
		}

	case RowTypeDiagnostic:
		for i := range clone.Diagnostics {
			if clone.Diagnostics[i].ID != row.ID {
				continue
			}
			if !applyDiagnosticEdit(&clone.Diagnostics[i], field, value) {
				return ailment, false
			}
			return clone, true
		}

	case RowTypeSideEffect:
		if sideEffect := findSideEffect(&clone, row); sideEffect != nil {
			if !applySideEffectEdit(sideEffect, field, value) {
				return ailment, false
			}
			return clone, true
		}
	}

	return ailment, false
}

func findSideEffect(ailment *entities.Ailment, row DisplayRow) *entities.SideEffect {
	if row.ParentType == ParentTypeTreatment {
		for i := range ailment.Treatments {
			if ailment.Treatments[i].ID != row.ParentID {
				continue
			}
			for j := range ailment.Treatments[i].SideEffects {
				if ailment.Treatments[i].SideEffects[j].ID == row.ID {
					return &ailment.Treatments[i].SideEffects[j]
				}
			}
		}
		return nil
	}
	for i := range ailment.Diagnostics {
		if ailment.Diagnostics[i].ID != row.ParentID {
			continue
		}
		for j := range ailment.Diagnostics[i].SideEffects {
			if ailment.Diagnostics[i].SideEffects[j].ID == row.ID {
				return &ailment.Diagnostics[i].SideEffects[j]
			}
		}
	}
	return nil
}

func applyDetailsEdit(details *entities.AilmentDetails, field string, value FieldValue) bool {
	switch field {
	case FieldName:
		details.Name = value.Text
	case FieldDescription:
		details.Description = value.Text
	case FieldDuration:
		details.Duration = nonNegative(value.Number)
	case FieldIntensity:
		details.Intensity = entities.ClampPercent(int(value.Number))
	case FieldSeverity:
		details.Severity = entities.ClampPercent(int(value.Number))
	default:
		return false
	}
	return true
}

func applyTreatmentEdit(treatment *entities.Treatment, field string, value FieldValue) bool {
	switch field {
	case FieldName:
		treatment.Name = value.Text
	case FieldDescription:
		treatment.Description = value.Text
	case FieldDuration:
		treatment.Duration = nonNegative(value.Number)
	case FieldIntensity:
		treatment.Intensity = entities.ClampPercent(int(value.Number))
	case FieldEfficacy:
		treatment.Efficacy = entities.ClampPercent(int(value.Number))
	case FieldApplication:
		treatment.Application = entities.TreatmentApplication(value.Text)
	case FieldType:
		treatment.Type = entities.CareType(value.Text)
	case FieldSetting:
		treatment.Setting = entities.CareSetting(value.Text)
	case FieldIsPreventative:
		treatment.IsPreventative = value.Flag
	case FieldIsPalliative:
		treatment.IsPalliative = value.Flag
	case FieldIsCurative:
		treatment.IsCurative = value.Flag
	default:
		return false
	}
	return true
}

func applyDiagnosticEdit(diagnostic *entities.Diagnostic, field string, value FieldValue) bool {
	switch field {
	case FieldName:
		diagnostic.Name = value.Text
	case FieldDescription:
		diagnostic.Description = value.Text
	case FieldDuration:
		diagnostic.Duration = nonNegative(value.Number)
	case FieldIntensity:
		diagnostic.Intensity = entities.ClampPercent(int(value.Number))
	case FieldEfficacy:
		diagnostic.Efficacy = entities.ClampPercent(int(value.Number))
	case FieldType:
		diagnostic.Type = entities.CareType(value.Text)
	case FieldSetting:
		diagnostic.Setting = entities.CareSetting(value.Text)
	default:
		return false
	}
	return true
}

func applySideEffectEdit(sideEffect *entities.SideEffect, field string, value FieldValue) bool {
	switch field {
	case FieldName:
		sideEffect.Name = value.Text
	case FieldDescription:
		sideEffect.Description = value.Text
	case FieldDuration:
		sideEffect.Duration = nonNegative(value.Number)
	case FieldIntensity:
		sideEffect.Intensity = entities.ClampPercent(int(value.Number))
	case FieldSeverity:
		sideEffect.Severity = entities.ClampPercent(int(value.Number))
	default:
		return false
	}
	return true
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// AddTreatment returns a new aggregate with a treatment appended
func AddTreatment(ailment entities.Ailment, treatment entities.Treatment) entities.Ailment {
	clone := ailment.Clone()
	clone.Treatments = append(clone.Treatments, treatment)
	return clone
}

// AddDiagnostic returns a new aggregate with a diagnostic appended
func AddDiagnostic(ailment entities.Ailment, diagnostic entities.Diagnostic) entities.Ailment {
	clone := ailment.Clone()
	clone.Diagnostics = append(clone.Diagnostics, diagnostic)
	return clone
}

// AddSideEffect returns a new aggregate with a side effect appended to the
// treatment or diagnostic identified by parentType/parentID. The input is
// returned unchanged when the parent cannot be found.
func AddSideEffect(ailment entities.Ailment, parentType ParentType, parentID string, sideEffect entities.SideEffect) (entities.Ailment, bool) {
	clone := ailment.Clone()
	if parentType == ParentTypeTreatment {
		for i := range clone.Treatments {
			if clone.Treatments[i].ID == parentID {
				clone.Treatments[i].SideEffects = append(clone.Treatments[i].SideEffects, sideEffect)
				return clone, true
			}
		}
		return ailment, false
	}
	for i := range clone.Diagnostics {
		if clone.Diagnostics[i].ID == parentID {
			clone.Diagnostics[i].SideEffects = append(clone.Diagnostics[i].SideEffects, sideEffect)
			return clone, true
		}
	}
	return ailment, false
}

// RemoveEntity returns a new aggregate with the entity identified by a
// non-root row removed; removing a treatment or diagnostic cascades to its
// side effects by construction. The input is returned unchanged when the
// target cannot be found.
func RemoveEntity(ailment entities.Ailment, row DisplayRow) (entities.Ailment, bool) {
	clone := ailment.Clone()

	switch row.RowType {
	case RowTypeTreatment:
		for i := range clone.Treatments {
			if clone.Treatments[i].ID == row.ID {
				clone.Treatments = append(clone.Treatments[:i], clone.Treatments[i+1:]...)
				return clone, true
			}
		}

	case RowTypeDiagnostic:
		for i := range clone.Diagnostics {
			if clone.Diagnostics[i].ID == row.ID {
				clone.Diagnostics = append(clone.Diagnostics[:i], clone.Diagnostics[i+1:]...)
				return clone, true
			}
		}

	case RowTypeSideEffect:
		if row.ParentType == ParentTypeTreatment {
			for i := range clone.Treatments {
				if clone.Treatments[i].ID != row.ParentID {
					continue
				}
				for j := range clone.Treatments[i].SideEffects {
					if clone.Treatments[i].SideEffects[j].ID == row.ID {
						clone.Treatments[i].SideEffects = append(clone.Treatments[i].SideEffects[:j], clone.Treatments[i].SideEffects[j+1:]...)
						return clone, true
					}
				}
			}
		} else {
			for i := range clone.Diagnostics {
				if clone.Diagnostics[i].ID != row.ParentID {
					continue
				}
				for j := range clone.Diagnostics[i].SideEffects {
					if clone.Diagnostics[i].SideEffects[j].ID == row.ID {
						clone.Diagnostics[i].SideEffects = append(clone.Diagnostics[i].SideEffects[:j], clone.Diagnostics[i].SideEffects[j+1:]...)
						return clone, true
					}
				}
			}
		}
	}

	return ailment, false
}
