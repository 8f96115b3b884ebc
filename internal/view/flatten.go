package view

import (
	"errors"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
)

// RowType identifies which entity a display row projects
type RowType string

const (
	RowTypeAilment    RowType = "ailment"
	RowTypeTreatment  RowType = "treatment"
	RowTypeDiagnostic RowType = "diagnostic"
	RowTypeSideEffect RowType = "sideEffect"
)

// ParentType identifies the owner of a side-effect row
type ParentType string

const (
	ParentTypeTreatment  ParentType = "treatment"
	ParentTypeDiagnostic ParentType = "diagnostic"
)

// ErrStaleRow signals that a row's backing aggregate is no longer part of the
// current collection. Callers treat it as a no-op, not a user-facing error:
// it is expected when another actor concurrently deleted the aggregate.
var ErrStaleRow = errors.New("stale row: backing ailment no longer present")

// DisplayRow is a derived, non-persisted projection of one entity at any
// nesting level. The Ailment back reference is a non-owning pointer used only
// to locate the aggregate to clone-and-mutate on edit; it must be re-resolved
// after every replacement of the ailment collection.
type DisplayRow struct {
	ID            string
	RowType       RowType
	ParentID      string
	GrandParentID string
	ParentType    ParentType
	Level         int
	IsExpanded    bool
	HasChildren   bool

	// Common fields
	Name        string
	Description string
	Duration    int64
	Intensity   int
	Severity    int

	// Treatment/diagnostic fields
	Application    entities.TreatmentApplication
	Efficacy       int
	Type           entities.CareType
	Setting        entities.CareSetting
	IsPreventative bool
	IsPalliative   bool
	IsCurative     bool

	// Back reference to the owning aggregate
	Ailment *entities.Ailment
}

// Flatten converts nested ailments plus an expansion-state set into an
// ordered list of display rows. It is a pure function of its inputs: ailments
// in list order, then for each expanded ailment all its treatments followed
// by all its diagnostics, each expanded one followed by its side effects. A
// non-root row is emitted only while every ancestor in its chain is expanded.
func Flatten(ailments []entities.Ailment, expanded *ExpansionState) []DisplayRow {
	rows := []DisplayRow{}

	for i := range ailments {
		ailment := &ailments[i]
		rows = append(rows, DisplayRow{
			ID:          ailment.ID,
			RowType:     RowTypeAilment,
			Level:       0,
			IsExpanded:  expanded.Has(ailment.ID),
			HasChildren: len(ailment.Treatments) > 0 || len(ailment.Diagnostics) > 0,
			Name:        ailment.Ailment.Name,
			Description: ailment.Ailment.Description,
			Duration:    ailment.Ailment.Duration,
			Intensity:   ailment.Ailment.Intensity,
			Severity:    ailment.Ailment.Severity,
			Ailment:     ailment,
		})

		if !expanded.Has(ailment.ID) {
			continue
		}

		for _, treatment := range ailment.Treatments {
			rows = append(rows, DisplayRow{
				ID:             treatment.ID,
				RowType:        RowTypeTreatment,
				ParentID:       ailment.ID,
				Level:          1,
				IsExpanded:     expanded.Has(treatment.ID),
				HasChildren:    len(treatment.SideEffects) > 0,
				Name:           treatment.Name,
				Description:    treatment.Description,
				Duration:       treatment.Duration,
				Intensity:      treatment.Intensity,
				Application:    treatment.Application,
				Efficacy:       treatment.Efficacy,
				Type:           treatment.Type,
				Setting:        treatment.Setting,
				IsPreventative: treatment.IsPreventative,
				IsPalliative:   treatment.IsPalliative,
				IsCurative:     treatment.IsCurative,
				Ailment:        ailment,
			})

			if !expanded.Has(treatment.ID) {
				continue
			}
			for _, sideEffect := range treatment.SideEffects {
				rows = append(rows, sideEffectRow(ailment, treatment.ID, ParentTypeTreatment, sideEffect))
			}
		}

		for _, diagnostic := range ailment.Diagnostics {
			rows = append(rows, DisplayRow{
				ID:          diagnostic.ID,
				RowType:     RowTypeDiagnostic,
				ParentID:    ailment.ID,
				Level:       1,
				IsExpanded:  expanded.Has(diagnostic.ID),
				HasChildren: len(diagnostic.SideEffects) > 0,
				Name:        diagnostic.Name,
				Description: diagnostic.Description,
				Duration:    diagnostic.Duration,
				Intensity:   diagnostic.Intensity,
				Efficacy:    diagnostic.Efficacy,
				Type:        diagnostic.Type,
				Setting:     diagnostic.Setting,
				Ailment:     ailment,
			})

			if !expanded.Has(diagnostic.ID) {
				continue
			}
			for _, sideEffect := range diagnostic.SideEffects {
				rows = append(rows, sideEffectRow(ailment, diagnostic.ID, ParentTypeDiagnostic, sideEffect))
			}
		}
	}

	return rows
}

func sideEffectRow(ailment *entities.Ailment, parentID string, parentType ParentType, s entities.SideEffect) DisplayRow {
	return DisplayRow{
		ID:            s.ID,
		RowType:       RowTypeSideEffect,
		ParentID:      parentID,
		GrandParentID: ailment.ID,
		ParentType:    parentType,
		Level:         2,
		HasChildren:   false,
		Name:          s.Name,
		Description:   s.Description,
		Duration:      s.Duration,
		Intensity:     s.Intensity,
		Severity:      s.Severity,
		Ailment:       ailment,
	}
}

// OwningAilmentID returns the id of the aggregate a row belongs to
func (r DisplayRow) OwningAilmentID() string {
	switch r.RowType {
	case RowTypeAilment:
		return r.ID
	case RowTypeTreatment, RowTypeDiagnostic:
		return r.ParentID
	case RowTypeSideEffect:
		return r.GrandParentID
	default:
		return ""
	}
}

// Locate resolves a display row back to its owning aggregate and the specific
// nested entity within it, searching the current collection by id and parent
// chain. It returns ErrStaleRow when the backing aggregate no longer exists.
func Locate(ailments []entities.Ailment, row DisplayRow) (*entities.Ailment, any, error) {
	var owner *entities.Ailment
	ownerID := row.OwningAilmentID()
	for i := range ailments {
		if ailments[i].ID == ownerID {
			owner = &ailments[i]
			break
		}
	}
	if owner == nil {
		return nil, nil, ErrStaleRow
	}

	switch row.RowType {
	case RowTypeAilment:
		return owner, owner, nil

	case RowTypeTreatment:
		for i := range owner.Treatments {
			if owner.Treatments[i].ID == row.ID {
				return owner, &owner.Treatments[i], nil
			}
		}

	case RowTypeDiagnostic:
		for i := range owner.Diagnostics {
			if owner.Diagnostics[i].ID == row.ID {
				return owner, &owner.Diagnostics[i], nil
			}
		}

	case RowTypeSideEffect:
		if row.ParentType == ParentTypeTreatment {
			for i := range owner.Treatments {
				if owner.Treatments[i].ID != row.ParentID {
					continue
				}
				for j := range owner.Treatments[i].SideEffects {
					if owner.Treatments[i].SideEffects[j].ID == row.ID {
						return owner, &owner.Treatments[i].SideEffects[j], nil
					}
				}
			}
		} else {
			for i := range owner.Diagnostics {
				if owner.Diagnostics[i].ID != row.ParentID {
					continue
				}
				for j := range owner.Diagnostics[i].SideEffects {
					if owner.Diagnostics[i].SideEffects[j].ID == row.ID {
						return owner, &owner.Diagnostics[i].SideEffects[j], nil
					}
				}
			}
		}
	}

	return nil, nil, ErrStaleRow
}
