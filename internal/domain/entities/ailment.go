package entities

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TreatmentApplication represents how a treatment is administered
type TreatmentApplication string

const (
	ApplicationOral     TreatmentApplication = "oral"
	ApplicationIV       TreatmentApplication = "IV"
	ApplicationTopical  TreatmentApplication = "topical"
	ApplicationSurgical TreatmentApplication = "surgical"
)

// CareType represents the treatment/diagnostic philosophy
type CareType string

const (
	CareTypeHolistic     CareType = "holistic"
	CareTypeSymptomBased CareType = "symptom_based"
)

// CareSetting represents where care takes place
type CareSetting string

const (
	SettingHospital CareSetting = "hospital"
	SettingClinic   CareSetting = "clinic"
	SettingHome     CareSetting = "home"
)

// SideEffect is owned by exactly one treatment or diagnostic
type SideEffect struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"` // seconds
	Intensity   int    `json:"intensity"`
	Severity    int    `json:"severity"`
}

// Treatment is owned by exactly one ailment
type Treatment struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Application    TreatmentApplication `json:"application"`
	Efficacy       int                  `json:"efficacy"`
	Duration       int64                `json:"duration"` // seconds
	Intensity      int                  `json:"intensity"`
	Type           CareType             `json:"type"`
	SideEffects    []SideEffect         `json:"sideEffects"`
	Setting        CareSetting          `json:"setting"`
	IsPreventative bool                 `json:"isPreventative"`
	IsPalliative   bool                 `json:"isPalliative"`
	IsCurative     bool                 `json:"isCurative"`
}

// Diagnostic is owned by exactly one ailment
type Diagnostic struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Efficacy    int          `json:"efficacy"`
	Duration    int64        `json:"duration"` // seconds
	Intensity   int          `json:"intensity"`
	Type        CareType     `json:"type"`
	SideEffects []SideEffect `json:"sideEffects"`
	Setting     CareSetting  `json:"setting"`
}

// AilmentDetails is the embedded value describing the ailment itself
type AilmentDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"` // seconds
	Intensity   int    `json:"intensity"`
	Severity    int    `json:"severity"`
}

// Ailment is the aggregate root and the unit of persistence. Every mutation
// to a nested treatment, diagnostic or side effect writes the whole aggregate.
type Ailment struct {
	ID          string         `json:"id"`
	Ailment     AilmentDetails `json:"ailment"`
	Treatments  []Treatment    `json:"treatments"`
	Diagnostics []Diagnostic   `json:"diagnostics"`
}

// GenerateID generates a unique identifier
func GenerateID() string {
	return uuid.New().String()
}

// ClampPercent clamps a percentage value into [0, 100]
func ClampPercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// clampDuration keeps durations non-negative
func clampDuration(seconds int64) int64 {
	if seconds < 0 {
		return 0
	}
	return seconds
}

// NewAilment creates an ailment with default values and a fresh id
func NewAilment() Ailment {
	return Ailment{
		ID:          GenerateID(),
		Ailment:     AilmentDetails{},
		Treatments:  []Treatment{},
		Diagnostics: []Diagnostic{},
	}
}

// NewTreatment creates a treatment with default values and a fresh id
func NewTreatment() Treatment {
	return Treatment{
		ID:          GenerateID(),
		Application: ApplicationOral,
		Type:        CareTypeSymptomBased,
		Setting:     SettingClinic,
		SideEffects: []SideEffect{},
	}
}

// NewDiagnostic creates a diagnostic with default values and a fresh id
func NewDiagnostic() Diagnostic {
	return Diagnostic{
		ID:          GenerateID(),
		Type:        CareTypeSymptomBased,
		Setting:     SettingClinic,
		SideEffects: []SideEffect{},
	}
}

// NewSideEffect creates a side effect with default values and a fresh id
func NewSideEffect() SideEffect {
	return SideEffect{ID: GenerateID()}
}

// NormalizeSideEffect fills defaults, clamps bounded fields and generates a
// missing id. Out-of-range input is clamped, not rejected.
func NormalizeSideEffect(s SideEffect) SideEffect {
	if s.ID == "" {
		s.ID = GenerateID()
	}
	s.Duration = clampDuration(s.Duration)
	s.Intensity = ClampPercent(s.Intensity)
	s.Severity = ClampPercent(s.Severity)
	return s
}

// NormalizeTreatment fills defaults, clamps bounded fields, generates missing
// ids and normalizes every owned side effect.
func NormalizeTreatment(t Treatment) Treatment {
	if t.ID == "" {
		t.ID = GenerateID()
	}
	if t.Application == "" {
		t.Application = ApplicationOral
	}
	if t.Type == "" {
		t.Type = CareTypeSymptomBased
	}
	if t.Setting == "" {
		t.Setting = SettingClinic
	}
	t.Efficacy = ClampPercent(t.Efficacy)
	t.Duration = clampDuration(t.Duration)
	t.Intensity = ClampPercent(t.Intensity)

	sideEffects := make([]SideEffect, 0, len(t.SideEffects))
	for _, s := range t.SideEffects {
		sideEffects = append(sideEffects, NormalizeSideEffect(s))
	}
	t.SideEffects = sideEffects
	return t
}

// NormalizeDiagnostic fills defaults, clamps bounded fields, generates missing
// ids and normalizes every owned side effect.
func NormalizeDiagnostic(d Diagnostic) Diagnostic {
	if d.ID == "" {
		d.ID = GenerateID()
	}
	if d.Type == "" {
		d.Type = CareTypeSymptomBased
	}
	if d.Setting == "" {
		d.Setting = SettingClinic
	}
	d.Efficacy = ClampPercent(d.Efficacy)
	d.Duration = clampDuration(d.Duration)
	d.Intensity = ClampPercent(d.Intensity)

	sideEffects := make([]SideEffect, 0, len(d.SideEffects))
	for _, s := range d.SideEffects {
		sideEffects = append(sideEffects, NormalizeSideEffect(s))
	}
	d.SideEffects = sideEffects
	return d
}

// NormalizeAilment normalizes the whole aggregate, generating a missing root
// id and canonicalizing every nested entity.
func NormalizeAilment(a Ailment) Ailment {
	if a.ID == "" {
		a.ID = GenerateID()
	}
	a.Ailment.Duration = clampDuration(a.Ailment.Duration)
	a.Ailment.Intensity = ClampPercent(a.Ailment.Intensity)
	a.Ailment.Severity = ClampPercent(a.Ailment.Severity)

	treatments := make([]Treatment, 0, len(a.Treatments))
	for _, t := range a.Treatments {
		treatments = append(treatments, NormalizeTreatment(t))
	}
	a.Treatments = treatments

	diagnostics := make([]Diagnostic, 0, len(a.Diagnostics))
	for _, d := range a.Diagnostics {
		diagnostics = append(diagnostics, NormalizeDiagnostic(d))
	}
	a.Diagnostics = diagnostics
	return a
}

// Clone returns a deep copy of the aggregate
func (a Ailment) Clone() Ailment {
	clone := a
	clone.Treatments = make([]Treatment, len(a.Treatments))
	for i, t := range a.Treatments {
		ct := t
		ct.SideEffects = append([]SideEffect(nil), t.SideEffects...)
		clone.Treatments[i] = ct
	}
	clone.Diagnostics = make([]Diagnostic, len(a.Diagnostics))
	for i, d := range a.Diagnostics {
		cd := d
		cd.SideEffects = append([]SideEffect(nil), d.SideEffects...)
		clone.Diagnostics[i] = cd
	}
	return clone
}

// TopTreatment returns the treatment with the highest efficacy, or nil when
// the ailment has no treatments.
func (a Ailment) TopTreatment() *Treatment {
	var top *Treatment
	for i := range a.Treatments {
		if top == nil || a.Treatments[i].Efficacy > top.Efficacy {
			top = &a.Treatments[i]
		}
	}
	return top
}

// ValidateAilment checks the aggregate and returns a list of findings. The
// findings are advisory: nothing blocks a save on failed validation.
func ValidateAilment(a Ailment) []string {
	var errs []string

	if strings.TrimSpace(a.Ailment.Name) == "" {
		errs = append(errs, "ailment name is required")
	}
	if a.Ailment.Intensity < 0 || a.Ailment.Intensity > 100 {
		errs = append(errs, "ailment intensity must be between 0 and 100")
	}
	if a.Ailment.Severity < 0 || a.Ailment.Severity > 100 {
		errs = append(errs, "ailment severity must be between 0 and 100")
	}
	if a.Ailment.Duration < 0 {
		errs = append(errs, "ailment duration must be non-negative")
	}

	for i, t := range a.Treatments {
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Sprintf("treatment %d: name is required", i+1))
		}
		if t.Efficacy < 0 || t.Efficacy > 100 {
			errs = append(errs, fmt.Sprintf("treatment %d: efficacy must be between 0 and 100", i+1))
		}
	}

	for i, d := range a.Diagnostics {
		if strings.TrimSpace(d.Name) == "" {
			errs = append(errs, fmt.Sprintf("diagnostic %d: name is required", i+1))
		}
		if d.Efficacy < 0 || d.Efficacy > 100 {
			errs = append(errs, fmt.Sprintf("diagnostic %d: efficacy must be between 0 and 100", i+1))
		}
	}

	return errs
}
