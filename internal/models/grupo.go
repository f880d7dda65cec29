package models

// Slot is one contiguous day+time+room block within a section's schedule.
// Desde/Hasta keep the portal's literal hour tokens; Label is a derived
// rendering of the other fields and is regenerated whenever any of them
// changes.
type Slot struct {
	Dia   string `json:"dia"`
	Desde string `json:"desde"`
	Hasta string `json:"hasta"`
	AmPm  string `json:"ampm,omitempty"`
	Aula  string `json:"aula,omitempty"`
	Label string `json:"label"`
}

// Grupo is one schedule offering (section) of a subject. Every field besides
// Codigo and Nombre is best-effort: unparseable section text leaves them
// empty rather than failing the batch.
type Grupo struct {
	Codigo      string   `json:"codigo"`
	Nombre      string   `json:"nombre"`
	Grupo       string   `json:"grupo,omitempty"`
	Ocupacion   string   `json:"ocupacion,omitempty"`
	Sede        string   `json:"sede,omitempty"`
	Horario     []string `json:"horario,omitempty"`
	ParsedSlots []Slot   `json:"parsedSlots,omitempty"`
	MergedSlots []string `json:"mergedSlots,omitempty"`
	Docentes    string   `json:"docentes,omitempty"`
	Label       string   `json:"label,omitempty"`
}
