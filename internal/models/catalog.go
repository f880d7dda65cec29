package models

// Wire-facing catalog types. JSON field names follow the portal's Spanish
// vocabulary because the public contract of this API predates it.

// Periodo is one academic period (semester) offered by the portal.
type Periodo struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// Programa is a degree program within a period.
type Programa struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Titulo string `json:"titulo,omitempty"`
	Sede   string `json:"sede,omitempty"`
	Label  string `json:"label,omitempty"`
}

// Materia is a subject offered by a program.
type Materia struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Titulo string `json:"titulo,omitempty"`
	Label  string `json:"label,omitempty"`
}

// Modalidad is the teaching mode of a subject offering (theory/practice/lab).
type Modalidad struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}
