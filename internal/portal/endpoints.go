package portal

// AjaxCall describes one portal refresh operation: its remote-call name, the
// positional rsargs[] payload, and the fldList entry carrying the result.
// The argument order is fixed per operation and must be reproduced exactly.
type AjaxCall struct {
	RS    string
	Args  []string
	Field string
}

// ProgramsCall lists degree programs for a period.
func ProgramsCall(periodID, scriptInit string) AjaxCall {
	return AjaxCall{
		RS: "ajax_Cupos_estudiantes_refresh_id_periodosapiens",
		Args: []string{
			periodID,
			"",
			"",
			"",
			"cod_carrera_cam_#fld#_cod_materia_cam_#fld#_grupo_cam",
			scriptInit,
		},
		Field: "cod_carrera_cam",
	}
}

// SubjectsCall lists subjects for a program within a period.
func SubjectsCall(programID, periodID, scriptInit string) AjaxCall {
	return AjaxCall{
		RS: "ajax_Cupos_estudiantes_refresh_cod_carrera_cam",
		Args: []string{
			programID,
			periodID,
			"",
			"",
			"cod_materia_cam_#fld#_tipo_modalidad_#fld#_grupo_cam",
			scriptInit,
		},
		Field: "cod_materia_cam",
	}
}

// ModalitiesCall lists teaching modes for a subject.
func ModalitiesCall(materiaID, programID, periodID, scriptInit string) AjaxCall {
	return AjaxCall{
		RS: "ajax_Cupos_estudiantes_refresh_cod_materia_cam",
		Args: []string{
			materiaID,
			programID,
			periodID,
			"",
			"tipo_modalidad_#fld#_grupo_cam",
			scriptInit,
		},
		Field: "tipo_modalidad",
	}
}

// SectionsCall lists the sections (grupos) of a subject under a modality.
// Unlike the other calls, the portal accepts an empty script_case_init here.
func SectionsCall(modalidadID, periodID, programID, materiaID, scriptInit string) AjaxCall {
	return AjaxCall{
		RS: "ajax_Cupos_estudiantes_refresh_tipo_modalidad",
		Args: []string{
			modalidadID,
			periodID,
			programID,
			materiaID,
			"grupo_cam",
			scriptInit,
		},
		Field: "grupo_cam",
	}
}
