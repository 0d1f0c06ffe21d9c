package constvars

const (
	URLParamPatientID     = "paciente_id"
	URLParamDoctorID      = "medico_id"
	URLParamPlanID        = "plano_id"
	URLParamFormSessionID = "session_id"
)

const (
	URLQueryParamInclude   = "include"
	URLQueryParamPeriod    = "periodo"
	URLQueryParamStartDate = "data_inicial"
	URLQueryParamEndDate   = "data_final"
	URLQueryParamView      = "visualizacao"
)
