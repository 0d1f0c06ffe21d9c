package constvars

const (
	ResponseUnknown = "unknown"

	// Patient-related messages
	PatientListSuccess    = "get pacientes successfully"
	PatientGetSuccess     = "get paciente successfully"
	PatientCreatedSuccess = "paciente created successfully"
	PatientUpdatedSuccess = "paciente updated successfully"
	PatientDeletedSuccess = "paciente deleted successfully"
	PatientPlanSetSuccess = "plano de saúde association updated successfully"

	// Doctor-related messages
	DoctorListSuccess    = "get medicos successfully"
	DoctorCreatedSuccess = "medico created successfully"
	DoctorUpdatedSuccess = "medico updated successfully"
	DoctorDeletedSuccess = "medico deleted successfully"

	// Health-plan messages
	HealthPlanGetSuccess     = "get plano de saúde successfully"
	HealthPlanCreatedSuccess = "plano de saúde created successfully"
	HealthPlanUpdatedSuccess = "plano de saúde updated successfully"

	// Appointment messages
	AppointmentListSuccess      = "get agendamentos successfully"
	FormSessionOpenedSuccess    = "form session opened successfully"
	FormSessionGetSuccess       = "get form session successfully"
	FormSessionDismissedSuccess = "form session dismissed successfully"
	FormPatientSelectedSuccess  = "paciente selected successfully"
	AppointmentSavedSuccess     = "agendamento saved successfully"
	AppointmentDeletedSuccess   = "agendamento deleted successfully"

	// Report messages
	ReportFetchSuccess         = "get relatório successfully"
	ReportExportHistorySuccess = "get exportações successfully"
)
