package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingBackendUrlKey       = "backend_url"
	LoggingPatientIDKey        = "paciente_id"
	LoggingDoctorIDKey         = "medico_id"
	LoggingPlanIDKey           = "plano_id"
	LoggingAppointmentIDKey    = "agendamento_id"
	LoggingFormSessionIDKey    = "form_session_id"
	LoggingFormModeKey         = "form_mode"
	LoggingAppointmentCountKey = "agendamento_count"
	LoggingBucketCountKey      = "bucket_count"
	LoggingExportFileNameKey   = "export_file_name"
	LoggingFilterStartKey      = "data_inicial"
	LoggingFilterEndKey        = "data_final"
	LoggingFetchTokenKey       = "fetch_token"
)
