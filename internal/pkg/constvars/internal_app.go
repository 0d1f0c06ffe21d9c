package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
)

const (
	HeaderXRequestID         = "X-Request-ID"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMETextCSV         = "text/csv"
)

// Backend collaborator resource paths.
const (
	ResourcePacientes   = "/pacientes"
	ResourceMedicos     = "/medicos"
	ResourceConsultas   = "/consultas"
	ResourcePlanoSaude  = "/plano_saude"
	ResourceRelatorios  = "/relatorios/busca_agendamentos"
	QueryIncludePlano   = "include=plano_saude"
	QueryParamDataIni   = "dataInicial"
	QueryParamDataFinal = "dataFinal"
)

// Appointment statuses (canonical enumeration, superset of observed variants).
const (
	AppointmentStatusScheduled = "agendada"
	AppointmentStatusConfirmed = "confirmada"
	AppointmentStatusCompleted = "realizada"
	AppointmentStatusCancelled = "cancelada"
	AppointmentStatusFinished  = "finalizada"
)

// Form modes.
const (
	FormModeCreate = "create"
	FormModeView   = "view"
	FormModeEdit   = "edit"
	FormModeDelete = "delete"
)

// PatientNameFallback replaces a blank patient name on save so list views
// never render an empty row label.
const PatientNameFallback = "Nome não informado"

// Plan status values.
const (
	PlanStatusActiveMarker = "ativo"
	PlanLabelNone          = "none"
	PlanLabelActive        = "active"
	PlanLabelExpired       = "expired"
)

// Filter shortcuts.
const (
	FilterPeriodToday = "hoje"
	FilterPeriodWeek  = "semana"
	FilterPeriodMonth = "mes"
	FilterPeriodYear  = "ano"
)

// Report view types.
const (
	ReportViewSynthetic = "sintetico"
	ReportViewAnalytic  = "analitico"
)

// Formats used when talking to the backend and rendering to users.
const (
	FormDateTimeLayout     = "2006-01-02T15:04"
	DisplayDateLayout      = "02/01/2006"
	DisplayDateTimeLayout  = "02/01/2006 15:04"
	ReportFileNamePattern  = "relatorio_agendamentos_%s_%s.csv"
	ReportCSVHeaderDaily   = "Data,Quantidade"
	ReportCSVHeaderPeriod  = "Período,Quantidade"
	NotificationEventQueue = "clinic_appointment_events"
)
