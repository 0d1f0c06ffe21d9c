package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"cpf":      "CPF precisa ter 11 dígitos.",
	"crm":      "CRM é obrigatório.",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients. Form-facing messages keep the wording the
// clinic staff already knows from the administrative screens.
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact admin"
	ErrClientServerLongRespond             = "server is taking too long to respond, please try again later"
	ErrClientBackendUnavailable            = "clinic backend is unavailable, please try again later"

	ErrClientSelectPatient    = "Selecione um paciente."
	ErrClientSelectDoctor     = "Selecione um médico."
	ErrClientSelectDateTime   = "Selecione data e hora."
	ErrClientPatientHasNoPlan = "Paciente não possui plano."
	ErrClientPlanExpired      = "Plano vencido."
	ErrClientSaveAppointment  = "Erro ao salvar consulta."

	ErrClientFormSessionNotFound   = "form session not found or expired"
	ErrClientFormSessionReadOnly   = "form session is read-only"
	ErrClientReportRangeRequired   = "Informe a data inicial e final"
	ErrClientReportNothingToExport = "Nenhum dado para exportar"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "failed to parse JSON"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevCannotParseDate            = "failed to parse date"
	ErrDevURLParamIDValidationFailed = "failed to validate URL param: %s"
	ErrDevBuildHTTPRequest           = "failed to build HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevDecodeResponse             = "failed to decode %s response from backend"
	ErrDevBackendRejected            = "backend rejected %s request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevRedisSet                   = "failed to set redis key"
	ErrDevRedisGet                   = "failed to get redis key: %s"
	ErrDevRedisDelete                = "failed to delete redis key"
	ErrDevMongoInsertDocument        = "failed to insert document to mongoDB"
	ErrDevMongoFindDocument          = "failed to find documents in mongoDB"
	ErrDevMinioCreateObject          = "failed to create object in bucket: %s"
	ErrDevPublishMessage             = "failed to publish message to queue"
	ErrDevFormSessionNotFound        = "form session not found"
	ErrDevFormSessionReadOnly        = "submit attempted on read-only form session"
	ErrDevFormIneligiblePatient      = "submit attempted with ineligible patient plan"
	ErrDevReportEmptyDataset         = "export attempted with empty report dataset"
	ErrDevReportRangeMissing         = "report fetch attempted without both range bounds"
)
