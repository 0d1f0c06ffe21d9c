package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateFormSessionID() string {
	return uuid.NewString()
}

func GenerateExportRecordID() string {
	return uuid.NewString()
}
