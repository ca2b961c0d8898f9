package backup

import "errors"

var (
	ErrExportFailed  = errors.New("failed to export data")
	ErrImportFailed  = errors.New("failed to parse backup file")
	ErrInvalidBackup = errors.New("invalid backup document")
	ErrRestoreFailed = errors.New("failed to restore data")
)
