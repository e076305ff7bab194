package feeconfig

import "errors"

var (
	// ErrFeeConfigNotFound возвращается, когда конфигурация сборов не найдена
	ErrFeeConfigNotFound = errors.New("feeconfig.repository: fee config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("feeconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("feeconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("feeconfig.repository: failed to scan row")
)
