package importer

import "errors"

var (
	ErrWorkbookInvalid = errors.New("the file is not a valid xlsx workbook")
	ErrSheetNotFound   = errors.New("the workbook does not contain the sheet")
	ErrSheetEmpty      = errors.New("the sheet does not contain a header row")
	ErrColumnMissing   = errors.New("the sheet is missing required columns")
	ErrValueInvalid    = errors.New("the value is not a valid amount")
	ErrNoRows          = errors.New("there are no rows to import")
)
