package handlers

// Common error message constants shared across handlers
const (
	ErrMsgInvalidRequestBody  = "Invalid request body"
	ErrMsgInvalidAssignmentID = "Invalid assignment ID"
	ErrMsgInvalidSubmissionID = "Invalid submission ID"
	ErrMsgAssignmentNotFound  = "Assignment not found"
	ErrMsgSubmissionNotFound  = "Submission not found"
	ErrMsgUnauthorized        = "Unauthorized"
	ErrMsgInternal            = "Internal server error"
)
