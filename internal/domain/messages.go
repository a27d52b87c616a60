package domain

// Fixed response messages of the public API.
const (
	MsgPong                   = "pong"
	MsgSuccess                = "Success"
	MsgUserRegistered         = "User Registered Successfully"
	MsgCandidateRegistered    = "Candidate Registered Successfully"
	MsgRecordDeleted          = "Record deleted successfully"
	MsgEmailAlreadyExists     = "Email already exists"
	MsgIncorrectEmailPassword = "Incorrect email or password"
	MsgNotFound               = "Not Found"
	MsgInvalidCredentials     = "Invalid Credentials"
	MsgNotAuthenticated       = "Not authenticated"
	MsgValidationFailed       = "Validation failed"
)
