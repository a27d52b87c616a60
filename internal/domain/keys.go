package domain

type CtxKey string

const (
	KeyUser      CtxKey = "User"
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyRequestID CtxKey = "RequestID"
)
