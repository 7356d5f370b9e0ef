package domain

type CtxKey string

const (
	KeyPrincipal CtxKey = "Principal"
	KeyRequestID CtxKey = "RequestID"
	KeySession   CtxKey = "SessionToken"
)
