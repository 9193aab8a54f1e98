package mockapi

import "github.com/gin-gonic/gin"

const (
	codeInvalidRequestBody = "invalid_request_body"
	codeValidation         = "validation_failed"
	codeUnauthorized       = "unauthorized"
	codeInvalidCredentials = "invalid_credentials"
	codeEmailTaken         = "email_taken"
	codeNotFound           = "not_found"
	codeAlreadyMember      = "already_member"
	codeNotMember          = "not_member"
	codeNoSubscription     = "no_subscription"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func abort(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg, Code: code})
}
