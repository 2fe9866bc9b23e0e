package response

// 业务响应码，随统一信封下发给前端。
const (
	CodeSuccess    = "SUCCESS"
	CodeBadRequest = "BAD_REQUEST"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)
