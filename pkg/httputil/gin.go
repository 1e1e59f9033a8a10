package httputil

import "github.com/gin-gonic/gin"

// TraceIDKey はgin.ContextにトレースIDを格納するキー。
const TraceIDKey = "trace_id"

// TraceID はミドルウェアが設定したトレースIDを返す。未設定なら空文字。
func TraceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

// WriteError はProblemDetailをGinレスポンスとして書き込む。
// trace_idが未設定の場合はgin.Contextのものを補う。
func WriteError(c *gin.Context, problem *ProblemDetail) {
	c.Header("Content-Type", ContentType)
	c.JSON(problem.Status, withContextTraceID(c, problem))
}

// AbortWithError はWriteErrorと同じ内容を書き込み、後続ハンドラを中断する。
func AbortWithError(c *gin.Context, problem *ProblemDetail) {
	c.Header("Content-Type", ContentType)
	c.AbortWithStatusJSON(problem.Status, withContextTraceID(c, problem))
}

// NoRoute は未定義パスへの要求を404のProblemDetailで返すハンドラ。
func NoRoute(c *gin.Context) {
	AbortWithError(c, NotFound("no route for "+c.Request.Method+" "+c.Request.URL.Path))
}

func withContextTraceID(c *gin.Context, problem *ProblemDetail) *ProblemDetail {
	if problem.TraceID == "" {
		problem.TraceID = TraceID(c)
	}
	return problem
}
