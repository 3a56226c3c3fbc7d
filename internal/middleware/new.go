package middleware

import (
	"golang.org/x/time/rate"

	pkgLog "reminder-ai/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rate.Limiter
}

func New(l pkgLog.Logger, chatRPS float64, chatBurst int) Middleware {
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(chatRPS), chatBurst),
	}
}
