package workerpool

import "context"

type Response struct {
	Value any
	Err   error
}

// Job is a unit of work. Resp may be nil for fire-and-forget jobs.
type Job struct {
	Ctx  context.Context
	Name string
	Run  func(context.Context) (any, error)
	Resp chan Response
}

func (j Job) reply(r Response) {
	if j.Resp == nil {
		return
	}
	select {
	case j.Resp <- r:
		return
	default:
	}
	select {
	case j.Resp <- r:
	case <-j.Ctx.Done():
	}
}
