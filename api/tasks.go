package api

import (
	"github.com/RichardKnop/machinery/v1/tasks"
)

// dispatchTask enqueues a background job with string arguments. Delivery is
// best effort; a failed enqueue never fails the originating API call.
func (s *Server) dispatchTask(name string, args ...string) {
	if s.backgroundEnqueuer == nil {
		return
	}

	signature := &tasks.Signature{Name: name}
	for _, a := range args {
		signature.Args = append(signature.Args, tasks.Arg{Type: "string", Value: a})
	}

	if _, err := s.backgroundEnqueuer.SendTask(signature); err != nil {
		log.WithError(err).WithField("task", name).Error("enqueue background task")
	}
}
