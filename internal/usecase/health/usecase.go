package health

import "context"

// Prober is the store liveness check. The reporter composes its verdict from
// this alone and never touches storage directly.
type Prober interface {
	Probe(ctx context.Context) error
}

type Report struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Usecase struct{ prober Prober }

func NewUsecase(p Prober) *Usecase { return &Usecase{prober: p} }

// Check returns the readiness report and whether the service should answer
// 200. One failed probe flips the verdict immediately.
func (u *Usecase) Check(ctx context.Context) (Report, bool) {
	if err := u.prober.Probe(ctx); err != nil {
		return Report{Status: "error", Database: "unhealthy"}, false
	}
	return Report{Status: "ok", Database: "healthy"}, true
}
