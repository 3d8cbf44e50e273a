package transfer

// Outcome aggregates the per-instance results of one resource type for one
// record. A single boolean cannot express "instance 2 of 3 failed", so the
// orchestrator reports counts instead.
type Outcome struct {
	// Sent counts instances accepted by the endpoint (HTTP 200).
	Sent int `json:"sent"`
	// Failed counts instances rejected or undeliverable; they stay unsent
	// and are retried on the next scheduled run.
	Failed int `json:"failed"`
	// Skipped counts instances deferred this run, e.g. vitals whose
	// encounter has not been assigned an id yet.
	Skipped int `json:"skipped"`
}

func (o *Outcome) add(other Outcome) {
	o.Sent += other.Sent
	o.Failed += other.Failed
	o.Skipped += other.Skipped
}

// Report is the run-level aggregate, keyed by resource type.
type Report map[ResourceType]Outcome

func (r Report) add(rt ResourceType, o Outcome) {
	cur := r[rt]
	cur.add(o)
	r[rt] = cur
}

// TotalFailed reports how many instances failed across all types.
func (r Report) TotalFailed() int {
	var n int
	for _, o := range r {
		n += o.Failed
	}
	return n
}
