package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskGigPackageAudit = "gigs.package_audit"

type GigPackageAuditPayload struct {
	GigID string `json:"gigId"`
}

func NewGigPackageAuditTask(payload GigPackageAuditPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskGigPackageAudit, data), nil
}

func ParseGigPackageAuditPayload(task *asynq.Task) (GigPackageAuditPayload, error) {
	var payload GigPackageAuditPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return GigPackageAuditPayload{}, err
	}
	return payload, nil
}

// packageAuditTaskID makes repeated enqueues for one gig collapse into a single task.
func packageAuditTaskID(gigID string) string {
	return TaskGigPackageAudit + ":" + gigID
}
