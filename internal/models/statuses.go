package models

type JobStatus string

const (
	JobStatusApplied     JobStatus = "Applied"
	JobStatusInterviewed JobStatus = "Interviewed"
	JobStatusRejected    JobStatus = "Rejected"
)

// JobStatuses - все допустимые статусы в порядке отображения.
var JobStatuses = []JobStatus{
	JobStatusApplied,
	JobStatusInterviewed,
	JobStatusRejected,
}

// IsValidJobStatus проверяет, что строка является известным статусом.
func IsValidJobStatus(s string) bool {
	for _, st := range JobStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}
