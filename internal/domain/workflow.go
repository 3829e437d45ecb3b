package domain

// EditableStatusesForApplicant are the only statuses in which an applicant
// may still change their own application.
var EditableStatusesForApplicant = []ApplicationStatus{
	ApplicationStatusDraft,
	ApplicationStatusNeedApplicantIntervention,
}

// NotifiableStatuses are the statuses that have a notification email.
var NotifiableStatuses = []ApplicationStatus{
	ApplicationStatusPhoneInterviewPhase,
	ApplicationStatusOnsiteInterviewPhase,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// EditableByApplicant reports whether an applicant may still mutate an
// application in this status. An empty status counts as DRAFT.
func (s ApplicationStatus) EditableByApplicant() bool {
	if s == "" {
		return true
	}
	for _, e := range EditableStatusesForApplicant {
		if s == e {
			return true
		}
	}
	return false
}

// IsNotifiable reports whether a notification batch exists for the status.
func (s ApplicationStatus) IsNotifiable() bool {
	for _, n := range NotifiableStatuses {
		if s == n {
			return true
		}
	}
	return false
}

// CanApplicantSetStatus reports whether an applicant may move their own
// application from one status to another through a save. Applicants only
// move between the editable statuses or submit (INIT).
func CanApplicantSetStatus(from, to ApplicationStatus) bool {
	if !from.EditableByApplicant() {
		return false
	}
	switch to {
	case ApplicationStatusDraft, ApplicationStatusInit, ApplicationStatusNeedApplicantIntervention:
		return true
	}
	return false
}
