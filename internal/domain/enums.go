package domain

// ApplicationStatus is the position of an application in the admission pipeline.
type ApplicationStatus string

const (
	ApplicationStatusDraft                     ApplicationStatus = "DRAFT"
	ApplicationStatusInit                      ApplicationStatus = "INIT"
	ApplicationStatusPhoneInterviewPhase       ApplicationStatus = "PHONE_INTERVIEW_PHASE"
	ApplicationStatusOnsiteInterviewPhase      ApplicationStatus = "ONSITE_INTERVIEW_PHASE"
	ApplicationStatusAccepted                  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected                  ApplicationStatus = "REJECTED"
	ApplicationStatusNeedApplicantIntervention ApplicationStatus = "NEED_APPLICANT_INTERVENTION"
)

// ApplicationStatuses lists every status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusDraft,
	ApplicationStatusInit,
	ApplicationStatusNeedApplicantIntervention,
	ApplicationStatusPhoneInterviewPhase,
	ApplicationStatusOnsiteInterviewPhase,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusDraft, ApplicationStatusInit, ApplicationStatusPhoneInterviewPhase,
		ApplicationStatusOnsiteInterviewPhase, ApplicationStatusAccepted, ApplicationStatusRejected,
		ApplicationStatusNeedApplicantIntervention:
		return true
	}
	return false
}

// Label returns the human-readable name shown to reviewers.
func (s ApplicationStatus) Label() string {
	switch s {
	case ApplicationStatusDraft:
		return "Draft"
	case ApplicationStatusInit:
		return "Submitted"
	case ApplicationStatusPhoneInterviewPhase:
		return "Phone interview phase"
	case ApplicationStatusOnsiteInterviewPhase:
		return "Onsite interview phase"
	case ApplicationStatusAccepted:
		return "Accepted"
	case ApplicationStatusRejected:
		return "Rejected"
	case ApplicationStatusNeedApplicantIntervention:
		return "Needs Applicant Action"
	}
	return string(s)
}

// IsTerminal reports whether the status is a final admission decision.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// EducationType is the kind of diploma or programme an education entry covers.
type EducationType string

const (
	EducationTypeGCEOL      EducationType = "GCE_OL"
	EducationTypeGCEAL      EducationType = "GCE_AL"
	EducationTypeBAC        EducationType = "BAC"
	EducationTypeProbatoire EducationType = "PROBATOIRE"
	EducationTypeBTS        EducationType = "BTS"
	EducationTypeBachelor   EducationType = "BACHELOR"
	EducationTypeOther      EducationType = "OTHER"
)

func (t EducationType) String() string { return string(t) }

func (t EducationType) IsValid() bool {
	switch t {
	case EducationTypeGCEOL, EducationTypeGCEAL, EducationTypeBAC, EducationTypeProbatoire,
		EducationTypeBTS, EducationTypeBachelor, EducationTypeOther:
		return true
	}
	return false
}

// EducationStatus tells whether the applicant finished the education entry.
type EducationStatus string

const (
	EducationStatusInProgress EducationStatus = "IN_PROGRESS"
	EducationStatusCompleted  EducationStatus = "COMPLETED"
)

func (s EducationStatus) String() string { return string(s) }

func (s EducationStatus) IsValid() bool {
	return s == EducationStatusInProgress || s == EducationStatusCompleted
}

// DocumentKind classifies an uploaded supporting document.
type DocumentKind string

const (
	DocumentKindID             DocumentKind = "ID"
	DocumentKindGCEOLCert      DocumentKind = "GCE_OL_CERT"
	DocumentKindProbatoireCert DocumentKind = "PROBATOIRE_CERT"
	DocumentKindGCEALCert      DocumentKind = "GCE_AL_CERT"
	DocumentKindBACCert        DocumentKind = "BAC_CERT"
	DocumentKindUniversityCert DocumentKind = "UNIVERSITY_CERT"
	DocumentKindRecommendation DocumentKind = "RECOMMENDATION"
	DocumentKindMotivation     DocumentKind = "MOTIVATION"
	DocumentKindCV             DocumentKind = "CV"
	DocumentKindTranscript     DocumentKind = "TRANSCRIPT"
	DocumentKindOther          DocumentKind = "OTHER"
)

func (k DocumentKind) String() string { return string(k) }

func (k DocumentKind) IsValid() bool {
	switch k {
	case DocumentKindID, DocumentKindGCEOLCert, DocumentKindProbatoireCert, DocumentKindGCEALCert,
		DocumentKindBACCert, DocumentKindUniversityCert, DocumentKindRecommendation,
		DocumentKindMotivation, DocumentKindCV, DocumentKindTranscript, DocumentKindOther:
		return true
	}
	return false
}

// DocumentStatus is the review outcome of a document.
type DocumentStatus string

const (
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
	DocumentStatusPending  DocumentStatus = "pending"
)

func (s DocumentStatus) String() string { return string(s) }

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusApproved, DocumentStatusRejected, DocumentStatusPending:
		return true
	}
	return false
}

// PhoneKind tells whose number an application phone is.
type PhoneKind string

const (
	PhoneKindPrimary   PhoneKind = "PRIMARY"
	PhoneKindSecondary PhoneKind = "SECONDARY"
	PhoneKindGuardian  PhoneKind = "GUARDIAN"
	PhoneKindOther     PhoneKind = "OTHER"
)

func (k PhoneKind) String() string { return string(k) }

func (k PhoneKind) IsValid() bool {
	switch k {
	case PhoneKindPrimary, PhoneKindSecondary, PhoneKindGuardian, PhoneKindOther:
		return true
	}
	return false
}

// DocumentMetaPurpose names what a document meta entry records.
type DocumentMetaPurpose string

const (
	DocumentMetaStatus  DocumentMetaPurpose = "status"
	DocumentMetaComment DocumentMetaPurpose = "comment"
)

func (p DocumentMetaPurpose) String() string { return string(p) }

func (p DocumentMetaPurpose) IsValid() bool {
	return p == DocumentMetaStatus || p == DocumentMetaComment
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
