package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ApplicationData is the structured applicant profile exchanged with clients.
// Dates are calendar dates formatted as YYYY-MM-DD.
type ApplicationData struct {
	FirstName                             string        `json:"firstName"                             validate:"max=200"`
	LastName                              string        `json:"lastName"                              validate:"max=200"`
	BirthDate                             *string       `json:"birthDate,omitempty"`
	WhoAreYou                             *string       `json:"whoAreYou,omitempty"                   validate:"omitempty,max=2000"`
	PhoneNumbers                          []PhoneNumber `json:"phoneNumbers"                          validate:"max=10,dive"`
	Country                               string        `json:"country"                               validate:"max=100"`
	City                                  string        `json:"city"                                  validate:"max=100"`
	WhereAreYou                           *string       `json:"whereAreYou,omitempty"                 validate:"omitempty,max=2000"`
	HasIDCardOrPassport                   bool          `json:"hasIdCardOrPassport"`
	IDCardOrPassportOrReceipt             []DocumentRef `json:"idCardOrPassportOrReceipt"             validate:"max=10,dive"`
	HighSchoolOver                        bool          `json:"highSchoolOver"`
	HighSchoolGceOLProbatoireDate         *string       `json:"highSchoolGceOLProbatoireDate,omitempty"`
	HighSchoolGceOLProbatoireCertificates []DocumentRef `json:"highSchoolGceOLProbatoireCertificates" validate:"max=10,dive"`
	HighSchoolGceALBACDate                *string       `json:"highSchoolGceALBACDate,omitempty"`
	HighSchoolGceALBACCertificates        []DocumentRef `json:"highSchoolGceALBACCertificates"        validate:"max=10,dive"`
	UniversityStudent                     bool          `json:"universityStudent"`
	UniversityStartDate                   *string       `json:"universityStartDate,omitempty"`
	UniversityEndDate                     *string       `json:"universityEndDate,omitempty"`
	UniversityCertificates                []DocumentRef `json:"universityCertificates"                validate:"max=10,dive"`
}

// ApplicationMetaStatus carries the per-status notification flags.
type ApplicationMetaStatus struct {
	Invited map[ApplicationStatus]bool `json:"invited"`
}

// ApplicationMeta is the reviewer-side annotation view of an application.
// Document maps are keyed by the document public URL.
type ApplicationMeta struct {
	Status           ApplicationMetaStatus     `json:"status"`
	DocumentStatuses map[string]DocumentStatus `json:"documentStatuses"`
	DocumentComments map[string]string         `json:"documentComments"`
}

// IsInvited reports whether the notification for status was already sent.
func (m ApplicationMeta) IsInvited(status ApplicationStatus) bool {
	return m.Status.Invited[status]
}

// UserSummary is the owner as exposed on a normalized application.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  *string   `json:"name,omitempty"`
	Role  UserRole  `json:"role"`
}

type ProgramChoiceDTO struct {
	ID          uuid.UUID `json:"id"`
	Rank        int       `json:"rank"`
	ProgramCode string    `json:"programCode"`
	Campus      *string   `json:"campus,omitempty"`
	StartTerm   *string   `json:"startTerm,omitempty"`
	StudyMode   *string   `json:"studyMode,omitempty"`
	FundingType *string   `json:"fundingType,omitempty"`
}

type EducationDTO struct {
	ID              uuid.UUID       `json:"id"`
	Type            *EducationType  `json:"type,omitempty"`
	SchoolName      string          `json:"schoolName"`
	City            *string         `json:"city,omitempty"`
	Country         *string         `json:"country,omitempty"`
	FieldOfStudy    *string         `json:"fieldOfStudy,omitempty"`
	StartDate       *string         `json:"startDate,omitempty"`
	EndDate         *string         `json:"endDate,omitempty"`
	CompletionDate  *string         `json:"completionDate,omitempty"`
	Status          EducationStatus `json:"status"`
	GPA             *string         `json:"gpa,omitempty"`
	CandidateNumber *string         `json:"candidateNumber,omitempty"`
	SessionYear     *int            `json:"sessionYear,omitempty"`
}

type DocumentDTO struct {
	ID              uuid.UUID      `json:"id"`
	EducationID     *uuid.UUID     `json:"educationId,omitempty"`
	Kind            DocumentKind   `json:"kind"`
	Name            string         `json:"name"`
	PublicURL       string         `json:"publicUrl"`
	Status          DocumentStatus `json:"status"`
	ReviewerComment *string        `json:"reviewerComment"`
}

type PhoneDTO struct {
	ID           uuid.UUID `json:"id"`
	PhoneNumber  string    `json:"phoneNumber"`
	WhatsappCall bool      `json:"whatsappCall"`
	NormalCall   bool      `json:"normalCall"`
	Kind         PhoneKind `json:"kind"`
}

type ConsentDTO struct {
	ID          uuid.UUID  `json:"id"`
	ConsentType string     `json:"consentType"`
	Value       bool       `json:"value"`
	GrantedAt   *time.Time `json:"grantedAt,omitempty"`
	Version     *string    `json:"version,omitempty"`
}

type StatusHistoryDTO struct {
	ID          uuid.UUID         `json:"id"`
	Status      ApplicationStatus `json:"status"`
	ChangedAt   time.Time         `json:"changedAt"`
	ChangedByID *uuid.UUID        `json:"changedById,omitempty"`
	Note        *string           `json:"note,omitempty"`
}

// NormalizedApplication is the composed read view of one application. It is
// built fresh on every read and never persisted.
type NormalizedApplication struct {
	ID          uuid.UUID         `json:"id"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	CreatedByID *uuid.UUID        `json:"createdById,omitempty"`
	CreatedBy   *UserSummary      `json:"createdBy"`
	Email       string            `json:"email"`
	Status      ApplicationStatus `json:"status"`
	Data        ApplicationData   `json:"data"`
	Meta        ApplicationMeta   `json:"meta"`

	ProgramChoices []ProgramChoiceDTO `json:"programChoices"`
	Educations     []EducationDTO     `json:"educations"`
	Documents      []DocumentDTO      `json:"documents"`
	Phones         []PhoneDTO         `json:"phones"`
	Consents       []ConsentDTO       `json:"consents"`
	StatusHistory  []StatusHistoryDTO `json:"statusHistory"`
}

// DisplayPhones returns the relational phones when any exist, otherwise the
// legacy inline phone numbers.
func (a *NormalizedApplication) DisplayPhones() []PhoneNumber {
	if len(a.Phones) == 0 {
		return a.Data.PhoneNumbers
	}
	out := make([]PhoneNumber, 0, len(a.Phones))
	for _, p := range a.Phones {
		whatsapp, normal := p.WhatsappCall, p.NormalCall
		out = append(out, PhoneNumber{
			PhoneNumber:  p.PhoneNumber,
			WhatsappCall: &whatsapp,
			NormalCall:   &normal,
		})
	}
	return out
}

// ApplicationGroup is one bucket of a grouped search result.
type ApplicationGroup struct {
	Key          string
	Applications []NormalizedApplication
}

// MarshalJSON encodes the group as a [key, applications] pair.
func (g ApplicationGroup) MarshalJSON() ([]byte, error) {
	apps := g.Applications
	if apps == nil {
		apps = []NormalizedApplication{}
	}
	return json.Marshal([]any{g.Key, apps})
}
