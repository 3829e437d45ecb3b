package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhoneNumber is a phone entry embedded in the legacy inline phone list.
type PhoneNumber struct {
	PhoneNumber  string `json:"phoneNumber"            validate:"max=40"`
	WhatsappCall *bool  `json:"whatsappCall,omitempty"`
	NormalCall   *bool  `json:"normalCall,omitempty"`
}

// DocumentRef is an uploaded file embedded in one of the inline document lists.
type DocumentRef struct {
	Name      string `json:"name"      validate:"max=255"`
	PublicURL string `json:"publicUrl" validate:"max=2048"`
}

// ApplicationColumns holds the applicant profile as persisted on the
// applications row. Dates are calendar dates (time component ignored).
type ApplicationColumns struct {
	FirstName                             string
	LastName                              string
	BirthDate                             *time.Time
	WhoAreYou                             *string
	PhoneNumbers                          []PhoneNumber
	Country                               string
	City                                  string
	WhereAreYou                           *string
	HasIDCardOrPassport                   bool
	IDCardOrPassportOrReceipt             []DocumentRef
	HighSchoolOver                        bool
	HighSchoolGceOLProbatoireDate         *time.Time
	HighSchoolGceOLProbatoireCertificates []DocumentRef
	HighSchoolGceALBACDate                *time.Time
	HighSchoolGceALBACCertificates        []DocumentRef
	UniversityStudent                     bool
	UniversityStartDate                   *time.Time
	UniversityEndDate                     *time.Time
	UniversityCertificates                []DocumentRef
}

// Application is one applicant submission.
type Application struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedByID *uuid.UUID
	Email       string
	Status      ApplicationStatus

	ApplicationColumns

	// InvitedStatuses records which status notification emails were sent.
	InvitedStatuses map[ApplicationStatus]bool
}

// DocumentMetaEntry is a reviewer annotation on a document, keyed by the
// document's public URL because document rows are regenerated on every save.
type DocumentMetaEntry struct {
	ApplicationID uuid.UUID
	PublicURL     string
	Purpose       DocumentMetaPurpose
	Value         string
	UpdatedAt     time.Time
}

// ApplicationRow is an application together with its owner and document
// annotations, as read from storage.
type ApplicationRow struct {
	Application  Application
	Owner        *User
	DocumentMeta []DocumentMetaEntry
}

// ProgramChoice is a ranked programme the applicant wants to enrol in.
type ProgramChoice struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	Rank          int
	ProgramCode   string
	Campus        *string
	StartTerm     *string
	StudyMode     *string
	FundingType   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Education is a school or university entry.
type Education struct {
	ID              uuid.UUID
	ApplicationID   uuid.UUID
	Type            *EducationType
	SchoolName      string
	City            *string
	Country         *string
	FieldOfStudy    *string
	StartDate       *time.Time
	EndDate         *time.Time
	CompletionDate  *time.Time
	Status          EducationStatus
	GPA             *string
	CandidateNumber *string
	SessionYear     *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Document is an uploaded supporting file, optionally tied to an education.
type Document struct {
	ID              uuid.UUID
	ApplicationID   uuid.UUID
	EducationID     *uuid.UUID
	Kind            DocumentKind
	Name            string
	PublicURL       string
	Status          DocumentStatus
	ReviewerComment *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Phone is a relational phone number of an application.
type Phone struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	PhoneNumber   string
	WhatsappCall  bool
	NormalCall    bool
	Kind          PhoneKind
	CreatedAt     time.Time
}

// Consent is an accepted (or refused) consent statement.
type Consent struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	ConsentType   string
	Value         bool
	GrantedAt     *time.Time
	Version       *string
}

// StatusHistory is an append-only record of a status change.
type StatusHistory struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	Status        ApplicationStatus
	ChangedAt     time.Time
	ChangedByID   *uuid.UUID
	Note          *string
}

// Relations groups the child rows of a batch of applications by application ID.
type Relations struct {
	ProgramChoices map[uuid.UUID][]ProgramChoice
	Educations     map[uuid.UUID][]Education
	Documents      map[uuid.UUID][]Document
	Phones         map[uuid.UUID][]Phone
	Consents       map[uuid.UUID][]Consent
	StatusHistory  map[uuid.UUID][]StatusHistory
}

// NewRelations returns a Relations value with every map initialised.
func NewRelations() Relations {
	return Relations{
		ProgramChoices: map[uuid.UUID][]ProgramChoice{},
		Educations:     map[uuid.UUID][]Education{},
		Documents:      map[uuid.UUID][]Document{},
		Phones:         map[uuid.UUID][]Phone{},
		Consents:       map[uuid.UUID][]Consent{},
		StatusHistory:  map[uuid.UUID][]StatusHistory{},
	}
}

// ApplicationChildren is the full child set written by a save.
type ApplicationChildren struct {
	ProgramChoices []ProgramChoice
	Educations     []Education
	Documents      []Document
	Phones         []Phone
	Consents       []Consent
}

// AssignApplicationID fills the owning application ID into every child row.
func (c *ApplicationChildren) AssignApplicationID(id uuid.UUID) {
	for i := range c.ProgramChoices {
		c.ProgramChoices[i].ApplicationID = id
	}
	for i := range c.Educations {
		c.Educations[i].ApplicationID = id
	}
	for i := range c.Documents {
		c.Documents[i].ApplicationID = id
	}
	for i := range c.Phones {
		c.Phones[i].ApplicationID = id
	}
	for i := range c.Consents {
		c.Consents[i].ApplicationID = id
	}
}

// SearchFilter selects a page of applications for the review listing.
type SearchFilter struct {
	Query  string
	Limit  int
	Offset int
}

// BatchResult summarises one notification batch run.
type BatchResult struct {
	Status  ApplicationStatus `json:"status"`
	Total   int               `json:"total"`
	Sent    int               `json:"sent"`
	Skipped int               `json:"skipped"`
	Failed  int               `json:"failed"`
}
