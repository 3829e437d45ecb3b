package application

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/pkg/validate"
)

// SaveInputVersion is the only save contract version accepted.
const SaveInputVersion = 1

// SaveInput is the create-or-update payload of an application.
type SaveInput struct {
	Version        int                       `json:"version,omitempty"  validate:"omitempty,eq=1"`
	ID             *uuid.UUID                `json:"id,omitempty"`
	Email          string                    `json:"email"              validate:"omitempty,email,max=320"`
	Status         *domain.ApplicationStatus `json:"status,omitempty"   validate:"omitempty,enum"`
	Data           domain.ApplicationData    `json:"data"`
	ProgramChoices []ProgramChoiceInput      `json:"programChoices"     validate:"max=10,dive"`
	Educations     []EducationInput          `json:"educations"         validate:"max=20,dive"`
	// Phones nil means the field was absent; the legacy data.phoneNumbers
	// are used instead. An empty slice clears every phone.
	Phones    []PhoneInput    `json:"phones"    validate:"omitempty,max=10,dive"`
	Documents []DocumentInput `json:"documents" validate:"max=50,dive"`
	Consents  []ConsentInput  `json:"consents"  validate:"max=20,dive"`
}

type ProgramChoiceInput struct {
	Rank        int     `json:"rank,omitempty"        validate:"gte=0,lte=100"`
	ProgramCode string  `json:"programCode"           validate:"required,max=100"`
	Campus      *string `json:"campus,omitempty"      validate:"omitempty,max=100"`
	StartTerm   *string `json:"startTerm,omitempty"   validate:"omitempty,max=100"`
	StudyMode   *string `json:"studyMode,omitempty"   validate:"omitempty,max=100"`
	FundingType *string `json:"fundingType,omitempty" validate:"omitempty,max=100"`
}

// EducationInput is one education entry. ID is a client key that documents
// use as their educationId; it may be the ID of a previously saved entry.
type EducationInput struct {
	ID              string                  `json:"id,omitempty"              validate:"max=100"`
	Type            *domain.EducationType   `json:"type,omitempty"            validate:"omitempty,enum"`
	SchoolName      string                  `json:"schoolName"                validate:"required,max=255"`
	City            *string                 `json:"city,omitempty"            validate:"omitempty,max=100"`
	Country         *string                 `json:"country,omitempty"         validate:"omitempty,max=100"`
	FieldOfStudy    *string                 `json:"fieldOfStudy,omitempty"    validate:"omitempty,max=255"`
	StartDate       *string                 `json:"startDate,omitempty"`
	EndDate         *string                 `json:"endDate,omitempty"`
	CompletionDate  *string                 `json:"completionDate,omitempty"`
	Status          *domain.EducationStatus `json:"status,omitempty"          validate:"omitempty,enum"`
	GPA             *string                 `json:"gpa,omitempty"             validate:"omitempty,max=20"`
	CandidateNumber *string                 `json:"candidateNumber,omitempty" validate:"omitempty,max=50"`
	SessionYear     *int                    `json:"sessionYear,omitempty"     validate:"omitempty,gte=1900,lte=2200"`
}

type PhoneInput struct {
	PhoneNumber  string            `json:"phoneNumber"    validate:"max=40"`
	WhatsappCall bool              `json:"whatsappCall"`
	NormalCall   bool              `json:"normalCall"`
	Kind         *domain.PhoneKind `json:"kind,omitempty" validate:"omitempty,enum"`
}

type FileInput struct {
	Name      string `json:"name,omitempty" validate:"max=255"`
	PublicURL string `json:"publicUrl"      validate:"max=2048"`
}

type DocumentInput struct {
	EducationID     string                 `json:"educationId,omitempty"     validate:"max=100"`
	Kind            *domain.DocumentKind   `json:"kind,omitempty"            validate:"omitempty,enum"`
	Name            string                 `json:"name,omitempty"            validate:"max=255"`
	PublicURL       string                 `json:"publicUrl,omitempty"       validate:"max=2048"`
	Status          *domain.DocumentStatus `json:"status,omitempty"          validate:"omitempty,enum"`
	ReviewerComment *string                `json:"reviewerComment,omitempty" validate:"omitempty,max=2000"`
	Files           []FileInput            `json:"files,omitempty"           validate:"max=10,dive"`
}

type ConsentInput struct {
	ConsentType string     `json:"consentType"         validate:"required,max=100"`
	Value       bool       `json:"value"`
	GrantedAt   *time.Time `json:"grantedAt,omitempty"`
	Version     *string    `json:"version,omitempty"   validate:"omitempty,max=50"`
}

// Validate checks the structural constraints of the payload.
func (i SaveInput) Validate() error {
	return validate.Struct(i)
}

// SearchInput holds the review listing parameters.
type SearchInput struct {
	Query   string
	Page    int
	Size    int
	GroupBy string
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage bounds page so that page*size cannot overflow.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// Group keys accepted by Search.
const (
	GroupByStatus    = "status"
	GroupByCountry   = "country"
	GroupByCity      = "city"
	GroupByWhoAreYou = "whoAreYou"
)

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 || i.Page > MaxPage {
		errs = append(errs, domain.FieldError{Field: "page", Message: fmt.Sprintf("must be between 0 and %d", MaxPage)})
	}
	if i.Size < 0 || i.Size > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: "must be between 1 and 100"})
	}
	if len(i.Query) > 200 {
		errs = append(errs, domain.FieldError{Field: "q", Message: "max 200 characters"})
	}
	switch i.GroupBy {
	case "", GroupByStatus, GroupByCountry, GroupByCity, GroupByWhoAreYou:
	default:
		errs = append(errs, domain.FieldError{Field: "groupBy", Message: "must be one of status, country, city, whoAreYou"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStatusInput holds the parameters of an administrator status change.
type UpdateStatusInput struct {
	ApplicationID uuid.UUID
	Status        domain.ApplicationStatus
	Note          *string
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "applicationId", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Note != nil && len(*i.Note) > 2000 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DocumentRefInput identifies one document of an application.
type DocumentRefInput struct {
	ApplicationID uuid.UUID
	PublicURL     string
}

// Validate checks all fields and collects all errors.
func (i DocumentRefInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "applicationId", Message: "required"})
	}
	url := strings.TrimSpace(i.PublicURL)
	if url == "" {
		errs = append(errs, domain.FieldError{Field: "publicUrl", Message: "required"})
	}
	if len(url) > 2048 {
		errs = append(errs, domain.FieldError{Field: "publicUrl", Message: "max 2048 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetDocumentCommentInput holds a reviewer comment for one document.
type SetDocumentCommentInput struct {
	DocumentRefInput
	Comment string
}

// Validate checks all fields and collects all errors.
func (i SetDocumentCommentInput) Validate() error {
	if err := i.DocumentRefInput.Validate(); err != nil {
		return err
	}
	if len(i.Comment) > 2000 {
		return domain.NewValidationError("comment", "max 2000 characters")
	}
	return nil
}

// SetDocumentStatusInput holds a review status for one document.
type SetDocumentStatusInput struct {
	DocumentRefInput
	Status domain.DocumentStatus
}

// Validate checks all fields and collects all errors.
func (i SetDocumentStatusInput) Validate() error {
	if err := i.DocumentRefInput.Validate(); err != nil {
		return err
	}
	if !i.Status.IsValid() {
		return domain.NewValidationError("status", "must be one of approved, rejected, pending")
	}
	return nil
}
