package application

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

// documentReviews are the reviewer annotations of an application keyed by
// document public URL.
type documentReviews struct {
	statuses map[string]domain.DocumentStatus
	comments map[string]string
}

func reviewsFromMeta(entries []domain.DocumentMetaEntry) documentReviews {
	r := documentReviews{
		statuses: map[string]domain.DocumentStatus{},
		comments: map[string]string{},
	}
	for _, e := range entries {
		switch e.Purpose {
		case domain.DocumentMetaStatus:
			r.statuses[e.PublicURL] = domain.DocumentStatus(e.Value)
		case domain.DocumentMetaComment:
			r.comments[e.PublicURL] = e.Value
		}
	}
	return r
}

// DeriveProgramChoices builds insert-ready program choice rows. A zero rank
// becomes the entry's position, starting at 1.
func DeriveProgramChoices(in []ProgramChoiceInput) []domain.ProgramChoice {
	out := make([]domain.ProgramChoice, 0, len(in))
	for i, c := range in {
		rank := c.Rank
		if rank == 0 {
			rank = i + 1
		}
		out = append(out, domain.ProgramChoice{
			ID:          uuid.New(),
			Rank:        rank,
			ProgramCode: strings.TrimSpace(c.ProgramCode),
			Campus:      trimOrNil(c.Campus),
			StartTerm:   trimOrNil(c.StartTerm),
			StudyMode:   trimOrNil(c.StudyMode),
			FundingType: trimOrNil(c.FundingType),
		})
	}
	return out
}

// DeriveEducations builds insert-ready education rows and returns the new
// row ID for every client key so documents can be linked to them.
func DeriveEducations(in []EducationInput) ([]domain.Education, map[string]uuid.UUID, error) {
	out := make([]domain.Education, 0, len(in))
	keys := make(map[string]uuid.UUID, len(in))
	var errs []domain.FieldError

	for i, e := range in {
		field := func(name string) string { return fmt.Sprintf("educations[%d].%s", i, name) }

		start, err := parseDate(e.StartDate)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field("startDate"), Message: err.Error()})
		}
		end, err := parseDate(e.EndDate)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field("endDate"), Message: err.Error()})
		}
		completed, err := parseDate(e.CompletionDate)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field("completionDate"), Message: err.Error()})
		}

		status := domain.EducationStatusInProgress
		if e.Status != nil {
			status = *e.Status
		}

		row := domain.Education{
			ID:              uuid.New(),
			Type:            e.Type,
			SchoolName:      strings.TrimSpace(e.SchoolName),
			City:            trimOrNil(e.City),
			Country:         trimOrNil(e.Country),
			FieldOfStudy:    trimOrNil(e.FieldOfStudy),
			StartDate:       start,
			EndDate:         end,
			CompletionDate:  completed,
			Status:          status,
			GPA:             trimOrNil(e.GPA),
			CandidateNumber: trimOrNil(e.CandidateNumber),
			SessionYear:     e.SessionYear,
		}
		if key := strings.TrimSpace(e.ID); key != "" {
			keys[key] = row.ID
		}
		out = append(out, row)
	}

	if len(errs) > 0 {
		return nil, nil, domain.NewValidationErrors(errs)
	}
	return out, keys, nil
}

// DerivePhones builds insert-ready phone rows. When phones is nil the legacy
// inline numbers are used. Entries without a number are dropped.
func DerivePhones(phones []PhoneInput, data domain.ApplicationData) []domain.Phone {
	if phones == nil {
		phones = make([]PhoneInput, 0, len(data.PhoneNumbers))
		for _, p := range data.PhoneNumbers {
			phones = append(phones, PhoneInput{
				PhoneNumber:  p.PhoneNumber,
				WhatsappCall: p.WhatsappCall != nil && *p.WhatsappCall,
				NormalCall:   p.NormalCall != nil && *p.NormalCall,
			})
		}
	}

	out := make([]domain.Phone, 0, len(phones))
	for _, p := range phones {
		number := strings.TrimSpace(p.PhoneNumber)
		if number == "" {
			continue
		}
		kind := domain.PhoneKindPrimary
		if p.Kind != nil {
			kind = *p.Kind
		}
		out = append(out, domain.Phone{
			ID:           uuid.New(),
			PhoneNumber:  number,
			WhatsappCall: p.WhatsappCall,
			NormalCall:   p.NormalCall,
			Kind:         kind,
		})
	}
	return out
}

// DeriveDocuments builds insert-ready document rows. The URL is the explicit
// publicUrl, else the first file's; documents without a URL are dropped.
// educationIDs maps education client keys to the rows derived in the same
// save; an unknown key leaves the document unlinked. Reviews recorded for a
// URL override the status and comment of the payload.
func DeriveDocuments(in []DocumentInput, educationIDs map[string]uuid.UUID, reviews documentReviews) []domain.Document {
	out := make([]domain.Document, 0, len(in))
	for _, d := range in {
		kind := domain.DocumentKindOther
		if d.Kind != nil {
			kind = *d.Kind
		}

		var first *FileInput
		if len(d.Files) > 0 {
			first = &d.Files[0]
		}

		url := strings.TrimSpace(d.PublicURL)
		if url == "" && first != nil {
			url = strings.TrimSpace(first.PublicURL)
		}
		if url == "" {
			continue
		}

		name := strings.TrimSpace(d.Name)
		if name == "" && first != nil {
			name = strings.TrimSpace(first.Name)
		}
		if name == "" {
			name = kind.String()
		}

		var educationID *uuid.UUID
		if key := strings.TrimSpace(d.EducationID); key != "" {
			if id, ok := educationIDs[key]; ok {
				educationID = &id
			}
		}

		status := domain.DocumentStatusPending
		if d.Status != nil {
			status = *d.Status
		}
		if reviewed, ok := reviews.statuses[url]; ok {
			status = reviewed
		}

		comment := trimOrNil(d.ReviewerComment)
		if c, ok := reviews.comments[url]; ok {
			comment = &c
		}

		out = append(out, domain.Document{
			ID:              uuid.New(),
			EducationID:     educationID,
			Kind:            kind,
			Name:            name,
			PublicURL:       url,
			Status:          status,
			ReviewerComment: comment,
		})
	}
	return out
}

// DeriveConsents builds insert-ready consent rows. A nil grant time is left
// to the database default.
func DeriveConsents(in []ConsentInput) []domain.Consent {
	out := make([]domain.Consent, 0, len(in))
	for _, c := range in {
		out = append(out, domain.Consent{
			ID:          uuid.New(),
			ConsentType: strings.TrimSpace(c.ConsentType),
			Value:       c.Value,
			GrantedAt:   c.GrantedAt,
			Version:     trimOrNil(c.Version),
		})
	}
	return out
}

// deriveChildren runs every deriver for a save.
func deriveChildren(in SaveInput, reviews documentReviews) (domain.ApplicationChildren, error) {
	educations, keys, err := DeriveEducations(in.Educations)
	if err != nil {
		return domain.ApplicationChildren{}, err
	}
	return domain.ApplicationChildren{
		ProgramChoices: DeriveProgramChoices(in.ProgramChoices),
		Educations:     educations,
		Documents:      DeriveDocuments(in.Documents, keys, reviews),
		Phones:         DerivePhones(in.Phones, in.Data),
		Consents:       DeriveConsents(in.Consents),
	}, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
